// Package output routes redacted child-process output to its sinks.
//
// A Sink accepts complete lines. A Router binds one masking pipeline to
// two sinks, one per child stream; every line passes through the full
// pipeline before any sink sees it.
package output

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Sink receives complete, already-redacted lines of output.
type Sink interface {
	// WriteLine writes one line plus a line terminator.
	WriteLine(line string) error
}

// writerSink writes lines to an io.Writer.
type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink that writes each line plus "\n" to w.
// Writes are serialized, so a single sink may be shared.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

// NewStdoutSink returns a sink bound to the process's standard output.
func NewStdoutSink() Sink {
	return NewWriterSink(os.Stdout)
}

// NewStderrSink returns a sink bound to the process's standard error.
func NewStderrSink() Sink {
	return NewWriterSink(os.Stderr)
}

func (s *writerSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.w, line+"\n"); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}

// fileSink appends lines to a file, creating it if absent.
type fileSink struct {
	mu sync.Mutex
	f  *os.File
}

// NewFileSink opens path in append mode, creating the file if it does
// not exist, and returns a sink writing one line per call.
func NewFileSink(path string) (Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("open output file %s: %w", path, err)
	}
	return &fileSink{f: f}, nil
}

func (s *fileSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (s *fileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}
