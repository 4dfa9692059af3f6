// Package prompt provides interactive confirmation for destructive
// actions, designed for testability with mock implementations.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotATerminal is returned when confirmation is required but stdin is
// not attached to a terminal (for example inside a CI job).
var ErrNotATerminal = errors.New("confirmation required but stdin is not a terminal")

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	// Confirm displays the question and returns true if the user answered
	// yes. The default answer (on empty input) is no.
	Confirm(question string) (bool, error)
}

// TerminalConfirmer implements Confirmer against a real terminal.
// It refuses to prompt when In is not a terminal, so an unattended run
// fails fast instead of hanging.
type TerminalConfirmer struct {
	In  *os.File
	Out io.Writer
}

// NewTerminalConfirmer creates a TerminalConfirmer reading from in
// (typically os.Stdin) and writing the question to out.
func NewTerminalConfirmer(in *os.File, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{In: in, Out: out}
}

// Confirm asks the question and reads a y/n answer.
func (c *TerminalConfirmer) Confirm(question string) (bool, error) {
	if !term.IsTerminal(int(c.In.Fd())) {
		return false, ErrNotATerminal
	}

	_, _ = fmt.Fprintf(c.Out, "%s [y/N]: ", question)

	reader := bufio.NewReader(c.In)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// MockConfirmer implements Confirmer for testing with a canned answer.
type MockConfirmer struct {
	// Answer is returned by every Confirm call.
	Answer bool
	// Err, if non-nil, is returned instead of Answer.
	Err error
	// Calls records all questions passed to Confirm.
	Calls []string
}

// Confirm records the question and returns the configured answer.
func (m *MockConfirmer) Confirm(question string) (bool, error) {
	m.Calls = append(m.Calls, question)
	if m.Err != nil {
		return false, m.Err
	}
	return m.Answer, nil
}
