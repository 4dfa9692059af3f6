// Package audit provides structured logging for action run events.
// Log entries follow a key=value format suitable for parsing and analysis.
package audit

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of run event.
type EventType string

// Event types for action runs.
const (
	EventRunStart EventType = "RUN_START"
	EventStep     EventType = "STEP"
	EventComplete EventType = "COMPLETE"
	EventError    EventType = "ERROR"
)

// Event represents one audit log entry. Cmd must already be redacted
// by the caller; the audit log never sees raw command lines.
type Event struct {
	// Timestamp is when the event occurred.
	Timestamp time.Time

	// Type is the event type (RUN_START, STEP, etc.)
	Type EventType

	// RunID correlates all events of one chain run.
	RunID string

	// Action is the invoked action, e.g. "terraform plan".
	Action string

	// Cmd is the redacted command line (for STEP events).
	Cmd string

	// Step is the 1-based step index (for STEP events).
	Step int

	// Reason is the failure description (for ERROR events).
	Reason string

	// ExitCode is the run exit code (for COMPLETE events).
	ExitCode int

	// Duration is the run time (for COMPLETE events).
	Duration time.Duration
}

// Format returns the log entry as a formatted string.
// Format: 2024-01-15T14:32:05Z ACTION STEP run=<uuid> action="terraform plan" step=2 cmd="..."
func (e *Event) Format() string {
	var b strings.Builder

	b.WriteString(e.Timestamp.UTC().Format(time.RFC3339))
	b.WriteString(" ACTION ")
	b.WriteString(string(e.Type))

	b.WriteString(" run=")
	b.WriteString(e.RunID)
	b.WriteString(" action=")
	b.WriteString(quoteValue(e.Action))

	switch e.Type {
	case EventStep:
		b.WriteString(" step=")
		b.WriteString(strconv.Itoa(e.Step))
		writeOptionalField(&b, "cmd", e.Cmd)
	case EventComplete:
		b.WriteString(" exit=")
		b.WriteString(strconv.Itoa(e.ExitCode))
		b.WriteString(" duration=")
		b.WriteString(formatDuration(e.Duration))
	case EventError:
		writeOptionalField(&b, "reason", e.Reason)
	}

	return b.String()
}

// writeOptionalField appends " key=quoted_value" to the builder if value is non-empty.
func writeOptionalField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString("=")
	b.WriteString(quoteValue(value))
}

// quoteValue returns a quoted string value.
// Values are always quoted for consistency and to handle spaces/special chars.
func quoteValue(s string) string {
	return fmt.Sprintf("%q", s)
}

// formatDuration formats a duration as a human-readable string (e.g., "2.3s", "1m30s").
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return d.Round(time.Second).String()
}

// Logger writes audit events to an io.Writer.
type Logger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger creates a new audit logger that writes to the given writer.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

// NewRunID returns a fresh identifier correlating one chain run.
func NewRunID() string {
	return uuid.NewString()
}

// Log writes an event to the audit log.
func (l *Logger) Log(e *Event) error {
	if l == nil || l.w == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	line := e.Format() + "\n"
	_, err := l.w.Write([]byte(line))
	if err != nil {
		return fmt.Errorf("write audit event: %w", err)
	}
	return nil
}

// LogRunStart logs an ACTION RUN_START event.
func (l *Logger) LogRunStart(runID, action string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventRunStart,
		RunID:     runID,
		Action:    action,
	})
}

// LogStep logs an ACTION STEP event with the redacted command line.
func (l *Logger) LogStep(runID, action string, step int, cmd string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventStep,
		RunID:     runID,
		Action:    action,
		Step:      step,
		Cmd:       cmd,
	})
}

// LogComplete logs an ACTION COMPLETE event.
func (l *Logger) LogComplete(runID, action string, exitCode int, duration time.Duration) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventComplete,
		RunID:     runID,
		Action:    action,
		ExitCode:  exitCode,
		Duration:  duration,
	})
}

// LogError logs an ACTION ERROR event.
func (l *Logger) LogError(runID, action, reason string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventError,
		RunID:     runID,
		Action:    action,
		Reason:    reason,
	})
}
