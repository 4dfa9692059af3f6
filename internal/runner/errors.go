package runner

import (
	"errors"
	"fmt"
)

// ErrTimeout marks an execution that was killed after exceeding its
// timeout. Use errors.Is to distinguish it from other execution errors.
var ErrTimeout = errors.New("execution timed out")

// ValidationError reports a request rejected before any process was
// spawned. It names the rule that failed.
type ValidationError struct {
	Rule   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%s): %s", e.Rule, e.Reason)
}

// ExecutionError reports a failure while running the child process:
// spawn failure, pipe capture, timeout, or a drain that did not finish.
// A non-zero exit code is not an ExecutionError.
type ExecutionError struct {
	// Stage identifies the failing step: "spawn", "stdout", "stderr",
	// "wait", or "timeout".
	Stage string
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution failed (%s): %v", e.Stage, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// timeoutError builds the ExecutionError for a killed, timed-out child.
func timeoutError(seconds float64) *ExecutionError {
	return &ExecutionError{
		Stage: "timeout",
		Err:   fmt.Errorf("%w after %.0fs", ErrTimeout, seconds),
	}
}
