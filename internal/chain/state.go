// Package chain tracks the lifecycle of one multi-step command chain
// run through an explicit state machine.
//
// A run moves Pending → Running(step) for each step in order, and ends
// in exactly one terminal state: Succeeded, Failed (first fatal non-zero
// exit code), or Errored (validation, spawn, or timeout failure).
package chain

import "fmt"

// State is one lifecycle state of a chain run.
type State int

const (
	// Pending means the chain has been built but no step has started.
	Pending State = iota
	// Running means a step is currently executing.
	Running
	// Succeeded means every step finished with an accepted exit code.
	Succeeded
	// Failed means a step exited non-zero and stopped the chain.
	Failed
	// Errored means execution broke before a step could report a code.
	Errored
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Running:
		return "Running"
	case Succeeded:
		return "Succeeded"
	case Failed:
		return "Failed"
	case Errored:
		return "Errored"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transition is allowed from s.
func (s State) Terminal() bool {
	return s == Succeeded || s == Failed || s == Errored
}

// transitions lists the allowed destination states per source state.
var transitions = map[State][]State{
	Pending: {Running, Errored},
	Running: {Running, Succeeded, Failed, Errored},
}

func allowed(src, dst State) bool {
	for _, s := range transitions[src] {
		if s == dst {
			return true
		}
	}
	return false
}

// Run tracks one chain execution. It is not safe for concurrent use;
// a chain executes its steps sequentially.
type Run struct {
	state    State
	step     int
	exitCode int
	err      error
}

// NewRun creates a run in the Pending state.
func NewRun() *Run {
	return &Run{state: Pending}
}

// State returns the current state.
func (r *Run) State() State { return r.state }

// Step returns the index of the current or last step.
func (r *Run) Step() int { return r.step }

// ExitCode returns the recorded exit code; meaningful once the run has
// left Pending.
func (r *Run) ExitCode() int { return r.exitCode }

// Err returns the cause recorded by Error, or nil.
func (r *Run) Err() error { return r.err }

// Start marks step index i as running.
func (r *Run) Start(i int) error {
	if err := r.transition(Running); err != nil {
		return err
	}
	r.step = i
	return nil
}

// Succeed marks the run as fully successful.
func (r *Run) Succeed() error {
	return r.transition(Succeeded)
}

// Fail records the first fatal non-zero exit code and terminates the run.
func (r *Run) Fail(code int) error {
	if err := r.transition(Failed); err != nil {
		return err
	}
	r.exitCode = code
	return nil
}

// Error records an execution failure and terminates the run.
func (r *Run) Error(cause error) error {
	if err := r.transition(Errored); err != nil {
		return err
	}
	r.err = cause
	return nil
}

func (r *Run) transition(dst State) error {
	if !allowed(r.state, dst) {
		return fmt.Errorf("invalid chain state transition %s -> %s", r.state, dst)
	}
	r.state = dst
	return nil
}
