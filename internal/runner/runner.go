package runner

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/Mad-Pixels/ci-actions/internal/alog"
	"github.com/Mad-Pixels/ci-actions/internal/output"
)

// fallbackExitCode is reported when the child terminated without a
// numeric exit code, for example when killed by a signal.
const fallbackExitCode = 2

// maxLineBytes bounds one output line; terraform plans can produce very
// long single lines.
const maxLineBytes = 1024 * 1024

// Runner validates requests and executes them as child processes,
// draining both output streams through a redacting router.
type Runner struct {
	router    *output.Router
	validator *Validator
}

// New creates a Runner. Every line the child writes reaches a sink only
// through router's masking pipeline.
func New(router *output.Router, validator *Validator) *Runner {
	return &Runner{router: router, validator: validator}
}

// Execute validates and runs one request, streaming both output streams
// line by line through the router, and returns the child's exit code.
//
// A non-zero exit code is a normal result, not an error. Errors are
// reserved for rejection by validation, spawn or pipe failures, a
// timeout (errors.Is(err, ErrTimeout)), or stream failures. Both drains
// are joined before Execute returns on every path, so all output has
// been flushed through the pipeline by the time the caller sees the
// result.
func (r *Runner) Execute(ctx context.Context, req Request) (int, error) {
	if err := r.validator.Validate(req); err != nil {
		return 0, err
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	alog.Debug("runner: executing %s", r.router.Redact(strings.Join(req.Command, " ")))

	cmd := exec.CommandContext(ctx, req.Command[0], req.Command[1:]...)
	if req.Dir != "" {
		cmd.Dir = req.Dir
	}
	if len(req.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range req.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}
	// The child must never block waiting on interactive input.
	cmd.Stdin = nil

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, &ExecutionError{Stage: "stdout", Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return 0, &ExecutionError{Stage: "stderr", Err: err}
	}

	if err := cmd.Start(); err != nil {
		return 0, &ExecutionError{Stage: "spawn", Err: err}
	}

	drainErrs := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go r.drain(&wg, stdout, r.router.Emit, "stdout", drainErrs)
	go r.drain(&wg, stderr, r.router.EmitErr, "stderr", drainErrs)

	// Drains finish when the pipes close: on normal exit or after the
	// context deadline kills the child. They must be joined before Wait,
	// which releases the pipe descriptors.
	wg.Wait()
	waitErr := cmd.Wait()

	if req.Timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		alog.Warn("runner: command killed after %s timeout", req.Timeout)
		return 0, timeoutError(req.Timeout.Seconds())
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return 0, &ExecutionError{Stage: "wait", Err: ctx.Err()}
	}

	select {
	case derr := <-drainErrs:
		return 0, derr
	default:
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				code = fallbackExitCode
			}
			return code, nil
		}
		return 0, &ExecutionError{Stage: "wait", Err: waitErr}
	}
	return 0, nil
}

// drain reads one stream to end-of-stream, emitting every line through
// the router. First failure per stream is reported on errs.
func (r *Runner) drain(wg *sync.WaitGroup, stream io.Reader, emit func(string) error, stage string, errs chan<- error) {
	defer wg.Done()

	var failed bool
	sc := bufio.NewScanner(stream)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	for sc.Scan() {
		if err := emit(sc.Text()); err != nil && !failed {
			failed = true
			errs <- &ExecutionError{Stage: stage, Err: err}
		}
	}
	if err := sc.Err(); err != nil && !failed {
		errs <- &ExecutionError{Stage: stage, Err: err}
	}
}
