package awscli

import (
	"context"
	"strings"
	"time"

	"github.com/Mad-Pixels/ci-actions/internal/alog"
	"github.com/Mad-Pixels/ci-actions/internal/chain"
	"github.com/Mad-Pixels/ci-actions/internal/runner"
)

// Runner executes one validated subprocess request.
type Runner interface {
	Execute(ctx context.Context, req runner.Request) (int, error)
}

// Executor runs aws commands and command chains.
type Executor struct {
	run     Runner
	bin     string
	env     map[string]string
	timeout time.Duration
}

// NewExecutor creates an executor for the aws binary at bin.
func NewExecutor(run Runner, bin string, env map[string]string, timeout time.Duration) *Executor {
	return &Executor{run: run, bin: bin, env: env, timeout: timeout}
}

// Execute runs a single command and returns its exit code.
func (e *Executor) Execute(ctx context.Context, cmd Command) (int, error) {
	req := runner.Request{
		Command: append([]string{e.bin}, cmd.Args()...),
		Env:     e.env,
		Dir:     cmd.Dir(),
		Timeout: e.timeout,
	}
	return e.run.Execute(ctx, req)
}

// ExecuteChain runs commands in order, stopping at the first non-zero
// exit code or execution error.
func (e *Executor) ExecuteChain(ctx context.Context, cmds []Command) (int, error) {
	run := chain.NewRun()
	last := 0
	for i, cmd := range cmds {
		if err := run.Start(i); err != nil {
			return 0, err
		}
		alog.Debug("aws step %d/%d: %s", i+1, len(cmds), strings.Join(cmd.Args(), " "))

		code, err := e.Execute(ctx, cmd)
		if err != nil {
			_ = run.Error(err)
			return 0, err
		}
		last = code
		if code != 0 {
			_ = run.Fail(code)
			return code, nil
		}
	}
	_ = run.Succeed()
	return last, nil
}
