package terraform

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

// Executor runs terraform commands and command chains.
type Executor struct {
	run     Runner
	bin     string
	env     map[string]string
	timeout time.Duration
}

// NewExecutor creates an executor for the terraform binary at bin.
// env is passed to every invocation; timeout zero means no limit.
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

// ExecuteChain runs commands in order, stopping at the first failure.
// A non-zero exit from "workspace new" does not stop the chain: the
// workspace usually already exists and the following select confirms it.
func (e *Executor) ExecuteChain(ctx context.Context, cmds []Command) (int, error) {
	run := chain.NewRun()
	last := 0
	for i, cmd := range cmds {
		if err := run.Start(i); err != nil {
			return 0, err
		}
		alog.Debug("terraform step %d/%d: %s", i+1, len(cmds), strings.Join(cmd.Args(), " "))

		code, err := e.Execute(ctx, cmd)
		if err != nil {
			_ = run.Error(err)
			return 0, err
		}
		if ws, ok := cmd.(Workspace); ok && ws.Op == WorkspaceNew && code != 0 {
			alog.Debug("workspace new exited %d, continuing", code)
			continue
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

// ExecutePlanChain builds and runs the plan chain.
func (e *Executor) ExecutePlanChain(ctx context.Context, dir string, vars map[string]string, backendConfig map[string]string, workspace, out string) (int, error) {
	b := NewChainBuilder(dir).
		WithVars(vars).
		WithBackendConfig(backendConfig).
		WithWorkspace(workspace).
		WithOut(out)
	return e.ExecuteChain(ctx, b.PlanChain())
}

// ExecuteApplyChain builds and runs the apply chain.
func (e *Executor) ExecuteApplyChain(ctx context.Context, dir string, backendConfig map[string]string, workspace, planFile string, autoApprove bool) (int, error) {
	b := NewChainBuilder(dir).
		WithBackendConfig(backendConfig).
		WithWorkspace(workspace).
		WithOut(planFile).
		WithAutoApprove(autoApprove)
	return e.ExecuteChain(ctx, b.ApplyChain())
}
