// Package terraform builds terraform CLI invocations and runs them as
// short-circuiting command chains through the masking subprocess runner.
package terraform

import (
	"fmt"
	"sort"
)

// Command is one terraform invocation: its arguments after the binary
// name and the directory it runs in.
type Command interface {
	// Args returns the argument vector, deterministic for equal inputs.
	Args() []string
	// Dir returns the working directory for the invocation.
	Dir() string
}

// Init initializes a working directory. Always runs with -reconfigure
// so a stale backend never survives a configuration change.
type Init struct {
	WorkDir       string
	BackendConfig map[string]string
}

func (c Init) Args() []string {
	args := []string{"init", "-reconfigure"}
	for _, k := range sortedKeys(c.BackendConfig) {
		args = append(args, fmt.Sprintf("-backend-config=%s=%s", k, c.BackendConfig[k]))
	}
	return args
}

func (c Init) Dir() string { return c.WorkDir }

// Plan creates an execution plan, optionally saved to Out.
type Plan struct {
	WorkDir string
	Vars    map[string]string
	Out     string
}

func (c Plan) Args() []string {
	args := []string{"plan"}
	for _, k := range sortedKeys(c.Vars) {
		args = append(args, fmt.Sprintf("-var=%s=%s", k, c.Vars[k]))
	}
	if c.Out != "" {
		args = append(args, "-out", c.Out)
	}
	return args
}

func (c Plan) Dir() string { return c.WorkDir }

// Apply applies changes, from PlanFile when set.
type Apply struct {
	WorkDir     string
	PlanFile    string
	AutoApprove bool
}

func (c Apply) Args() []string {
	args := []string{"apply"}
	if c.AutoApprove {
		args = append(args, "-auto-approve")
	}
	if c.PlanFile != "" {
		args = append(args, c.PlanFile)
	}
	return args
}

func (c Apply) Dir() string { return c.WorkDir }

// WorkspaceOp names a workspace subcommand.
type WorkspaceOp string

const (
	WorkspaceList   WorkspaceOp = "list"
	WorkspaceNew    WorkspaceOp = "new"
	WorkspaceSelect WorkspaceOp = "select"
	WorkspaceDelete WorkspaceOp = "delete"
)

// Workspace manages terraform workspaces. Name is empty for list.
type Workspace struct {
	WorkDir string
	Op      WorkspaceOp
	Name    string
}

func (c Workspace) Args() []string {
	args := []string{"workspace", string(c.Op)}
	if c.Op != WorkspaceList {
		args = append(args, c.Name)
	}
	return args
}

func (c Workspace) Dir() string { return c.WorkDir }

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
