package terraform

// ChainBuilder assembles the init/workspace/plan/apply command sequences.
type ChainBuilder struct {
	dir           string
	vars          map[string]string
	backendConfig map[string]string
	workspace     string
	out           string
	autoApprove   bool
}

// NewChainBuilder creates a builder rooted at dir.
func NewChainBuilder(dir string) *ChainBuilder {
	return &ChainBuilder{dir: dir}
}

// WithVars sets the plan variables.
func (b *ChainBuilder) WithVars(vars map[string]string) *ChainBuilder {
	b.vars = vars
	return b
}

// WithBackendConfig sets the init backend configuration.
func (b *ChainBuilder) WithBackendConfig(cfg map[string]string) *ChainBuilder {
	b.backendConfig = cfg
	return b
}

// WithWorkspace selects a workspace; empty means the default workspace.
func (b *ChainBuilder) WithWorkspace(name string) *ChainBuilder {
	b.workspace = name
	return b
}

// WithOut sets the plan output path, reused as the apply plan file.
func (b *ChainBuilder) WithOut(path string) *ChainBuilder {
	b.out = path
	return b
}

// WithAutoApprove skips the interactive apply confirmation.
func (b *ChainBuilder) WithAutoApprove(v bool) *ChainBuilder {
	b.autoApprove = v
	return b
}

// workspaceSteps emits the create-then-select pair. The create step is
// expected to fail when the workspace already exists; the chain executor
// tolerates that.
func (b *ChainBuilder) workspaceSteps() []Command {
	if b.workspace == "" {
		return nil
	}
	return []Command{
		Workspace{WorkDir: b.dir, Op: WorkspaceNew, Name: b.workspace},
		Workspace{WorkDir: b.dir, Op: WorkspaceSelect, Name: b.workspace},
	}
}

// PlanChain returns init, optional workspace steps, then plan.
func (b *ChainBuilder) PlanChain() []Command {
	cmds := []Command{Init{WorkDir: b.dir, BackendConfig: b.backendConfig}}
	cmds = append(cmds, b.workspaceSteps()...)
	return append(cmds, Plan{WorkDir: b.dir, Vars: b.vars, Out: b.out})
}

// ApplyChain returns init, optional workspace steps, then apply.
func (b *ChainBuilder) ApplyChain() []Command {
	cmds := []Command{Init{WorkDir: b.dir, BackendConfig: b.backendConfig}}
	cmds = append(cmds, b.workspaceSteps()...)
	return append(cmds, Apply{WorkDir: b.dir, PlanFile: b.out, AutoApprove: b.autoApprove})
}
