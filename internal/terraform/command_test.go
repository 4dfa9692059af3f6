package terraform

import (
	"reflect"
	"testing"
)

func TestInitArgs(t *testing.T) {
	tests := []struct {
		name string
		cmd  Init
		want []string
	}{
		{
			name: "no backend config",
			cmd:  Init{WorkDir: "/tf"},
			want: []string{"init", "-reconfigure"},
		},
		{
			name: "backend config sorted by key",
			cmd: Init{WorkDir: "/tf", BackendConfig: map[string]string{
				"key2": "value2",
				"key1": "value1",
			}},
			want: []string{"init", "-reconfigure", "-backend-config=key1=value1", "-backend-config=key2=value2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.Args(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Args() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlanArgs(t *testing.T) {
	cmd := Plan{
		WorkDir: "/tf",
		Vars:    map[string]string{"b": "2", "a": "1"},
		Out:     "/tmp/plan.out",
	}
	want := []string{"plan", "-var=a=1", "-var=b=2", "-out", "/tmp/plan.out"}
	if got := cmd.Args(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Args() = %v, want %v", got, want)
	}

	bare := Plan{WorkDir: "/tf"}
	if got := bare.Args(); !reflect.DeepEqual(got, []string{"plan"}) {
		t.Fatalf("bare Args() = %v", got)
	}
}

func TestPlanArgsDeterministic(t *testing.T) {
	cmd := Plan{WorkDir: "/tf", Vars: map[string]string{
		"region": "eu-west-1", "env": "prod", "az": "a",
	}}
	first := cmd.Args()
	for i := 0; i < 20; i++ {
		if got := cmd.Args(); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: Args() = %v, want %v", i, got, first)
		}
	}
}

func TestApplyArgs(t *testing.T) {
	tests := []struct {
		name string
		cmd  Apply
		want []string
	}{
		{"bare", Apply{WorkDir: "/tf"}, []string{"apply"}},
		{"auto approve", Apply{WorkDir: "/tf", AutoApprove: true}, []string{"apply", "-auto-approve"}},
		{"plan file", Apply{WorkDir: "/tf", PlanFile: "p.out"}, []string{"apply", "p.out"}},
		{"both", Apply{WorkDir: "/tf", PlanFile: "p.out", AutoApprove: true}, []string{"apply", "-auto-approve", "p.out"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.Args(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Args() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWorkspaceArgs(t *testing.T) {
	tests := []struct {
		name string
		cmd  Workspace
		want []string
	}{
		{"list", Workspace{WorkDir: "/tf", Op: WorkspaceList}, []string{"workspace", "list"}},
		{"new", Workspace{WorkDir: "/tf", Op: WorkspaceNew, Name: "stage"}, []string{"workspace", "new", "stage"}},
		{"select", Workspace{WorkDir: "/tf", Op: WorkspaceSelect, Name: "stage"}, []string{"workspace", "select", "stage"}},
		{"delete", Workspace{WorkDir: "/tf", Op: WorkspaceDelete, Name: "old"}, []string{"workspace", "delete", "old"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.Args(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Args() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChainBuilderPlanChain(t *testing.T) {
	b := NewChainBuilder("/tf").
		WithVars(map[string]string{"env": "prod"}).
		WithWorkspace("prod").
		WithOut("plan.out")
	cmds := b.PlanChain()
	if len(cmds) != 4 {
		t.Fatalf("chain length = %d, want 4", len(cmds))
	}
	if _, ok := cmds[0].(Init); !ok {
		t.Fatalf("step 0 = %T, want Init", cmds[0])
	}
	ws, ok := cmds[1].(Workspace)
	if !ok || ws.Op != WorkspaceNew || ws.Name != "prod" {
		t.Fatalf("step 1 = %#v, want workspace new prod", cmds[1])
	}
	ws, ok = cmds[2].(Workspace)
	if !ok || ws.Op != WorkspaceSelect {
		t.Fatalf("step 2 = %#v, want workspace select", cmds[2])
	}
	plan, ok := cmds[3].(Plan)
	if !ok || plan.Out != "plan.out" {
		t.Fatalf("step 3 = %#v, want plan with out file", cmds[3])
	}
}

func TestChainBuilderApplyChainWithoutWorkspace(t *testing.T) {
	cmds := NewChainBuilder("/tf").WithAutoApprove(true).ApplyChain()
	if len(cmds) != 2 {
		t.Fatalf("chain length = %d, want 2", len(cmds))
	}
	apply, ok := cmds[1].(Apply)
	if !ok || !apply.AutoApprove {
		t.Fatalf("step 1 = %#v, want auto-approve apply", cmds[1])
	}
}

func TestCollectVars(t *testing.T) {
	environ := []string{
		"TF_VAR_region=us-west-2",
		"TF_VAR_instance_type=t2.micro",
		"NOT_TF_VAR=skip",
		"PATH=/usr/bin",
	}
	vars := collectVars(environ)
	if len(vars) != 2 {
		t.Fatalf("vars = %v, want 2 entries", vars)
	}
	if vars["TF_VAR_region"] != "us-west-2" {
		t.Fatalf("region = %q", vars["TF_VAR_region"])
	}
	vals := VarValues(vars)
	want := []string{"t2.micro", "us-west-2"}
	if !reflect.DeepEqual(vals, want) {
		t.Fatalf("VarValues = %v, want %v", vals, want)
	}
}
