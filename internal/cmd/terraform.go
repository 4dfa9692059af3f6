package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mad-Pixels/ci-actions/internal/prompt"
	"github.com/Mad-Pixels/ci-actions/internal/term"
	"github.com/Mad-Pixels/ci-actions/internal/terraform"
)

var terraformCmd = &cobra.Command{
	Use:   "terraform",
	Short: "Run terraform command chains",
}

var (
	tfFlagWorkspace   string
	tfFlagOut         string
	tfFlagPlanFile    string
	tfFlagAutoApprove bool
)

var terraformPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Init the working directory and create an execution plan",
	Long: `Runs terraform init -reconfigure, optionally creates and selects a
workspace, then runs terraform plan. Variables and backend configuration
come from the config file; TF_VAR_ environment variables pass through to
terraform and their values are masked in output.`,
	RunE: runTerraformPlan,
}

var terraformApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Init the working directory and apply changes",
	Long: `Runs terraform init -reconfigure, optionally creates and selects a
workspace, then runs terraform apply. Without a plan file or
--auto-approve, an interactive confirmation is required: the wrapped
terraform runs with closed stdin and cannot prompt by itself.`,
	RunE: runTerraformApply,
}

// applyConfirmer is swapped out in tests.
var applyConfirmer prompt.Confirmer = prompt.NewTerminalConfirmer(os.Stdin, os.Stderr)

func init() {
	terraformPlanCmd.Flags().StringVar(&tfFlagWorkspace, "workspace", "", "terraform workspace to create and select")
	terraformPlanCmd.Flags().StringVar(&tfFlagOut, "out", "", "path for the generated plan file")

	terraformApplyCmd.Flags().StringVar(&tfFlagWorkspace, "workspace", "", "terraform workspace to create and select")
	terraformApplyCmd.Flags().StringVar(&tfFlagPlanFile, "plan-file", "", "plan file to apply")
	terraformApplyCmd.Flags().BoolVar(&tfFlagAutoApprove, "auto-approve", false, "apply without interactive confirmation")

	terraformCmd.AddCommand(terraformPlanCmd)
	terraformCmd.AddCommand(terraformApplyCmd)
	rootCmd.AddCommand(terraformCmd)
}

func runTerraformPlan(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	tfc := cfg.Terraform
	if cmd.Flags().Changed("workspace") {
		tfc.Workspace = tfFlagWorkspace
	}
	if cmd.Flags().Changed("out") {
		tfc.Output = tfFlagOut
	}

	chainCmds := terraform.NewChainBuilder(rt.workingDir()).
		WithVars(tfc.Vars).
		WithBackendConfig(tfc.BackendConfig).
		WithWorkspace(tfc.Workspace).
		WithOut(tfc.Output).
		PlanChain()

	return runTerraformChain(cmd, rt, "terraform plan", tfc.Bin, chainCmds)
}

func runTerraformApply(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	tfc := cfg.Terraform
	if cmd.Flags().Changed("workspace") {
		tfc.Workspace = tfFlagWorkspace
	}
	if cmd.Flags().Changed("auto-approve") {
		tfc.AutoApprove = tfFlagAutoApprove
	}
	planFile := tfc.Output
	if cmd.Flags().Changed("plan-file") {
		planFile = tfFlagPlanFile
	}

	// A saved plan applies exactly what plan produced; everything else
	// needs either --auto-approve or an interactive yes.
	if planFile == "" && !tfc.AutoApprove {
		ok, err := applyConfirmer.Confirm("Apply the terraform changes?")
		if err != nil {
			if errors.Is(err, prompt.ErrNotATerminal) {
				return fmt.Errorf("stdin is not a terminal; use --auto-approve or a plan file")
			}
			return fmt.Errorf("confirm apply: %w", err)
		}
		if !ok {
			term.Println("Apply cancelled.")
			return nil
		}
		tfc.AutoApprove = true
	}

	chainCmds := terraform.NewChainBuilder(rt.workingDir()).
		WithBackendConfig(tfc.BackendConfig).
		WithWorkspace(tfc.Workspace).
		WithOut(planFile).
		WithAutoApprove(tfc.AutoApprove).
		ApplyChain()

	return runTerraformChain(cmd, rt, "terraform apply", tfc.Bin, chainCmds)
}

func runTerraformChain(cmd *cobra.Command, rt *runtime, action, bin string, chainCmds []terraform.Command) error {
	argsList := make([][]string, 0, len(chainCmds))
	for _, c := range chainCmds {
		argsList = append(argsList, c.Args())
	}
	runID := rt.startRun(action, bin, argsList)

	ex := terraform.NewExecutor(rt.runner, bin, terraform.CollectVars(), rt.timeout())
	start := time.Now()
	code, err := ex.ExecuteChain(cmd.Context(), chainCmds)
	return rt.finishRun(runID, action, start, code, err)
}
