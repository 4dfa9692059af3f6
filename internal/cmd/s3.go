package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mad-Pixels/ci-actions/internal/awscli"
)

var s3Cmd = &cobra.Command{
	Use:   "s3",
	Short: "Run aws s3 commands",
}

var (
	s3FlagDestination string
	s3FlagExclude     []string
	s3FlagInclude     []string
	s3FlagDelete      bool
	s3FlagDryRun      bool
	s3FlagForce       bool
)

var s3SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the working directory with an S3 bucket",
	RunE:  runS3Sync,
}

func init() {
	f := s3SyncCmd.Flags()
	f.StringVar(&s3FlagDestination, "destination", "", "destination bucket, e.g. s3://my-bucket")
	f.StringSliceVar(&s3FlagExclude, "exclude", nil, "patterns to exclude")
	f.StringSliceVar(&s3FlagInclude, "include", nil, "patterns to include")
	f.BoolVar(&s3FlagDelete, "delete", false, "delete destination files missing from the source")
	f.BoolVar(&s3FlagDryRun, "dry-run", false, "show what would be synchronized without doing it")
	f.BoolVar(&s3FlagForce, "force", false, "force synchronization")

	s3Cmd.AddCommand(s3SyncCmd)
	rootCmd.AddCommand(s3Cmd)
}

func runS3Sync(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	s3c := cfg.S3
	if cmd.Flags().Changed("destination") {
		s3c.Destination = s3FlagDestination
	}
	if cmd.Flags().Changed("exclude") {
		s3c.Exclude = s3FlagExclude
	}
	if cmd.Flags().Changed("include") {
		s3c.Include = s3FlagInclude
	}
	if cmd.Flags().Changed("delete") {
		s3c.Delete = s3FlagDelete
	}
	if cmd.Flags().Changed("dry-run") {
		s3c.DryRun = s3FlagDryRun
	}
	if cmd.Flags().Changed("force") {
		s3c.Force = s3FlagForce
	}
	if s3c.Destination == "" {
		return fmt.Errorf("s3 sync requires a destination; set s3.destination or --destination")
	}

	sync := awscli.S3Sync{
		Source:      rt.workingDir(),
		Destination: s3c.Destination,
		Exclude:     s3c.Exclude,
		Include:     s3c.Include,
		Delete:      s3c.Delete,
		DryRun:      s3c.DryRun,
		Force:       s3c.Force,
	}
	return runAWSChain(cmd, rt, "s3 sync", s3c.Bin, []awscli.Command{sync})
}

func runAWSChain(cmd *cobra.Command, rt *runtime, action, bin string, chainCmds []awscli.Command) error {
	argsList := make([][]string, 0, len(chainCmds))
	for _, c := range chainCmds {
		argsList = append(argsList, c.Args())
	}
	runID := rt.startRun(action, bin, argsList)

	ex := awscli.NewExecutor(rt.runner, bin, awscli.CollectVars(), rt.timeout())
	start := time.Now()
	code, err := ex.ExecuteChain(cmd.Context(), chainCmds)
	return rt.finishRun(runID, action, start, code, err)
}
