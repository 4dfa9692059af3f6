// Package cmd implements the CLI commands for actions.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Mad-Pixels/ci-actions/internal/alog"
	"github.com/Mad-Pixels/ci-actions/internal/config"
	"github.com/Mad-Pixels/ci-actions/internal/term"
	"github.com/Mad-Pixels/ci-actions/internal/version"
)

var (
	flagConfig string
	flagDebug  bool
	flagSilent bool
	flagMask   string
	flagChdir  string

	// cfg is loaded by the root PersistentPreRunE before any subcommand runs.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "actions",
	Short: "Run deployment commands with masked output",
	Long: `Actions wraps the terraform and aws CLIs for CI pipelines. Every line
the wrapped command prints passes through a masking pipeline before it
reaches stdout or stderr, so credentials, variable values, and cloud
resource identifiers never leak into build logs.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to config file (default: XDG config dir)")
	pf.BoolVar(&flagDebug, "debug", false, "enable debug logging")
	pf.BoolVar(&flagSilent, "silent", false, "suppress informational output")
	pf.StringVar(&flagMask, "mask", "", "replacement string for masked values")
	pf.StringVar(&flagChdir, "chdir", "", "working directory for the wrapped command")
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagMask != "" {
		c.Mask = flagMask
	}
	if flagChdir != "" {
		c.WorkingDir = flagChdir
	}

	logPath := c.Log.File
	if logPath == "" {
		logPath = alog.DefaultLogPath()
	}
	if err := alog.Configure(logPath, flagDebug); err != nil {
		// Logging must not block the action itself.
		term.Warn("log file unavailable: %v", err)
	}
	if !flagDebug {
		alog.SetLevel(alog.ParseLevel(c.Log.Level))
	}
	term.SetSilent(flagSilent)

	cfg = c
	return nil
}

// Execute runs the root command and returns any error.
func Execute() error {
	defer func() { _ = alog.Close() }()
	return rootCmd.Execute()
}
