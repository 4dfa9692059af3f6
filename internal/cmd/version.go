package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Mad-Pixels/ci-actions/internal/term"
	"github.com/Mad-Pixels/ci-actions/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the actions version",
	Run: func(cmd *cobra.Command, args []string) {
		term.Println("actions", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
