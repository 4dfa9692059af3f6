package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mad-Pixels/ci-actions/internal/awscli"
)

var cloudfrontCmd = &cobra.Command{
	Use:   "cloudfront",
	Short: "Run aws cloudfront commands",
}

var (
	cfFlagDistribution string
	cfFlagPaths        []string
)

var cloudfrontInvalidateCmd = &cobra.Command{
	Use:   "invalidate",
	Short: "Invalidate cached paths on a CloudFront distribution",
	RunE:  runCloudFrontInvalidate,
}

func init() {
	f := cloudfrontInvalidateCmd.Flags()
	f.StringVar(&cfFlagDistribution, "distribution", "", "distribution ID to invalidate")
	f.StringSliceVar(&cfFlagPaths, "paths", nil, "paths to invalidate (default /*)")

	cloudfrontCmd.AddCommand(cloudfrontInvalidateCmd)
	rootCmd.AddCommand(cloudfrontCmd)
}

func runCloudFrontInvalidate(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	cfc := cfg.CloudFront
	if cmd.Flags().Changed("distribution") {
		cfc.Distribution = cfFlagDistribution
	}
	if cmd.Flags().Changed("paths") {
		cfc.Paths = cfFlagPaths
	}
	if cfc.Distribution == "" {
		return fmt.Errorf("cloudfront invalidate requires a distribution; set cloudfront.distribution or --distribution")
	}

	inv := awscli.CloudFrontInvalidate{
		Distribution: cfc.Distribution,
		Paths:        cfc.Paths,
		WorkDir:      rt.workingDir(),
	}
	return runAWSChain(cmd, rt, "cloudfront invalidate", cfg.S3.Bin, []awscli.Command{inv})
}
