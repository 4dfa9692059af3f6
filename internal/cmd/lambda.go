package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mad-Pixels/ci-actions/internal/awscli"
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Run aws lambda commands",
}

var (
	lambdaFlagFunction string
	lambdaFlagImage    string
	lambdaFlagZip      string
	lambdaFlagPublish  bool
)

var lambdaUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Deploy new function code from an image or a zip archive",
	RunE:  runLambdaUpdate,
}

func init() {
	f := lambdaUpdateCmd.Flags()
	f.StringVar(&lambdaFlagFunction, "function", "", "function name to update")
	f.StringVar(&lambdaFlagImage, "image", "", "container image URI")
	f.StringVar(&lambdaFlagZip, "zip", "", "path to a zip archive")
	f.BoolVar(&lambdaFlagPublish, "publish", false, "publish a new version after updating")

	lambdaCmd.AddCommand(lambdaUpdateCmd)
	rootCmd.AddCommand(lambdaCmd)
}

func runLambdaUpdate(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	lc := cfg.Lambda
	if cmd.Flags().Changed("function") {
		lc.Function = lambdaFlagFunction
	}
	if cmd.Flags().Changed("image") {
		lc.Image = lambdaFlagImage
	}
	if cmd.Flags().Changed("zip") {
		lc.Zip = lambdaFlagZip
	}
	if cmd.Flags().Changed("publish") {
		lc.Publish = lambdaFlagPublish
	}

	if lc.Function == "" {
		return fmt.Errorf("lambda update requires a function name; set lambda.function or --function")
	}
	if lc.Image == "" && lc.Zip == "" {
		return fmt.Errorf("lambda update requires --image or --zip")
	}
	if lc.Image != "" && lc.Zip != "" {
		return fmt.Errorf("lambda update accepts --image or --zip, not both")
	}

	upd := awscli.LambdaUpdate{
		Function: lc.Function,
		Image:    lc.Image,
		Zip:      lc.Zip,
		Publish:  lc.Publish,
		WorkDir:  rt.workingDir(),
	}
	return runAWSChain(cmd, rt, "lambda update", cfg.S3.Bin, []awscli.Command{upd})
}
