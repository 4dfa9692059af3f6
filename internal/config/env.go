package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variable names recognized as configuration overrides.
// Each one beats the corresponding config file field.
const (
	EnvMask       = "ACTION_MASK"
	EnvWorkingDir = "ACTION_WORKING_DIR"
	EnvTimeout    = "ACTION_TIMEOUT"
	EnvLogFile    = "ACTION_LOG_FILE"
	EnvLogLevel   = "ACTION_LOG_LEVEL"

	EnvTerraformBin         = "ACTION_TERRAFORM_BIN"
	EnvTerraformWorkspace   = "ACTION_TERRAFORM_WORKSPACE"
	EnvTerraformOutput      = "ACTION_TERRAFORM_OUTPUT"
	EnvTerraformAutoApprove = "ACTION_TERRAFORM_AUTO_APPROVE"

	EnvAWSBin                 = "ACTION_AWS_BIN"
	EnvS3Destination          = "ACTION_AWS_S3_DESTINATION"
	EnvS3Exclude              = "ACTION_AWS_S3_EXCLUDE"
	EnvS3Include              = "ACTION_AWS_S3_INCLUDE"
	EnvS3Delete               = "ACTION_AWS_S3_DELETE"
	EnvS3DryRun               = "ACTION_AWS_S3_DRY_RUN"
	EnvS3Force                = "ACTION_AWS_S3_FORCE"
	EnvCloudFrontDistribution = "ACTION_AWS_CLOUDFRONT_DISTRIBUTION"
	EnvCloudFrontPaths        = "ACTION_AWS_CLOUDFRONT_PATHS"
	EnvLambdaFunction         = "ACTION_AWS_LAMBDA_FUNCTION"
	EnvLambdaZip              = "ACTION_AWS_LAMBDA_ZIP"
	EnvLambdaImage            = "ACTION_AWS_LAMBDA_IMAGE"
	EnvLambdaPublish          = "ACTION_AWS_LAMBDA_PUBLISH"
)

// ApplyEnv overrides cfg fields from ACTION_* process environment
// variables. Unset variables leave the field untouched.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	setList := func(key string, dst *[]string) {
		if v, ok := lookup(key); ok {
			*dst = splitList(v)
		}
	}

	setString(EnvMask, &cfg.Mask)
	setString(EnvWorkingDir, &cfg.WorkingDir)
	setString(EnvLogFile, &cfg.Log.File)
	setString(EnvLogLevel, &cfg.Log.Level)

	setString(EnvTerraformBin, &cfg.Terraform.Bin)
	setString(EnvTerraformWorkspace, &cfg.Terraform.Workspace)
	setString(EnvTerraformOutput, &cfg.Terraform.Output)

	setString(EnvAWSBin, &cfg.S3.Bin)
	setString(EnvS3Destination, &cfg.S3.Destination)
	setList(EnvS3Exclude, &cfg.S3.Exclude)
	setList(EnvS3Include, &cfg.S3.Include)

	setString(EnvCloudFrontDistribution, &cfg.CloudFront.Distribution)
	setList(EnvCloudFrontPaths, &cfg.CloudFront.Paths)

	setString(EnvLambdaFunction, &cfg.Lambda.Function)
	setString(EnvLambdaZip, &cfg.Lambda.Zip)
	setString(EnvLambdaImage, &cfg.Lambda.Image)

	if v, ok := lookup(EnvTimeout); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%s: invalid timeout %q", EnvTimeout, v)
		}
		cfg.TimeoutSec = n
	}

	boolVars := []struct {
		key string
		dst *bool
	}{
		{EnvTerraformAutoApprove, &cfg.Terraform.AutoApprove},
		{EnvS3Delete, &cfg.S3.Delete},
		{EnvS3DryRun, &cfg.S3.DryRun},
		{EnvS3Force, &cfg.S3.Force},
		{EnvLambdaPublish, &cfg.Lambda.Publish},
	}
	for _, bv := range boolVars {
		v, ok := lookup(bv.key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", bv.key, v)
		}
		*bv.dst = b
	}
	return nil
}

// splitList parses a comma-separated environment value into a slice,
// trimming whitespace and dropping empty entries.
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
