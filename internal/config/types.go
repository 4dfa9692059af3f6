// Package config provides configuration for action runs. Settings come
// from a YAML file, overridden by ACTION_* environment variables. These
// types map to the YAML configuration file.
package config

// Config represents the top-level configuration for the actions CLI.
// It is typically stored at ~/.config/ci-actions/config.yaml.
type Config struct {
	Mask       string           `yaml:"mask,omitempty"`
	WorkingDir string           `yaml:"working_dir,omitempty"`
	TimeoutSec int              `yaml:"timeout,omitempty"`
	Log        LogConfig        `yaml:"log,omitempty"`
	Terraform  TerraformConfig  `yaml:"terraform,omitempty"`
	S3         S3Config         `yaml:"s3,omitempty"`
	CloudFront CloudFrontConfig `yaml:"cloudfront,omitempty"`
	Lambda     LambdaConfig     `yaml:"lambda,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level,omitempty"`
}

// TerraformConfig contains settings for terraform actions.
type TerraformConfig struct {
	Bin           string            `yaml:"bin,omitempty"`
	Workspace     string            `yaml:"workspace,omitempty"`
	Output        string            `yaml:"output,omitempty"`
	BackendConfig map[string]string `yaml:"backend_config,omitempty"`
	Vars          map[string]string `yaml:"vars,omitempty"`
	AutoApprove   bool              `yaml:"auto_approve,omitempty"`
}

// S3Config contains settings for the s3 sync action.
type S3Config struct {
	Bin         string   `yaml:"bin,omitempty"`
	Destination string   `yaml:"destination,omitempty"`
	Exclude     []string `yaml:"exclude,omitempty"`
	Include     []string `yaml:"include,omitempty"`
	Delete      bool     `yaml:"delete,omitempty"`
	DryRun      bool     `yaml:"dry_run,omitempty"`
	Force       bool     `yaml:"force,omitempty"`
}

// CloudFrontConfig contains settings for the cloudfront invalidate action.
type CloudFrontConfig struct {
	Distribution string   `yaml:"distribution,omitempty"`
	Paths        []string `yaml:"paths,omitempty"`
}

// LambdaConfig contains settings for the lambda update action.
// Image and Zip are mutually exclusive.
type LambdaConfig struct {
	Function string `yaml:"function,omitempty"`
	Image    string `yaml:"image,omitempty"`
	Zip      string `yaml:"zip,omitempty"`
	Publish  bool   `yaml:"publish,omitempty"`
}
