package config

// Default values applied where the config file and environment are silent.
const (
	// DefaultMask replaces every masked value in output.
	DefaultMask = "*****"

	// DefaultTerraformBin is the expected terraform binary location in
	// the runner image.
	DefaultTerraformBin = "/usr/local/bin/terraform"

	// DefaultAWSBin is the expected aws binary location in the runner image.
	DefaultAWSBin = "/usr/local/bin/aws"

	// DefaultTerraformOutput is where the plan file is written.
	DefaultTerraformOutput = "./tf_output_file"

	// DefaultLogLevel is used when the config file sets no level.
	DefaultLogLevel = "info"
)

// DefaultCloudFrontPaths invalidates the whole distribution.
func DefaultCloudFrontPaths() []string {
	return []string{"/*"}
}

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Mask: DefaultMask,
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Terraform: TerraformConfig{
			Bin:    DefaultTerraformBin,
			Output: DefaultTerraformOutput,
		},
		S3: S3Config{
			Bin: DefaultAWSBin,
		},
		CloudFront: CloudFrontConfig{
			Paths: DefaultCloudFrontPaths(),
		},
	}
}

// applyDefaults fills empty fields in cfg from the defaults.
func applyDefaults(cfg *Config) {
	if cfg.Mask == "" {
		cfg.Mask = DefaultMask
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Terraform.Bin == "" {
		cfg.Terraform.Bin = DefaultTerraformBin
	}
	if cfg.Terraform.Output == "" {
		cfg.Terraform.Output = DefaultTerraformOutput
	}
	if cfg.S3.Bin == "" {
		cfg.S3.Bin = DefaultAWSBin
	}
	if len(cfg.CloudFront.Paths) == 0 {
		cfg.CloudFront.Paths = DefaultCloudFrontPaths()
	}
}
