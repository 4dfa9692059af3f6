package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Mad-Pixels/ci-actions/internal/alog"
	"github.com/Mad-Pixels/ci-actions/internal/pathutil"
)

// Load reads the configuration from path, or from the default location
// when path is empty. A missing file is not an error: defaults plus
// environment overrides apply. The precedence is defaults < file < env.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = Path()
	}
	alog.Debug("loading config from %s", path)

	var cfg *Config
	data, err := os.ReadFile(pathutil.ExpandHome(path))
	switch {
	case err == nil:
		cfg, err = Parse(data)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// An explicitly named file must exist; the default location is
		// optional.
		if explicit {
			return nil, fmt.Errorf("load config: %w", err)
		}
		alog.Debug("config file not found, using defaults")
		cfg = &Config{}
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	expandPaths(cfg)
	return cfg, nil
}

// expandPaths expands ~ to the home directory in all path fields.
func expandPaths(cfg *Config) {
	cfg.WorkingDir = pathutil.ExpandHome(cfg.WorkingDir)
	cfg.Log.File = pathutil.ExpandHome(cfg.Log.File)
	cfg.Terraform.Bin = pathutil.ExpandHome(cfg.Terraform.Bin)
	cfg.Terraform.Output = pathutil.ExpandHome(cfg.Terraform.Output)
	cfg.S3.Bin = pathutil.ExpandHome(cfg.S3.Bin)
	cfg.Lambda.Zip = pathutil.ExpandHome(cfg.Lambda.Zip)
}
