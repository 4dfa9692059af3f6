package config

import "fmt"

// ValidationError describes an invalid configuration field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config field %s: %s", e.Field, e.Reason)
}

var validLevels = map[string]bool{
	"": true, "debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks cross-field consistency after defaults and environment
// overrides are applied. Action-specific required fields are checked by
// the command that needs them, not here.
func Validate(cfg *Config) error {
	if cfg.Mask == "" {
		return &ValidationError{Field: "mask", Reason: "must not be empty"}
	}
	if cfg.TimeoutSec < 0 {
		return &ValidationError{Field: "timeout", Reason: "must not be negative"}
	}
	if !validLevels[cfg.Log.Level] {
		return &ValidationError{
			Field:  "log.level",
			Reason: fmt.Sprintf("unknown level %q", cfg.Log.Level),
		}
	}
	if cfg.Lambda.Image != "" && cfg.Lambda.Zip != "" {
		return &ValidationError{
			Field:  "lambda",
			Reason: "image and zip are mutually exclusive",
		}
	}
	return nil
}
