// Package provider supplies cloud-provider credentials and the mask
// material derived from them: the literal secret values to hide and the
// resource-identifier patterns that must never reach plain output.
package provider

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Provider exposes a cloud provider's environment, its sensitive values,
// and its predefined mask patterns.
type Provider interface {
	// Name returns the provider's short name, e.g. "aws".
	Name() string
	// Environment returns every provider-scoped environment variable.
	Environment() map[string]string
	// Sensitive returns the variables whose values must be masked.
	Sensitive() map[string]string
	// MaskPatterns returns regex patterns matching resource identifiers
	// that must be masked in output.
	MaskPatterns() []string
	// Validate checks that the required credentials are present.
	Validate() error
}

// MissingVarError reports a required credential variable that is absent.
type MissingVarError struct {
	Name string
}

func (e *MissingVarError) Error() string {
	return fmt.Sprintf("missing required environment variable %s", e.Name)
}

// awsRequiredVars are the credentials the aws and terraform binaries need.
var awsRequiredVars = []string{
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
}

// AWS holds AWS-scoped environment variables.
type AWS struct {
	environment map[string]string
}

// NewAWS creates an AWS provider over the given variables.
func NewAWS(environment map[string]string) *AWS {
	if environment == nil {
		environment = map[string]string{}
	}
	return &AWS{environment: environment}
}

// AWSFromEnv collects every AWS_-prefixed variable from the process
// environment.
func AWSFromEnv() *AWS {
	env := map[string]string{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, "AWS_") {
			continue
		}
		env[k] = v
	}
	return NewAWS(env)
}

func (a *AWS) Name() string { return "aws" }

// Environment returns a copy of the provider's variables.
func (a *AWS) Environment() map[string]string {
	out := make(map[string]string, len(a.environment))
	for k, v := range a.environment {
		out[k] = v
	}
	return out
}

// Sensitive returns the variables whose values must be masked. Every
// AWS-scoped value is treated as sensitive.
func (a *AWS) Sensitive() map[string]string {
	return a.Environment()
}

// SensitiveValues returns the sensitive values in deterministic order,
// ready to feed the masking pipeline.
func (a *AWS) SensitiveValues() []string {
	keys := make([]string, 0, len(a.environment))
	for k := range a.environment {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	vals := make([]string, 0, len(keys))
	for _, k := range keys {
		vals = append(vals, a.environment[k])
	}
	return vals
}

// MaskPatterns returns the AWS resource-identifier patterns.
func (a *AWS) MaskPatterns() []string {
	out := make([]string, len(awsMaskPatterns))
	copy(out, awsMaskPatterns)
	return out
}

// Validate checks that the required credential variables are present.
func (a *AWS) Validate() error {
	for _, name := range awsRequiredVars {
		if _, ok := a.environment[name]; !ok {
			return &MissingVarError{Name: name}
		}
	}
	return nil
}
