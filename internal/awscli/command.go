// Package awscli builds aws CLI invocations for the supported service
// operations and runs them through the masking subprocess runner.
package awscli

import "fmt"

// Command is one aws invocation: its arguments after the binary name
// and the directory it runs in.
type Command interface {
	Args() []string
	Dir() string
}

// S3Sync synchronizes a local directory with an S3 bucket.
type S3Sync struct {
	Source      string
	Destination string
	Exclude     []string
	Include     []string
	Delete      bool
	DryRun      bool
	Force       bool
}

func (c S3Sync) Args() []string {
	args := []string{"s3", "sync", c.Source, c.Destination}
	for _, p := range c.Exclude {
		args = append(args, fmt.Sprintf("--exclude=%s", p))
	}
	for _, p := range c.Include {
		args = append(args, fmt.Sprintf("--include=%s", p))
	}
	if c.Delete {
		args = append(args, "--delete")
	}
	if c.DryRun {
		args = append(args, "--dryrun")
	}
	if c.Force {
		args = append(args, "--force")
	}
	return args
}

func (c S3Sync) Dir() string { return c.Source }

// CloudFrontInvalidate invalidates cached paths on a distribution.
type CloudFrontInvalidate struct {
	Distribution string
	Paths        []string
	WorkDir      string
}

func (c CloudFrontInvalidate) Args() []string {
	args := []string{
		"cloudfront", "create-invalidation",
		"--distribution-id", c.Distribution,
		"--paths",
	}
	return append(args, c.Paths...)
}

func (c CloudFrontInvalidate) Dir() string { return c.WorkDir }

// LambdaUpdate deploys new function code from a container image or a
// zip archive. Exactly one of Image and Zip is set; the config layer
// rejects anything else.
type LambdaUpdate struct {
	Function string
	Image    string
	Zip      string
	Publish  bool
	WorkDir  string
}

func (c LambdaUpdate) Args() []string {
	args := []string{
		"lambda", "update-function-code",
		"--function-name", c.Function,
	}
	if c.Image != "" {
		args = append(args, "--image-uri", c.Image)
	} else if c.Zip != "" {
		args = append(args, "--zip-file", fmt.Sprintf("fileb://%s", c.Zip))
	}
	if c.Publish {
		args = append(args, "--publish")
	}
	return args
}

func (c LambdaUpdate) Dir() string { return c.WorkDir }
