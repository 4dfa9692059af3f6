// Package version provides version information for the actions CLI.
// The Version variable is set at build time via ldflags.
package version

// Version is the current version of the actions CLI.
// Set at build time via: -ldflags "-X github.com/Mad-Pixels/ci-actions/internal/version.Version=v1.0.0"
// Defaults to "dev" for development builds.
var Version = "dev"
