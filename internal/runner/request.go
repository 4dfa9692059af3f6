// Package runner validates and executes child processes, streaming their
// output line by line through a redacting router.
package runner

import "time"

// Request describes one child-process invocation. It is read-only once
// handed to a Runner.
type Request struct {
	// Command is the token list; token 0 is the executable.
	Command []string
	// Env holds environment overrides merged over the parent environment.
	Env map[string]string
	// Dir is the working directory; empty means inherit.
	Dir string
	// Timeout limits the whole execution; zero means no limit.
	Timeout time.Duration
}
