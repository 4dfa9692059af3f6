package runner

import (
	"fmt"
	"os"
	"strings"
)

// Rule is one pre-spawn acceptance check over a Request.
type Rule interface {
	// Name identifies the rule in validation errors.
	Name() string
	// Priority orders evaluation; lower runs first.
	Priority() int
	// Validate returns a non-empty reason when the request is rejected.
	Validate(req Request) error
}

// defaultForbiddenChars are shell metacharacters rejected in command
// tokens to defend against injection when tokens are passed onward.
const defaultForbiddenChars = "&|;`\\"

// CommandRule rejects empty token lists and tokens containing forbidden
// characters. A token immediately following "-c" is exempt, since shell
// run-string arguments legitimately contain metacharacters.
type CommandRule struct {
	forbidden string
}

// NewCommandRule creates a CommandRule with the default forbidden set.
func NewCommandRule() *CommandRule {
	return &CommandRule{forbidden: defaultForbiddenChars}
}

// NewCommandRuleWithChars creates a CommandRule with a custom forbidden set.
func NewCommandRuleWithChars(chars string) *CommandRule {
	return &CommandRule{forbidden: chars}
}

// Name implements Rule.
func (r *CommandRule) Name() string { return "command" }

// Priority implements Rule.
func (r *CommandRule) Priority() int { return 0 }

// Validate implements Rule.
func (r *CommandRule) Validate(req Request) error {
	if len(req.Command) == 0 {
		return fmt.Errorf("empty command sequence")
	}
	for i, tok := range req.Command {
		if i > 0 && req.Command[i-1] == "-c" {
			continue
		}
		if strings.ContainsAny(tok, r.forbidden) {
			return fmt.Errorf("argument %q contains forbidden characters", tok)
		}
	}
	return nil
}

// EnvRule rejects environment overrides with blank names or values.
// A blank value is a configuration smell, not something to drop silently.
type EnvRule struct{}

// NewEnvRule creates an EnvRule.
func NewEnvRule() *EnvRule { return &EnvRule{} }

// Name implements Rule.
func (r *EnvRule) Name() string { return "environment" }

// Priority implements Rule.
func (r *EnvRule) Priority() int { return 2 }

// Validate implements Rule.
func (r *EnvRule) Validate(req Request) error {
	for key, value := range req.Env {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("environment variable name cannot be blank")
		}
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("environment variable %q has blank value", key)
		}
	}
	return nil
}

// PathRule rejects a working directory that does not exist or is not a
// directory. An unset working directory is fine.
type PathRule struct{}

// NewPathRule creates a PathRule.
func NewPathRule() *PathRule { return &PathRule{} }

// Name implements Rule.
func (r *PathRule) Name() string { return "path" }

// Priority implements Rule.
func (r *PathRule) Priority() int { return 2 }

// Validate implements Rule.
func (r *PathRule) Validate(req Request) error {
	if req.Dir == "" {
		return nil
	}
	info, err := os.Stat(req.Dir)
	if err != nil {
		return fmt.Errorf("working directory does not exist: %s", req.Dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", req.Dir)
	}
	return nil
}
