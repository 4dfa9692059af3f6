package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestCommandRule(t *testing.T) {
	rule := NewCommandRule()

	tests := []struct {
		name    string
		command []string
		wantErr bool
	}{
		{"empty command", nil, true},
		{"valid command", []string{"ls", "-l"}, false},
		{"ampersand", []string{"ls", "&"}, true},
		{"pipe", []string{"ls", "|", "wc"}, true},
		{"semicolon", []string{"echo", "a;b"}, true},
		{"backtick", []string{"echo", "`id`"}, true},
		{"backslash", []string{"echo", `a\b`}, true},
		{"shell run string exempt", []string{"sh", "-c", "echo $HOME | wc -c"}, false},
		{"metachar after non -c token", []string{"sh", "-x", "a|b"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(Request{Command: tt.command})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%v) error = %v, wantErr %v", tt.command, err, tt.wantErr)
			}
		})
	}
}

func TestCommandRuleCustomChars(t *testing.T) {
	rule := NewCommandRuleWithChars("$")

	if err := rule.Validate(Request{Command: []string{"echo", "a|b"}}); err != nil {
		t.Errorf("pipe should be allowed with custom set: %v", err)
	}
	if err := rule.Validate(Request{Command: []string{"echo", "$HOME"}}); err == nil {
		t.Error("dollar should be rejected with custom set")
	}
}

func TestEnvRule(t *testing.T) {
	rule := NewEnvRule()

	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{"valid env", map[string]string{"KEY": "value"}, false},
		{"empty env", nil, false},
		{"blank key", map[string]string{" ": "value"}, true},
		{"blank value", map[string]string{"KEY": "  "}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(Request{Command: []string{"test"}, Env: tt.env})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPathRule(t *testing.T) {
	rule := NewPathRule()

	if err := rule.Validate(Request{Command: []string{"test"}}); err != nil {
		t.Errorf("unset dir should pass: %v", err)
	}
	if err := rule.Validate(Request{Command: []string{"test"}, Dir: t.TempDir()}); err != nil {
		t.Errorf("existing dir should pass: %v", err)
	}
	if err := rule.Validate(Request{Command: []string{"test"}, Dir: "/nonexistent/path"}); err == nil {
		t.Error("missing dir should fail")
	}

	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := rule.Validate(Request{Command: []string{"test"}, Dir: file}); err == nil {
		t.Error("regular file should fail the directory check")
	}
}

// stubRule is a rule with fixed name, priority, and outcome, recording
// its evaluation order.
type stubRule struct {
	name     string
	priority int
	fail     bool
	order    *[]string
}

func (s *stubRule) Name() string  { return s.name }
func (s *stubRule) Priority() int { return s.priority }
func (s *stubRule) Validate(Request) error {
	*s.order = append(*s.order, s.name)
	if s.fail {
		return fmt.Errorf("%s says no", s.name)
	}
	return nil
}

func TestValidatorPriorityOrder(t *testing.T) {
	var order []string
	v := NewValidator(
		&stubRule{name: "late", priority: 5, order: &order},
		&stubRule{name: "early", priority: 0, order: &order},
		&stubRule{name: "middle", priority: 2, order: &order},
	)

	if err := v.Validate(Request{Command: []string{"x"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"early", "middle", "late"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("evaluation order %v, want %v", order, want)
		}
	}
}

func TestValidatorFailFast(t *testing.T) {
	var order []string
	v := NewValidator(
		&stubRule{name: "first", priority: 0, fail: true, order: &order},
		&stubRule{name: "second", priority: 1, order: &order},
	)

	err := v.Validate(Request{Command: []string{"x"}})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Rule != "first" {
		t.Errorf("failing rule = %q, want %q", verr.Rule, "first")
	}
	if len(order) != 1 {
		t.Errorf("later rules must not run after a failure, ran %v", order)
	}
}

func TestStandardValidator(t *testing.T) {
	v := StandardValidator()

	if err := v.Validate(Request{Command: []string{"echo", "ok"}}); err != nil {
		t.Errorf("plain command should pass: %v", err)
	}
	if err := v.Validate(Request{}); err == nil {
		t.Error("empty request should fail the command rule")
	}
}
