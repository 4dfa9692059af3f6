package provider

import (
	"errors"
	"regexp"
	"testing"
)

func TestValidateRequiresCredentials(t *testing.T) {
	p := NewAWS(map[string]string{
		"AWS_ACCESS_KEY_ID": "key",
	})
	err := p.Validate()
	if err == nil {
		t.Fatal("expected missing-variable error, got nil")
	}
	var mv *MissingVarError
	if !errors.As(err, &mv) {
		t.Fatalf("error type = %T, want *MissingVarError", err)
	}
	if mv.Name != "AWS_SECRET_ACCESS_KEY" {
		t.Fatalf("missing var = %q, want AWS_SECRET_ACCESS_KEY", mv.Name)
	}

	p = NewAWS(map[string]string{
		"AWS_ACCESS_KEY_ID":     "key",
		"AWS_SECRET_ACCESS_KEY": "secret",
	})
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSensitiveIncludesAllVariables(t *testing.T) {
	p := NewAWS(map[string]string{
		"AWS_ACCESS_KEY_ID":     "key",
		"AWS_SECRET_ACCESS_KEY": "secret",
		"AWS_SESSION_TOKEN":     "token",
	})
	sens := p.Sensitive()
	if len(sens) != 3 {
		t.Fatalf("sensitive count = %d, want 3", len(sens))
	}
	if sens["AWS_SECRET_ACCESS_KEY"] != "secret" {
		t.Fatalf("secret value = %q", sens["AWS_SECRET_ACCESS_KEY"])
	}
}

func TestSensitiveValuesDeterministicOrder(t *testing.T) {
	p := NewAWS(map[string]string{
		"AWS_SECRET_ACCESS_KEY": "b-secret",
		"AWS_ACCESS_KEY_ID":     "a-key",
	})
	for i := 0; i < 10; i++ {
		vals := p.SensitiveValues()
		if len(vals) != 2 || vals[0] != "a-key" || vals[1] != "b-secret" {
			t.Fatalf("values = %v, want [a-key b-secret]", vals)
		}
	}
}

func TestEnvironmentReturnsCopy(t *testing.T) {
	p := NewAWS(map[string]string{"AWS_REGION": "eu-west-1"})
	env := p.Environment()
	env["AWS_REGION"] = "mutated"
	if p.Environment()["AWS_REGION"] != "eu-west-1" {
		t.Fatal("Environment must return a copy")
	}
}

func TestMaskPatternsCompileAndMatch(t *testing.T) {
	patterns := NewAWS(nil).MaskPatterns()
	if len(patterns) == 0 {
		t.Fatal("no mask patterns")
	}
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			t.Fatalf("pattern %q does not compile: %v", p, err)
		}
		compiled = append(compiled, re)
	}

	samples := []string{
		"arn:aws:iam::123456789012:role/deploy-role",
		"arn:aws:s3:::my-bucket.prod",
		"arn:aws:lambda:eu-west-1:123456789012:function:api-handler",
		"arn:aws:cloudfront::123456789012:distribution/E2ABCDEF12345",
		"123456789012.dkr.ecr.eu-west-1.amazonaws.com/app:v1.2.3",
		"arn:aws:secretsmanager:us-east-1:123456789012:secret:prod/db-pass",
	}
	for _, s := range samples {
		matched := false
		for _, re := range compiled {
			if re.MatchString(s) {
				matched = true
				break
			}
		}
		if !matched {
			t.Errorf("no pattern matches %q", s)
		}
	}
}
