package runner

import "sort"

// Validator runs an ordered list of rules against a request,
// stopping at the first failure.
type Validator struct {
	rules []Rule
}

// NewValidator creates a validator from the given rules. Rules are
// sorted once by ascending priority; rules of equal priority keep their
// relative order.
func NewValidator(rules ...Rule) *Validator {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})
	return &Validator{rules: sorted}
}

// StandardValidator returns the default composition: command shape,
// environment, and working directory rules.
func StandardValidator() *Validator {
	return NewValidator(NewCommandRule(), NewEnvRule(), NewPathRule())
}

// Validate evaluates every rule in priority order and returns a
// *ValidationError for the first failure, or nil.
func (v *Validator) Validate(req Request) error {
	for _, rule := range v.rules {
		if err := rule.Validate(req); err != nil {
			return &ValidationError{Rule: rule.Name(), Reason: err.Error()}
		}
	}
	return nil
}
