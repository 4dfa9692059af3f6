// Package masker implements the redaction rules applied to every line of
// child-process output before it reaches any sink.
//
// A Rule rewrites one line of text, replacing sensitive content with a
// fixed mask token. A Pipeline is an ordered list of rules folded over
// the line: the output of rule n is the input of rule n+1, so rule order
// is significant. Rules and pipelines are immutable after construction
// and safe for concurrent use.
package masker

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule rewrites a line of text, masking any sensitive content.
type Rule interface {
	// Apply returns the line with every match replaced by the rule's mask.
	Apply(line string) string
}

// Equal masks exact-substring matches.
type Equal struct {
	literals []string
	mask     string
}

// NewEqual creates a rule that replaces every occurrence of each literal
// with mask. Empty literals are dropped since they would match everywhere.
func NewEqual(literals []string, mask string) *Equal {
	kept := make([]string, 0, len(literals))
	for _, l := range literals {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return &Equal{literals: kept, mask: mask}
}

// Apply replaces every occurrence of each literal with the mask.
func (e *Equal) Apply(line string) string {
	for _, l := range e.literals {
		line = strings.ReplaceAll(line, l, e.mask)
	}
	return line
}

// Regex masks regular-expression matches.
type Regex struct {
	patterns []*regexp.Regexp
	mask     string
}

// NewRegex compiles the given patterns into a rule that replaces every
// match with mask. Patterns are applied in the given order. A pattern
// that fails to compile is an error, not a skip: an uncompiled pattern
// means unredacted output.
func NewRegex(patterns []string, mask string) (*Regex, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile mask pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return &Regex{patterns: compiled, mask: mask}, nil
}

// Apply replaces every match of each pattern, in order, with the mask.
func (r *Regex) Apply(line string) string {
	for _, re := range r.patterns {
		line = re.ReplaceAllLiteralString(line, r.mask)
	}
	return line
}

// Pipeline is an ordered list of rules folded over a line.
type Pipeline struct {
	rules []Rule
}

// NewPipeline creates a pipeline that applies rules in the given order.
func NewPipeline(rules ...Rule) *Pipeline {
	return &Pipeline{rules: rules}
}

// Apply folds the line through every rule in order.
func (p *Pipeline) Apply(line string) string {
	for _, r := range p.rules {
		line = r.Apply(line)
	}
	return line
}

// Len returns the number of rules in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.rules)
}
