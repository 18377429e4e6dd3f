package rulecheck

import (
	"strings"

	"github.com/reoring/rulecheck/internal/coerce"
)

// Rule is one declarative constraint entry. Fields beyond "type" and "name"
// are type-specific and left loosely typed: the original rule files tolerate
// numbers-as-text and booleans-as-text, so checkers coerce at the point of
// use instead of forcing a rigid decode here.
type Rule map[string]any

// Type returns the trimmed type string, or "" when absent.
func (r Rule) Type() string {
	return strings.TrimSpace(coerce.String(r["type"]))
}

// Name returns the trimmed name string, or "" when absent or blank.
func (r Rule) Name() string {
	return strings.TrimSpace(coerce.String(r["name"]))
}

// Clone returns a copy of the rule. Top-level keys are copied; nested values
// are shared, which is safe because normalization only writes top-level keys.
func (r Rule) Clone() Rule {
	if r == nil {
		return Rule{}
	}
	out := make(Rule, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Schema is the ordered list of all rules for a dataset. Order is
// significant: it determines positional paths in diagnostics and the order a
// downstream executor applies the rules.
type Schema []Rule

// Clone returns a rule-by-rule copy of the schema.
func (s Schema) Clone() Schema {
	out := make(Schema, len(s))
	for i, r := range s {
		out[i] = r.Clone()
	}
	return out
}
