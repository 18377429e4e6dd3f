package rulecheck

import "strings"

// Severity expresses the severity level for issues.
type Severity int

const (
	Warn  Severity = iota // Advisory; never invalidates a schema.
	Error                 // Invalidates the schema.
)

// String renders the wire-level name of the severity.
func (s Severity) String() string {
	if s == Error {
		return "ERROR"
	}
	return "WARN"
}

// MarshalJSON encodes the severity as its string name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes "ERROR"/"WARN" back into a Severity.
func (s *Severity) UnmarshalJSON(b []byte) error {
	if string(b) == `"ERROR"` {
		*s = Error
	} else {
		*s = Warn
	}
	return nil
}

// Kind identifies one of the supported rule types. The set is closed; adding
// a variant requires extending the dispatch switch in Validator, which the
// compiler flags via exhaustive handling of these constants.
type Kind int

const (
	KindHeaders Kind = iota
	KindNonEmpty
	KindRange
	KindEnum
	KindLength
	KindRegex
	KindUnique
	KindDecimal
)

var kindNames = [...]string{
	KindHeaders:  "headers",
	KindNonEmpty: "non_empty",
	KindRange:    "range",
	KindEnum:     "enum",
	KindLength:   "length",
	KindRegex:    "regex",
	KindUnique:   "unique",
	KindDecimal:  "decimal",
}

// String returns the JSON-level type string for the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// KindOf resolves a raw type string to its Kind. ok is false for anything
// outside the supported set.
func KindOf(s string) (k Kind, ok bool) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// SupportedTypes returns the supported rule type strings in declaration order.
func SupportedTypes() []string {
	out := make([]string, len(kindNames))
	copy(out, kindNames[:])
	return out
}

func supportedSetString() string {
	return "[" + strings.Join(kindNames[:], ", ") + "]"
}

// ValidateOpt bundles per-call validation options. The last option passed to
// Validate wins, mirroring the variadic option style used across the API.
type ValidateOpt struct {
	// FailFast stops the pass after the first rule that produced an
	// ERROR-level issue. Later rules are neither checked nor normalized.
	FailFast bool
	// FailOnWarning promotes WARN issues to ERROR once a full pass has
	// completed, so advisory findings invalidate the schema.
	FailOnWarning bool
	// Columns is an optional dataset column hint. When non-nil, rules that
	// reference columns absent from the hint produce WARN issues, and a
	// schema with no headers rule produces a schema-level advisory. A nil
	// slice disables both checks.
	Columns []string
}
