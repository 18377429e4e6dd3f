package rulecheck

import (
	"fmt"
	"strings"
)

// Issue represents a single validation finding against one rule (or, for
// schema-level advisories, against the schema as a whole).
type Issue struct {
	// RuleName is the resolved name of the offending rule, or "<schema>"
	// for schema-level issues.
	RuleName string `json:"ruleName"`
	// RuleType is the raw type string of the offending rule.
	RuleType string `json:"ruleType"`
	// Path locates the finding: "[i]" for a rule, "[i].field" for a field,
	// "$" for the schema itself.
	Path    string   `json:"path"`
	Level   Severity `json:"level"`
	Message string   `json:"message"`
}

// String renders the issue as [LEVEL] name (type) at path: message.
func (is Issue) String() string {
	return fmt.Sprintf("[%s] %s (%s) at %s: %s",
		is.Level, is.RuleName, is.RuleType, is.Path, is.Message)
}

// Issues is an ordered collection of findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "[%s] %s at %s", it.Level, it.Message, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Errors returns the ERROR-level subset in original order.
func (iss Issues) Errors() Issues { return iss.filter(Error) }

// Warnings returns the WARN-level subset in original order.
func (iss Issues) Warnings() Issues { return iss.filter(Warn) }

func (iss Issues) filter(lv Severity) Issues {
	var out Issues
	for _, is := range iss {
		if is.Level == lv {
			out = append(out, is)
		}
	}
	return out
}
