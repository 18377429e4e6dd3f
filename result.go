package rulecheck

// Result is the outcome of one validation pass.
type Result struct {
	// Valid is true iff no ERROR-level issue was produced. Warnings never
	// affect validity.
	Valid bool `json:"valid"`
	// Rules is the normalized copy of the validated schema: every rule has
	// a non-blank name, and defaulted fields (length min/max, decimal
	// precision/scale/exact_scale, enum allowed alias) are materialized.
	// The schema passed to Validate is never touched.
	Rules Schema `json:"rules"`
	// Issues holds every finding from the pass in encounter order.
	Issues Issues `json:"issues"`
}

// Errors returns the ERROR-level issues in original order.
func (r Result) Errors() Issues { return r.Issues.Errors() }

// Warnings returns the WARN-level issues in original order.
func (r Result) Warnings() Issues { return r.Issues.Warnings() }

// Err returns nil for a valid result and the issue list as an error
// otherwise, so callers can thread validation through error-returning code.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return r.Issues
}
