package rulecheck_test

import (
	"reflect"
	"strings"
	"testing"

	rulecheck "github.com/reoring/rulecheck"
)

func countWith(iss rulecheck.Issues, substr string) int {
	n := 0
	for _, is := range iss {
		if strings.Contains(is.Message, substr) {
			n++
		}
	}
	return n
}

func TestValidate_UnsupportedTypeSkipsOtherChecks(t *testing.T) {
	rules := rulecheck.Schema{
		{"type": "rang", "column": "age", "min": "zero", "max": "hundred"},
	}
	res := rulecheck.Validate(rules)
	if res.Valid {
		t.Fatalf("expected invalid result")
	}
	if len(res.Issues) != 1 {
		t.Fatalf("expected exactly one issue, got %d: %v", len(res.Issues), res.Issues)
	}
	is := res.Issues[0]
	if !strings.Contains(is.Message, "Unsupported type 'rang'") {
		t.Errorf("unexpected message: %q", is.Message)
	}
	if !strings.Contains(is.Message, "Supported:") {
		t.Errorf("message should list the supported set: %q", is.Message)
	}
	if is.Path != "[0]" || is.Level != rulecheck.Error {
		t.Errorf("unexpected issue shape: %+v", is)
	}
}

func TestValidate_AssignsDefaultNames(t *testing.T) {
	rules := rulecheck.Schema{
		{"type": "headers", "columns": []string{"a"}},
		{"type": "non_empty", "name": "   ", "columns": []string{"a"}},
	}
	res := rulecheck.Validate(rules)
	if !res.Valid {
		t.Fatalf("expected valid, got issues %v", res.Issues)
	}
	if got := res.Rules[0]["name"]; got != "rule_0" {
		t.Errorf("rule 0 name = %v, want rule_0", got)
	}
	if got := res.Rules[1]["name"]; got != "rule_1" {
		t.Errorf("rule 1 name = %v, want rule_1", got)
	}
	// Auto-named rules differ by index and never collide.
	if n := countWith(res.Issues, "Duplicate rule name"); n != 0 {
		t.Errorf("auto names collided: %v", res.Issues)
	}
}

func TestValidate_DuplicateNames(t *testing.T) {
	rules := rulecheck.Schema{
		{"type": "headers", "name": "r1", "columns": []string{"a"}},
		{"type": "unique", "name": "r1", "columns": []string{"a"}},
	}
	res := rulecheck.Validate(rules)
	if res.Valid {
		t.Fatalf("expected invalid result")
	}
	dups := res.Issues.Errors()
	if len(dups) != 1 || dups[0].Message != "Duplicate rule name" {
		t.Fatalf("expected exactly one duplicate-name error, got %v", res.Issues)
	}
	if dups[0].Path != "[1]" {
		t.Errorf("duplicate flagged at %s, want [1] (second occurrence only)", dups[0].Path)
	}
}

func TestValidate_UnsupportedRuleNameCountsTowardDuplicates(t *testing.T) {
	rules := rulecheck.Schema{
		{"type": "bogus", "name": "r1"},
		{"type": "headers", "name": "r1", "columns": []string{"a"}},
	}
	res := rulecheck.Validate(rules)
	if n := countWith(res.Issues, "Duplicate rule name"); n != 1 {
		t.Fatalf("expected the later r1 to be flagged as duplicate, got %v", res.Issues)
	}
}

func TestValidate_MultipleHeadersWarning(t *testing.T) {
	rules := rulecheck.Schema{
		{"type": "headers", "name": "h1", "columns": []string{"a"}},
		{"type": "headers", "name": "h2", "columns": []string{"b"}},
	}
	res := rulecheck.Validate(rules)
	if !res.Valid {
		t.Fatalf("warnings must not invalidate, got %v", res.Issues)
	}
	warns := res.Warnings()
	if len(warns) != 1 || !strings.Contains(warns[0].Message, "Multiple 'headers' rules") {
		t.Fatalf("expected exactly one multiple-headers warning, got %v", res.Issues)
	}
	w := warns[0]
	if w.Path != "$" || w.RuleName != "<schema>" || w.RuleType != "headers" {
		t.Errorf("unexpected advisory shape: %+v", w)
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	rules := rulecheck.Schema{
		{"type": "decimal", "column": "amount"},
	}
	_ = rulecheck.Validate(rules)
	if _, ok := rules[0]["precision"]; ok {
		t.Errorf("input rule gained a precision field: %v", rules[0])
	}
	if _, ok := rules[0]["name"]; ok {
		t.Errorf("input rule gained a name field: %v", rules[0])
	}
}

func TestValidate_Idempotent(t *testing.T) {
	rules := rulecheck.Schema{
		{"type": "range", "column": "age", "min": "0", "max": "120"},
		{"type": "enum", "column": "ccy", "allowedValues": []any{"USD", "CAD"}},
		{"type": "bogus"},
	}
	r1 := rulecheck.Validate(rules)
	r2 := rulecheck.Validate(rules)
	if !reflect.DeepEqual(r1.Issues, r2.Issues) {
		t.Errorf("issue lists differ across runs:\n%v\n%v", r1.Issues, r2.Issues)
	}
	// Validating the already-normalized output is stable too.
	r3 := rulecheck.Validate(r1.Rules)
	if !reflect.DeepEqual(r1.Issues, r3.Issues) {
		t.Errorf("normalized schema validates differently:\n%v\n%v", r1.Issues, r3.Issues)
	}
}

func TestValidate_FailFastStopsAtFirstError(t *testing.T) {
	rules := rulecheck.Schema{
		{"type": "range", "column": "age", "min": "zero", "max": "hundred"},
		{"type": "regex", "column": "id", "pattern": "("},
	}
	res := rulecheck.Validate(rules, rulecheck.ValidateOpt{FailFast: true})
	if res.Valid {
		t.Fatalf("expected invalid result")
	}
	if countWith(res.Issues, "Invalid regex") != 0 {
		t.Errorf("second rule should not have been checked: %v", res.Issues)
	}
}

func TestValidate_FailOnWarningPromotes(t *testing.T) {
	rules := rulecheck.Schema{
		{"type": "headers", "name": "h1", "columns": []string{"a"}},
		{"type": "headers", "name": "h2", "columns": []string{"a"}},
	}
	res := rulecheck.Validate(rules, rulecheck.ValidateOpt{FailOnWarning: true})
	if res.Valid {
		t.Fatalf("promoted warnings must invalidate")
	}
	if len(res.Warnings()) != 0 || len(res.Errors()) != 1 {
		t.Errorf("expected a single promoted error, got %v", res.Issues)
	}
}

func TestValidate_ColumnHint(t *testing.T) {
	rules := rulecheck.Schema{
		{"type": "headers", "columns": []string{"a", "zz"}},
		{"type": "range", "column": "missing", "min": 0, "max": 1},
	}
	res := rulecheck.Validate(rules, rulecheck.ValidateOpt{Columns: []string{"a", "b"}})
	if !res.Valid {
		t.Fatalf("hint findings are advisory, got %v", res.Issues)
	}
	if n := countWith(res.Issues, "not in dataset hint"); n != 2 {
		t.Errorf("expected hint warnings for zz and missing, got %v", res.Issues)
	}
}

func TestValidate_NoHeadersAdvisoryOnlyWithHint(t *testing.T) {
	rules := rulecheck.Schema{
		{"type": "non_empty", "columns": []string{"a"}},
	}
	res := rulecheck.Validate(rules)
	if len(res.Issues) != 0 {
		t.Fatalf("no advisory without a hint, got %v", res.Issues)
	}
	res = rulecheck.Validate(rules, rulecheck.ValidateOpt{Columns: []string{"a"}})
	if n := countWith(res.Issues, "No 'headers' rule present"); n != 1 {
		t.Errorf("expected the no-headers advisory, got %v", res.Issues)
	}
}

func TestResult_Err(t *testing.T) {
	ok := rulecheck.Validate(rulecheck.Schema{{"type": "unique", "columns": []string{"id"}}})
	if err := ok.Err(); err != nil {
		t.Fatalf("valid result should have nil Err, got %v", err)
	}
	bad := rulecheck.Validate(rulecheck.Schema{{"type": "unique"}})
	err := bad.Err()
	if err == nil {
		t.Fatalf("invalid result should surface an error")
	}
	if !strings.Contains(err.Error(), "Provide non-empty list of strings") {
		t.Errorf("error summary should carry the message, got %q", err.Error())
	}
}

func TestIssue_String(t *testing.T) {
	res := rulecheck.Validate(rulecheck.Schema{
		{"type": "range", "name": "ageRange", "column": "age", "min": "65", "max": "18"},
	})
	if len(res.Issues) != 1 {
		t.Fatalf("expected one issue, got %v", res.Issues)
	}
	got := res.Issues[0].String()
	want := "[ERROR] ageRange (range) at [0].min/max: min must be <= max"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestValidate_AllSupportedRuleTypes(t *testing.T) {
	rules := rulecheck.Schema{
		{"type": "headers", "name": "h", "columns": []string{"id", "age", "amount"}},
		{"type": "non_empty", "name": "ne", "columns": []string{"id"}},
		{"type": "range", "name": "rg", "column": "age", "min": "0", "max": "120"},
		{"type": "enum", "name": "en", "column": "ccy", "allowed": []any{"USD", "CAD"}},
		{"type": "length", "name": "ln", "column": "id", "min": 1, "max": 36},
		{"type": "regex", "name": "rx", "column": "id", "pattern": "^[a-z0-9-]+$"},
		{"type": "unique", "name": "uq", "columns": []string{"id"}},
		{"type": "decimal", "name": "dc", "column": "amount", "precision": 10, "scale": 2},
	}
	res := rulecheck.Validate(rules)
	if !res.Valid || len(res.Issues) != 0 {
		t.Fatalf("expected a clean pass, got %v", res.Issues)
	}
	if len(res.Rules) != 8 {
		t.Fatalf("expected 8 normalized rules, got %d", len(res.Rules))
	}
}
