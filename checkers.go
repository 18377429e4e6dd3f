package rulecheck

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/reoring/rulecheck/internal/coerce"
)

// pass carries the working state of one validation run.
type pass struct {
	cfg     Config
	opt     ValidateOpt
	rules   Schema
	issues  Issues
	stopped bool
}

func (p *pass) err(name, rtype, path, msg string) {
	p.issues = append(p.issues, Issue{RuleName: name, RuleType: rtype, Path: path, Level: Error, Message: msg})
	if p.opt.FailFast {
		p.stopped = true
	}
}

func (p *pass) warn(name, rtype, path, msg string) {
	p.issues = append(p.issues, Issue{RuleName: name, RuleType: rtype, Path: path, Level: Warn, Message: msg})
}

// check dispatches a rule to its checker. The switch is exhaustive over
// Kind; a new rule type does not compile its way past this point unnoticed.
func (p *pass) check(kind Kind, r Rule, name, rtype, path string) {
	switch kind {
	case KindHeaders:
		p.checkColumnsRule(r, name, rtype, path)
	case KindNonEmpty:
		p.checkColumnsRule(r, name, rtype, path)
	case KindUnique:
		p.checkColumnsRule(r, name, rtype, path)
	case KindRange:
		p.checkRange(r, name, rtype, path)
	case KindEnum:
		p.checkEnum(r, name, rtype, path)
	case KindLength:
		p.checkLength(r, name, rtype, path)
	case KindRegex:
		p.checkRegex(r, name, rtype, path)
	case KindDecimal:
		p.checkDecimal(r, name, rtype, path)
	}
}

// checkColumnsRule covers headers, non_empty and unique: all three demand a
// non-empty list of column names. They stay separate dispatch entries above
// because their data-level semantics differ downstream.
func (p *pass) checkColumnsRule(r Rule, name, rtype, path string) {
	p.requireStringList(r, "columns", name, rtype, path)
	p.warnUnknownColumns(r, "columns", name, rtype, path)
}

func (p *pass) checkRange(r Rule, name, rtype, path string) {
	p.requireKeys(r, []string{"column", "min", "max"}, name, rtype, path)
	p.warnUnknownColumn(r, name, rtype, path)

	_, hasMin := r["min"]
	_, hasMax := r["max"]
	if !hasMin || !hasMax {
		return
	}
	min, okMin := coerce.Float(r["min"])
	max, okMax := coerce.Float(r["max"])
	if !okMin || !okMax {
		p.err(name, rtype, path+".min/max", "min/max must be numeric and within valid range")
		return
	}
	// The three checks below are independent: min=Infinity with a finite
	// max legitimately fires both the finiteness and the ordering error.
	if math.IsInf(min, 0) || math.IsNaN(min) {
		p.err(name, rtype, path+".min", "min value must be a finite number")
	}
	if math.IsInf(max, 0) || math.IsNaN(max) {
		p.err(name, rtype, path+".max", "max value must be a finite number")
	}
	if min > max {
		p.err(name, rtype, path+".min/max", "min must be <= max")
	}
}

func (p *pass) checkEnum(r Rule, name, rtype, path string) {
	p.requireKeys(r, []string{"column"}, name, rtype, path)
	p.warnUnknownColumn(r, name, rtype, path)

	// allowedValues is a legacy alias; normalize it onto allowed.
	if _, ok := r["allowed"]; !ok {
		if v, ok := r["allowedValues"]; ok {
			r["allowed"] = v
		}
	}
	items, ok := asList(r["allowed"])
	if !ok || len(items) == 0 {
		p.err(name, rtype, path+".allowed", "Provide non-empty 'allowed' list")
	}
}

func (p *pass) checkLength(r Rule, name, rtype, path string) {
	p.requireKeys(r, []string{"column"}, name, rtype, path)
	p.warnUnknownColumn(r, name, rtype, path)

	min, max := p.cfg.LengthDefaultMin, p.cfg.LengthDefaultMax
	ok := true
	if v, present := r["min"]; present {
		if n, okMin := coerce.Int(v); okMin {
			min = n
		} else {
			ok = false
		}
	}
	if v, present := r["max"]; present {
		if n, okMax := coerce.Int(v); okMax {
			max = n
		} else {
			ok = false
		}
	}
	if !ok {
		p.err(name, rtype, path+".min/max", "min/max must be valid integers")
		return
	}
	r["min"], r["max"] = min, max
	if min < 0 || max < 0 || min > max {
		p.err(name, rtype, path+".min/max", "0 ≤ min ≤ max required")
	}
}

func (p *pass) checkRegex(r Rule, name, rtype, path string) {
	p.requireKeys(r, []string{"column", "pattern"}, name, rtype, path)
	p.warnUnknownColumn(r, name, rtype, path)

	if _, err := regexp.Compile(coerce.String(r["pattern"])); err != nil {
		p.err(name, rtype, path+".pattern", "Invalid regex: "+err.Error())
	}
}

func (p *pass) checkDecimal(r Rule, name, rtype, path string) {
	p.requireKeys(r, []string{"column"}, name, rtype, path)
	p.warnUnknownColumn(r, name, rtype, path)

	precision, scale := p.cfg.DefaultPrecision, p.cfg.DefaultScale
	ok := true
	if v, present := r["precision"]; present {
		if n, okP := coerce.Int(v); okP {
			precision = n
		} else {
			ok = false
		}
	}
	if v, present := r["scale"]; present {
		if n, okS := coerce.Int(v); okS {
			scale = n
		} else {
			ok = false
		}
	}
	if !ok {
		p.err(name, rtype, path+".precision/scale", "precision/scale must be valid integers")
		return
	}
	r["precision"], r["scale"] = precision, scale

	exact := false
	if v, present := r["exact_scale"]; present {
		b, okB := coerce.Bool(v)
		if !okB {
			p.err(name, rtype, path+".exact_scale", "exact_scale must be boolean (true/false)")
			return
		}
		exact = b
	}
	r["exact_scale"] = exact

	if precision <= 0 || scale < 0 || scale > precision {
		p.err(name, rtype, path+".precision/scale", "Require precision>0 and 0≤scale≤precision")
	}
	if precision > p.cfg.MaxPrecision {
		p.err(name, rtype, path+".precision",
			fmt.Sprintf("Precision must not exceed %d (financial standard)", p.cfg.MaxPrecision))
	}
	if scale > p.cfg.MaxScale {
		p.err(name, rtype, path+".scale",
			fmt.Sprintf("Scale must not exceed %d (common practice)", p.cfg.MaxScale))
	}

	for _, bound := range []string{"min", "max"} {
		if v, present := r[bound]; present && !coerce.IsNumeric(v) {
			p.err(name, rtype, path+"."+bound,
				fmt.Sprintf("'%s' must be numeric if provided", bound))
		}
	}
}

// ---- shared helpers ----

// requireKeys flags every absent key; it never short-circuits so one pass
// reports all missing keys at once.
func (p *pass) requireKeys(r Rule, keys []string, name, rtype, path string) {
	for _, k := range keys {
		if _, ok := r[k]; !ok {
			p.err(name, rtype, path+"."+k, fmt.Sprintf("Missing required key '%s'", k))
		}
	}
}

// requireStringList demands a non-empty list whose elements are all
// non-blank strings.
func (p *pass) requireStringList(r Rule, key, name, rtype, path string) {
	items, ok := asList(r[key])
	if ok && len(items) == 0 {
		ok = false
	}
	for _, it := range items {
		s, isStr := it.(string)
		if !isStr || strings.TrimSpace(s) == "" {
			ok = false
			break
		}
	}
	if !ok {
		p.err(name, rtype, path+"."+key, fmt.Sprintf("Provide non-empty list of strings in '%s'", key))
	}
}

// warnUnknownColumn raises an advisory when a rule's column is absent from
// the dataset column hint.
func (p *pass) warnUnknownColumn(r Rule, name, rtype, path string) {
	if len(p.opt.Columns) == 0 {
		return
	}
	c, ok := r["column"].(string)
	if ok && !slices.Contains(p.opt.Columns, c) {
		p.warn(name, rtype, path+".column", fmt.Sprintf("Column '%s' not in dataset hint", c))
	}
}

// warnUnknownColumns is the list-valued counterpart of warnUnknownColumn.
func (p *pass) warnUnknownColumns(r Rule, key, name, rtype, path string) {
	if len(p.opt.Columns) == 0 {
		return
	}
	items, ok := asList(r[key])
	if !ok {
		return
	}
	var unknown []string
	for _, it := range items {
		if s, isStr := it.(string); isStr && !slices.Contains(p.opt.Columns, s) {
			unknown = append(unknown, s)
		}
	}
	if len(unknown) > 0 {
		p.warn(name, rtype, path+"."+key,
			fmt.Sprintf("Columns not in dataset hint: [%s]", strings.Join(unknown, ", ")))
	}
}

// asList accepts any slice value ([]any from JSON, []string and friends from
// programmatic schemas) and materializes it as []any.
func asList(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
