package rulecheck

import "fmt"

// Validator checks rule schemas against the configured limits. It holds no
// mutable state between calls and is safe for concurrent use as long as each
// call gets its own schema value.
type Validator struct {
	cfg Config
}

// New builds a Validator. With no arguments the package defaults apply; when
// several configs are passed the last wins.
func New(cfgs ...Config) *Validator {
	cfg := DefaultConfig()
	if len(cfgs) > 0 {
		cfg = cfgs[len(cfgs)-1].withDefaults()
	}
	return &Validator{cfg: cfg}
}

var defaultValidator = New()

// Validate runs a default-configured Validator over rules.
func Validate(rules Schema, opts ...ValidateOpt) Result {
	return defaultValidator.Validate(rules, opts...)
}

// Validate makes a single forward pass over the ordered rule list: it
// assigns default names, rejects unsupported types, detects duplicate names,
// dispatches to the per-type checker, and finishes with cross-rule
// advisories. The input schema is cloned up front; all normalization lands
// on the clone returned as Result.Rules.
func (v *Validator) Validate(rules Schema, opts ...ValidateOpt) Result {
	var opt ValidateOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	p := &pass{cfg: v.cfg, opt: opt, rules: rules.Clone()}

	namesSeen := make(map[string]bool, len(p.rules))
	headersCount := 0

	for i, rule := range p.rules {
		path := fmt.Sprintf("[%d]", i)
		rtype := rule.Type()
		rname := rule.Name()
		if rname == "" {
			rname = fmt.Sprintf("rule_%d", i)
		}
		rule["name"] = rname

		kind, supported := KindOf(rtype)
		if !supported {
			p.err(rname, rtype, path,
				fmt.Sprintf("Unsupported type '%s'. Supported: %s", rtype, supportedSetString()))
			// The name still counts toward duplicate detection even
			// though every other check is skipped for this rule.
			namesSeen[rname] = true
			if p.stopped {
				break
			}
			continue
		}

		if namesSeen[rname] {
			p.err(rname, rtype, path, "Duplicate rule name")
			if p.stopped {
				break
			}
		}
		namesSeen[rname] = true

		if kind == KindHeaders {
			headersCount++
		}

		p.check(kind, rule, rname, rtype, path)
		if p.stopped {
			break
		}
	}

	// Cross-rule advisories and warning promotion only apply to a pass
	// that ran to completion; a fail-fast stop returns what it has.
	if !p.stopped {
		if headersCount == 0 && opt.Columns != nil {
			p.warn("<schema>", "headers", "$",
				"No 'headers' rule present; column presence not enforced.")
		}
		if headersCount > 1 {
			p.warn("<schema>", "headers", "$",
				"Multiple 'headers' rules present; consider consolidating.")
		}
		if opt.FailOnWarning {
			for i := range p.issues {
				if p.issues[i].Level == Warn {
					p.issues[i].Level = Error
				}
			}
		}
	}

	valid := true
	for _, is := range p.issues {
		if is.Level == Error {
			valid = false
			break
		}
	}
	return Result{Valid: valid, Rules: p.rules, Issues: p.issues}
}
