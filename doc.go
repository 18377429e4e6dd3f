// Package rulecheck validates and normalizes rule schemas: declarative JSON
// descriptions of data-quality constraints (column presence, ranges, enums,
// lengths, patterns, uniqueness, decimal precision) that are checked before
// any downstream executor applies them to a dataset.
//
// It provides:
//
//   - A loader from JSON (plus a relaxed variant tolerating comments and
//     trailing commas) into an ordered Schema of Rule records
//   - Per-type semantic checks for the eight supported rule kinds, with
//     normalization of defaults and aliases
//   - Cross-rule advisories (duplicate names, multiple headers rules)
//   - A stable diagnostic model via Issue/Issues (rule name, type, path,
//     severity, message) and an immutable Result
//
// Design policy:
//   - Keep only public APIs in the root package; put value coercion and the
//     relaxed JSON scanner under internal/.
//   - Place the CLI under cmd/rulecheck.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	rules, err := rulecheck.LoadFile("rules.json")
//	if err != nil { ... }
//	res := rulecheck.Validate(rules)
//	if !res.Valid {
//		for _, is := range res.Errors() {
//			fmt.Println(is)
//		}
//	}
//
// Validate never mutates the schema it is given: normalized rules (assigned
// names, resolved defaults, normalized aliases) are returned as Result.Rules.
package rulecheck
