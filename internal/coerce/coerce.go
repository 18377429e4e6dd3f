// Package coerce converts loosely typed rule field values the way the rule
// files tolerate them: numbers given as text, booleans given as text, JSON
// numbers preserved as literals. Every conversion goes through the string
// form of the value, so a field holding "42", json.Number("42") or int(42)
// behaves identically.
package coerce

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ericlagergren/decimal"
	json "github.com/goccy/go-json"
)

// String renders a rule field value as text. Absent (nil) values render as
// the empty string so downstream parses fail instead of panicking.
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Float parses the value with double-precision semantics: "Infinity",
// "-Infinity" and "NaN" parse successfully, and magnitudes beyond the double
// range overflow to ±Inf rather than failing. Surrounding whitespace is
// tolerated.
func Float(v any) (float64, bool) {
	if f, ok := v.(float64); ok {
		return f, true
	}
	s := strings.TrimSpace(String(v))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// Int parses the value as a plain base-10 integer. Fractional text such as
// "5.0" does not round; it fails.
func Int(v any) (int, bool) {
	if n, ok := v.(int); ok {
		return n, true
	}
	n, err := strconv.Atoi(String(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Bool accepts native booleans as-is; anything else is stringified,
// lower-cased and matched against "true"/"false". ok is false for every
// other value.
func Bool(v any) (b, ok bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	switch strings.ToLower(String(v)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// IsNumeric reports whether the value parses as a finite arbitrary-precision
// decimal. "Infinity" and "NaN" are not numeric here, matching exact-decimal
// rather than floating-point semantics.
func IsNumeric(v any) bool {
	d, ok := new(decimal.Big).SetString(String(v))
	return ok && d.IsFinite()
}
