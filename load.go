package rulecheck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/rulecheck/internal/relaxed"
)

// ErrMalformedSchema reports that a rules document does not have an array at
// its root. It is the only hard failure in the pipeline; everything past
// loading is reported through Issues.
var ErrMalformedSchema = errors.New("rules document must be a JSON array")

// Load reads a rules document from r. The root must be a JSON array;
// elements that are not objects load as empty rules and are flagged during
// validation rather than failing here. Numbers are preserved as literals so
// range and decimal checks see exactly what the file said.
func Load(r io.Reader) (Schema, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("rulecheck: decode rules: %w", err)
	}
	items, ok := root.([]any)
	if !ok {
		return nil, fmt.Errorf("rulecheck: %w", ErrMalformedSchema)
	}
	rules := make(Schema, len(items))
	for i, it := range items {
		if m, ok := it.(map[string]any); ok {
			rules[i] = Rule(m)
		} else {
			rules[i] = Rule{}
		}
	}
	return rules, nil
}

// LoadBytes loads a rules document from a byte slice.
func LoadBytes(b []byte) (Schema, error) { return Load(bytes.NewReader(b)) }

// LoadString loads a rules document from a string.
func LoadString(s string) (Schema, error) { return Load(strings.NewReader(s)) }

// LoadFile loads a rules document from a file on disk.
func LoadFile(path string) (Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rulecheck: read rules: %w", err)
	}
	return LoadBytes(b)
}

// LoadRelaxedBytes loads a rules document after stripping // and /* */
// comments and trailing commas. Hand-maintained rule files tend to
// accumulate both.
func LoadRelaxedBytes(b []byte) (Schema, error) {
	return LoadBytes(relaxed.Strip(b))
}

// LoadRelaxedString is LoadRelaxedBytes over a string.
func LoadRelaxedString(s string) (Schema, error) {
	return LoadRelaxedBytes([]byte(s))
}

// LoadRelaxedFile loads a relaxed rules document from a file on disk.
func LoadRelaxedFile(path string) (Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rulecheck: read rules: %w", err)
	}
	return LoadRelaxedBytes(b)
}
