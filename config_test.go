package rulecheck_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	rulecheck "github.com/reoring/rulecheck"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rulecheck.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "max_scale: 4\n")
	cfg, err := rulecheck.LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MaxScale != 4 {
		t.Errorf("MaxScale = %d, want 4", cfg.MaxScale)
	}
	if cfg.DefaultPrecision != 18 || cfg.DefaultScale != 2 || cfg.MaxPrecision != 18 || cfg.LengthDefaultMax != 255 {
		t.Errorf("defaults not backfilled: %+v", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := rulecheck.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
	path := writeConfig(t, "max_scale: [not an int]\n")
	if _, err := rulecheck.LoadConfig(path); err == nil {
		t.Errorf("expected an error for malformed YAML")
	}
}

func TestValidator_ConfiguredCeilings(t *testing.T) {
	v := rulecheck.New(rulecheck.Config{MaxPrecision: 28, MaxScale: 10})
	res := v.Validate(rulecheck.Schema{
		{"type": "decimal", "column": "amount", "precision": 20, "scale": 8},
	})
	if !res.Valid {
		t.Fatalf("raised ceilings should admit precision 20 / scale 8, got %v", res.Issues)
	}
	res = v.Validate(rulecheck.Schema{
		{"type": "decimal", "column": "amount", "precision": 30, "scale": 2},
	})
	found := false
	for _, is := range res.Errors() {
		if strings.Contains(is.Message, "must not exceed 28") {
			found = true
		}
	}
	if !found {
		t.Errorf("ceiling message should carry the configured limit: %v", res.Issues)
	}
}

func TestValidator_ConfiguredDefaults(t *testing.T) {
	v := rulecheck.New(rulecheck.Config{DefaultPrecision: 10, DefaultScale: 4, LengthDefaultMax: 64})
	res := v.Validate(rulecheck.Schema{
		{"type": "decimal", "column": "a"},
		{"type": "length", "column": "b"},
	})
	if !res.Valid {
		t.Fatalf("expected valid, got %v", res.Issues)
	}
	if res.Rules[0]["precision"] != 10 || res.Rules[0]["scale"] != 4 {
		t.Errorf("decimal defaults not applied: %v", res.Rules[0])
	}
	if res.Rules[1]["min"] != 0 || res.Rules[1]["max"] != 64 {
		t.Errorf("length defaults not applied: %v", res.Rules[1])
	}
}
