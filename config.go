package rulecheck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default limits for decimal and length rules. Precision 18 matches the
// common financial standard; scale 6 is the usual ceiling in practice.
const (
	DefaultPrecision = 18
	DefaultScale     = 2
	MaxPrecision     = 18
	MaxScale         = 6
	LengthDefaultMin = 0
	LengthDefaultMax = 255
)

// Config carries the tunable constants of the validator. Zero-valued fields
// fall back to the package defaults, so a partially filled Config (or a
// partial YAML file) is fine.
type Config struct {
	// DefaultPrecision/DefaultScale apply to decimal rules that omit
	// precision or scale.
	DefaultPrecision int `yaml:"default_precision"`
	DefaultScale     int `yaml:"default_scale"`
	// MaxPrecision/MaxScale are hard ceilings on what a decimal rule may
	// declare.
	MaxPrecision int `yaml:"max_precision"`
	MaxScale     int `yaml:"max_scale"`
	// LengthDefaultMin/LengthDefaultMax apply to length rules that omit
	// min or max.
	LengthDefaultMin int `yaml:"length_default_min"`
	LengthDefaultMax int `yaml:"length_default_max"`
}

// DefaultConfig returns the package defaults.
func DefaultConfig() Config {
	return Config{
		DefaultPrecision: DefaultPrecision,
		DefaultScale:     DefaultScale,
		MaxPrecision:     MaxPrecision,
		MaxScale:         MaxScale,
		LengthDefaultMin: LengthDefaultMin,
		LengthDefaultMax: LengthDefaultMax,
	}
}

// withDefaults fills zero fields from the package defaults. LengthDefaultMin
// is exempt: its default is zero already.
func (c Config) withDefaults() Config {
	if c.DefaultPrecision == 0 {
		c.DefaultPrecision = DefaultPrecision
	}
	if c.DefaultScale == 0 {
		c.DefaultScale = DefaultScale
	}
	if c.MaxPrecision == 0 {
		c.MaxPrecision = MaxPrecision
	}
	if c.MaxScale == 0 {
		c.MaxScale = MaxScale
	}
	if c.LengthDefaultMax == 0 {
		c.LengthDefaultMax = LengthDefaultMax
	}
	return c
}

// LoadConfig reads a YAML config file. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("rulecheck: read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("rulecheck: parse config: %w", err)
	}
	return c.withDefaults(), nil
}
