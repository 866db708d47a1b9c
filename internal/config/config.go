// Package config handles the geokit command-line configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/beetlebugorg/geokit/pkg/geokit"
)

// Distance calculation methods.
const (
	MethodHaversine = "haversine"
	MethodVincenty  = "vincenty"
)

// Config represents the root configuration file structure.
type Config struct {
	// Unit is the unit for reported distances (any alias, e.g. "km").
	Unit string `yaml:"unit,omitempty"`
	// Method selects the distance formula.
	Method string `yaml:"method,omitempty"`
	WKT    WKT    `yaml:"wkt,omitempty"`
	// Radius is the default clustering radius, e.g. "500m" or "1.5 km".
	Radius geokit.Distance `yaml:"radius,omitempty"`
}

// WKT holds WKT output settings.
type WKT struct {
	StrictOGCMultiPoint bool `yaml:"strict_ogc_multipoint,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Unit:   string(geokit.UnitMeters),
		Method: MethodHaversine,
		Radius: geokit.Meters(1000),
	}
}

// Load reads and parses the YAML configuration file from the specified path.
// Keys missing from the file keep their default values. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the unit, method and radius.
func (c *Config) Validate() error {
	if _, err := geokit.ResolveUnit(c.Unit); err != nil {
		return err
	}
	switch c.Method {
	case MethodHaversine, MethodVincenty:
	default:
		return fmt.Errorf("unknown distance method %q", c.Method)
	}
	if c.Radius.Meters() <= 0 {
		return fmt.Errorf("radius must be positive, got %s", c.Radius)
	}
	return nil
}

// DistanceUnit returns the resolved distance unit.
func (c *Config) DistanceUnit() geokit.Unit {
	unit, err := geokit.ResolveUnit(c.Unit)
	if err != nil {
		return geokit.UnitMeters
	}
	return unit
}
