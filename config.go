package pagesift

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pagesift/pagesift/layout"
	"github.com/pagesift/pagesift/raster"
)

// Config bundles the tunable extraction settings for loading from a YAML
// file. Zero-valued fields fall back to defaults, so a config file needs to
// name only the settings it overrides:
//
//	dpi: 150
//	raster:
//	  variance_threshold: 2.5
//	heading:
//	  max_isolated_length: 60
//	section_markers:
//	  - "SCOPE"
//	  - "REFERENCES"
type Config struct {
	// Raster holds the image validity thresholds
	Raster raster.Config `yaml:"raster"`

	// Heading holds the heading classification thresholds
	Heading layout.Config `yaml:"heading"`

	// SectionMarkers optionally replaces the built-in section-marker
	// vocabulary with plain patterns, compiled case-insensitively and
	// anchored at line start
	SectionMarkers []string `yaml:"section_markers"`

	// DPI is the table screenshot rendering resolution
	DPI float64 `yaml:"dpi"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() Config {
	return Config{
		Raster:  raster.DefaultConfig(),
		Heading: layout.DefaultConfig(),
		DPI:     defaultTableDPI,
	}
}

// LoadConfig reads a YAML config file over the defaults. Settings absent
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if len(cfg.SectionMarkers) > 0 {
		markers, err := layout.CompileMarkers(cfg.SectionMarkers)
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Heading.SectionMarkers = markers
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero-valued fields, so hand-built Config values are
// usable without naming every threshold.
func (c *Config) applyDefaults() {
	rd := raster.DefaultConfig()
	if c.Raster.VarianceThreshold <= 0 {
		c.Raster.VarianceThreshold = rd.VarianceThreshold
	}
	if c.Raster.BlackThreshold <= 0 {
		c.Raster.BlackThreshold = rd.BlackThreshold
	}
	if c.Raster.WhiteThreshold <= 0 {
		c.Raster.WhiteThreshold = rd.WhiteThreshold
	}
	if c.Raster.EdgeRatioThreshold <= 0 {
		c.Raster.EdgeRatioThreshold = rd.EdgeRatioThreshold
	}

	hd := layout.DefaultConfig()
	if c.Heading.MaxAllCapsLength <= 0 {
		c.Heading.MaxAllCapsLength = hd.MaxAllCapsLength
	}
	if c.Heading.MaxAllCapsWords <= 0 {
		c.Heading.MaxAllCapsWords = hd.MaxAllCapsWords
	}
	if c.Heading.MaxIsolatedLength <= 0 {
		c.Heading.MaxIsolatedLength = hd.MaxIsolatedLength
	}
	if c.Heading.MinIsolatedWords <= 0 {
		c.Heading.MinIsolatedWords = hd.MinIsolatedWords
	}
	if c.Heading.MaxIsolatedWords <= 0 {
		c.Heading.MaxIsolatedWords = hd.MaxIsolatedWords
	}
	if c.Heading.SectionMarkers == nil {
		c.Heading.SectionMarkers = hd.SectionMarkers
	}
	if c.DPI <= 0 {
		c.DPI = defaultTableDPI
	}
}
