// Package config loads the YAML configuration of the arcs command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/cinderella-arcs/chart"
	"github.com/cwbudde/cinderella-arcs/dsp/filter/savgol"
)

// Config is the on-disk configuration. Zero-valued fields in a file keep
// their defaults.
type Config struct {
	// OutputDir receives the rendered figures.
	OutputDir string `yaml:"output_dir" json:"output_dir" jsonschema:"description=Directory the figures are written to"`
	// Format is png or svg.
	Format string `yaml:"format" json:"format" jsonschema:"enum=png,enum=svg"`
	// DPI is the pixel density of rendered figures.
	DPI float64 `yaml:"dpi" json:"dpi" jsonschema:"minimum=1"`
	// Parallel bounds concurrent rendering; 0 means one worker per figure.
	Parallel int `yaml:"parallel" json:"parallel" jsonschema:"minimum=0"`

	Smoothing   SmoothingConfig   `yaml:"smoothing" json:"smoothing"`
	Comparative ComparativeConfig `yaml:"comparative" json:"comparative"`
}

// SmoothingConfig controls the per-variant curves.
type SmoothingConfig struct {
	MediumWindow int `yaml:"medium_window" json:"medium_window" jsonschema:"minimum=1"`
	HeavyWindow  int `yaml:"heavy_window" json:"heavy_window" jsonschema:"minimum=1"`
	Order        int `yaml:"order" json:"order" jsonschema:"minimum=1"`
}

// ComparativeConfig controls the normalised comparison figure.
type ComparativeConfig struct {
	Points    int     `yaml:"points" json:"points" jsonschema:"minimum=2"`
	Window    int     `yaml:"window" json:"window" jsonschema:"minimum=1"`
	ZoneStart float64 `yaml:"zone_start" json:"zone_start" jsonschema:"minimum=0,maximum=100"`
	ZoneEnd   float64 `yaml:"zone_end" json:"zone_end" jsonschema:"minimum=0,maximum=100"`
}

// Default returns the settings that reproduce the published figures.
func Default() *Config {
	o := chart.DefaultOptions()
	return &Config{
		OutputDir: ".",
		Format:    "png",
		DPI:       o.DPI,
		Smoothing: SmoothingConfig{
			MediumWindow: o.MediumWindow,
			HeavyWindow:  o.HeavyWindow,
			Order:        savgol.DefaultOrder,
		},
		Comparative: ComparativeConfig{
			Points:    o.ComparePoints,
			Window:    o.CompareWindow,
			ZoneStart: o.ZoneStart,
			ZoneEnd:   o.ZoneEnd,
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults; an empty path skips reading.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads a YAML file over the defaults. Unlike Load, the file must
// exist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	if _, err := chart.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be > 0: %v", c.DPI)
	}
	if c.Parallel < 0 {
		return fmt.Errorf("parallel must be >= 0: %d", c.Parallel)
	}
	s := c.Smoothing
	if s.Order < 1 {
		return fmt.Errorf("smoothing.order must be >= 1: %d", s.Order)
	}
	windows := []struct {
		name string
		size int
	}{
		{"smoothing.medium_window", s.MediumWindow},
		{"smoothing.heavy_window", s.HeavyWindow},
		{"comparative.window", c.Comparative.Window},
	}
	for _, w := range windows {
		if w.size <= s.Order {
			return fmt.Errorf("%s must exceed smoothing.order (%d): %d", w.name, s.Order, w.size)
		}
	}
	cmp := c.Comparative
	if cmp.Points < 2 {
		return fmt.Errorf("comparative.points must be >= 2: %d", cmp.Points)
	}
	if cmp.ZoneStart < 0 || cmp.ZoneEnd > 100 || cmp.ZoneStart >= cmp.ZoneEnd {
		return fmt.Errorf("comparative zone must satisfy 0 <= start < end <= 100: %v-%v", cmp.ZoneStart, cmp.ZoneEnd)
	}
	return nil
}

// ChartOptions converts the configuration to rendering options.
func (c *Config) ChartOptions() chart.Options {
	return chart.Options{
		DPI:           c.DPI,
		MediumWindow:  c.Smoothing.MediumWindow,
		HeavyWindow:   c.Smoothing.HeavyWindow,
		Order:         c.Smoothing.Order,
		ComparePoints: c.Comparative.Points,
		CompareWindow: c.Comparative.Window,
		ZoneStart:     c.Comparative.ZoneStart,
		ZoneEnd:       c.Comparative.ZoneEnd,
	}
}
