// Package config loads the optional ohm configuration file.
//
// The file supplies defaults for search flags; command-line flags always
// win. A missing file is not an error — built-in defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the tool's tunable defaults.
type Config struct {
	// Tolerance is the default match window in percent.
	Tolerance float64 `toml:"tolerance"`

	// MaxResults is the default result list length.
	MaxResults int `toml:"max_results"`

	// PrioritizeFewer orders results by component count before deviation.
	PrioritizeFewer bool `toml:"prioritize_fewer"`

	// OutputDir, when set, is where per-circuit files are written.
	OutputDir string `toml:"output_dir"`

	// DiagramWidth is the schematic canvas width in characters.
	DiagramWidth int `toml:"diagram_width"`

	// Workers is the search worker count; 0 or 1 means sequential.
	Workers int `toml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tolerance:    5.0,
		MaxResults:   5,
		DiagramWidth: 120,
	}
}

// Path returns the config file location: $OHM_CONFIG if set, otherwise
// config.toml under the user config directory.
func Path() string {
	if p := os.Getenv("OHM_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ohm", "config.toml")
}

// Load reads the config file at Path. A missing or unset path yields the
// defaults without error.
func Load() (Config, error) {
	p := Path()
	if p == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	return Parse(data)
}

// Parse decodes TOML content over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be at least 1, got %d", c.MaxResults)
	}
	if c.DiagramWidth < 40 {
		return fmt.Errorf("diagram_width must be at least 40, got %d", c.DiagramWidth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
