// Package config loads optional user configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/alexiusacademia/goaci/internal/beam"
)

// Config holds user-tunable settings. Everything is optional; the zero
// value means "use built-in behavior".
type Config struct {
	// History controls the calculation history store
	History HistoryConfig `toml:"history"`

	// Defaults overrides individual fields of the built-in default
	// parameter sets, per unit system
	Defaults struct {
		Imperial SectionDefaults `toml:"imperial"`
		SI       SectionDefaults `toml:"si"`
	} `toml:"defaults"`
}

// HistoryConfig controls where history is stored and how much is listed
type HistoryConfig struct {
	// File is the history file path (default: ~/.goaci/history.json)
	File string `toml:"file,omitempty"`

	// Limit is the default number of records shown by history list
	Limit int `toml:"limit,omitempty"`
}

// SectionDefaults overrides fields of a default parameter set.
// Nil fields keep the built-in value.
type SectionDefaults struct {
	Fc        *float64 `toml:"fc"`
	Fy        *float64 `toml:"fy"`
	Es        *float64 `toml:"es"`
	Beta1     *float64 `toml:"beta1"`
	EpsilonCU *float64 `toml:"epsilon_cu"`
	B         *float64 `toml:"b"`
	H         *float64 `toml:"h"`
	D         *float64 `toml:"d"`
	NumBars   *int     `toml:"n_bars"`
	BarArea   *float64 `toml:"bar_area"`
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "goaci.toml"
	}
	return filepath.Join(home, ".goaci", "config.toml")
}

// Load reads a config file. A missing file is not an error and yields
// the zero config.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// HistoryLimit returns the configured list limit, defaulting to 10
func (c *Config) HistoryLimit() int {
	if c.History.Limit > 0 {
		return c.History.Limit
	}
	return 10
}

// HistoryFile returns the configured history path, defaulting to the
// standard location
func (c *Config) HistoryFile(fallback string) string {
	if c.History.File != "" {
		return c.History.File
	}
	return fallback
}

// DefaultInput returns the built-in defaults for a unit system with any
// configured overrides applied
func (c *Config) DefaultInput(units beam.UnitSystem) beam.SectionInput {
	input := beam.DefaultInput(units)

	d := c.Defaults.Imperial
	if units == beam.SI {
		d = c.Defaults.SI
	}

	if d.Fc != nil {
		input.FcPrime = *d.Fc
	}
	if d.Fy != nil {
		input.Fy = *d.Fy
	}
	if d.Es != nil {
		input.Es = *d.Es
	}
	if d.Beta1 != nil {
		input.Beta1 = *d.Beta1
	}
	if d.EpsilonCU != nil {
		input.EpsilonCU = *d.EpsilonCU
	}
	if d.B != nil {
		input.Width = *d.B
	}
	if d.H != nil {
		input.Height = *d.H
	}
	if d.D != nil {
		input.EffectiveDepth = *d.D
	}
	if d.NumBars != nil {
		input.NumBars = *d.NumBars
	}
	if d.BarArea != nil {
		input.BarArea = *d.BarArea
	}

	return input
}
