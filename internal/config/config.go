// Package config loads trip-estimator settings from YAML.
//
// DESIGN: Defaults come first, then the YAML document is decoded on top of
// them, so a config file only needs the keys it changes. ${VAR} and
// ${VAR:-default} references are expanded before parsing.
//
// Search order when no explicit path is given:
//  1. ~/.config/trip-estimator/config.yaml
//  2. ./trip-estimator.yaml
//  3. built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tripwise/trip-estimator/internal/costs"
)

// OptionRates is an alias for costs.Rates.
type OptionRates = costs.Rates

// Config is the top-level configuration.
type Config struct {
	History    HistoryConfig    `yaml:"history"`
	Logging    LoggingConfig    `yaml:"logging"`
	Options    OptionRates      `yaml:"options"`
	Components ComponentsConfig `yaml:"components"`
	Report     ReportConfig     `yaml:"report"`

	// Source is the file the config was read from. Empty for defaults.
	Source string `yaml:"-"`
}

// HistoryConfig locates the trip log.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Output string `yaml:"output"` // file path; empty = stderr
}

// ComponentsConfig selects the extra cost components.
type ComponentsConfig struct {
	Extra                  []string `yaml:"extra"`                    // registry identifiers, unknown ones are skipped
	EmergencyBufferPercent float64  `yaml:"emergency_buffer_percent"` // share of fuel+food+stay+toll
}

// ReportConfig controls the console report.
type ReportConfig struct {
	Currency string `yaml:"currency"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		History: HistoryConfig{Path: DefaultHistoryPath},
		Logging: LoggingConfig{Level: DefaultLogLevel},
		Options: costs.DefaultRates(),
		Components: ComponentsConfig{
			Extra:                  append([]string(nil), costs.DefaultExtras...),
			EmergencyBufferPercent: costs.DefaultEmergencyBufferPercent,
		},
		Report: ReportConfig{Currency: DefaultCurrency},
	}
}

// LoadFromBytes parses YAML on top of the defaults and validates the result.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := Default()
	expanded := ExpandEnvWithDefaults(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads and parses a config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Load reads the config at path, or searches the default locations when
// path is empty. Missing default files fall back to Default().
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	for _, candidate := range SearchPaths() {
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat config %s: %w", candidate, err)
		}
		return LoadFile(candidate)
	}
	return Default(), nil
}

// SearchPaths returns the config locations checked by Load, in priority order.
func SearchPaths() []string {
	var paths []string
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		paths = append(paths, filepath.Join(homeDir, ".config", AppDirName, "config.yaml"))
	}
	return append(paths, LocalConfigFile)
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.History.Path) == "" {
		return fmt.Errorf("history.path must not be empty")
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	if err := c.Options.Validate(); err != nil {
		return err
	}
	if c.Components.EmergencyBufferPercent < 0 {
		return fmt.Errorf("components.emergency_buffer_percent must be >= 0, got %f", c.Components.EmergencyBufferPercent)
	}
	return nil
}

// ExtraSettings returns the settings handed to extra component factories.
func (c *Config) ExtraSettings() costs.ExtraSettings {
	return costs.ExtraSettings{EmergencyBufferPercent: c.Components.EmergencyBufferPercent}
}

// Pipeline builds the standard cost pipeline for this configuration.
func (c *Config) Pipeline() (*costs.Pipeline, error) {
	return costs.NewStandardPipeline(c.Options, costs.DefaultRegistry(), c.Components.Extra, c.ExtraSettings())
}

func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	c.History.Path = strings.TrimSpace(c.History.Path)
	for i, id := range c.Components.Extra {
		c.Components.Extra[i] = strings.TrimSpace(id)
	}
}
