// Package config handles reading and writing the foundry config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure of config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	Coach   CoachConfig   `yaml:"coach"`
	Export  ExportConfig  `yaml:"export"`
	Drafts  DraftsConfig  `yaml:"drafts"`
	Program ProgramConfig `yaml:"program"`
}

// CoachConfig selects the review backend.
type CoachConfig struct {
	Provider string `yaml:"provider"` // "anthropic" | "openai" | "gemini" | "mock"
	Model    string `yaml:"model"`
}

// ExportConfig controls where finished worksheets are written.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// DraftsConfig controls auto-save behaviour.
type DraftsConfig struct {
	AutosaveDelay time.Duration `yaml:"autosave_delay"`
}

// ProgramConfig holds program-level state.
type ProgramConfig struct {
	// StartDate is the day the 30-day program began, in 2006-01-02
	// form. Empty means the program has not started.
	StartDate string `yaml:"start_date"`
}

const configFile = "config.yaml"

// Dir resolves the config directory: $XDG_CONFIG_HOME/foundry or
// ~/.config/foundry.
func Dir() (string, error) {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "foundry"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "foundry"), nil
}

// Read loads config.yaml from dir. A missing file yields the defaults,
// not an error; malformed YAML is an error.
func Read(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Write saves cfg to config.yaml in dir, creating dir if needed.
func Write(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Version: 1,
		Coach: CoachConfig{
			Provider: "anthropic",
			Model:    "claude-haiku",
		},
		Export: ExportConfig{
			Dir: "exports",
		},
		Drafts: DraftsConfig{
			AutosaveDelay: 2 * time.Second,
		},
	}
}

// StartDate parses the program start date. Returns the zero time when
// the program has not started.
func (c *Config) StartDate() (time.Time, error) {
	if c.Program.StartDate == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", c.Program.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse start_date: %w", err)
	}
	return t, nil
}
