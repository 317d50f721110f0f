// Package config loads an optional, never-written startup config file.
// Persistent configuration authored by the program itself remains a
// non-goal; this only reads a file the user may have hand-written.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the handful of startup knobs a user may override.
type Config struct {
	// Theme maps a palette slot name (e.g. "string", "number", "key") to a
	// 256-colour index written in decimal, overriding internal/theme's
	// default. Other values (hex colors, color names) are ignored.
	Theme map[string]string `yaml:"theme"`
	// Mouse disables mouse tracking when set to false; nil means enabled.
	Mouse *bool `yaml:"mouse"`
	// TabWidth overrides the default tab expansion width (spec default: 4).
	TabWidth int `yaml:"tab_width"`
}

// Load reads $XDG_CONFIG_HOME/jsonview/config.yml (falling back to
// ~/.config/jsonview/config.yml). A missing file is not an error: it
// returns a zero Config.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "jsonview", "config.yml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "jsonview", "config.yml"), nil
}

// MouseEnabled reports whether mouse tracking should be turned on.
func (c *Config) MouseEnabled() bool {
	if c == nil || c.Mouse == nil {
		return true
	}
	return *c.Mouse
}

// TabWidthOr returns c.TabWidth if it is a positive override, else def.
func (c *Config) TabWidthOr(def int) int {
	if c == nil || c.TabWidth <= 0 {
		return def
	}
	return c.TabWidth
}
