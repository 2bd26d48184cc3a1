// Package config loads logger settings from JSON5 or TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/titanous/json5"

	"github.com/quentis/validog/vlog"
)

// Config holds the file-configurable logger settings.
type Config struct {
	// EnabledLevels lists the level names to enable, e.g. ["Warning", "Error"].
	// An empty or absent list means the default levels.
	EnabledLevels []string `json:"enabledLevels" toml:"enabled_levels"`
}

// Load reads a settings file. Files ending in ".toml" are parsed as TOML;
// everything else is parsed as JSON5, which also accepts plain JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	cfg := &Config{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse settings file '%s': %w", path, err)
		}
	} else {
		if err := json5.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse settings file '%s': %w", path, err)
		}
	}
	return cfg, nil
}

// Levels folds the configured level names into a mask. An empty list yields
// vlog.DefaultLevels.
func (c *Config) Levels() (vlog.Level, error) {
	if len(c.EnabledLevels) == 0 {
		return vlog.DefaultLevels, nil
	}
	mask := vlog.LevelNone
	for _, name := range c.EnabledLevels {
		level, err := vlog.ParseLevel(name)
		if err != nil {
			return vlog.LevelNone, err
		}
		mask |= level
	}
	return mask, nil
}

// NewLoggerFromFile creates a logger enabled for the levels named in the
// given settings file.
func NewLoggerFromFile(path string) (*vlog.Logger, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	levels, err := cfg.Levels()
	if err != nil {
		return nil, err
	}
	return vlog.NewLogger(levels), nil
}
