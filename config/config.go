// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config is the root configuration structure.
type Config struct {
	TabStop   int             `toml:"tab_stop"`
	QuitTimes int             `toml:"quit_times"`
	Search    SearchConfig    `toml:"search"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	UI        UIConfig        `toml:"ui"`
	Log       LogConfig       `toml:"log"`
}

// SearchConfig holds incremental search settings.
type SearchConfig struct {
	IgnoreCase bool `toml:"ignore_case"`
}

// ClipboardConfig controls the system clipboard mirror.
type ClipboardConfig struct {
	// System copies every clipboard value to the system clipboard as well.
	System bool `toml:"system"`
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// Theme is a Chroma style name used to colour highlight classes. Empty
	// keeps the 16-colour terminal palette.
	Theme string `toml:"theme"`
}

// LogConfig holds logging settings. Logs go to File; with no file they are
// discarded since the terminal is in raw mode.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		TabStop:   8,
		QuitTimes: 3,
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads configuration from a TOML file and applies environment
// variable overrides. An empty path reads the default location, where a
// missing file means defaults; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.toml")
	}

	_, err := toml.DecodeFile(path, cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config file not found: %s", path)
	case err != nil:
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.TabStop < 1 || c.TabStop > 32 {
		errs = append(errs, fmt.Errorf("tab_stop=%d must be between 1 and 32", c.TabStop))
	}
	if c.QuitTimes < 0 {
		errs = append(errs, fmt.Errorf("quit_times=%d must not be negative", c.QuitTimes))
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level=%q is invalid: %v", c.Log.Level, err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// ParseLevel returns the zerolog level named by Level; empty means info.
func (l LogConfig) ParseLevel() (zerolog.Level, error) {
	if l.Level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(l.Level)
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"RED_THEME", func(v string) {
			if v != "" {
				cfg.UI.Theme = v
			}
		}},
		{"RED_LOG", func(v string) {
			if v != "" {
				cfg.Log.File = v
			}
		}},
		{"RED_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the red configuration directory (~/.config/red).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "red"), nil
}
