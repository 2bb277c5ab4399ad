// Package config loads optional on-disk overrides for shell path,
// key-repeat timing, and scrollback capacity. Nothing in this package is
// required for the terminal core to run; Load always returns a usable
// config, falling back to DefaultConfig on any read or parse error.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds user overrides for the coordinator and terminal core.
// ScrollbackLines is loaded but not applied by cmd/termcore, whose
// terminal keeps the default MaxScrollbackLines cap.
type Config struct {
	Shell             string        `toml:"shell"`
	ScrollbackLines   int           `toml:"scrollback_lines"`
	KeyRepeatDelay    time.Duration `toml:"-"`
	KeyRepeatInterval time.Duration `toml:"-"`

	// TOML can't decode time.Duration directly; these mirror the fields
	// above in milliseconds for (de)serialization.
	KeyRepeatDelayMs    int64 `toml:"key_repeat_delay_ms"`
	KeyRepeatIntervalMs int64 `toml:"key_repeat_interval_ms"`
}

// DefaultConfig returns the built-in defaults: empty shell override (so
// SHELL/bash fallback applies), the 10,000-row scrollback cap, and the
// 500ms/50ms key-repeat timing from spec.md §4.5.
func DefaultConfig() *Config {
	cfg := &Config{
		Shell:               "",
		ScrollbackLines:     10000,
		KeyRepeatDelayMs:    500,
		KeyRepeatIntervalMs: 50,
	}
	cfg.resolveDurations()
	return cfg
}

// configPath returns ~/.config/termcore/config.toml.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "termcore", "config.toml"), nil
}

// Load reads the on-disk config, falling back to DefaultConfig if the
// file is missing or malformed.
func Load() *Config {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	cfg.resolveDurations()
	return cfg
}

// resolveDurations converts the millisecond fields loaded from TOML into
// the Duration fields the coordinator actually uses.
func (c *Config) resolveDurations() {
	c.KeyRepeatDelay = time.Duration(c.KeyRepeatDelayMs) * time.Millisecond
	c.KeyRepeatInterval = time.Duration(c.KeyRepeatIntervalMs) * time.Millisecond
}
