// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the demo's TOML configuration.
type Config struct {
	// HistoryFile stores prompt history between runs.
	HistoryFile string `toml:"history_file"`

	// Color enables lipgloss styling of the prompt and diagnostics.
	Color bool `toml:"color"`

	// Aliases are installed into the root menu at startup, keyed by
	// alias name.
	Aliases map[string]string `toml:"aliases"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return &Config{
		HistoryFile: filepath.Join(home, ".menudemo_history"),
		Color:       true,
		Aliases:     map[string]string{},
	}
}

// LoadConfig reads a TOML config file, falling back to defaults when
// the file does not exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
