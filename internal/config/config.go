// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

// Package config loads the tool configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// settingsFile is the name of the game's enabled-mods document inside the
// profile directory.
const settingsFile = "modsettings.lsx"

// Config holds the two paths the tool operates on.
type Config struct {
	// ModsPath is the directory holding the installed .pak archives.
	ModsPath string `toml:"mods_path"`
	// ProfilePath is the game profile directory holding modsettings.lsx.
	ProfilePath string `toml:"profile_path"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.ModsPath == "" {
		return nil, fmt.Errorf("config %s: mods_path is required", path)
	}
	if cfg.ProfilePath == "" {
		return nil, fmt.Errorf("config %s: profile_path is required", path)
	}

	return &cfg, nil
}

// SettingsPath returns the location of the settings document.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.ProfilePath, settingsFile)
}
