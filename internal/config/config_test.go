// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
mods_path = "/games/bg3/Mods"
profile_path = "/home/player/profile"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/games/bg3/Mods", cfg.ModsPath)
	assert.Equal(t, filepath.Join("/home/player/profile", "modsettings.lsx"), cfg.SettingsPath())
}

func TestLoadMissingFields(t *testing.T) {
	_, err := Load(writeConfig(t, `mods_path = "/games/bg3/Mods"`))
	require.Error(t, err)

	_, err = Load(writeConfig(t, `profile_path = "/home/player/profile"`))
	require.Error(t, err)
}

func TestLoadBadTOML(t *testing.T) {
	_, err := Load(writeConfig(t, `mods_path = [unclosed`))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
