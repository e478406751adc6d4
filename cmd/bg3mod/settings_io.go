// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bg3tools/bg3mod/modmeta"
)

// readEnabled loads the current enabled-mods list from the settings
// document.
func readEnabled(path string) ([]modmeta.ModInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	defer file.Close()

	return modmeta.ReadModSettings(file)
}

// writeEnabled regenerates the settings document. The new document is
// written to a temp file in the same directory and renamed over the old
// one, so a failed write never truncates the existing settings.
func writeEnabled(path string, mods []modmeta.ModInfo) error {
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, "modsettings_*.tmp")
	if err != nil {
		return fmt.Errorf("create temp settings: %w", err)
	}
	tempPath := tempFile.Name()

	if err := modmeta.WriteModSettings(tempFile, mods); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return err
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("close temp settings: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
