// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package modmeta

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bg3tools/bg3mod/lspk"
)

// metaSuffix selects mod metadata entries. The match is case-sensitive;
// the game ships the fragment under exactly this name.
const metaSuffix = "/meta.lsx"

// fixerArchive is the game's internal fixer package, never a user mod.
const fixerArchive = "ModFixer.pak"

// ExtractMods locates every meta.lsx entry in the archive and parses it.
// Entries missing Name or UUID yield nothing. Malformed directory records
// are logged and skipped; payload decompression faults fail hard.
func ExtractMods(a *lspk.Archive, log zerolog.Logger) ([]ModInfo, error) {
	var mods []ModInfo

	for entry, err := range a.Entries() {
		if err != nil {
			log.Warn().Err(err).Msg("skipping malformed directory record")
			continue
		}
		if !strings.HasSuffix(entry.Name, metaSuffix) {
			continue
		}

		log.Debug().Str("entry", entry.Name).Msg("reading mod metadata")
		content, err := a.ReadFile(&entry)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name, err)
		}

		info, err := ReadModInfo(content)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name, err)
		}
		if info != nil {
			mods = append(mods, *info)
		}
	}

	return mods, nil
}

// ScanAvailable reads mod metadata from every .pak archive in dir, skipping
// the internal fixer archive. An archive that fails to open (bad signature,
// unsupported version, corrupt directory) is logged and skipped; the scan
// of the remaining archives continues.
func ScanAvailable(dir string, log zerolog.Logger) ([]ModInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read mods directory: %w", err)
	}

	var mods []ModInfo
	for _, dirEntry := range entries {
		name := dirEntry.Name()
		if dirEntry.IsDir() || filepath.Ext(name) != ".pak" || name == fixerArchive {
			continue
		}

		path := filepath.Join(dir, name)
		log.Debug().Str("archive", name).Msg("scanning archive")

		archive, err := lspk.Open(path)
		if err != nil {
			log.Error().Err(err).Str("archive", name).Msg("skipping unreadable archive")
			continue
		}

		found, err := ExtractMods(archive, log)
		archive.Close()
		if err != nil {
			return nil, fmt.Errorf("extract from %s: %w", name, err)
		}
		mods = append(mods, found...)
	}

	return mods, nil
}
