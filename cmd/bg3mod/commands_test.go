// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bg3tools/bg3mod/modmeta"
)

// newTestOptions lays out a mods directory, a profile directory seeded with
// the given enabled list, and a config file pointing at both.
func newTestOptions(t *testing.T, enabled []modmeta.ModInfo) (*rootOptions, string, string) {
	t.Helper()

	modsDir := t.TempDir()
	profileDir := t.TempDir()
	settingsPath := filepath.Join(profileDir, "modsettings.lsx")
	require.NoError(t, writeEnabled(settingsPath, enabled))

	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf("mods_path = %q\nprofile_path = %q\n", modsDir, profileDir)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	return &rootOptions{configPath: configPath}, settingsPath, modsDir
}

// installModArchive writes a minimal version 18 archive holding one stored
// meta.lsx entry into the mods directory.
func installModArchive(t *testing.T, modsDir, name, uuid string) {
	t.Helper()

	meta := []byte(fmt.Sprintf(`<save><region id="Config"><node id="root"><children>
		<node id="ModuleInfo">
			<attribute id="Name" type="FixedString" value="%s"/>
			<attribute id="UUID" type="FixedString" value="%s"/>
		</node>
	</children></node></region></save>`, name, uuid))

	const payloadStart = 64
	const recordSize = 272

	rec := make([]byte, recordSize)
	copy(rec[0:256], "Mods/"+name+"/meta.lsx")
	binary.LittleEndian.PutUint32(rec[256:], payloadStart)
	binary.LittleEndian.PutUint32(rec[264:], uint32(len(meta)))
	binary.LittleEndian.PutUint32(rec[268:], uint32(len(meta)))

	dirPayload := make([]byte, lz4.CompressBlockBound(recordSize))
	n, err := lz4.CompressBlock(rec, dirPayload, nil)
	require.NoError(t, err)
	require.Greater(t, n, 0)
	dirPayload = dirPayload[:n]

	var dir bytes.Buffer
	binary.Write(&dir, binary.LittleEndian, uint32(1))
	binary.Write(&dir, binary.LittleEndian, uint32(len(dirPayload)))
	dir.Write(dirPayload)

	header := make([]byte, payloadStart)
	binary.LittleEndian.PutUint32(header[0:], 0x4B50534C) // "LSPK"
	binary.LittleEndian.PutUint32(header[4:], 18)
	binary.LittleEndian.PutUint64(header[8:], uint64(payloadStart+len(meta)))
	binary.LittleEndian.PutUint32(header[16:], uint32(dir.Len()))
	binary.LittleEndian.PutUint16(header[38:], 1)

	var image bytes.Buffer
	image.Write(header)
	image.Write(meta)
	image.Write(dir.Bytes())

	require.NoError(t, os.WriteFile(filepath.Join(modsDir, name+".pak"), image.Bytes(), 0644))
}

func enabledNames(t *testing.T, settingsPath string) []string {
	t.Helper()
	mods, err := readEnabled(settingsPath)
	require.NoError(t, err)
	names := make([]string, len(mods))
	for i := range mods {
		names[i] = mods[i].Name
	}
	return names
}

func TestRunDisableKeepsInternalModules(t *testing.T) {
	opts, settingsPath, _ := newTestOptions(t, []modmeta.ModInfo{
		{UUID: "uuid-gustav", Name: "GustavDev"},
		{UUID: "uuid-sweet", Name: "SweetMod"},
	})

	// The pattern selects GustavDev, but internal modules stay enabled;
	// with nothing actually disabled the settings are left untouched.
	require.NoError(t, runDisable(opts, "gustav"))
	assert.Equal(t, []string{"GustavDev", "SweetMod"}, enabledNames(t, settingsPath))

	require.NoError(t, runDisable(opts, "sweet"))
	assert.Equal(t, []string{"GustavDev"}, enabledNames(t, settingsPath))
}

func TestRunOrderNeverMovesInternalModules(t *testing.T) {
	opts, settingsPath, _ := newTestOptions(t, []modmeta.ModInfo{
		{UUID: "uuid-gustav", Name: "GustavDev"},
		{UUID: "uuid-alpha", Name: "Alpha"},
	})

	require.NoError(t, runOrder(opts, "gustav", 2))
	assert.Equal(t, []string{"GustavDev", "Alpha"}, enabledNames(t, settingsPath))
}

func TestRunOrderClampsPosition(t *testing.T) {
	seed := []modmeta.ModInfo{
		{UUID: "uuid-gustav", Name: "GustavDev"},
		{UUID: "uuid-alpha", Name: "Alpha"},
		{UUID: "uuid-bravo", Name: "Bravo"},
		{UUID: "uuid-charlie", Name: "Charlie"},
	}

	t.Run("below range", func(t *testing.T) {
		opts, settingsPath, _ := newTestOptions(t, seed)

		// Position 0 clamps to 1, so the internal head module keeps its slot.
		require.NoError(t, runOrder(opts, "charlie", 0))
		assert.Equal(t, []string{"GustavDev", "Charlie", "Alpha", "Bravo"}, enabledNames(t, settingsPath))
	})

	t.Run("above range", func(t *testing.T) {
		opts, settingsPath, _ := newTestOptions(t, seed)

		require.NoError(t, runOrder(opts, "alpha", 99))
		assert.Equal(t, []string{"GustavDev", "Bravo", "Charlie", "Alpha"}, enabledNames(t, settingsPath))
	})
}

func TestRunOrderPreservesRelativeOrderOfMatches(t *testing.T) {
	opts, settingsPath, _ := newTestOptions(t, []modmeta.ModInfo{
		{UUID: "uuid-gustav", Name: "GustavDev"},
		{UUID: "uuid-one", Name: "Patch One"},
		{UUID: "uuid-alpha", Name: "Alpha"},
		{UUID: "uuid-two", Name: "Patch Two"},
	})

	require.NoError(t, runOrder(opts, "patch*", 2))
	assert.Equal(t, []string{"GustavDev", "Alpha", "Patch One", "Patch Two"}, enabledNames(t, settingsPath))
}

func TestRunEnableAddsMatchingMods(t *testing.T) {
	opts, settingsPath, modsDir := newTestOptions(t, []modmeta.ModInfo{
		{UUID: "uuid-gustav", Name: "GustavDev"},
	})
	installModArchive(t, modsDir, "SweetMod", "uuid-sweet")
	installModArchive(t, modsDir, "SourMod", "uuid-sour")

	require.NoError(t, runEnable(opts, "sweet"))
	assert.Equal(t, []string{"GustavDev", "SweetMod"}, enabledNames(t, settingsPath))

	// Already-enabled matches are skipped, not duplicated.
	require.NoError(t, runEnable(opts, "sweet"))
	assert.Equal(t, []string{"GustavDev", "SweetMod"}, enabledNames(t, settingsPath))
}

func TestEnabledCommand(t *testing.T) {
	opts, _, _ := newTestOptions(t, []modmeta.ModInfo{
		{UUID: "uuid-gustav", Name: "GustavDev"},
	})

	cmd := newRootCmd()
	cmd.SetArgs([]string{"enabled", "--config-path", opts.configPath})
	require.NoError(t, cmd.Execute())
}
