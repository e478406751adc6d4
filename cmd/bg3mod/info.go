// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bg3tools/bg3mod/internal/logger"
	"github.com/bg3tools/bg3mod/lspk"
	"github.com/bg3tools/bg3mod/modmeta"
)

func newInfoJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info-json <archive>",
		Short: "Print one archive's mod metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInfoJSON(args[0])
		},
	}
}

func runInfoJSON(path string) error {
	log := logger.New("info")

	archive, err := lspk.Open(path)
	if err != nil {
		return err
	}
	defer archive.Close()

	var info *modmeta.ModInfo
	for entry, err := range archive.Entries() {
		if err != nil {
			log.Warn().Err(err).Msg("skipping malformed directory record")
			continue
		}
		if !strings.HasSuffix(entry.Name, "/meta.lsx") {
			continue
		}

		content, err := archive.ReadFile(&entry)
		if err != nil {
			return err
		}
		if info, err = modmeta.ReadModInfo(content); err != nil {
			return err
		}
		break
	}

	if info == nil {
		log.Error().Str("archive", path).Msg("no mod metadata found")
		return nil
	}

	out, err := json.MarshalIndent(map[string][]*modmeta.ModInfo{"mods": {info}}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
