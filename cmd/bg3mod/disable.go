// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/bg3tools/bg3mod/internal/logger"
)

func newDisableCmd(opts *rootOptions) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "disable",
		Short: "Disable enabled mods whose name matches the pattern",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runDisable(opts, pattern)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "case-insensitive wildcard matched against mod names")
	cmd.MarkFlagRequired("pattern")

	return cmd
}

func runDisable(opts *rootOptions, pattern string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	match, err := newNameMatcher(pattern)
	if err != nil {
		return err
	}

	log := logger.New("disable")

	enabled, err := readEnabled(cfg.SettingsPath())
	if err != nil {
		return err
	}

	// The game's own modules always stay enabled.
	kept := enabled[:0:0]
	disabledAny := false
	for i := range enabled {
		if !enabled[i].IsInternal() && match(enabled[i].Name) {
			log.Info().Str("mod", enabled[i].Name).Msg("disable")
			disabledAny = true
			continue
		}
		kept = append(kept, enabled[i])
	}

	if !disabledAny {
		log.Error().Str("pattern", pattern).Msg("no matches for pattern in enabled mods")
		return nil
	}

	printMods(kept)
	return writeEnabled(cfg.SettingsPath(), kept)
}
