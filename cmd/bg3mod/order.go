// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package main

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/bg3tools/bg3mod/internal/logger"
	"github.com/bg3tools/bg3mod/modmeta"
)

func newOrderCmd(opts *rootOptions) *cobra.Command {
	var pattern string
	var position uint32

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Move matching enabled mods to a load-order position",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runOrder(opts, pattern, position)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "case-insensitive wildcard matched against mod names")
	cmd.Flags().Uint32VarP(&position, "order", "o", 0, "target position in the load order")
	cmd.MarkFlagRequired("pattern")
	cmd.MarkFlagRequired("order")

	return cmd
}

func runOrder(opts *rootOptions, pattern string, position uint32) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	match, err := newNameMatcher(pattern)
	if err != nil {
		return err
	}

	log := logger.New("order")

	enabled, err := readEnabled(cfg.SettingsPath())
	if err != nil {
		return err
	}

	var kept, moved []modmeta.ModInfo
	for i := range enabled {
		if !enabled[i].IsInternal() && match(enabled[i].Name) {
			moved = append(moved, enabled[i])
			continue
		}
		kept = append(kept, enabled[i])
	}

	if len(moved) == 0 {
		log.Error().Str("pattern", pattern).Msg("no matches for pattern in enabled mods")
		return nil
	}

	for i := range moved {
		log.Info().Str("mod", moved[i].Name).Msg("order")
	}

	// Positions are clamped so internal modules at the head are never
	// displaced and the insert stays within the list.
	at := int(position)
	if at < 1 {
		at = 1
	}
	if at > len(kept) {
		at = len(kept)
	}

	result := slices.Insert(kept, at, moved...)
	printMods(result)
	return writeEnabled(cfg.SettingsPath(), result)
}
