// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/bg3tools/bg3mod/internal/logger"
	"github.com/bg3tools/bg3mod/modmeta"
)

func newEnableCmd(opts *rootOptions) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "enable",
		Short: "Enable installed mods whose name matches the pattern",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runEnable(opts, pattern)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "case-insensitive wildcard matched against mod names")
	cmd.MarkFlagRequired("pattern")

	return cmd
}

func runEnable(opts *rootOptions, pattern string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	match, err := newNameMatcher(pattern)
	if err != nil {
		return err
	}

	log := logger.New("enable")

	available, err := modmeta.ScanAvailable(cfg.ModsPath, log)
	if err != nil {
		return err
	}
	enabled, err := readEnabled(cfg.SettingsPath())
	if err != nil {
		return err
	}

	enabledUUIDs := make(map[string]struct{}, len(enabled))
	for i := range enabled {
		enabledUUIDs[enabled[i].UUID] = struct{}{}
	}

	var toEnable []modmeta.ModInfo
	for i := range available {
		if !match(available[i].Name) {
			continue
		}
		if _, already := enabledUUIDs[available[i].UUID]; already {
			continue
		}
		toEnable = append(toEnable, available[i])
	}

	if len(toEnable) == 0 {
		log.Error().Str("pattern", pattern).Msg("no matches for pattern or all matches already enabled")
		return nil
	}

	for i := range toEnable {
		log.Info().Str("mod", toEnable[i].Name).Msg("enable")
	}

	enabled = append(enabled, toEnable...)
	printMods(enabled)
	return writeEnabled(cfg.SettingsPath(), enabled)
}
