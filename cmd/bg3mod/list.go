// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/bg3tools/bg3mod/internal/logger"
	"github.com/bg3tools/bg3mod/modmeta"
)

func newAvailableCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "available",
		Short: "List mods installed in the mods directory",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			log := logger.New("available")
			available, err := modmeta.ScanAvailable(cfg.ModsPath, log)
			if err != nil {
				return err
			}

			log.Info().Int("mods", len(available)).Msg("available mods")
			printMods(available)
			return nil
		},
	}
}

func newEnabledCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "enabled",
		Short: "List currently enabled mods in play order",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			enabled, err := readEnabled(cfg.SettingsPath())
			if err != nil {
				return err
			}

			log := logger.New("enabled")
			log.Info().Int("mods", len(enabled)).Msg("enabled mods")
			printMods(enabled)
			return nil
		},
	}
}
