// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bg3tools/bg3mod/internal/config"
	"github.com/bg3tools/bg3mod/internal/logger"
	"github.com/bg3tools/bg3mod/modmeta"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "bg3mod",
		Short:         "Manage the Baldur's Gate 3 enabled-mod list",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.SetVerbose(opts.verbose)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config-path", "c", "config.toml", "path to the configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newInfoJSONCmd(),
		newAvailableCmd(opts),
		newEnabledCmd(opts),
		newEnableCmd(opts),
		newDisableCmd(opts),
		newOrderCmd(opts),
	)

	return cmd
}

// loadConfig reads the configuration named by the root flags.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	return config.Load(o.configPath)
}

// printMods writes one "index - name" line per mod to stdout.
func printMods(mods []modmeta.ModInfo) {
	for i := range mods {
		fmt.Fprintf(os.Stdout, "%d - %s\n", i, mods[i].Name)
	}
}
