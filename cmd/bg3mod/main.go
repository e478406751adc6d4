// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

// Command bg3mod manages the enabled-mod list of Baldur's Gate 3 from the
// command line: it scans installed .pak archives for mod metadata and
// rewrites the game's modsettings.lsx document.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
