// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

/*
Package modmeta extracts mod metadata from LSPK archives and reads and
writes the game's modsettings.lsx document.

Each mod archive embeds a meta.lsx XML fragment describing the mod's
identity (UUID, name, folder, content hash, version). ReadModInfo parses
one such fragment with a streaming element-id stack; ExtractMods locates
and parses every meta.lsx in an open archive.

The settings document holds the ordered list of enabled mods in two
subtrees: ModOrder (desired play order, one UUID per entry) and Mods (full
descriptor data). ReadModSettings returns the descriptors sorted by play
order; mods present under Mods but missing from ModOrder sort first, in
document order. WriteModSettings regenerates the complete document; there
is no incremental patch path.
*/
package modmeta
