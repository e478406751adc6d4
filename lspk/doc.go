// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

/*
Package lspk provides pure Go support for reading LSPK (.pak) archives.

LSPK is the package format used by Larian Studios titles such as
Baldur's Gate 3. An archive holds a fixed little-endian header, an
LZ4-compressed file directory, and individually compressed file payloads.
This package supports format versions 15, 16 and 18, which covers archives
from Divinity: Original Sin 2 through current Baldur's Gate 3 releases.

# Features

  - Header parsing with per-version layout dispatch
  - Directory decoding with per-record corruption recovery
  - On-demand payload extraction (LZ4 block, zlib stream, or stored)
  - Read-only: archive creation and repacking are out of scope

# Basic Usage

Reading an archive:

	archive, err := lspk.Open("MyMod.pak")
	if err != nil {
		log.Fatal(err)
	}
	defer archive.Close()

	for entry, err := range archive.Entries() {
		if err != nil {
			continue // single corrupted directory record
		}
		data, err := archive.ReadFile(&entry)
		...
	}

The lower-level ReadHeader, ReadFileList and ReadFileContent functions
operate on any io.ReadSeeker for callers that manage streams themselves.

# Limitations

  - No support for multi-part archives beyond exposing the part fields
  - No support for compression schemes other than LZ4 block and zlib
  - No archive writing
*/
package lspk
