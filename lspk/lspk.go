// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package lspk

import (
	"fmt"
	"iter"
	"os"
)

// Archive represents an open LSPK archive. It is strictly single-threaded:
// one caller at a time, blocking I/O, no shared mutable state beyond the
// retained directory buffer (which is read-only once decoded).
type Archive struct {
	file   *os.File
	header *Header
	list   *FileList
}

// Open opens an LSPK archive for reading. The header and the complete
// directory are decoded eagerly; payloads are read on demand.
func Open(path string) (*Archive, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	header, err := ReadHeader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("read header: %w", err)
	}

	list, err := ReadFileList(file, header)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("read directory: %w", err)
	}

	return &Archive{
		file:   file,
		header: header,
		list:   list,
	}, nil
}

// Header returns the parsed archive header.
func (a *Archive) Header() *Header { return a.header }

// Entries iterates the archive directory. See FileList.Entries for the
// per-record error contract.
func (a *Archive) Entries() iter.Seq2[FileEntry, error] {
	return a.list.Entries()
}

// ReadFile extracts and decompresses one entry's payload.
func (a *Archive) ReadFile(e *FileEntry) ([]byte, error) {
	return ReadFileContent(a.file, e)
}

// Close closes the underlying archive file.
func (a *Archive) Close() error {
	if a.file != nil {
		return a.file.Close()
	}
	return nil
}
