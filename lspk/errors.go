// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package lspk

import "errors"

var (
	// ErrBadSignature is returned when the archive does not start with the
	// LSPK signature.
	ErrBadSignature = errors.New("lspk: bad signature")

	// ErrUnsupportedVersion is returned when the header declares a format
	// version other than 15, 16 or 18.
	ErrUnsupportedVersion = errors.New("lspk: unsupported format version")

	// ErrDecompress is returned when a compressed directory or payload
	// cannot be decoded.
	ErrDecompress = errors.New("lspk: decompress failed")

	// ErrSizeMismatch is returned when decompressed content does not match
	// the size declared by its file entry.
	ErrSizeMismatch = errors.New("lspk: decompressed size mismatch")

	// ErrRecordParse is returned for a single malformed directory record.
	// Iteration continues with the next record; the failure never aborts
	// the whole directory.
	ErrRecordParse = errors.New("lspk: malformed file entry record")
)
