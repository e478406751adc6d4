// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package lspk

import (
	"encoding/binary"
	"fmt"
	"io"
)

// LSPK format constants
const (
	// Magic signature "LSPK" in little-endian
	lspkMagic = 0x4B50534C

	// Format versions
	Version15 = 15 // Divinity: Original Sin 2
	Version16 = 16 // Baldur's Gate 3 early access
	Version18 = 18 // Baldur's Gate 3 release

	// Fixed header read size. Version 15 uses 38 bytes, versions 16 and 18
	// use 40; the directory always starts past byte 44 so reading the full
	// window is safe for every version.
	headerSize = 44

	// Directory record sizes per version
	recordSizeV15 = 296
	recordSizeV18 = 272

	// Directory sub-header: entry count (u32) + compressed payload size (u32)
	fileListHeaderSize = 8

	// File entry flag bits. The v18 layout stores them at 8-bit width with
	// identical meanings.
	FlagZlib     = 0x01 // payload is a zlib stream
	FlagLZ4      = 0x02 // payload is an LZ4 block
	FlagFast     = 0x10 // compression level hint, informational
	FlagDefault  = 0x20 // compression level hint, informational
	FlagMaxLevel = 0x40 // compression level hint, informational
)

// Header is the normalized LSPK archive header. Version 15 archives carry
// no part count; it defaults to 1.
type Header struct {
	Version   uint32
	DirOffset uint64   // byte offset of the compressed directory
	DirSize   uint32   // size of the directory region in bytes
	Flags     byte     // content flags, informational
	Priority  byte     // load priority, informational
	Hash      [16]byte // archive identity hash
	Parts     uint16   // number of archive parts
}

// recordSize returns the fixed directory record width for the header's
// format version.
func (h *Header) recordSize() int {
	if h.Version == Version18 {
		return recordSizeV18
	}
	return recordSizeV15
}

// ReadHeader reads and validates the archive header from the start of the
// stream. It fails with ErrBadSignature or ErrUnsupportedVersion without
// returning a partial header.
func ReadHeader(r io.ReadSeeker) (*Header, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to header: %w", err)
	}

	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	if binary.LittleEndian.Uint32(buf[0:4]) != lspkMagic {
		return nil, ErrBadSignature
	}

	version := binary.LittleEndian.Uint32(buf[4:8])
	switch version {
	case Version15, Version16, Version18:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	h := &Header{
		Version:   version,
		DirOffset: binary.LittleEndian.Uint64(buf[8:16]),
		DirSize:   binary.LittleEndian.Uint32(buf[16:20]),
		Flags:     buf[20],
		Priority:  buf[21],
		Parts:     1,
	}
	copy(h.Hash[:], buf[22:38])

	if version != Version15 {
		h.Parts = binary.LittleEndian.Uint16(buf[38:40])
	}

	return h, nil
}
