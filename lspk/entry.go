// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package lspk

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// EntryFlags is the file entry compression flag set. Version 18 stores the
// flags at 8-bit width; they are widened here so both layouts share one
// type. Unrecognized bits are preserved, not rejected.
type EntryFlags uint32

// IsLZ4 reports whether the payload is an LZ4 block.
func (f EntryFlags) IsLZ4() bool { return f&FlagLZ4 != 0 }

// IsZlib reports whether the payload is a zlib stream.
func (f EntryFlags) IsZlib() bool { return f&FlagZlib != 0 }

// FileEntry describes one file in the archive directory.
type FileEntry struct {
	Name           string // archive path, forward-slash separated
	Offset         uint64 // absolute byte offset of the payload
	SizeCompressed uint64 // payload size as stored
	Size           uint64 // payload size after decompression
	Part           uint32 // archive part index
	Flags          EntryFlags
	CRC            uint32 // v15/16 only, currently unused by the game
}

// trimName cuts a fixed-width NUL-padded name field at the first NUL byte.
func trimName(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}

// decodeEntryV15 decodes one 296-byte record of the version 15/16 layout:
// name[256] · offset u64 · compressed size u64 · uncompressed size u64 ·
// part u32 · flags u32 · crc u32 · reserved u32.
func decodeEntryV15(rec []byte) (FileEntry, error) {
	name := trimName(rec[0:256])
	if name == "" {
		return FileEntry{}, fmt.Errorf("%w: empty name", ErrRecordParse)
	}

	return FileEntry{
		Name:           name,
		Offset:         binary.LittleEndian.Uint64(rec[256:264]),
		SizeCompressed: binary.LittleEndian.Uint64(rec[264:272]),
		Size:           binary.LittleEndian.Uint64(rec[272:280]),
		Part:           binary.LittleEndian.Uint32(rec[280:284]),
		Flags:          EntryFlags(binary.LittleEndian.Uint32(rec[284:288])),
		CRC:            binary.LittleEndian.Uint32(rec[288:292]),
	}, nil
}

// decodeEntryV18 decodes one 272-byte record of the version 18 layout:
// name[256] · offset-low u32 · offset-high u16 · part u8 · flags u8 ·
// compressed size u32 · uncompressed size u32. The payload offset is
// low | high<<32.
func decodeEntryV18(rec []byte) (FileEntry, error) {
	name := trimName(rec[0:256])
	if name == "" {
		return FileEntry{}, fmt.Errorf("%w: empty name", ErrRecordParse)
	}

	offsetLow := binary.LittleEndian.Uint32(rec[256:260])
	offsetHigh := binary.LittleEndian.Uint16(rec[260:262])

	return FileEntry{
		Name:           name,
		Offset:         uint64(offsetLow) | uint64(offsetHigh)<<32,
		Part:           uint32(rec[262]),
		Flags:          EntryFlags(rec[263]),
		SizeCompressed: uint64(binary.LittleEndian.Uint32(rec[264:268])),
		Size:           uint64(binary.LittleEndian.Uint32(rec[268:272])),
	}, nil
}
