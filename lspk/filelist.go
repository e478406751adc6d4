// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package lspk

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"

	"github.com/pierrec/lz4/v4"
)

// FileList is the decoded archive directory. The decompressed record buffer
// is retained for the lifetime of the list; iteration re-slices it and is
// safe to restart, but the list is not designed for concurrent readers.
type FileList struct {
	version    uint32
	recordSize int
	count      int
	data       []byte
}

// ReadFileList seeks to the header's directory offset, reads the directory
// region and decompresses the record table. The table is always
// LZ4-compressed regardless of per-entry compression; a length or decode
// failure yields ErrDecompress.
func ReadFileList(r io.ReadSeeker, h *Header) (*FileList, error) {
	if _, err := r.Seek(int64(h.DirOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to directory: %w", err)
	}

	buf := make([]byte, h.DirSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	if len(buf) < fileListHeaderSize {
		return nil, fmt.Errorf("%w: directory region shorter than sub-header", ErrDecompress)
	}
	count := binary.LittleEndian.Uint32(buf[0:4])
	sizeCompressed := binary.LittleEndian.Uint32(buf[4:8])

	payload := buf[fileListHeaderSize:]
	if int(sizeCompressed) > len(payload) {
		return nil, fmt.Errorf("%w: compressed directory size %d exceeds region", ErrDecompress, sizeCompressed)
	}
	payload = payload[:sizeCompressed]

	list := &FileList{
		version:    h.Version,
		recordSize: h.recordSize(),
		count:      int(count),
	}

	expected := list.count * list.recordSize
	if expected == 0 {
		return list, nil
	}

	data := make([]byte, expected)
	n, err := lz4.UncompressBlock(payload, data)
	if err != nil {
		return nil, fmt.Errorf("%w: directory: %v", ErrDecompress, err)
	}
	if n != expected {
		return nil, fmt.Errorf("%w: directory decompressed to %d bytes, want %d", ErrDecompress, n, expected)
	}

	list.data = data
	return list, nil
}

// Count returns the number of directory records, including any that fail
// to decode.
func (l *FileList) Count() int { return l.count }

// Entries iterates the directory records in file order. A malformed record
// yields a zero FileEntry with a non-nil error wrapping ErrRecordParse;
// iteration then advances exactly one record width and continues, so a
// single corrupted record never hides the rest of the directory.
func (l *FileList) Entries() iter.Seq2[FileEntry, error] {
	return func(yield func(FileEntry, error) bool) {
		for i := 0; i < l.count; i++ {
			rec := l.data[i*l.recordSize : (i+1)*l.recordSize]

			var entry FileEntry
			var err error
			if l.version == Version18 {
				entry, err = decodeEntryV18(rec)
			} else {
				entry, err = decodeEntryV15(rec)
			}
			if err != nil {
				err = fmt.Errorf("record %d: %w", i, err)
			}

			if !yield(entry, err) {
				return
			}
		}
	}
}
