// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package lspk

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/pierrec/lz4/v4"
)

// ReadFileContent seeks to the entry's payload, reads exactly its stored
// size and decompresses it according to the entry flags. LZ4 takes
// precedence if both compression bits are set. The result is always exactly
// Size bytes long; anything else fails with ErrSizeMismatch.
func ReadFileContent(r io.ReadSeeker, e *FileEntry) ([]byte, error) {
	if _, err := r.Seek(int64(e.Offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to payload of %s: %w", e.Name, err)
	}

	buf := make([]byte, e.SizeCompressed)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read payload of %s: %w", e.Name, err)
	}

	switch {
	case e.Flags.IsLZ4():
		return decompressLZ4Block(buf, e.Size)
	case e.Flags.IsZlib():
		return decompressZlibStream(buf, e.Size)
	default:
		return buf, nil
	}
}

// decompressLZ4Block decompresses an LZ4 block to exactly size bytes.
func decompressLZ4Block(data []byte, size uint64) ([]byte, error) {
	if size == 0 {
		if len(data) != 0 {
			return nil, fmt.Errorf("%w: got data for zero-size entry", ErrSizeMismatch)
		}
		return nil, nil
	}

	result := make([]byte, size)
	n, err := lz4.UncompressBlock(data, result)
	if err != nil {
		return nil, fmt.Errorf("%w: lz4: %v", ErrDecompress, err)
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("%w: lz4 decompressed to %d bytes, want %d", ErrSizeMismatch, n, size)
	}
	return result, nil
}

// decompressZlibStream decompresses a zlib stream to end-of-stream and
// verifies the declared size afterwards.
func decompressZlibStream(data []byte, size uint64) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: zlib: %v", ErrDecompress, err)
	}
	defer zr.Close()

	result, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: zlib: %v", ErrDecompress, err)
	}
	if uint64(len(result)) != size {
		return nil, fmt.Errorf("%w: zlib decompressed to %d bytes, want %d", ErrSizeMismatch, len(result), size)
	}
	return result, nil
}
