//
// chesscore - a move generation and search engine core in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
// Copyright (c) 2026 chesscore contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package magicio reads and writes the binary magic-table file format of
// spec.md 6.1: 64 fixed-size records (mask, magic, index_bits) followed by
// a flat table of move entries. This is the "loading two binary files"
// lifecycle spec.md 3.7 names as an alternative to embedding codegen
// output; internal/attacks.NewTables takes the embedding path by default,
// this package is exercised by cmd/magicgen and by round-trip tests.
//
// Grounded on original_source/move-gen/src/lookup.rs's load_rook_magics /
// load_bishop_magics, which define the exact byte layout: 17-byte records
// (8-byte BE mask, 8-byte BE magic, 1-byte index_bits) then
// 64 * (1<<maxIndexBits) big-endian u64 move entries, table[sq][index].
package magicio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	. "github.com/dkeller/chesscore/internal/types"
)

const recordSize = 17 // 8 + 8 + 1 bytes, no padding

// Save writes magics to path using maxIndexBits as the fixed per-square
// table width (S in spec.md 6.1: 12 for rook, 9 for bishop). Per-square
// tables smaller than 1<<maxIndexBits are zero-padded at the tail; the
// index_bits field recorded for that square tells the reader how many of
// those entries are meaningful.
func Save(path string, magics *[64]Magic, maxIndexBits uint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("magicio: creating %s: %w", path, err)
	}
	defer f.Close()

	header := make([]byte, recordSize)
	for sq := 0; sq < 64; sq++ {
		m := &magics[sq]
		binary.BigEndian.PutUint64(header[0:8], uint64(m.Mask))
		binary.BigEndian.PutUint64(header[8:16], m.MagicNum)
		header[16] = byte(m.IndexBits)
		if _, err := f.Write(header); err != nil {
			return fmt.Errorf("magicio: writing record %d: %w", sq, err)
		}
	}

	entry := make([]byte, 8)
	tableWidth := 1 << maxIndexBits
	for sq := 0; sq < 64; sq++ {
		m := &magics[sq]
		for i := 0; i < tableWidth; i++ {
			var v Bitboard
			if i < len(m.Attacks) {
				v = m.Attacks[i]
			}
			binary.BigEndian.PutUint64(entry, uint64(v))
			if _, err := f.Write(entry); err != nil {
				return fmt.Errorf("magicio: writing table for square %d: %w", sq, err)
			}
		}
	}
	return nil
}

// Load reads a binary magic-table file produced by Save (or by the
// original offline Rust generator in the same format) into 64 Magic
// entries. A missing, truncated, or wrong-sized file is a configuration
// error (spec.md 7), fatal at engine start; Load returns it rather than
// panicking so the caller decides how to report and exit.
func Load(path string, maxIndexBits uint) (*[64]Magic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("magicio: opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("magicio: stat %s: %w", path, err)
	}
	tableWidth := 1 << maxIndexBits
	wantSize := int64(64*recordSize) + int64(64*tableWidth*8)
	if info.Size() != wantSize {
		return nil, fmt.Errorf("magicio: %s has size %d, want %d (truncated or wrong format)", path, info.Size(), wantSize)
	}

	var magics [64]Magic
	header := make([]byte, recordSize)
	for sq := 0; sq < 64; sq++ {
		if _, err := io.ReadFull(f, header); err != nil {
			return nil, fmt.Errorf("magicio: reading record %d: %w", sq, err)
		}
		magics[sq].Mask = Bitboard(binary.BigEndian.Uint64(header[0:8]))
		magics[sq].MagicNum = binary.BigEndian.Uint64(header[8:16])
		magics[sq].IndexBits = uint(header[16])
		if magics[sq].IndexBits > maxIndexBits {
			return nil, fmt.Errorf("magicio: square %d index_bits %d exceeds max %d", sq, magics[sq].IndexBits, maxIndexBits)
		}
	}

	entry := make([]byte, 8)
	for sq := 0; sq < 64; sq++ {
		size := 1 << magics[sq].IndexBits
		magics[sq].Attacks = make([]Bitboard, size)
		for i := 0; i < tableWidth; i++ {
			if _, err := io.ReadFull(f, entry); err != nil {
				return nil, fmt.Errorf("magicio: reading table for square %d: %w", sq, err)
			}
			if i < size {
				magics[sq].Attacks[i] = Bitboard(binary.BigEndian.Uint64(entry))
			}
		}
	}
	return &magics, nil
}
