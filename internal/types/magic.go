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

package types

// MaxRookIndexBits and MaxBishopIndexBits are the global upper bounds
// spec.md 3.6/6.1 fixes for slider move-table sizing (12 for rooks, 9 for
// bishops). original_source's own Slider::index_bits() computes 13/11;
// this code base follows spec.md's stated bounds since the binary magic
// table format (spec.md 6.1) is sized against them.
const (
	MaxRookIndexBits   = 12
	MaxBishopIndexBits = 9
)

// Magic is the per-square magic bitboard entry of spec.md 3.6: the
// relevant blocker mask, the magic multiplier, the move table for every
// occupancy subset of the mask, and the number of bits the index uses.
type Magic struct {
	Mask      Bitboard
	MagicNum  uint64
	Attacks   []Bitboard
	IndexBits uint
}

// Index computes the magic index of blockers into m.Attacks (spec.md 4.3):
//   ((blockers & mask) * magic) >> (64 - index_bits)
func (m *Magic) Index(blockers Bitboard) uint64 {
	relevant := uint64(blockers & m.Mask)
	hash := relevant * m.MagicNum
	return hash >> (64 - m.IndexBits)
}

// AttacksFor returns the precomputed attack Bitboard for the given
// occupancy.
func (m *Magic) AttacksFor(blockers Bitboard) Bitboard {
	return m.Attacks[m.Index(blockers)]
}
