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

// Package types holds the board primitives shared by every other package:
// Bitboard, Square, File, Rank, Piece, Color, CastlingRights and Move.
package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit set where bit i represents Square i in
// little-endian rank-file order (A1=0, H1=7, A8=56, H8=63).
type Bitboard uint64

// Empty is the Bitboard with no bits set.
const Empty Bitboard = 0

// Universe is the Bitboard with all 64 bits set.
const Universe Bitboard = 0xFFFFFFFFFFFFFFFF

// File bitboards, A through H.
const (
	FileABb Bitboard = 0x0101010101010101 << iota
	FileBBb
	FileCBb
	FileDBb
	FileEBb
	FileFBb
	FileGBb
	FileHBb
)

// Rank bitboards, 1 through 8.
const (
	Rank1Bb Bitboard = 0xFF << (8 * iota)
	Rank2Bb
	Rank3Bb
	Rank4Bb
	Rank5Bb
	Rank6Bb
	Rank7Bb
	Rank8Bb
)

var fileBbOf = [8]Bitboard{FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb}
var rankBbOf = [8]Bitboard{Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb}

// complements used repeatedly by shift and attack generator code.
const (
	notFileABb = ^FileABb
	notFileHBb = ^FileHBb
)

// SquareBb returns the single-bit Bitboard for sq.
func SquareBb(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// Has reports whether sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&SquareBb(sq) != 0
}

// Empty reports whether no bit is set.
func (b Bitboard) Empty() bool {
	return b == 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit.
// Calling it on an empty Bitboard returns SqNone.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the square of the most significant set bit.
// Calling it on an empty Bitboard returns SqNone.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set bit's square.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// Squares returns the set bits as a slice of squares in ascending order.
// Hot paths should prefer PopLsb on a working copy instead.
func (b Bitboard) Squares() []Square {
	work := b
	out := make([]Square, 0, work.PopCount())
	for work != 0 {
		out = append(out, work.PopLsb())
	}
	return out
}

// Direction is a compass shift applied to a Bitboard.
type Direction int8

// The eight compass directions used by attack generation.
const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = 9
	NorthWest Direction = 7
	SouthEast Direction = -7
	SouthWest Direction = -9
)

// Shift moves every bit in b one step in direction d, clipping bits that
// would wrap around a board edge so off-board bits are always zero
// afterwards (spec.md 3.1 invariant).
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b << 1) & notFileABb
	case West:
		return (b >> 1) & notFileHBb
	case NorthEast:
		return (b << 9) & notFileABb
	case NorthWest:
		return (b << 7) & notFileHBb
	case SouthEast:
		return (b >> 7) & notFileABb
	case SouthWest:
		return (b >> 9) & notFileHBb
	}
	return 0
}

// String renders the Bitboard as an 8x8 grid, rank 8 first, for debugging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sq := Square(r*8 + f)
			if b.Has(sq) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
