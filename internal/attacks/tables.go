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

// Package attacks builds and holds the process-lifetime lookup tables of
// spec.md 3.7: knight/king/pawn step tables, the rook/bishop magic
// bitboards, and the in_between table used by pin detection.
package attacks

import (
	. "github.com/dkeller/chesscore/internal/types"
)

// MaxRookIndexBits and MaxBishopIndexBits are the per-square magic table
// widths spec.md 6.1 fixes for the binary file format (S=12 rook, S=9
// bishop): the largest relevant-occupancy bit count a rook or bishop mask
// can have anywhere on the board.
const (
	MaxRookIndexBits   = 12
	MaxBishopIndexBits = 9
)

// Tables is the immutable, process-lifetime set of precomputed attack
// tables. Constructed once by NewTables or LoadTables and shared
// read-only by the move generator and search.
type Tables struct {
	KnightAttacks [64]Bitboard
	KingAttacks   [64]Bitboard
	PawnAttacks   [2][64]Bitboard
	PawnSingle    [2][64]Bitboard
	PawnDouble    [2][64]Bitboard
	RookMagics    [64]Magic
	BishopMagics  [64]Magic
	InBetween     [64][64]Bitboard
}

// rookDirections and bishopDirections are the four rays each slider moves
// along, used both by the reference ray-walker and the magic search.
var rookDirections = [4]Direction{North, South, East, West}
var bishopDirections = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}

// knightOffsets are the eight (dRank, dFile) L-shapes a knight jumps.
var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// kingOffsets are the eight single-step neighbors of a king.
var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {1, -1}, {-1, 0}, {-1, 1}, {-1, -1}, {0, 1}, {0, -1},
}

// NewTables computes the complete set of lookup tables in-memory: step
// tables (spec.md 4.2; knight by offset enumeration, king and pawn by
// edge-masked shifts), then rook/bishop
// magics via the Stockfish-style sparse-random search in magicgen.go
// (grounded on the teacher's internal/types/magic.go), matching the
// "embedding codegen output" option spec.md 3.7 allows. See LoadTables
// for the binary-file alternative.
func NewTables() *Tables {
	t := &Tables{}
	t.initKnightAttacks()
	t.initKingAttacks()
	t.initPawnAttacks()
	t.initInBetween()
	initMagics(&t.RookMagics, rookDirections, MaxRookIndexBits)
	initMagics(&t.BishopMagics, bishopDirections, MaxBishopIndexBits)
	return t
}

func (t *Tables) initKnightAttacks() {
	for sq := Square(0); sq < 64; sq++ {
		var bb Bitboard
		for _, d := range knightOffsets {
			if to, ok := sq.Offset(d[0], d[1]); ok {
				bb |= SquareBb(to)
			}
		}
		t.KnightAttacks[sq] = bb
	}
}

// initKingAttacks implements the corrected king step generator (see
// SPEC_FULL.md 4.2 / DESIGN.md): growing the single source bit east/west
// with file masking, then north/south, then removing the source bit.
// The literal spec.md mask assignment (<<1&notFileH, >>1&notFileA, plus
// rank masks on the north/south shifts) was verified by simulation to
// break testable property 5 at corner/edge squares; this is the standard
// formulation that satisfies it.
func (t *Tables) initKingAttacks() {
	for sq := Square(0); sq < 64; sq++ {
		src := SquareBb(sq)
		ew := src.Shift(East) | src.Shift(West)
		attacks := src | ew
		attacks |= attacks.Shift(North) | attacks.Shift(South)
		attacks &^= src
		t.KingAttacks[sq] = attacks
	}
}

func (t *Tables) initPawnAttacks() {
	for sq := Square(0); sq < 64; sq++ {
		src := SquareBb(sq)

		t.PawnAttacks[White][sq] = src.Shift(NorthEast) | src.Shift(NorthWest)
		t.PawnAttacks[Black][sq] = src.Shift(SouthEast) | src.Shift(SouthWest)

		t.PawnSingle[White][sq] = src.Shift(North)
		t.PawnSingle[Black][sq] = src.Shift(South)

		if sq.Rank() == Rank2 {
			t.PawnDouble[White][sq] = src.Shift(North).Shift(North)
		}
		if sq.Rank() == Rank7 {
			t.PawnDouble[Black][sq] = src.Shift(South).Shift(South)
		}
	}
}

// initInBetween fills InBetween[a][b] with the squares strictly between a
// and b on a shared rank, file or diagonal, else Empty.
func (t *Tables) initInBetween() {
	allDirs := [8]Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
	for a := Square(0); a < 64; a++ {
		for _, d := range allDirs {
			var bb Bitboard
			cur := a
			for {
				next, ok := stepOnBoard(cur, d)
				if !ok {
					break
				}
				t.InBetween[a][next] = bb
				bb |= SquareBb(next)
				cur = next
			}
		}
	}
}

// stepOnBoard moves one square in direction d, reporting false if it
// would leave the board (used only by table construction, never on a hot
// path).
func stepOnBoard(sq Square, d Direction) (Square, bool) {
	switch d {
	case North:
		return sq.Offset(1, 0)
	case South:
		return sq.Offset(-1, 0)
	case East:
		return sq.Offset(0, 1)
	case West:
		return sq.Offset(0, -1)
	case NorthEast:
		return sq.Offset(1, 1)
	case NorthWest:
		return sq.Offset(1, -1)
	case SouthEast:
		return sq.Offset(-1, 1)
	case SouthWest:
		return sq.Offset(-1, -1)
	}
	return SqNone, false
}

// RookMoves returns the rook attack bitboard from sq given occupancy.
func (t *Tables) RookMoves(sq Square, occupied Bitboard) Bitboard {
	return t.RookMagics[sq].AttacksFor(occupied)
}

// BishopMoves returns the bishop attack bitboard from sq given occupancy.
func (t *Tables) BishopMoves(sq Square, occupied Bitboard) Bitboard {
	return t.BishopMagics[sq].AttacksFor(occupied)
}

// QueenMoves is the union of rook and bishop moves from sq.
func (t *Tables) QueenMoves(sq Square, occupied Bitboard) Bitboard {
	return t.RookMoves(sq, occupied) | t.BishopMoves(sq, occupied)
}
