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

// Package position holds the full game state (spec.md 3.4) and the
// FEN codec (spec.md 6.2), an external collaborator used only at
// setup/serialization boundaries.
//
// Unlike the teacher's internal/position.Position, this Position carries
// no undo-history stack, no piece-square tables, and no game-phase
// counter: spec.md's Non-goals explicitly exclude incremental make/unmake
// ("the core clones positions") and the evaluator is material-only
// (spec.md 4.7), so there is nothing for those fields to serve here.
package position

import (
	. "github.com/dkeller/chesscore/internal/types"
)

// Position is a complete chess position. MakeMove returns a new Position
// rather than mutating the receiver in place.
type Position struct {
	Pieces   [2][6]Bitboard // [color][piece type]
	Occupied Bitboard

	Turn           Color
	Castling       CastlingRights
	EnPassant      Square // SqNone if not set
	HalfmoveClock  int
	FullmoveNumber int
}

// NewEmpty returns a Position with no pieces, White to move, no castling
// rights, and no en-passant target. Used by the FEN parser.
func NewEmpty() *Position {
	return &Position{
		Turn:           White,
		Castling:       CastlingNone,
		EnPassant:      SqNone,
		HalfmoveClock:  0,
		FullmoveNumber: 1,
	}
}

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartPos returns the standard chess starting position.
func StartPos() *Position {
	pos, err := ParseFEN(StartFen)
	if err != nil {
		panic("position: built-in starting FEN failed to parse: " + err.Error())
	}
	return pos
}

// Clone returns a deep copy of p. Every field is a value type (arrays of
// Bitboard, scalars), so a plain struct copy already clones completely;
// MakeMove relies on exactly this instead of an undo stack.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

// Occupation returns the union of all of color c's piece bitboards.
func (p *Position) Occupation(c Color) Bitboard {
	var bb Bitboard
	for pt := Pawn; pt < PtNone; pt++ {
		bb |= p.Pieces[c][pt]
	}
	return bb
}

// Enemy returns the color not to move.
func (p *Position) Enemy() Color {
	return p.Turn.Flip()
}

// PieceAt returns the piece occupying sq and true, or (NoPiece, false) if
// sq is empty.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if !p.Occupied.Has(sq) {
		return NoPiece, false
	}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < PtNone; pt++ {
			if p.Pieces[c][pt].Has(sq) {
				return Piece{Type: pt, Color: c}, true
			}
		}
	}
	// Occupied disagrees with Pieces: an invariant violation (spec.md
	// 3.4), which is a programming error, not a game condition.
	panic("position: occupied bit set with no matching piece bitboard")
}

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.Pieces[c][King].Msb()
}

// addPiece places pc on sq, updating Occupied. Callers must ensure sq is
// currently empty.
func (p *Position) addPiece(sq Square, pc Piece) {
	p.Pieces[pc.Color][pc.Type] |= SquareBb(sq)
	p.Occupied |= SquareBb(sq)
}

// removePiece removes pc from sq, updating Occupied. Callers must ensure
// pc actually occupies sq.
func (p *Position) removePiece(sq Square, pc Piece) {
	p.Pieces[pc.Color][pc.Type] &^= SquareBb(sq)
	p.Occupied &^= SquareBb(sq)
}
