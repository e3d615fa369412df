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

// PieceType is a chess piece kind, independent of color.
//
// Ordering follows spec.md 3.3 (Pawn=0..King=5) rather than the older
// king-first ordering used elsewhere in this code base's history, since it
// is the ordering the position's piece bitboards and the evaluation code
// index by.
type PieceType uint8

// The six piece kinds plus the PtNone sentinel.
const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
	PtLength = PtNone
)

// IsValid reports whether pt is one of the six real piece kinds.
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}

const pieceTypeChars = "pnbrqk"

// Char returns the lower-case FEN piece letter for pt ('-' if invalid).
func (pt PieceType) Char() byte {
	if !pt.IsValid() {
		return '-'
	}
	return pieceTypeChars[pt]
}

func (pt PieceType) String() string {
	return string(pt.Char())
}

// Value is the material value of a PieceType used by the material-only
// evaluator (spec.md 4.7): P=1, N=3, B=3, R=5, Q=9, K=100.
func (pt PieceType) Value() int {
	switch pt {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	case King:
		return 100
	default:
		return 0
	}
}

// Piece is a PieceType owned by a Color, e.g. a White Knight.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece represents an empty square.
var NoPiece = Piece{Type: PtNone, Color: ColorNone}

// IsValid reports whether p names a real piece.
func (p Piece) IsValid() bool {
	return p.Type.IsValid() && p.Color.IsValid()
}

// Char returns the FEN character for p: upper case for White, lower for
// Black, '-' if p is NoPiece.
func (p Piece) Char() byte {
	if !p.IsValid() {
		return '-'
	}
	c := p.Type.Char()
	if p.Color == White {
		return c - ('a' - 'A')
	}
	return c
}

func (p Piece) String() string {
	return string(p.Char())
}

// pieceFromChar maps a FEN piece letter to a Piece; ok is false for any
// character that is not a valid FEN piece letter.
func pieceFromChar(c byte) (Piece, bool) {
	color := White
	lc := c
	if c >= 'a' && c <= 'z' {
		color = Black
	} else if c >= 'A' && c <= 'Z' {
		lc = c + ('a' - 'A')
	}
	for pt := Pawn; pt < PtNone; pt++ {
		if pieceTypeChars[pt] == lc {
			return Piece{Type: pt, Color: color}, true
		}
	}
	return NoPiece, false
}

// PieceFromChar exposes pieceFromChar to other packages (used by the FEN
// codec in internal/position).
func PieceFromChar(c byte) (Piece, bool) {
	return pieceFromChar(c)
}
