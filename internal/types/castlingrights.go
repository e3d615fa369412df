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

// CastlingRights is a 4-bit mask of which castling moves are still
// available (spec.md 3.3): WK=1, WQ=2, BK=4, BQ=8.
type CastlingRights uint8

// The four castling rights bits and the empty/full masks.
const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	CastlingNone CastlingRights = 0
	CastlingAll  CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether cr grants the given right.
func (cr CastlingRights) Has(right CastlingRights) bool {
	return cr&right != 0
}

// Remove clears the given right(s) and returns the resulting mask.
func (cr CastlingRights) Remove(right CastlingRights) CastlingRights {
	return cr &^ right
}

// KingsideFor returns the kingside castling right belonging to c.
func KingsideFor(c Color) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideFor returns the queenside castling right belonging to c.
func QueensideFor(c Color) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// String renders cr in FEN order "KQkq", using "-" for no rights.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	out := make([]byte, 0, 4)
	if cr.Has(WhiteKingside) {
		out = append(out, 'K')
	}
	if cr.Has(WhiteQueenside) {
		out = append(out, 'Q')
	}
	if cr.Has(BlackKingside) {
		out = append(out, 'k')
	}
	if cr.Has(BlackQueenside) {
		out = append(out, 'q')
	}
	return string(out)
}
