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

package position

import (
	. "github.com/dkeller/chesscore/internal/types"
)

// castleRookFrom and castleRookTo name the rook's from/to squares for each castling kind,
// indexed by [color][kingside?1:0].
var castleRookFrom = [2][2]Square{
	White: {NewSquare(FileA, Rank1), NewSquare(FileH, Rank1)},
	Black: {NewSquare(FileA, Rank8), NewSquare(FileH, Rank8)},
}
var castleRookTo = [2][2]Square{
	White: {NewSquare(FileD, Rank1), NewSquare(FileF, Rank1)},
	Black: {NewSquare(FileD, Rank8), NewSquare(FileF, Rank8)},
}

// MakeMove applies m to p and returns the resulting Position, following
// spec.md 4.6. p itself is never mutated: the new state starts from
// p.Clone(), which is a plain struct copy since every field is a value
// type (spec.md's Non-goal on incremental make/unmake).
//
// MakeMove panics if from has no piece, or the piece there does not
// belong to the side to move: spec.md 7 classifies this as a programming
// error, not a game condition, so it is not returned as an error value.
func (p *Position) MakeMove(m Move) *Position {
	from := m.From()
	to := m.To()

	mover, ok := p.PieceAt(from)
	if !ok {
		panic("position: MakeMove called with no piece on the from square")
	}
	if mover.Color != p.Turn {
		panic("position: MakeMove called with a piece that does not belong to the side to move")
	}

	np := p.Clone()
	np.removePiece(from, mover)

	switch m.Kind() {
	case EnPassant:
		capSq, _ := to.Offset(-int(p.Turn.Direction())/8, 0)
		capturedPawn := Piece{Type: Pawn, Color: p.Enemy()}
		np.removePiece(capSq, capturedPawn)
	case Capture, PromotionCapture:
		captured, capOk := p.PieceAt(to)
		if !capOk {
			panic("position: capture move has no piece on the destination square")
		}
		np.removePiece(to, captured)
	}

	placed := mover
	if m.Kind() == Promotion || m.Kind() == PromotionCapture {
		placed = Piece{Type: m.Promotion(), Color: mover.Color}
	}
	np.addPiece(to, placed)

	if m.IsCastle() {
		side := 0
		if m.Kind() == CastleKingside {
			side = 1
		}
		rook := Piece{Type: Rook, Color: mover.Color}
		np.removePiece(castleRookFrom[mover.Color][side], rook)
		np.addPiece(castleRookTo[mover.Color][side], rook)
	}

	np.updateCastlingRights(from, to, mover)

	if m.Kind() == DoublePush {
		skipped, _ := from.Offset(int(p.Turn.Direction())/8, 0)
		np.EnPassant = skipped
	} else {
		np.EnPassant = SqNone
	}

	if mover.Type == Pawn || m.IsCapture() {
		np.HalfmoveClock = 0
	} else {
		np.HalfmoveClock = p.HalfmoveClock + 1
	}

	if p.Turn == Black {
		np.FullmoveNumber = p.FullmoveNumber + 1
	}
	np.Turn = p.Turn.Flip()

	return np
}

// updateCastlingRights clears rights invalidated by this move: a king
// move clears both of its own side's rights; a rook move from (or
// capture on) a corner clears that corner's right.
func (np *Position) updateCastlingRights(from, to Square, mover Piece) {
	if mover.Type == King {
		np.Castling = np.Castling.Remove(KingsideFor(mover.Color) | QueensideFor(mover.Color))
	}
	clearIfCorner := func(sq Square) {
		switch sq {
		case castleRookFrom[White][0]:
			np.Castling = np.Castling.Remove(WhiteQueenside)
		case castleRookFrom[White][1]:
			np.Castling = np.Castling.Remove(WhiteKingside)
		case castleRookFrom[Black][0]:
			np.Castling = np.Castling.Remove(BlackQueenside)
		case castleRookFrom[Black][1]:
			np.Castling = np.Castling.Remove(BlackKingside)
		}
	}
	clearIfCorner(from)
	clearIfCorner(to)
}
