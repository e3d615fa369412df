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

package movegen

import (
	"github.com/dkeller/chesscore/internal/moveslice"
	"github.com/dkeller/chesscore/internal/position"
	. "github.com/dkeller/chesscore/internal/types"
)

// promotionPieces are the four pieces a pawn may promote to, queen first:
// queen dominates rook/bishop in nearly every position, so generating it
// first keeps a caller that only wants "the best-looking move" from having
// to scan past the others.
var promotionPieces = [4]PieceType{Queen, Knight, Rook, Bishop}

// genPawnMoves adds every pseudo-legal pawn push, double push, capture,
// en-passant capture and promotion for c, skipping pinned pawns (spec.md
// 4.5's simplified immobile-pin policy).
func (g *Generator) genPawnMoves(pos *position.Position, c Color, pinned map[Square]bool, moves *moveslice.MoveSlice) {
	t := g.Tables
	enemy := pos.Occupation(c.Flip())
	promoRank := c.PromotionRank()

	for _, from := range pos.Pieces[c][Pawn].Squares() {
		if pinned[from] {
			continue
		}

		single := t.PawnSingle[c][from]
		if to := single.Lsb(); to.IsValid() && !pos.Occupied.Has(to) {
			g.addPawnMove(moves, from, to, promoRank)
			if dbl := t.PawnDouble[c][from]; !dbl.Empty() {
				if dblTo := dbl.Lsb(); !pos.Occupied.Has(dblTo) {
					moves.PushBack(NewMove(from, dblTo, DoublePush))
				}
			}
		}

		for _, to := range (t.PawnAttacks[c][from] & enemy).Squares() {
			g.addPawnCapture(moves, from, to, promoRank)
		}

		if pos.EnPassant != SqNone && t.PawnAttacks[c][from].Has(pos.EnPassant) {
			moves.PushBack(NewMove(from, pos.EnPassant, EnPassant))
		}
	}
}

func (g *Generator) addPawnMove(moves *moveslice.MoveSlice, from, to Square, promoRank Rank) {
	if to.Rank() == promoRank {
		for _, promo := range promotionPieces {
			moves.PushBack(NewPromotionMove(from, to, Promotion, promo))
		}
		return
	}
	moves.PushBack(NewMove(from, to, Quiet))
}

func (g *Generator) addPawnCapture(moves *moveslice.MoveSlice, from, to Square, promoRank Rank) {
	if to.Rank() == promoRank {
		for _, promo := range promotionPieces {
			moves.PushBack(NewPromotionMove(from, to, PromotionCapture, promo))
		}
		return
	}
	moves.PushBack(NewMove(from, to, Capture))
}

// genKnightMoves adds every pseudo-legal knight move for c.
func (g *Generator) genKnightMoves(pos *position.Position, c Color, pinned map[Square]bool, moves *moveslice.MoveSlice) {
	own := pos.Occupation(c)
	enemy := pos.Occupation(c.Flip())
	for _, from := range pos.Pieces[c][Knight].Squares() {
		if pinned[from] {
			continue
		}
		for _, to := range (g.Tables.KnightAttacks[from] &^ own).Squares() {
			moves.PushBack(NewMove(from, to, kindFor(to, enemy)))
		}
	}
}

// genSliderMoves adds every pseudo-legal move for c's bishops, rooks or
// queens (pt selects which).
func (g *Generator) genSliderMoves(pos *position.Position, c Color, pt PieceType, pinned map[Square]bool, moves *moveslice.MoveSlice) {
	own := pos.Occupation(c)
	enemy := pos.Occupation(c.Flip())
	for _, from := range pos.Pieces[c][pt].Squares() {
		if pinned[from] {
			continue
		}
		var attacks Bitboard
		switch pt {
		case Bishop:
			attacks = g.Tables.BishopMoves(from, pos.Occupied)
		case Rook:
			attacks = g.Tables.RookMoves(from, pos.Occupied)
		case Queen:
			attacks = g.Tables.QueenMoves(from, pos.Occupied)
		}
		for _, to := range (attacks &^ own).Squares() {
			moves.PushBack(NewMove(from, to, kindFor(to, enemy)))
		}
	}
}

// genKingMoves adds every pseudo-legal king step for c, filtered by
// attacks_to_sq against the occupancy with the king itself removed so a
// slider's ray through the king's current square still covers its
// destination (spec.md 4.4 step 4). The final simulate-and-verify pass in
// GenerateLegalMoves is what actually rejects moves into check; this
// filter only prunes the obviously-illegal bulk of them.
func (g *Generator) genKingMoves(pos *position.Position, c Color, moves *moveslice.MoveSlice) {
	from := pos.KingSquare(c)
	own := pos.Occupation(c)
	enemy := pos.Occupation(c.Flip())
	occWithoutKing := pos.Occupied &^ SquareBb(from)

	for _, to := range (g.Tables.KingAttacks[from] &^ own).Squares() {
		if !g.attacksToWithOcc(pos, to, c.Flip(), occWithoutKing).Empty() {
			continue
		}
		moves.PushBack(NewMove(from, to, kindFor(to, enemy)))
	}
}

// genCastlingMoves adds a pseudo-legal castling move for each right c
// still holds, provided the squares between king and rook are empty and
// the king is not currently in check and does not pass through or land on
// an attacked square (spec.md 3.3/4.5). These checks cannot be deferred to
// the final simulate-and-verify pass the way ordinary king moves are,
// since that pass only re-checks the destination square, not the squares
// the king passes through.
func (g *Generator) genCastlingMoves(pos *position.Position, c Color, moves *moveslice.MoveSlice) {
	if pos.Castling == CastlingNone {
		return
	}
	kingFrom := pos.KingSquare(c)
	enemy := c.Flip()

	tryCastle := func(right CastlingRights, kind MoveKind, rookFrom, kingTo, passSq Square) {
		if !pos.Castling.Has(right) {
			return
		}
		if (g.Tables.InBetween[kingFrom][rookFrom] & pos.Occupied) != 0 {
			return
		}
		if !g.AttacksTo(pos, kingFrom, enemy).Empty() {
			return
		}
		if !g.AttacksTo(pos, passSq, enemy).Empty() {
			return
		}
		if !g.AttacksTo(pos, kingTo, enemy).Empty() {
			return
		}
		moves.PushBack(NewMove(kingFrom, kingTo, kind))
	}

	if c == White {
		tryCastle(WhiteKingside, CastleKingside, NewSquare(FileH, Rank1), NewSquare(FileG, Rank1), NewSquare(FileF, Rank1))
		tryCastle(WhiteQueenside, CastleQueenside, NewSquare(FileA, Rank1), NewSquare(FileC, Rank1), NewSquare(FileD, Rank1))
	} else {
		tryCastle(BlackKingside, CastleKingside, NewSquare(FileH, Rank8), NewSquare(FileG, Rank8), NewSquare(FileF, Rank8))
		tryCastle(BlackQueenside, CastleQueenside, NewSquare(FileA, Rank8), NewSquare(FileC, Rank8), NewSquare(FileD, Rank8))
	}
}

// kindFor classifies a destination square as Capture or Quiet depending
// on whether it holds an enemy piece. Used by every non-pawn generator;
// pawn moves have their own classification since they also cover
// en-passant and promotion.
func kindFor(to Square, enemy Bitboard) MoveKind {
	if enemy.Has(to) {
		return Capture
	}
	return Quiet
}
