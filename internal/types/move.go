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

// MoveKind distinguishes the move categories of spec.md 3.5 that make-move
// and move generation need to treat specially.
type MoveKind uint8

// The eight move kinds.
const (
	Quiet MoveKind = iota
	Capture
	DoublePush
	EnPassant
	CastleKingside
	CastleQueenside
	Promotion
	PromotionCapture
)

// Move is an immutable description of a single chess move: origin and
// destination square, an optional promotion piece kind, and a MoveKind.
// Packed into a uint32 (bits 0-5 From, 6-11 To, 12-14 Promotion,
// 15-17 Kind) so Move is small, comparable and hashable by value, the way
// the rest of this code base represents moves.
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 6
	movePromoShift = 12
	moveKindShift  = 15
	moveSqMask     = 0x3F
	movePromoMask  = 0x7
	moveKindMask   = 0x7
)

// NoMove is the zero Move, used as a sentinel for "no move found".
const NoMove Move = 0

// NewMove builds a quiet/capture/special Move with no promotion.
func NewMove(from, to Square, kind MoveKind) Move {
	return NewPromotionMove(from, to, kind, PtNone)
}

// NewPromotionMove builds a Move that promotes to promo (Knight, Bishop,
// Rook or Queen). For non-promotion kinds pass PtNone.
func NewPromotionMove(from, to Square, kind MoveKind, promo PieceType) Move {
	return Move(uint32(from)<<moveFromShift |
		uint32(to)<<moveToShift |
		uint32(promo&movePromoMask)<<movePromoShift |
		uint32(kind&moveKindMask)<<moveKindShift)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((uint32(m) >> moveFromShift) & moveSqMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((uint32(m) >> moveToShift) & moveSqMask)
}

// Promotion returns the promotion piece kind, or PtNone if this move does
// not promote.
func (m Move) Promotion() PieceType {
	pt := PieceType((uint32(m) >> movePromoShift) & movePromoMask)
	if m.Kind() != Promotion && m.Kind() != PromotionCapture {
		return PtNone
	}
	return pt
}

// Kind returns the MoveKind.
func (m Move) Kind() MoveKind {
	return MoveKind((uint32(m) >> moveKindShift) & moveKindMask)
}

// IsCapture reports whether m removes an enemy piece (ordinary capture,
// en passant, or a capturing promotion).
func (m Move) IsCapture() bool {
	switch m.Kind() {
	case Capture, EnPassant, PromotionCapture:
		return true
	default:
		return false
	}
}

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind() == CastleKingside || m.Kind() == CastleQueenside
}

// String renders m in UCI long-algebraic notation: "e2e4", "a7a8q".
// NoMove renders as "0000" per UCI convention.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if promo := m.Promotion(); promo != PtNone {
		s += string(promo.Char())
	}
	return s
}
