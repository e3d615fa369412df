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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/dkeller/chesscore/internal/types"
)

func TestMakeMoveDoublePushSetsEnPassant(t *testing.T) {
	pos := StartPos()
	m := NewMove(NewSquare(FileE, Rank2), NewSquare(FileE, Rank4), DoublePush)
	np := pos.MakeMove(m)
	assert.Equal(t, NewSquare(FileE, Rank3), np.EnPassant)
	assert.Equal(t, Black, np.Turn)
	assert.Equal(t, 0, np.HalfmoveClock)
	assert.Equal(t, 1, np.FullmoveNumber)
	// original position is untouched
	assert.Equal(t, White, pos.Turn)
	assert.Equal(t, SqNone, pos.EnPassant)
}

func TestMakeMoveFullmoveIncrementsAfterBlack(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)
	m := NewMove(NewSquare(FileB, Rank8), NewSquare(FileC, Rank6), Quiet)
	np := pos.MakeMove(m)
	assert.Equal(t, 2, np.FullmoveNumber)
}

func TestMakeMoveCaptureResetsHalfmoveClock(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/3p4/8/4N3/4K3 w - - 12 30")
	require.NoError(t, err)
	take := NewMove(NewSquare(FileE, Rank2), NewSquare(FileD, Rank4), Capture)
	np := pos.MakeMove(take)
	assert.Equal(t, 0, np.HalfmoveClock)
	assert.False(t, np.Pieces[Black][Pawn].Has(NewSquare(FileD, Rank4)))
	pc, ok := np.PieceAt(NewSquare(FileD, Rank4))
	require.True(t, ok)
	assert.Equal(t, Knight, pc.Type)
}

func TestMakeMoveEnPassantRemovesCapturedPawn(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	m := NewMove(NewSquare(FileE, Rank5), NewSquare(FileD, Rank6), EnPassant)
	np := pos.MakeMove(m)
	assert.False(t, np.Pieces[Black][Pawn].Has(NewSquare(FileD, Rank5)))
	assert.True(t, np.Pieces[White][Pawn].Has(NewSquare(FileD, Rank6)))
	assert.Equal(t, SqNone, np.EnPassant)
}

func TestMakeMovePromotion(t *testing.T) {
	pos, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := NewPromotionMove(NewSquare(FileA, Rank7), NewSquare(FileA, Rank8), Promotion, Queen)
	np := pos.MakeMove(m)
	pc, ok := np.PieceAt(NewSquare(FileA, Rank8))
	require.True(t, ok)
	assert.Equal(t, Queen, pc.Type)
	assert.Equal(t, White, pc.Color)
	assert.False(t, np.Pieces[White][Pawn].Has(NewSquare(FileA, Rank7)))
}

func TestMakeMoveCastleKingsideMovesRook(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	m := NewMove(NewSquare(FileE, Rank1), NewSquare(FileG, Rank1), CastleKingside)
	np := pos.MakeMove(m)
	pc, ok := np.PieceAt(NewSquare(FileG, Rank1))
	require.True(t, ok)
	assert.Equal(t, King, pc.Type)
	rook, ok := np.PieceAt(NewSquare(FileF, Rank1))
	require.True(t, ok)
	assert.Equal(t, Rook, rook.Type)
	assert.False(t, np.Castling.Has(WhiteKingside))
}

func TestMakeMoveKingMoveClearsBothCastlingRights(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	m := NewMove(NewSquare(FileE, Rank1), NewSquare(FileE, Rank2), Quiet)
	np := pos.MakeMove(m)
	assert.False(t, np.Castling.Has(WhiteKingside))
	assert.False(t, np.Castling.Has(WhiteQueenside))
}

func TestMakeMoveRookMoveClearsOneSide(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	m := NewMove(NewSquare(FileA, Rank1), NewSquare(FileB, Rank1), Quiet)
	np := pos.MakeMove(m)
	assert.False(t, np.Castling.Has(WhiteQueenside))
	assert.True(t, np.Castling.Has(WhiteKingside))
}

func TestMakeMovePanicsOnEmptyFromSquare(t *testing.T) {
	pos := StartPos()
	m := NewMove(NewSquare(FileE, Rank4), NewSquare(FileE, Rank5), Quiet)
	assert.Panics(t, func() { pos.MakeMove(m) })
}
