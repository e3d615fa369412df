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

func TestParseStartingFEN(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, White, pos.Turn)
	assert.Equal(t, CastlingAll, pos.Castling)
	assert.Equal(t, SqNone, pos.EnPassant)
	assert.Equal(t, 0, pos.HalfmoveClock)
	assert.Equal(t, 1, pos.FullmoveNumber)
	assert.Equal(t, 16, pos.Occupation(White).PopCount())
	assert.Equal(t, 16, pos.Occupation(Black).PopCount())
	assert.Equal(t, Bitboard(0).PopCount(), 0)
}

// TestFENRoundTrip is testable property 3: from_fen(to_fen(pos)) == pos
// for every legal FEN the parser accepts.
func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"7k/8/8/8/8/8/6Q1/7K w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, pos.FEN(), "round trip for %s", fen)
	}
}

func TestParseFENRejectsBadFieldCount(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	assert.Error(t, err)
}

func TestParseFENRejectsBadRankCount(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1")
	assert.Error(t, err)
}

func TestParseFENRejectsBadPieceChar(t *testing.T) {
	_, err := ParseFEN("rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Error(t, err)
}

func TestParseFENRejectsBadEnPassant(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1")
	assert.Error(t, err)
}

func TestPieceAt(t *testing.T) {
	pos := StartPos()
	pc, ok := pos.PieceAt(NewSquare(FileE, Rank1))
	require.True(t, ok)
	assert.Equal(t, King, pc.Type)
	assert.Equal(t, White, pc.Color)

	_, ok = pos.PieceAt(NewSquare(FileE, Rank4))
	assert.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	pos := StartPos()
	clone := pos.Clone()
	clone.Turn = Black
	clone.Pieces[White][Pawn] = Empty
	assert.Equal(t, White, pos.Turn)
	assert.NotEqual(t, Empty, pos.Pieces[White][Pawn])
}

func TestOccupiedInvariant(t *testing.T) {
	pos := StartPos()
	var union Bitboard
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < PtNone; pt++ {
			union |= pos.Pieces[c][pt]
		}
	}
	assert.Equal(t, union, pos.Occupied)
}
