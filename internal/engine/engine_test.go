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

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkeller/chesscore/internal/position"
	. "github.com/dkeller/chesscore/internal/types"
)

func TestNewEngineLoadsInProcessTablesByDefault(t *testing.T) {
	e, err := NewEngine()
	assert.NoError(t, err)
	assert.NotNil(t, e.Tables)
	assert.NotNil(t, e.Generator)
	assert.NotNil(t, e.Evaluator)
	assert.NotNil(t, e.Searcher)
}

func TestEngineGenerateLegalMovesStartPos(t *testing.T) {
	e, err := NewEngine()
	assert.NoError(t, err)

	moves := e.GenerateLegalMoves(position.StartPos())
	assert.Equal(t, 20, moves.Len())
	assert.False(t, e.IsCheck(position.StartPos()))
}

func TestEngineSearchAndNodesEvaluated(t *testing.T) {
	e, err := NewEngine()
	assert.NoError(t, err)

	score, move := e.Search(position.StartPos(), 2)
	assert.NotEqual(t, NoMove, move)
	assert.True(t, e.NodesEvaluated() > 0)
	_ = score

	next := MakeMove(position.StartPos(), move)
	assert.NotEqual(t, position.StartPos().FEN(), next.FEN())
}
