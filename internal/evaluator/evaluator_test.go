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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkeller/chesscore/internal/position"
)

func TestEvaluateStartPosIsLevel(t *testing.T) {
	e := NewEvaluator()
	assert.Equal(t, 0.0, e.Evaluate(position.StartPos()))
}

func TestEvaluateMaterialImbalance(t *testing.T) {
	e := NewEvaluator()
	// White has an extra queen.
	pos, err := position.ParseFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, 9.0, e.Evaluate(pos))
}

func TestEvaluateSignFlipsForBlackAdvantage(t *testing.T) {
	e := NewEvaluator()
	pos, err := position.ParseFEN("4k3/8/8/8/8/8/8/q3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, -9.0, e.Evaluate(pos))
}
