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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSquareRoundTrip(t *testing.T) {
	for f := FileA; f <= FileH; f++ {
		for r := Rank1; r <= Rank8; r++ {
			sq := NewSquare(f, r)
			assert.Equal(t, f, sq.File())
			assert.Equal(t, r, sq.Rank())
		}
	}
}

func TestSquareLabels(t *testing.T) {
	assert.Equal(t, "a1", NewSquare(FileA, Rank1).String())
	assert.Equal(t, "h1", NewSquare(FileH, Rank1).String())
	assert.Equal(t, "a8", NewSquare(FileA, Rank8).String())
	assert.Equal(t, "h8", NewSquare(FileH, Rank8).String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareOffset(t *testing.T) {
	e4 := NewSquare(FileE, Rank4)
	sq, ok := e4.Offset(1, 0)
	assert.True(t, ok)
	assert.Equal(t, NewSquare(FileE, Rank5), sq)

	h1 := NewSquare(FileH, Rank1)
	_, ok = h1.Offset(0, 1)
	assert.False(t, ok)

	a1 := NewSquare(FileA, Rank1)
	_, ok = a1.Offset(-1, 0)
	assert.False(t, ok)
}
