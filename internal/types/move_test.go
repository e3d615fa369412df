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

func TestMoveFieldsRoundTrip(t *testing.T) {
	from := NewSquare(FileE, Rank2)
	to := NewSquare(FileE, Rank4)
	m := NewMove(from, to, DoublePush)
	assert.Equal(t, from, m.From())
	assert.Equal(t, to, m.To())
	assert.Equal(t, DoublePush, m.Kind())
	assert.Equal(t, PtNone, m.Promotion())
	assert.Equal(t, "e2e4", m.String())
}

func TestPromotionMoveString(t *testing.T) {
	from := NewSquare(FileA, Rank7)
	to := NewSquare(FileA, Rank8)
	m := NewPromotionMove(from, to, Promotion, Queen)
	assert.Equal(t, "a7a8q", m.String())
	assert.Equal(t, Queen, m.Promotion())
}

func TestMoveIsCapture(t *testing.T) {
	m := NewMove(0, 1, Capture)
	assert.True(t, m.IsCapture())
	assert.False(t, m.IsCastle())
	m2 := NewMove(0, 1, Quiet)
	assert.False(t, m2.IsCapture())
}

func TestNoMoveString(t *testing.T) {
	assert.Equal(t, "0000", NoMove.String())
}
