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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/dkeller/chesscore/internal/types"
)

var (
	e2e4 = NewMove(NewSquare(FileE, Rank2), NewSquare(FileE, Rank4), DoublePush)
	d7d5 = NewMove(NewSquare(FileD, Rank7), NewSquare(FileD, Rank5), DoublePush)
	e4d5 = NewMove(NewSquare(FileE, Rank4), NewSquare(FileD, Rank5), Capture)
	d8d5 = NewMove(NewSquare(FileD, Rank8), NewSquare(FileD, Rank5), Capture)
	b1c3 = NewMove(NewSquare(FileB, Rank1), NewSquare(FileC, Rank3), Quiet)
)

func TestNew(t *testing.T) {
	ma := NewMoveSlice(64)
	assert.Equal(t, 0, len(*ma))
	assert.Equal(t, 64, cap(*ma))
}

func TestPushBack(t *testing.T) {
	ma := NewMoveSlice(64)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(d8d5)
	ma.PushBack(b1c3)

	assert.Equal(t, 5, ma.Len())
	assert.Equal(t, e2e4, ma.Front())
	assert.Equal(t, b1c3, ma.Back())
}

func TestPopBack(t *testing.T) {
	ma := NewMoveSlice(64)
	assert.Panics(t, func() { ma.PopBack() })

	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(b1c3)

	m1 := ma.PopBack()
	assert.Equal(t, b1c3, m1)
	assert.Equal(t, 2, ma.Len())
}

func TestPushFront(t *testing.T) {
	ma := NewMoveSlice(64)
	ma.PushFront(e2e4)
	ma.PushFront(d7d5)
	ma.PushFront(b1c3)

	assert.Equal(t, 3, ma.Len())
	assert.Equal(t, b1c3, ma.Front())
	assert.Equal(t, e2e4, ma.Back())
}

func TestPopFront(t *testing.T) {
	ma := NewMoveSlice(64)
	assert.Panics(t, func() { ma.PopFront() })

	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(b1c3)

	m1 := ma.PopFront()
	assert.Equal(t, e2e4, m1)
	assert.Equal(t, 2, ma.Len())
}

func TestClear(t *testing.T) {
	ma := NewMoveSlice(64)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.Clear()
	assert.Equal(t, 0, ma.Len())
	assert.Equal(t, 64, ma.Cap())
}

func TestAtAndSet(t *testing.T) {
	ma := NewMoveSlice(64)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	assert.Equal(t, e2e4, ma.At(0))
	assert.Equal(t, d7d5, ma.At(1))

	ma.Set(1, b1c3)
	assert.Equal(t, b1c3, ma.At(1))
	assert.Panics(t, func() { ma.At(2) })
}

func TestClone(t *testing.T) {
	ma := NewMoveSlice(64)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)

	clone := ma.Clone()
	assert.True(t, ma.Equals(clone))

	clone.PushBack(b1c3)
	assert.False(t, ma.Equals(clone))
	assert.Equal(t, 2, ma.Len())
}

func TestHasDuplicates(t *testing.T) {
	ma := NewMoveSlice(64)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	assert.False(t, ma.HasDuplicates())

	ma.PushBack(e2e4)
	assert.True(t, ma.HasDuplicates())
}

func TestFilter(t *testing.T) {
	ma := NewMoveSlice(64)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)

	ma.Filter(func(i int) bool { return ma.At(i).IsCapture() })
	assert.Equal(t, 1, ma.Len())
	assert.Equal(t, e4d5, ma.At(0))
}

func TestStringUci(t *testing.T) {
	ma := NewMoveSlice(64)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	assert.Equal(t, "e2e4 d7d5", ma.StringUci())
}
