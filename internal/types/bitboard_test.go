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

func TestSquareBb(t *testing.T) {
	assert.Equal(t, Bitboard(1), SquareBb(0))
	assert.Equal(t, Bitboard(1)<<63, SquareBb(63))
}

func TestPopCountAndLsbMsb(t *testing.T) {
	b := SquareBb(3) | SquareBb(10) | SquareBb(40)
	assert.Equal(t, 3, b.PopCount())
	assert.Equal(t, Square(3), b.Lsb())
	assert.Equal(t, Square(40), b.Msb())
}

func TestPopLsbDrains(t *testing.T) {
	b := SquareBb(1) | SquareBb(5) | SquareBb(9)
	var got []Square
	for !b.Empty() {
		got = append(got, b.PopLsb())
	}
	assert.Equal(t, []Square{1, 5, 9}, got)
}

func TestShiftNeverWraps(t *testing.T) {
	// A file, shifting West must vanish rather than wrap to the H file.
	assert.Equal(t, Empty, FileABb.Shift(West))
	assert.Equal(t, Empty, FileHBb.Shift(East))
	assert.Equal(t, Empty, Rank8Bb.Shift(North))
	assert.Equal(t, Empty, Rank1Bb.Shift(South))
	// A diagonal shift off both edges vanishes too.
	assert.Equal(t, Empty, (FileABb | Rank8Bb).Shift(NorthWest))
}

func TestShiftOrdinary(t *testing.T) {
	e2 := SquareBb(NewSquare(FileE, Rank2))
	e3 := SquareBb(NewSquare(FileE, Rank3))
	assert.Equal(t, e3, e2.Shift(North))
	d3 := SquareBb(NewSquare(FileD, Rank3))
	assert.Equal(t, d3, e2.Shift(NorthWest))
}
