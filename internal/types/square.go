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

import "fmt"

// Square represents one of the 64 board squares, A1..H8, encoded 0..63.
type Square uint8

// SqNone represents "no square", used as a sentinel for optional squares.
const SqNone Square = 64

// NewSquare builds a Square from a file and a rank.
func NewSquare(f File, r Rank) Square {
	return Square(uint8(r)*8 + uint8(f))
}

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// File returns the file of sq.
func (sq Square) File() File {
	return File(sq % 8)
}

// Rank returns the rank of sq.
func (sq Square) Rank() Rank {
	return Rank(sq / 8)
}

// Offset returns the square reached by moving dRank ranks and dFile files
// from sq, and true, if that square lies on the board. Returns (SqNone,
// false) otherwise.
func (sq Square) Offset(dRank, dFile int) (Square, bool) {
	r := int(sq.Rank()) + dRank
	f := int(sq.File()) + dFile
	if r < 0 || r > 7 || f < 0 || f > 7 {
		return SqNone, false
	}
	return NewSquare(File(f), Rank(r)), true
}

var squareLabels = func() [65]string {
	var labels [65]string
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			labels[NewSquare(f, r)] = f.String() + r.String()
		}
	}
	labels[SqNone] = "-"
	return labels
}()

// String renders sq in coordinate notation, e.g. "e4", or "-" for SqNone.
func (sq Square) String() string {
	if sq > SqNone {
		return fmt.Sprintf("invalid square %d", uint8(sq))
	}
	return squareLabels[sq]
}
