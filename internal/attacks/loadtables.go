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

package attacks

import (
	"fmt"

	"github.com/dkeller/chesscore/internal/magicio"
	. "github.com/dkeller/chesscore/internal/types"
)

// LoadTables builds a Tables value the same way NewTables does for the
// step tables and in_between, but loads the rook and bishop magic tables
// from the two binary files spec.md 6.1 describes instead of searching
// for magic numbers in-process. A load failure is a configuration error
// (spec.md 7) and is returned, never panicked.
func LoadTables(rookMagicsPath, bishopMagicsPath string) (*Tables, error) {
	t := &Tables{}
	t.initKnightAttacks()
	t.initKingAttacks()
	t.initPawnAttacks()
	t.initInBetween()

	rook, err := magicio.Load(rookMagicsPath, MaxRookIndexBits)
	if err != nil {
		return nil, fmt.Errorf("attacks: loading rook magics: %w", err)
	}
	bishop, err := magicio.Load(bishopMagicsPath, MaxBishopIndexBits)
	if err != nil {
		return nil, fmt.Errorf("attacks: loading bishop magics: %w", err)
	}
	t.RookMagics = *rook
	t.BishopMagics = *bishop
	return t, nil
}
