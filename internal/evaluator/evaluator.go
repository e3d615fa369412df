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

// Package evaluator scores a position for the search in spec.md 4.7: a
// material sum, positive for White and negative for Black, with no
// positional terms.
//
// The teacher's internal/evaluator.Evaluator carries piece-square tables,
// mobility, king-safety and pawn-structure terms (and a pawn hash cache to
// make the pawn term affordable). None of that survives here: spec.md 4.7
// is explicit that this core's evaluation is material-only, so the extra
// terms have nothing to attach to. What does survive is the teacher's
// shape - a small struct type rather than a free function, so a future
// evaluator with state (e.g. a pawn cache) could grow into the same seam
// without changing the search package's call site.
package evaluator

import (
	"github.com/dkeller/chesscore/internal/position"
	. "github.com/dkeller/chesscore/internal/types"
)

// Evaluator scores positions by material alone. It holds no state and is
// safe to share across concurrent searches.
type Evaluator struct{}

// NewEvaluator returns an Evaluator ready to use.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the material balance of pos: the sum of
// PieceType.Value() over every White piece minus the same sum over every
// Black piece (spec.md 4.7's P=1 N=3 B=3 R=5 Q=9 K=100 table).
func (e *Evaluator) Evaluate(pos *position.Position) float64 {
	var score int
	for pt := Pawn; pt < PtNone; pt++ {
		score += pos.Pieces[White][pt].PopCount() * pt.Value()
		score -= pos.Pieces[Black][pt].PopCount() * pt.Value()
	}
	return float64(score)
}
