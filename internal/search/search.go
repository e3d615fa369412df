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

// Package search implements spec.md 4.7's plain recursive minimax: no
// alpha-beta pruning, no move ordering, no transposition table, no
// quiescence search - the teacher's internal/search.Search is an
// iterative-deepening alpha-beta driver with all of those, none of which
// this core carries (spec.md 5's explicit Non-goals). What survives from
// the teacher is the shape: a struct holding the collaborators a search
// needs (move generator, evaluator), a node counter, a semaphore that
// keeps more than one search from running at once (the same role
// golang.org/x/sync/semaphore plays in the teacher's own search package),
// and running the recursion on a goroutine dedicated to that one search,
// the same split the teacher's StartSearch()/run() makes (run is "called
// by StartSearch() in a separate goroutine").
//
// The minimax itself is transcribed directly from
// original_source/engine/src/core/search.rs's minmax(): a maximizing flag
// threaded through the recursion (true at nodes where White is to move,
// false where Black is), not recomputed independently from each node's
// Position.Turn. See DESIGN.md for why: spec.md's own concrete scenario 4
// states a checkmate score that contradicts scenario 3 and this transcribed
// algorithm, and the algorithm - not the prose - is what this package
// implements.
package search

import (
	"context"
	"math"

	"golang.org/x/sync/semaphore"

	"github.com/dkeller/chesscore/internal/evaluator"
	"github.com/dkeller/chesscore/internal/logging"
	"github.com/dkeller/chesscore/internal/movegen"
	"github.com/dkeller/chesscore/internal/position"
	. "github.com/dkeller/chesscore/internal/types"
)

// MateScore is the absolute value spec.md 4.7 assigns a checkmate,
// following original_source's minmax() (the source's own comment notes it
// stands in for -infinity/+infinity).
const MateScore = 1000.0

// Search runs a depth-limited minimax against a Generator and Evaluator.
// A single Search is safe to share across goroutines: its sema field
// ensures only one Search call executes the recursion at a time, so a
// caller that fires off a second search while one is in flight blocks
// until the first completes rather than racing nodesEvaluated.
type Search struct {
	Generator *movegen.Generator
	Evaluator *evaluator.Evaluator

	sema           *semaphore.Weighted
	nodesEvaluated uint64
}

// NewSearch builds a Search over gen and eval.
func NewSearch(gen *movegen.Generator, eval *evaluator.Evaluator) *Search {
	return &Search{
		Generator: gen,
		Evaluator: eval,
		sema:      semaphore.NewWeighted(1),
	}
}

// NodesEvaluated returns the number of leaf positions the most recently
// completed Search call evaluated.
func (s *Search) NodesEvaluated() uint64 {
	return s.nodesEvaluated
}

// searchResult carries a completed minimax's outcome back from the
// dedicated search goroutine to the caller of Search.
type searchResult struct {
	score float64
	move  Move
}

// Search returns the minimax score and best move for pos at the given
// depth, following spec.md 4.7's pipeline. depth is plies, not full moves.
// Returns (score, NoMove) for any position with no legal move (checkmate
// or stalemate) and for the fifty-move draw.
//
// Search blocks until any other in-flight call on the same Search
// finishes; spec.md 5 runs exactly one search at a time. The recursion
// itself runs on a goroutine dedicated to this call, following the
// teacher's StartSearch()/run() split, so the enlarged stack ceiling
// engine.NewEngine raises via debug.SetMaxStack (spec.md 5's stand-in for
// the source's dedicated large-stack search thread) governs the
// goroutine that actually recurses rather than whichever goroutine
// happened to call Search.
func (s *Search) Search(pos *position.Position, depth int) (float64, Move) {
	_ = s.sema.Acquire(context.Background(), 1)
	defer s.sema.Release(1)

	log := logging.GetSearchLog()
	log.Infof("search starting: depth=%d fen=%s", depth, pos.FEN())

	s.nodesEvaluated = 0
	maximizing := pos.Turn == White

	done := make(chan searchResult, 1)
	go func() {
		score, move := s.minimax(pos, depth, maximizing)
		done <- searchResult{score: score, move: move}
	}()
	result := <-done

	log.Infof("search finished: score=%.1f move=%s nodes=%d", result.score, result.move, s.nodesEvaluated)
	return result.score, result.move
}

// minimax implements original_source's minmax() verbatim in Go idiom: the
// maximizing flag is passed down and flipped each ply rather than derived
// from pos.Turn at each call, so the boolean's meaning at a node is fixed
// by how many plies it is from the root, exactly as in the source.
func (s *Search) minimax(pos *position.Position, depth int, maximizing bool) (float64, Move) {
	if depth == 0 {
		s.nodesEvaluated++
		return s.Evaluator.Evaluate(pos), NoMove
	}

	moves := s.Generator.GenerateLegalMoves(pos)

	if pos.HalfmoveClock >= 100 {
		return 0.0, NoMove
	}

	if moves.Len() == 0 {
		if s.Generator.IsCheck(pos, pos.Turn) {
			if maximizing {
				return -MateScore, NoMove
			}
			return MateScore, NoMove
		}
		return 0.0, NoMove
	}

	best := NoMove
	if maximizing {
		bestScore := math.Inf(-1)
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			score, _ := s.minimax(pos.MakeMove(m), depth-1, false)
			if score > bestScore {
				bestScore = score
				best = m
			}
		}
		return bestScore, best
	}

	bestScore := math.Inf(1)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		score, _ := s.minimax(pos.MakeMove(m), depth-1, true)
		if score < bestScore {
			bestScore = score
			best = m
		}
	}
	return bestScore, best
}
