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

// Package engine wires attacks.Tables, movegen.Generator, evaluator.Evaluator
// and search.Search behind the single abstract surface spec.md 6.4
// describes (new_engine, generate_legal_moves, is_check, search, make_move,
// nodes_evaluated). The teacher's facade.go plays this same connective
// role for its own, much larger, stack; this Engine is that idea scaled
// down to the five collaborators this core actually has.
package engine

import (
	"fmt"
	"runtime/debug"

	"github.com/dkeller/chesscore/internal/attacks"
	"github.com/dkeller/chesscore/internal/config"
	"github.com/dkeller/chesscore/internal/evaluator"
	"github.com/dkeller/chesscore/internal/logging"
	"github.com/dkeller/chesscore/internal/movegen"
	"github.com/dkeller/chesscore/internal/moveslice"
	"github.com/dkeller/chesscore/internal/position"
	"github.com/dkeller/chesscore/internal/search"
	. "github.com/dkeller/chesscore/internal/types"
)

// Engine is the concrete realization of spec.md 6.4's abstract API.
type Engine struct {
	Tables    *attacks.Tables
	Generator *movegen.Generator
	Evaluator *evaluator.Evaluator
	Searcher  *search.Search
}

// NewEngine builds an Engine, loading the magic-bitboard tables per
// config.Settings.Engine.UseMagicFiles: from the precomputed binary files
// (spec.md 6.1) when true, by running the in-process magic search
// otherwise. A magic file that is missing, truncated, or the wrong size is
// a configuration error per spec.md 7 - logged at critical and returned
// rather than panicked, so a caller (cmd/chesscore) can decide whether to
// fall back to NewTables itself.
//
// NewEngine also raises the process's max goroutine stack via
// debug.SetMaxStack, the idiomatic stand-in for the original source's
// dedicated large-stack search thread (see SPEC_FULL.md 5 on why Go has no
// direct thread::Builder stack_size equivalent). A runtime default that is
// already larger than MaxStackMb is kept.
func NewEngine() (*Engine, error) {
	config.Setup()
	log := logging.GetLog()

	maxStack := config.Settings.Engine.MaxStackMb * 1024 * 1024
	if prev := debug.SetMaxStack(maxStack); prev > maxStack {
		debug.SetMaxStack(prev)
	}

	var tables *attacks.Tables
	if config.Settings.Engine.UseMagicFiles {
		loaded, err := attacks.LoadTables(
			config.Settings.Engine.RookMagicsFile,
			config.Settings.Engine.BishopMagicsFile,
		)
		if err != nil {
			log.Criticalf("failed to load magic table files: %v", err)
			return nil, fmt.Errorf("engine: loading magic tables: %w", err)
		}
		tables = loaded
	} else {
		tables = attacks.NewTables()
	}

	gen := movegen.NewGenerator(tables)
	eval := evaluator.NewEvaluator()

	e := &Engine{
		Tables:    tables,
		Generator: gen,
		Evaluator: eval,
		Searcher:  search.NewSearch(gen, eval),
	}
	log.Info("engine initialized")
	return e, nil
}

// GenerateLegalMoves returns every legal move for the side to move in pos.
func (e *Engine) GenerateLegalMoves(pos *position.Position) moveslice.MoveSlice {
	return e.Generator.GenerateLegalMoves(pos)
}

// IsCheck reports whether the side to move in pos is in check.
func (e *Engine) IsCheck(pos *position.Position) bool {
	return e.Generator.IsCheck(pos, pos.Turn)
}

// Search runs a depth-limited minimax from pos and returns its score and
// best move. A terminal position (checkmate, stalemate, or the fifty-move
// draw) returns its terminal score and NoMove.
func (e *Engine) Search(pos *position.Position, depth int) (float64, Move) {
	return e.Searcher.Search(pos, depth)
}

// MakeMove returns the position reached by playing mv in pos, per
// spec.md 6.4. pos itself is left unmodified.
func MakeMove(pos *position.Position, mv Move) *position.Position {
	return pos.MakeMove(mv)
}

// NodesEvaluated returns the number of leaf positions evaluated by the
// most recently completed Search call.
func (e *Engine) NodesEvaluated() uint64 {
	return e.Searcher.NodesEvaluated()
}
