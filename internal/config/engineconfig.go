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

package config

// engineConfiguration is the [Engine] section of the TOML config file. It
// replaces the teacher's searchconfig.go/evalconfig.go (iterative-deepening,
// TT, LMR, null-move, pawn-cache, opening-book knobs - none of which survive
// spec.md's plain recursive minimax): the only engine-level choices this
// core exposes are where to find the precomputed magic-bitboard table files
// and how deep a search goes when a caller does not ask for a specific
// depth.
type engineConfiguration struct {
	// UseMagicFiles selects attacks.LoadTables over attacks.NewTables: read
	// precomputed magics from RookMagicsFile/BishopMagicsFile instead of
	// running the magic search in process at startup.
	UseMagicFiles bool

	// RookMagicsFile and BishopMagicsFile are the spec.md 6.1 binary magic
	// table paths, read when UseMagicFiles is true.
	RookMagicsFile   string
	BishopMagicsFile string

	// DefaultSearchDepth is the depth cmd/chesscore passes to the search
	// when its -depth flag is left at 0.
	DefaultSearchDepth int

	// MaxStackMb is the goroutine stack ceiling, in MiB, that
	// engine.NewEngine raises debug.SetMaxStack to (a larger runtime
	// default is kept), so the recursive minimax can reach deeper search
	// depths without the runtime killing a goroutine for exceeding its
	// stack bound.
	MaxStackMb int
}

func init() {
	Settings.Engine.UseMagicFiles = false
	Settings.Engine.RookMagicsFile = "./config/rook_magics.bin"
	Settings.Engine.BishopMagicsFile = "./config/bishop_magics.bin"
	Settings.Engine.DefaultSearchDepth = 4
	Settings.Engine.MaxStackMb = 512
}
