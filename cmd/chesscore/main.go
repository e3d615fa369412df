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

// Command chesscore is a minimal front-end over internal/engine: print the
// legal moves for a FEN, run a fixed-depth search, or run perft-style move
// counting. It is not a UCI implementation - spec.md names UCI itself a
// Non-goal-adjacent external collaborator, and this repository stops at
// this much smaller surface.
package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkeller/chesscore/internal/config"
	"github.com/dkeller/chesscore/internal/engine"
	"github.com/dkeller/chesscore/internal/logging"
	"github.com/dkeller/chesscore/internal/position"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config/config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "FEN of the position to operate on")
	depth := flag.Int("depth", 0, "search depth in plies; 0 uses the configured default")
	perft := flag.Int("perft", 0, "runs perft to the given depth from -fen instead of searching")
	moves := flag.Bool("moves", false, "print the legal moves for -fen and exit")
	useMagicFiles := flag.Bool("magicfiles", false, "load precomputed magic tables instead of searching for them at startup")
	profileCPU := flag.Bool("profile", false, "write a CPU profile of this run to ./")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *profileCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	if *useMagicFiles {
		config.Settings.Engine.UseMagicFiles = true
	}
	logging.GetLog()

	pos, err := position.ParseFEN(*fen)
	if err != nil {
		out.Printf("invalid FEN %q: %v\n", *fen, err)
		os.Exit(1)
	}

	eng, err := engine.NewEngine()
	if err != nil {
		out.Printf("failed to start engine: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *perft != 0:
		runPerft(eng, pos, *perft)
	case *moves:
		printMoves(eng, pos)
	default:
		runSearch(eng, pos, *depth)
	}
}

func printMoves(eng *engine.Engine, pos *position.Position) {
	legal := eng.GenerateLegalMoves(pos)
	out.Printf("%d legal moves for %s\n", legal.Len(), pos.FEN())
	out.Println(legal.StringUci())
}

func runSearch(eng *engine.Engine, pos *position.Position, depth int) {
	if depth == 0 {
		depth = config.Settings.Engine.DefaultSearchDepth
	}
	score, move := eng.Search(pos, depth)
	out.Printf("depth %d: score=%.1f bestmove=%s nodes=%d\n", depth, score, move, eng.NodesEvaluated())
}

func runPerft(eng *engine.Engine, pos *position.Position, depth int) {
	for d := 1; d <= depth; d++ {
		nodes := eng.Generator.Perft(pos, d)
		out.Printf("perft(%d) = %d\n", d, nodes)
	}
}

func printVersionInfo() {
	out.Println("chesscore")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
