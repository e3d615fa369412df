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

// Command magicgen is the offline counterpart to attacks.NewTables: it
// runs the same magic-number search in process and writes the result out
// as the two binary files spec.md 6.1 describes, so a later run can load
// them with attacks.LoadTables instead of re-searching at every startup.
// This is the "precomputed codegen output" lifecycle spec.md 3.7 names as
// an alternative to the embedded in-process search.
package main

import (
	"flag"
	"os"

	"github.com/dkeller/chesscore/internal/attacks"
	"github.com/dkeller/chesscore/internal/logging"
	"github.com/dkeller/chesscore/internal/magicio"
)

func main() {
	rookOut := flag.String("rook-out", "./config/rook_magics.bin", "output path for the rook magic table")
	bishopOut := flag.String("bishop-out", "./config/bishop_magics.bin", "output path for the bishop magic table")
	flag.Parse()

	log := logging.GetLog()
	log.Infof("searching for rook/bishop magics")

	tables := attacks.NewTables()

	if err := magicio.Save(*rookOut, &tables.RookMagics, attacks.MaxRookIndexBits); err != nil {
		log.Criticalf("writing rook magics: %v", err)
		os.Exit(1)
	}
	log.Infof("wrote rook magics to %s", *rookOut)

	if err := magicio.Save(*bishopOut, &tables.BishopMagics, attacks.MaxBishopIndexBits); err != nil {
		log.Criticalf("writing bishop magics: %v", err)
		os.Exit(1)
	}
	log.Infof("wrote bishop magics to %s", *bishopOut)
}
