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
	. "github.com/dkeller/chesscore/internal/types"
)

// initMagics finds a working magic number and move table for every square
// along the given ray directions, following Stockfish's fancy-magic
// search (ported from the teacher's internal/types/magic.go initMagics).
// maxIndexBits bounds the table size per spec.md 3.6/6.1 (12 for rooks, 9
// for bishops); a mask with more relevant bits than that would not fit,
// but no reachable rook/bishop mask exceeds these bounds on an 8x8 board.
func initMagics(magics *[64]Magic, directions [4]Direction, maxIndexBits uint) {
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	tableSize := 1 << maxIndexBits
	occupancy := make([]Bitboard, tableSize)
	reference := make([]Bitboard, tableSize)
	epoch := make([]int, tableSize)

	for sq := Square(0); sq < 64; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ sq.Rank().Bb()) | ((FileABb | FileHBb) &^ sq.File().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, Empty) &^ edges
		m.IndexBits = uint(m.Mask.PopCount())
		m.Attacks = make([]Bitboard, 1<<m.IndexBits)

		var b Bitboard
		size := 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.Rank()])
		cnt := 0
		for i := 0; i < size; {
			for m.MagicNum = 0; ; {
				m.MagicNum = rng.sparseRand()
				if Bitboard((uint64(m.Mask)*m.MagicNum)>>56).PopCount() < 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.Index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack walks each of the four given ray directions from sq until
// it hits the board edge or an occupied square, inclusive of that
// blocker. Used only to build the reference tables the magic search
// verifies against and the testable-property-7 cross-check; never on a
// search or move-generation hot path.
func slidingAttack(directions [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			next, ok := stepOnBoard(s, d)
			if !ok {
				break
			}
			attack |= SquareBb(next)
			s = next
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// PrnG is the xorshift64star pseudo-random generator Stockfish uses to
// search for magic numbers. Dedicated to the public domain by Sebastiano
// Vigna (2014); see <http://vigna.di.unimi.it/ftp/papers/xorshift.pdf>.
type PrnG struct {
	s uint64
}

func newPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand produces a number with roughly 1/8th of its bits set on
// average, which converges on a working magic much faster than a
// uniformly random 64-bit value.
func (r *PrnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
