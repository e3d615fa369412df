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

package movegen

import (
	"github.com/dkeller/chesscore/internal/position"
	. "github.com/dkeller/chesscore/internal/types"
)

// pinnedPieces returns the set of c's own squares pinned to c's king by an
// enemy slider, following spec.md 4.5's x-ray formula:
//
//	xray_rook(king) = rook(king, all) XOR rook(king, all XOR (all & rook(king, all)))
//
// restricted to removing only c's own blockers (the standard reading: an
// enemy piece sitting as the first blocker on a ray is itself the checking
// piece, not a pin, so only a friendly blocker's removal can reveal a
// pinner). For every enemy rook/queen (respectively bishop/queen) the xray
// reaches, the single own piece on in_between[king][attacker] is pinned.
//
// spec.md 9's simplified policy excludes pinned pieces from pseudo-legal
// generation entirely rather than restricting them to the pin ray, so
// callers only need membership in this set, not the ray itself.
func (g *Generator) pinnedPieces(pos *position.Position, c Color) map[Square]bool {
	t := g.Tables
	kingSq := pos.KingSquare(c)
	enemy := c.Flip()
	occ := pos.Occupied
	own := pos.Occupation(c)

	pinned := make(map[Square]bool)

	enemyRQ := pos.Pieces[enemy][Rook] | pos.Pieces[enemy][Queen]
	rookFromKing := t.RookMoves(kingSq, occ)
	rookBlockers := rookFromKing & own
	rookXray := t.RookMoves(kingSq, occ^rookBlockers) ^ rookFromKing
	for _, attacker := range (rookXray & enemyRQ).Squares() {
		between := t.InBetween[kingSq][attacker] & own
		if between.PopCount() == 1 {
			pinned[between.Lsb()] = true
		}
	}

	enemyBQ := pos.Pieces[enemy][Bishop] | pos.Pieces[enemy][Queen]
	bishopFromKing := t.BishopMoves(kingSq, occ)
	bishopBlockers := bishopFromKing & own
	bishopXray := t.BishopMoves(kingSq, occ^bishopBlockers) ^ bishopFromKing
	for _, attacker := range (bishopXray & enemyBQ).Squares() {
		between := t.InBetween[kingSq][attacker] & own
		if between.PopCount() == 1 {
			pinned[between.Lsb()] = true
		}
	}

	return pinned
}
