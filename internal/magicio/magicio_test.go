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

package magicio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/dkeller/chesscore/internal/types"
)

func sampleMagics() *[64]Magic {
	var m [64]Magic
	for sq := 0; sq < 64; sq++ {
		m[sq].Mask = Bitboard(0x0102030405060708 + uint64(sq))
		m[sq].MagicNum = uint64(sq)*31 + 7
		m[sq].IndexBits = 4
		m[sq].Attacks = make([]Bitboard, 1<<m[sq].IndexBits)
		for i := range m[sq].Attacks {
			m[sq].Attacks[i] = Bitboard(sq*100 + i)
		}
	}
	return &m
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rook_magics.bin")
	magics := sampleMagics()

	require.NoError(t, Save(path, magics, 12))

	loaded, err := Load(path, 12)
	require.NoError(t, err)

	for sq := 0; sq < 64; sq++ {
		assert.Equal(t, magics[sq].Mask, loaded[sq].Mask)
		assert.Equal(t, magics[sq].MagicNum, loaded[sq].MagicNum)
		assert.Equal(t, magics[sq].IndexBits, loaded[sq].IndexBits)
		assert.Equal(t, magics[sq].Attacks, loaded[sq].Attacks)
	}
}

func TestLoadRejectsWrongSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.bin")
	magics := sampleMagics()
	require.NoError(t, Save(path, magics, 12))

	// Truncate the file to simulate a bad offline-generated artifact.
	require.NoError(t, os.Truncate(path, 10))

	_, err := Load(path, 12)
	assert.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does_not_exist.bin"), 12)
	assert.Error(t, err)
}
