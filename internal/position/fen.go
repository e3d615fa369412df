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

package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/dkeller/chesscore/internal/types"
)

// ParseFEN parses standard Forsyth-Edwards Notation (spec.md 6.2) into a
// Position. Errors name the offending field or character (spec.md 7),
// following original_source/sdk/src/fen.rs's validation.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen: expected 6 space-separated fields, got %d in %q", len(fields), fen)
	}

	pos := NewEmpty()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: piece placement has %d ranks, want 8 in %q", len(ranks), fields[0])
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i) // FEN ranks run 8 (top) to 1 (bottom)
		file := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				continue
			}
			if file > FileH {
				return nil, fmt.Errorf("fen: rank %s overflows past file h in %q", rank, rankStr)
			}
			pc, ok := PieceFromChar(byte(ch))
			if !ok {
				return nil, fmt.Errorf("fen: invalid piece character %q in rank %s", ch, rank)
			}
			pos.addPiece(NewSquare(file, rank), pc)
			file++
		}
		if file != FileNone {
			return nil, fmt.Errorf("fen: rank %s has %d files, want 8 in %q", rank, int(file), rankStr)
		}
	}

	if pos.Pieces[White][King].PopCount() != 1 || pos.Pieces[Black][King].PopCount() != 1 {
		return nil, fmt.Errorf("fen: position must have exactly one king per color in %q", fen)
	}

	switch fields[1] {
	case "w":
		pos.Turn = White
	case "b":
		pos.Turn = Black
	default:
		return nil, fmt.Errorf("fen: invalid side to move %q, want \"w\" or \"b\"", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				pos.Castling |= WhiteKingside
			case 'Q':
				pos.Castling |= WhiteQueenside
			case 'k':
				pos.Castling |= BlackKingside
			case 'q':
				pos.Castling |= BlackQueenside
			default:
				return nil, fmt.Errorf("fen: invalid castling character %q in %q", ch, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return nil, fmt.Errorf("fen: invalid en-passant target %q", fields[3])
		}
		f := fields[3][0]
		r := fields[3][1]
		if f < 'a' || f > 'h' {
			return nil, fmt.Errorf("fen: en-passant file %q out of range a-h", f)
		}
		file := File(f - 'a')
		var rank Rank
		switch r {
		case '3':
			rank = Rank3
		case '6':
			rank = Rank6
		default:
			return nil, fmt.Errorf("fen: en-passant rank %q must be 3 or 6", r)
		}
		pos.EnPassant = NewSquare(file, rank)
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("fen: invalid halfmove clock %q", fields[4])
	}
	pos.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("fen: invalid fullmove number %q", fields[5])
	}
	pos.FullmoveNumber = fullmove

	return pos, nil
}

// FEN renders p as standard Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	var sb strings.Builder

	for r := int(Rank8); r >= int(Rank1); r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			sq := NewSquare(f, Rank(r))
			pc, ok := p.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > int(Rank1) {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.Turn.String())

	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullmoveNumber))

	return sb.String()
}
