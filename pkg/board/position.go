//
// sjadamgo - Sjadam move-generation helpers in GO
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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

package board

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/frankkopp/sjadamgo/pkg/square"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPlacementRe = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)

// Position is a bare-bones board: which squares are occupied by which
// color, and whose turn it is. It intentionally has no notion of piece
// type, check, or castling rights - those belong to a real chess rules
// engine, which this package stands in for. ApplyMove does not check
// legality; callers (or a real chess rules engine) are responsible for
// only ever applying legal moves.
type Position struct {
	occupied   [2]OccupancyMask
	nextPlayer Color
}

// NewPosition creates a Position at the standard starting position.
func NewPosition() Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic(fmt.Sprintf("start fen is malformed: %s", err))
	}
	return p
}

// NewPositionFen parses a (possibly partial) FEN string into a Position.
// Only the piece-placement field and, if present, the side-to-move field
// are consulted; castling/en-passant/clock fields are accepted but ignored.
func NewPositionFen(fen string) (Position, error) {
	var p Position

	fen = strings.TrimSpace(fen)
	fields := strings.Split(fen, " ")
	if len(fields) == 0 || fields[0] == "" {
		return p, errors.New("fen must not be empty")
	}
	if !fenPlacementRe.MatchString(fields[0]) {
		return p, errors.New("fen piece placement contains invalid characters")
	}

	// FEN starts at a8 and runs toward h8, "/" drops to file a of the rank below.
	row, col := 7, 0
	for _, c := range fields[0] {
		switch {
		case c == '/':
			row--
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			color, ok := colorFromFenChar(c)
			if !ok {
				return p, fmt.Errorf("invalid piece character: %q", c)
			}
			sq := square.Of(row, col)
			if !sq.IsValid() {
				return p, fmt.Errorf("fen piece placement overruns the board at %q", c)
			}
			p.occupied[color] = p.occupied[color].Set(sq)
			col++
		}
	}
	if row != 0 || col != 8 {
		return p, errors.New("fen piece placement did not exactly cover 8x8")
	}

	p.nextPlayer = White
	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.nextPlayer = White
		case "b":
			p.nextPlayer = Black
		default:
			return p, errors.New("fen side-to-move must be 'w' or 'b'")
		}
	}

	return p, nil
}

func colorFromFenChar(c rune) (Color, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return White, true
	case c >= 'a' && c <= 'z':
		return Black, true
	default:
		return 0, false
	}
}

// NextPlayer returns whose turn it is.
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// Own returns the occupancy mask of the side to move.
func (p *Position) Own() OccupancyMask {
	return p.occupied[p.nextPlayer]
}

// Enemy returns the occupancy mask of the side not to move.
func (p *Position) Enemy() OccupancyMask {
	return p.occupied[p.nextPlayer.Flip()]
}

// Occupancy returns the occupancy mask for the given (absolute) color,
// independent of whose turn it is.
func (p *Position) Occupancy(c Color) OccupancyMask {
	return p.occupied[c]
}

// OwnMask returns a pointer into the Position's own backing storage for
// the side to move, suitable for binding a jump.Graph via jump.NewGraph
// or Graph.Rebind. The pointer stays valid across ApplyMove calls (the
// same array slots are mutated in place), but after ApplyMove hands over
// the turn it points at the mask of the side that just moved. Mirror also
// writes the slots in place, so the pointer remains valid there too.
func (p *Position) OwnMask() *OccupancyMask {
	return &p.occupied[p.nextPlayer]
}

// EnemyMask is OwnMask's counterpart for the side not to move.
func (p *Position) EnemyMask() *OccupancyMask {
	return &p.occupied[p.nextPlayer.Flip()]
}

// Complete returns the union of both sides' occupancy.
func (p *Position) Complete() OccupancyMask {
	return p.occupied[White].Union(p.occupied[Black])
}

// ApplyMove moves whatever sits on from to to, for the side to move, and
// hands the turn to the other side. It does not check legality: from must
// already be occupied by the side to move and to must be empty, exactly
// the precondition the jump reachability engine's Move documents.
func (p *Position) ApplyMove(from, to square.Square) {
	me := p.nextPlayer
	p.occupied[me] = p.occupied[me].Reset(from).Set(to)
	p.nextPlayer = me.Flip()
}

// Mirror flips both occupancy masks vertically in place, following
// lczero::BitBoard::Mirror()'s role in the original implementation's
// flip/set_bit_boards logic.
func (p *Position) Mirror() {
	p.occupied[White] = p.occupied[White].Mirror()
	p.occupied[Black] = p.occupied[Black].Mirror()
}

// String renders the complete-board occupancy, side-to-move last.
func (p *Position) String() string {
	return fmt.Sprintf("%s%s to move", p.Complete().String(), p.nextPlayer)
}
