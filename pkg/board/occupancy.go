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

// Package board provides the occupancy-mask primitive and a minimal chess
// position (FEN parsing, bare move application) that stands in for the
// "chess rules engine" and "bitboard primitive" collaborators the jump
// reachability engine consumes. It does not legalise moves.
package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/frankkopp/sjadamgo/pkg/square"
)

// OccupancyMask is a 64-bit set of squares, one bit per board square.
type OccupancyMask uint64

// Empty is the mask with no squares set.
const Empty OccupancyMask = 0

// Full is the mask with every square set.
const Full OccupancyMask = ^OccupancyMask(0)

// Get reports whether sq is set in the mask.
func (m OccupancyMask) Get(sq square.Square) bool {
	return m&(1<<uint(sq)) != 0
}

// GetRC reports whether (row, col) is set in the mask.
func (m OccupancyMask) GetRC(row, col int) bool {
	sq := square.Of(row, col)
	if !sq.IsValid() {
		return false
	}
	return m.Get(sq)
}

// Set returns the mask with sq added.
func (m OccupancyMask) Set(sq square.Square) OccupancyMask {
	return m | (1 << uint(sq))
}

// Reset returns the mask with sq removed.
func (m OccupancyMask) Reset(sq square.Square) OccupancyMask {
	return m &^ (1 << uint(sq))
}

// Union returns the bitwise OR of m and other - the combined occupancy of
// both sides, i.e. the "complete board".
func (m OccupancyMask) Union(other OccupancyMask) OccupancyMask {
	return m | other
}

// PopCount returns the number of squares set in the mask.
func (m OccupancyMask) PopCount() int {
	return bits.OnesCount64(uint64(m))
}

// Squares returns every set square in ascending index order.
func (m OccupancyMask) Squares() []square.Square {
	squares := make([]square.Square, 0, m.PopCount())
	for b := m; b != 0; b &= b - 1 {
		squares = append(squares, square.Square(bits.TrailingZeros64(uint64(b))))
	}
	return squares
}

// ForEach calls fn once for every set square, in ascending index order.
func (m OccupancyMask) ForEach(fn func(sq square.Square)) {
	for b := m; b != 0; b &= b - 1 {
		fn(square.Square(bits.TrailingZeros64(uint64(b))))
	}
}

// Mirror returns the mask vertically flipped (row r <-> row 7-r).
func (m OccupancyMask) Mirror() OccupancyMask {
	var out OccupancyMask
	m.ForEach(func(sq square.Square) {
		out = out.Set(sq.Mirror())
	})
	return out
}

// String renders the mask as an 8x8 board, rank 8 on top.
func (m OccupancyMask) String() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := 7; r >= 0; r-- {
		for c := 0; c < 8; c++ {
			if m.GetRC(r, c) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString(fmt.Sprintf("| %d\n+---+---+---+---+---+---+---+---+\n", r+1))
	}
	return sb.String()
}
