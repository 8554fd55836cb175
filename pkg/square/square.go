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

// Package square holds the pure, total geometry functions over the 8x8
// coordinate space that the rest of sjadamgo builds on: square validity,
// index packing/unpacking, the vertical mirror used to flip perspective,
// and the eight compass directions.
package square

import "fmt"

// Square represents exactly one square on a chess board, packed as
// row*8 + col with a1 = 0 and h8 = 63.
type Square uint8

// SqNone is the sentinel for "no square" / an invalid index.
const SqNone Square = 64

// SqA1..SqH8 name every square of the board in rank-major order.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
)

// Valid reports whether (row, col) lies on the 8x8 board.
func Valid(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

// Index packs a (row, col) pair into a 0..63 square index.
func Index(row, col int) int {
	return row*8 + col
}

// Of returns the Square for a valid (row, col), or SqNone otherwise.
func Of(row, col int) Square {
	if !Valid(row, col) {
		return SqNone
	}
	return Square(Index(row, col))
}

// IsValid checks whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// Row returns the 0-based row (rank) of the square.
func (sq Square) Row() int {
	return int(sq) / 8
}

// Col returns the 0-based column (file) of the square.
func (sq Square) Col() int {
	return int(sq) % 8
}

// FileOf returns the File of the square.
func (sq Square) FileOf() File {
	return File(sq.Col())
}

// RankOf returns the Rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq.Row())
}

// Mirror returns the square reached by a vertical board flip (row r <-> row 7-r),
// implemented as the classic XOR-with-56 trick.
func (sq Square) Mirror() Square {
	return Square(uint8(sq) ^ 0b111000)
}

// Step moves n squares (n may be negative) from sq in direction d, returning
// SqNone if any step leaves the board. n == 1 is an ordinary step, n == 2 is
// the distance a Sjadam jump travels.
func (sq Square) Step(d Direction, n int) Square {
	row := sq.Row() + n*int(d.DRow)
	col := sq.Col() + n*int(d.DCol)
	return Of(row, col)
}

// MakeSquare parses algebraic notation (e.g. "e4") into a Square, or
// returns SqNone if s is not a valid square name.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	col := int(s[0] - 'a')
	row := int(s[1] - '1')
	return Of(row, col)
}

// String returns algebraic notation (e.g. "e4"), or "-" for an invalid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s%s", sq.FileOf().String(), sq.RankOf().String())
}
