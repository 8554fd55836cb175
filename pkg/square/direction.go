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

package square

import "fmt"

// Direction is a row/col step on the 8x8 board. Jump geometry needs the
// row and column delta separately (unlike a flat index delta) because a
// jump's validity depends on both staying on the board and not wrapping
// around a file edge.
type Direction struct {
	DRow int8
	DCol int8
}

// The eight compass directions.
var (
	North     = Direction{1, 0}
	South     = Direction{-1, 0}
	East      = Direction{0, 1}
	West      = Direction{0, -1}
	Northeast = Direction{1, 1}
	Southeast = Direction{-1, 1}
	Southwest = Direction{-1, -1}
	Northwest = Direction{1, -1}
)

// AllDirections holds all eight compass directions, used when scanning
// for edges that land on a newly vacated or newly occupied square.
var AllDirections = [8]Direction{North, South, East, West, Northeast, Southeast, Southwest, Northwest}

// CanonicalDirections holds one representative per unordered jump line:
// {(1,1), (1,0), (1,-1), (0,1)}. Scanning only these four visits every
// pair of opposite squares around a jumped-over square exactly once.
var CanonicalDirections = [4]Direction{Northeast, North, Northwest, East}

// String returns a short compass label for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	case Northeast:
		return "NE"
	case Southeast:
		return "SE"
	case Southwest:
		return "SW"
	case Northwest:
		return "NW"
	default:
		return fmt.Sprintf("Direction(%d,%d)", d.DRow, d.DCol)
	}
}

// Negate returns the opposite direction.
func (d Direction) Negate() Direction {
	return Direction{-d.DRow, -d.DCol}
}
