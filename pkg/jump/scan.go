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

package jump

import (
	"github.com/frankkopp/sjadamgo/pkg/board"
	"github.com/frankkopp/sjadamgo/pkg/square"
)

// addEdgesOver adds, for every canonical direction through s, an edge
// between the two squares straddling s whenever the far end is empty on
// complete - i.e. every jump that would now use s as its jumped-over
// square. Called with ownOps when s just became own-occupied, or with
// enemyOps (mirrored) when s is enemy-occupied during a rebind.
func addEdgesOver(s square.Square, complete board.OccupancyMask, ops edgeOps) {
	for _, d := range square.CanonicalDirections {
		a := s.Step(d, 1)
		b := s.Step(d, -1)
		if !a.IsValid() || !b.IsValid() {
			continue
		}
		if !complete.Get(b) {
			ops.connect(a, b)
		}
		if !complete.Get(a) {
			ops.connect(b, a)
		}
	}
}

// removeEdgesOver drops every edge that used s as its jumped-over square,
// unconditionally - s is about to stop being a valid jump pivot (it either
// emptied out or a recompute is about to replace the edges outright).
func removeEdgesOver(s square.Square, ops edgeOps) {
	for _, d := range square.CanonicalDirections {
		a := s.Step(d, 1)
		b := s.Step(d, -1)
		if !a.IsValid() || !b.IsValid() {
			continue
		}
		ops.disconnect(a, b)
		ops.disconnect(b, a)
	}
}
