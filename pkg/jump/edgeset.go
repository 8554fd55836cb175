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

// edgeSet is a dense directed adjacency matrix over the 64 squares, one
// board.OccupancyMask of successors per source square. 64 squares * 8
// bytes is 512 bytes - the "1 KiB for both graphs" shape the reachability
// engine is built around.
type edgeSet [64]board.OccupancyMask

func (e *edgeSet) clear() {
	for i := range e {
		e[i] = board.Empty
	}
}

func (e *edgeSet) connect(u, v square.Square) {
	e[u] = e[u].Set(v)
}

func (e *edgeSet) disconnect(u, v square.Square) {
	e[u] = e[u].Reset(v)
}

func (e *edgeSet) has(u, v square.Square) bool {
	return e[u].Get(v)
}

func (e *edgeSet) successors(u square.Square) board.OccupancyMask {
	return e[u]
}
