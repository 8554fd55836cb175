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

// edgeOps is how the edge-scanning helpers (addEdgesOver, removeEdgesOver,
// ...) reach either graph without caring which coordinate frame it is
// stored in. ownOps never mirrors; enemyOps mirrors both endpoints on
// every call so the enemy graph lives in the mirrored frame a Flip can
// swap in O(1) - see Graph.Flip.
type edgeOps interface {
	connect(u, v square.Square)
	disconnect(u, v square.Square)
	has(u, v square.Square) bool
	successors(u square.Square) board.OccupancyMask
}

type plainOps struct{ set *edgeSet }

func (o plainOps) connect(u, v square.Square)                   { o.set.connect(u, v) }
func (o plainOps) disconnect(u, v square.Square)                { o.set.disconnect(u, v) }
func (o plainOps) has(u, v square.Square) bool                  { return o.set.has(u, v) }
func (o plainOps) successors(u square.Square) board.OccupancyMask { return o.set.successors(u) }

type mirroredOps struct{ set *edgeSet }

func (o mirroredOps) connect(u, v square.Square) {
	o.set.connect(u.Mirror(), v.Mirror())
}

func (o mirroredOps) disconnect(u, v square.Square) {
	o.set.disconnect(u.Mirror(), v.Mirror())
}

func (o mirroredOps) has(u, v square.Square) bool {
	return o.set.has(u.Mirror(), v.Mirror())
}

func (o mirroredOps) successors(u square.Square) board.OccupancyMask {
	return o.set.successors(u.Mirror()).Mirror()
}
