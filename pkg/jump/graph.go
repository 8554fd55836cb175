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

// Package jump implements the Sjadam jump reachability engine: two
// incrementally-maintained graphs over the 64 squares (one per jump kind -
// over an own piece, over an enemy piece) and a component enumerator that
// turns them into the (source-set, destination-set) pairs a mover actually
// cares about.
package jump

import (
	"github.com/frankkopp/sjadamgo/internal/assert"
	"github.com/frankkopp/sjadamgo/pkg/board"
	"github.com/frankkopp/sjadamgo/pkg/square"
)

// Graph holds the own-piece jump graph and the enemy-piece jump graph for
// one side to move, plus the occupancy masks they were last bound to.
// Graph does not own its masks: own and enemy are references into a host
// position's storage (board.Position.Own()/Enemy() are values, so callers
// typically keep the backing array themselves and pass &array[color]).
// The caller is responsible for keeping the mask contents in sync with
// every Move before calling Move on the graph.
type Graph struct {
	ownEdges, enemyEdges *edgeSet
	ownMask, enemyMask   *board.OccupancyMask

	// SymmetricMoveEdges, when true, has Move additionally scan for and
	// drop any edges that jump over the destination square before adding
	// the new ones. Under the invariant that an empty square never has
	// edges jumping over it, this is a no-op; it exists so both readings
	// of the original move() contract are testable. See internal/config's
	// Jump.SymmetricMoveEdges.
	SymmetricMoveEdges bool
}

// NewGraph builds a Graph bound to own and enemy via Rebind.
func NewGraph(own, enemy *board.OccupancyMask) *Graph {
	g := &Graph{
		ownEdges:           new(edgeSet),
		enemyEdges:         new(edgeSet),
		SymmetricMoveEdges: true,
	}
	g.Rebind(own, enemy)
	return g
}

func (g *Graph) ownOps() edgeOps   { return plainOps{g.ownEdges} }
func (g *Graph) enemyOps() edgeOps { return mirroredOps{g.enemyEdges} }

// OwnSuccessors returns every square reachable from u by one jump over an
// own-occupied square.
func (g *Graph) OwnSuccessors(u square.Square) board.OccupancyMask { return g.ownOps().successors(u) }

// EnemySuccessors returns every square reachable from u by one jump over
// an enemy-occupied square.
func (g *Graph) EnemySuccessors(u square.Square) board.OccupancyMask {
	return g.enemyOps().successors(u)
}

// Rebind discards both graphs and rebuilds them from scratch against own
// and enemy, which become the graph's new mask references. O(own-popcount
// + enemy-popcount) work, same cost as building a Graph from nothing.
func (g *Graph) Rebind(own, enemy *board.OccupancyMask) {
	g.ownMask, g.enemyMask = own, enemy
	g.ownEdges.clear()
	g.enemyEdges.clear()

	complete := own.Union(*enemy)
	own.ForEach(func(s square.Square) { addEdgesOver(s, complete, g.ownOps()) })
	enemy.ForEach(func(s square.Square) { addEdgesOver(s, complete, g.enemyOps()) })
}

// addEdgesInto adds, for every square that could jump two squares into s,
// an edge from that square to s - provided the square it would jump over
// is currently occupied by either side. Called when s has just emptied
// out (it can now be landed on/through).
func (g *Graph) addEdgesInto(s square.Square) {
	for _, d := range square.AllDirections {
		from := s.Step(d, 2)
		if !from.IsValid() {
			continue
		}
		over := s.Step(d, 1)
		switch {
		case g.ownMask.Get(over):
			g.ownOps().connect(from, s)
		case g.enemyMask.Get(over):
			g.enemyOps().connect(from, s)
		}
	}
}

// removeEdgesInto drops every edge landing on s, in both graphs
// unconditionally - s has just become occupied and can no longer be
// jumped onto.
func (g *Graph) removeEdgesInto(s square.Square) {
	for _, d := range square.AllDirections {
		from := s.Step(d, 2)
		if !from.IsValid() {
			continue
		}
		g.ownOps().disconnect(from, s)
		g.enemyOps().disconnect(from, s)
	}
}

// Move updates both graphs for an own piece relocating from -> to.
// Precondition: the caller has already mutated the mask Graph is bound to
// (via its own storage) so that, at the time Move is called, to reads as
// occupied by own and from reads as empty. Calling Move when that does
// not hold is undefined behaviour; a debug build asserts it.
func (g *Graph) Move(from, to square.Square) {
	assert.Assert(g.ownMask.Get(to), "jump: Move(%s,%s): to must already be own-occupied", from, to)
	assert.Assert(!g.ownMask.Get(from) && !g.enemyMask.Get(from),
		"jump: Move(%s,%s): from must already be empty", from, to)

	removeEdgesOver(from, g.ownOps())
	if g.SymmetricMoveEdges {
		removeEdgesOver(to, g.ownOps())
		removeEdgesOver(to, g.enemyOps())
	}
	complete := g.ownMask.Union(*g.enemyMask)
	addEdgesOver(to, complete, g.ownOps())
	g.addEdgesInto(from)
	g.removeEdgesInto(to)
}

// Flip swaps which graph/mask pair is "own" and which is "enemy". Because
// the enemy graph already lives in the mirrored coordinate frame, this is
// a pointer swap - O(1), no edges are touched. After Flip, square indices
// passed to and read from Graph are implicitly in the mirrored frame: a
// caller must mirror its own mask handles in lockstep (board.Position.Mirror
// flips both of a position's occupancy masks in place) or successor
// queries will read back edges at the wrong squares.
func (g *Graph) Flip() {
	g.ownEdges, g.enemyEdges = g.enemyEdges, g.ownEdges
	g.ownMask, g.enemyMask = g.enemyMask, g.ownMask
}
