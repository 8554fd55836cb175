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

// Component is one (source-set, destination-set) pair of a
// ReachabilityResult: every own piece in Sources can, via some legal jump
// chain, reach every square in Destinations. A piece whose first jumps
// land in regions that are not connected to each other appears in the
// Sources of each of those components.
type Component struct {
	Sources      board.OccupancyMask
	Destinations board.OccupancyMask
}

// successorFunc reports the squares reachable from u by one jump of a
// given kind (own-pivot or enemy-pivot). It is the only shape the
// component walk needs, which lets Graph.Components (persistent edge
// sets) and Recompute (neighbour rescan) share one implementation.
type successorFunc func(u square.Square) board.OccupancyMask

// Components enumerates the graph's connected components: seeds are own
// pieces with at least one first jump, the own-jump graph is spanned
// exhaustively, and the enemy graph contributes terminal one-hop leaves
// deduplicated against own-graph reachability.
func (g *Graph) Components() []Component {
	return walkComponents(g.ownOps().successors, g.enemyOps().successors, *g.ownMask)
}

// Recompute derives the same ReachabilityResult as a Graph built fresh
// from own and enemy, but holds no adjacency state between calls: every
// jump is re-derived from own/enemy by scanning neighbours on the spot.
// It is the stateless counterpart used to cross-check incremental
// Graph.Move/Components against a from-scratch recomputation.
func Recompute(own, enemy board.OccupancyMask) []Component {
	complete := own.Union(enemy)
	ownSucc := func(u square.Square) board.OccupancyMask { return jumpSuccessors(u, complete, own) }
	enemySucc := func(u square.Square) board.OccupancyMask { return jumpSuccessors(u, complete, enemy) }
	return walkComponents(ownSucc, enemySucc, own)
}

// jumpSuccessors returns every square reachable from u by jumping over an
// adjacent square occupied in pivot, landing on an empty square of
// complete - the definition of one jump edge, computed directly rather
// than read from a persisted matrix.
func jumpSuccessors(u square.Square, complete, pivot board.OccupancyMask) board.OccupancyMask {
	var out board.OccupancyMask
	for _, d := range square.AllDirections {
		m := u.Step(d, 1)
		v := u.Step(d, 2)
		if !m.IsValid() || !v.IsValid() {
			continue
		}
		if pivot.Get(m) && !complete.Get(v) {
			out = out.Set(v)
		}
	}
	return out
}

// walkComponents is the shared DFS: own-jump edges are spanned
// exhaustively, enemy-jump edges are attached as terminal leaves
// (at most one enemy jump per chain, and it must be last), and an
// enemy-reached square is dropped from the leaf set whenever it also has
// outgoing own-graph edges, since the own-graph traversal will reach it
// on its own and counting it twice would violate uniqueness of
// destination-square membership.
func walkComponents(ownSucc, enemySucc successorFunc, ownMask board.OccupancyMask) []Component {
	var graphID [64]int
	var components []Component

	ownMask.ForEach(func(s square.Square) {
		ownSucc(s).ForEach(func(v square.Square) {
			if graphID[v] != 0 {
				id := graphID[v]
				components[id-1].Sources = components[id-1].Sources.Set(s)
				return
			}

			components = append(components, Component{Sources: board.Empty.Set(s)})
			id := len(components)

			stack := []square.Square{v}
			for len(stack) > 0 {
				u := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if graphID[u] != 0 {
					continue
				}
				graphID[u] = id
				components[id-1].Destinations = components[id-1].Destinations.Set(u)

				ownSucc(u).ForEach(func(w square.Square) { stack = append(stack, w) })
				enemySucc(u).ForEach(func(w square.Square) {
					if ownSucc(w) == board.Empty {
						components[id-1].Destinations = components[id-1].Destinations.Set(w)
					}
				})
			}
		})
	})

	return components
}
