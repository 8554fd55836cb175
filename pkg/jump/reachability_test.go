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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/sjadamgo/pkg/board"
	"github.com/frankkopp/sjadamgo/pkg/square"
)

// assertPartition checks the two invariants that hold regardless of the
// exact shape of a ReachabilityResult: destinations never overlap across
// components, and no destination sits on an occupied square.
func assertPartition(t *testing.T, complete board.OccupancyMask, got []Component) {
	t.Helper()
	var seen board.OccupancyMask
	for _, c := range got {
		c.Destinations.ForEach(func(sq square.Square) {
			assert.Falsef(t, seen.Get(sq), "square %s claimed by more than one component", sq)
			seen = seen.Set(sq)
			assert.Falsef(t, complete.Get(sq), "destination %s is not empty on the complete board", sq)
		})
	}
}

func TestComponentsInitialPositionInvariants(t *testing.T) {
	own, enemy := startingMasks()
	got := Recompute(own, enemy)

	require.NotEmpty(t, got)
	assertPartition(t, own.Union(enemy), got)

	// Every own square with an outgoing own-graph edge must appear in some
	// source set (the "seed presence" property).
	var covered board.OccupancyMask
	for _, c := range got {
		c.Sources.ForEach(func(sq square.Square) { covered = covered.Set(sq) })
	}
	own.ForEach(func(sq square.Square) {
		if jumpSuccessors(sq, own.Union(enemy), own) != board.Empty {
			assert.Truef(t, covered.Get(sq), "own square %s has a first jump but is not a seed", sq)
		}
	})
}

func TestComponentsChainOfTwoOwnPieces(t *testing.T) {
	// own = {a2, a3}, enemy = empty. a2 jumps over a3 landing on a4; a3
	// jumps back over a2 landing on a1. Neither landing square has a
	// further jump, so each forms its own singleton component.
	own := board.Empty.Set(square.SqA2).Set(square.SqA3)
	got := Recompute(own, board.Empty)

	assert.ElementsMatch(t, []Component{
		{Sources: board.Empty.Set(square.SqA2), Destinations: board.Empty.Set(square.SqA4)},
		{Sources: board.Empty.Set(square.SqA3), Destinations: board.Empty.Set(square.SqA1)},
	}, got)
}

func TestComponentsEnemyOneHopNeedsAnOwnSeed(t *testing.T) {
	// own = {a2}, enemy = {a3}: a2 has no own-graph first jump (a3 is
	// enemy, not own), so it is never a seed and the lone enemy jump it
	// could otherwise make is never surfaced.
	own := board.Empty.Set(square.SqA2)
	enemy := board.Empty.Set(square.SqA3)
	assert.Empty(t, Recompute(own, enemy))

	// Adding a second own piece at a4 does not create an own-graph edge
	// either (the pivot a3 is still enemy), so the result is still empty.
	own = own.Set(square.SqA4)
	assert.Empty(t, Recompute(own, enemy))
}

func TestComponentsEnemyTerminalHopIsAttached(t *testing.T) {
	// own = {a2, a1}: a1 jumps over a2 landing a3 (own-graph). enemy = {a4}:
	// a4 is adjacent to a3 in the same file and a5 beyond it is empty, so
	// a3 can continue with exactly one enemy hop, landing on a5.
	own := board.Empty.Set(square.SqA1).Set(square.SqA2)
	enemy := board.Empty.Set(square.SqA4)

	got := Recompute(own, enemy)
	require.Len(t, got, 1)
	assert.True(t, got[0].Sources.Get(square.SqA1))
	assert.True(t, got[0].Destinations.Get(square.SqA3), "own-graph landing square")
	assert.True(t, got[0].Destinations.Get(square.SqA5), "terminal enemy hop over a4")
}

func TestRebuildEquivalenceUnderIncrementalMoves(t *testing.T) {
	own, enemy := startingMasks()
	g := NewGraph(&own, &enemy)

	moves := [][2]square.Square{
		{square.SqD2, square.SqD4},
		{square.SqB2, square.SqB3},
		{square.SqG1, square.SqG3},
		{square.SqD4, square.SqD5},
		{square.SqA2, square.SqA5},
	}

	for _, mv := range moves {
		from, to := mv[0], mv[1]
		require.True(t, own.Get(from), "precondition: from must be own-occupied")
		require.False(t, own.Get(to) || enemy.Get(to), "precondition: to must be empty")

		own = own.Reset(from).Set(to)
		g.Move(from, to)

		assert.ElementsMatch(t, Recompute(own, enemy), g.Components())
	}
}
