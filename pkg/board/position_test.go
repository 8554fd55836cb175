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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/sjadamgo/pkg/square"
)

func TestNewPositionStartingLayout(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, 16, p.Own().PopCount())
	assert.Equal(t, 16, p.Enemy().PopCount())
	assert.True(t, p.Own().Get(square.SqD2))
	assert.True(t, p.Enemy().Get(square.SqD7))
	assert.False(t, p.Own().Get(square.SqD3))
}

func TestNewPositionFenInvalid(t *testing.T) {
	_, err := NewPositionFen("not-a-fen")
	assert.Error(t, err)

	_, err = NewPositionFen("")
	assert.Error(t, err)

	_, err = NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x - - 0 1")
	assert.Error(t, err)
}

func TestApplyMoveSwitchesTurnAndOccupancy(t *testing.T) {
	p := NewPosition()
	p.ApplyMove(square.SqD2, square.SqD3)
	assert.Equal(t, Black, p.NextPlayer())
	// from white's perspective (now Enemy()) d2 is empty, d3 occupied
	assert.False(t, p.Enemy().Get(square.SqD2))
	assert.True(t, p.Enemy().Get(square.SqD3))
}

func TestMirrorFlipsBothSides(t *testing.T) {
	p := NewPosition()
	before := p.Occupancy(White)
	beforeBlack := p.Occupancy(Black)
	p.Mirror()
	require.Equal(t, before.Mirror(), p.Occupancy(White))
	require.Equal(t, beforeBlack.Mirror(), p.Occupancy(Black))
}

func TestOwnMaskAndEnemyMaskAliasTheBackingStorage(t *testing.T) {
	p := NewPosition()
	own, enemy := p.OwnMask(), p.EnemyMask()
	require.Equal(t, p.Own(), *own)
	require.Equal(t, p.Enemy(), *enemy)

	p.ApplyMove(square.SqD2, square.SqD3)

	// own/enemy swap sides after ApplyMove; the pointer obtained as "own"
	// before the move still aliases the slot of the side that just moved
	// (the move mutated that slot in place), which is now the enemy.
	assert.Equal(t, p.Enemy(), *own)
	assert.Equal(t, p.Own(), *enemy)
}
