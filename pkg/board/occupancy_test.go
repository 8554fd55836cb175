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

	"github.com/frankkopp/sjadamgo/pkg/square"
)

func TestOccupancyGetSetReset(t *testing.T) {
	m := Empty
	assert.False(t, m.Get(square.SqD4))
	m = m.Set(square.SqD4)
	assert.True(t, m.Get(square.SqD4))
	m = m.Reset(square.SqD4)
	assert.False(t, m.Get(square.SqD4))
}

func TestOccupancyUnionAndPopCount(t *testing.T) {
	a := Empty.Set(square.SqA1).Set(square.SqB2)
	b := Empty.Set(square.SqC3)
	u := a.Union(b)
	assert.Equal(t, 3, u.PopCount())
	assert.True(t, u.Get(square.SqA1))
	assert.True(t, u.Get(square.SqC3))
}

func TestOccupancySquaresOrder(t *testing.T) {
	m := Empty.Set(square.SqH8).Set(square.SqA1).Set(square.SqD4)
	assert.Equal(t, []square.Square{square.SqA1, square.SqD4, square.SqH8}, m.Squares())
}

func TestOccupancyMirrorInvolution(t *testing.T) {
	m := Empty.Set(square.SqA2).Set(square.SqH7).Set(square.SqD4)
	assert.Equal(t, m, m.Mirror().Mirror())
	assert.True(t, m.Mirror().Get(square.SqA7))
	assert.True(t, m.Mirror().Get(square.SqH2))
}
