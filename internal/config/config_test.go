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

package config

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// make tests run in the project's root directory so ConfFile resolves
// the same way cmd/sjadamjump would find it.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestSetupAppliesDefaultsWithoutAConfigFile(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"

	Setup()

	assert.True(t, Settings.Jump.SymmetricMoveEdges)
	assert.Equal(t, 4, Settings.Batch.Workers)
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"
	Setup()

	Settings.Jump.SymmetricMoveEdges = false
	Setup()

	assert.False(t, Settings.Jump.SymmetricMoveEdges, "second Setup call must be a no-op")
}

func TestStringListsFields(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"
	Setup()

	out := Settings.String()
	assert.Contains(t, out, "SymmetricMoveEdges")
	assert.Contains(t, out, "Workers")
}
