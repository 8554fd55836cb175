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

// Package config holds globally available configuration variables which
// are either set by defaults or read from a TOML config file.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/sjadamgo/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working directory).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by cmd line options or config file.
	LogLevel = 5

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log   logConfiguration
	Jump  jumpConfiguration
	Batch batchConfiguration
}

type logConfiguration struct {
	LogLvl int
}

// jumpConfiguration controls pkg/jump.Graph tuning switches.
type jumpConfiguration struct {
	// SymmetricMoveEdges mirrors Open Question resolution #1: treat the
	// move destination symmetrically to the source when re-scanning
	// over-edges. See jump.Graph.SymmetricMoveEdges.
	SymmetricMoveEdges bool
}

// batchConfiguration controls internal/batch's worker concurrency.
type batchConfiguration struct {
	Workers int
}

func defaults() conf {
	return conf{
		Log:   logConfiguration{LogLvl: LogLevel},
		Jump:  jumpConfiguration{SymmetricMoveEdges: true},
		Batch: batchConfiguration{Workers: 4},
	}
}

// Setup reads the configuration file and sets Settings from it, falling
// back to defaults for any value the file does not override (or if the
// file is absent entirely).
func Setup() {
	if initialized {
		return
	}

	Settings = defaults()

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	if Settings.Log.LogLvl != 0 {
		LogLevel = Settings.Log.LogLvl
	}
	initialized = true
}

// String prints out the current configuration settings and values using
// reflection to read fields generically.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Jump Config:\n")
	writeFields(&c, reflect.ValueOf(&settings.Jump).Elem())
	c.WriteString("\nBatch Config:\n")
	writeFields(&c, reflect.ValueOf(&settings.Batch).Elem())
	return c.String()
}

func writeFields(c *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
}
