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

// Package logging sets up one named github.com/op/go-logging logger per
// package that wants one, writing to stdout in a fixed format.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"

	"github.com/frankkopp/sjadamgo/internal/config"
)

// Logger re-exports op/go-logging's Logger type so callers need not
// import that package directly just to hold a variable of this type.
type Logger = logging.Logger

var (
	backendOnce sync.Once
	levels      = map[int]logging.Level{
		1: logging.CRITICAL,
		2: logging.ERROR,
		3: logging.WARNING,
		4: logging.NOTICE,
		5: logging.INFO,
		6: logging.DEBUG,
	}
)

// GetLog returns a named logger writing to stdout, formatted as
// "time shortfile:shortfunc level: message". The backend is configured
// once, from config.Settings.Log.LogLvl (config.Setup must have run, or
// the default level 5/INFO is used).
func GetLog(name string) *logging.Logger {
	log := logging.MustGetLogger(name)
	backendOnce.Do(func() {
		backend := logging.NewLogBackend(os.Stdout, "", 0)
		format := logging.MustStringFormatter(
			`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
		)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(formatted)
		lvl, ok := levels[config.LogLevel]
		if !ok {
			lvl = logging.INFO
		}
		leveled.SetLevel(lvl, "")
		logging.SetBackend(leveled)
	})
	return log
}
