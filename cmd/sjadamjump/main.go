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

// Command sjadamjump is a small demo harness for pkg/jump. With no
// flags it reproduces the reference walkthrough: apply d2-d3, mirror,
// apply d7-d6, mirror, apply e2-e4, mirror, apply e7-e6, mirror, then
// print the reachable (sources -> destinations) pairs for the side to
// move. With -batch it instead reads one FEN per line from a file and
// reports the same pairs for each, computed concurrently.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/sjadamgo/internal/batch"
	"github.com/frankkopp/sjadamgo/internal/config"
	"github.com/frankkopp/sjadamgo/internal/logging"
	"github.com/frankkopp/sjadamgo/internal/version"
	"github.com/frankkopp/sjadamgo/pkg/board"
	"github.com/frankkopp/sjadamgo/pkg/jump"
	"github.com/frankkopp/sjadamgo/pkg/square"
)

var out = message.NewPrinter(language.German)

var log *logging.Logger

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	batchFile := flag.String("batch", "", "path to a file of FENs (one per line) to process concurrently")
	cpuprofile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	// logging's backend is configured from config.LogLevel on first use,
	// so the logger must not be created until after config.Setup has run.
	log = logging.GetLog("sjadamjump")

	if *batchFile != "" {
		runBatch(*batchFile)
		return
	}

	runDemo()
}

func printVersionInfo() {
	out.Printf("sjadamjump %s (built %s)\n", version.Version(), version.BuildTime())
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
}

// runDemo reproduces the reference implementation's scripted walkthrough.
func runDemo() {
	pos := board.NewPosition()

	// Moves are given in real-board notation; on black's turn the board is
	// mirrored, so black's squares are mirrored the same way.
	apply := func(from, to string) {
		f, t := square.MakeSquare(from), square.MakeSquare(to)
		if pos.NextPlayer() == board.Black {
			f, t = f.Mirror(), t.Mirror()
		}
		pos.ApplyMove(f, t)
		pos.Mirror()
	}
	apply("d2", "d3")
	apply("d7", "d6")
	apply("e2", "e4")
	apply("e7", "e6")

	log.Infof("position after setup: %s", pos.String())

	components := jump.Recompute(pos.Own(), pos.Enemy())
	printComponents(components)

	pos.ApplyMove(square.SqC1, square.SqD8)
	out.Println()
	out.Println(pos.String())
}

func printComponents(components []jump.Component) {
	out.Printf("Found %d reachability component(s):\n", len(components))
	for _, c := range components {
		out.Printf("{ ")
		c.Sources.ForEach(func(sq square.Square) { out.Printf("%s ", sq) })
		out.Printf("} -> { ")
		c.Destinations.ForEach(func(sq square.Square) { out.Printf("%s ", sq) })
		out.Printf("}\n")
	}
}

func runBatch(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Errorf("could not open batch file %s: %v", path, err)
		return
	}
	defer f.Close()

	var fens []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			fens = append(fens, line)
		}
	}

	results, err := batch.Run(context.Background(), fens)
	if err != nil {
		log.Errorf("batch run failed: %v", err)
		return
	}

	for _, r := range results {
		if r.Err != nil {
			out.Printf("%s: error: %v\n", r.Fen, r.Err)
			continue
		}
		out.Printf("%s:\n", r.Fen)
		printComponents(r.Components)
	}
	fmt.Println()
}
