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

// Package batch runs jump-reachability queries over a list of positions
// concurrently, one independent jump.Graph per goroutine. Distinct Graph
// instances never share state, so this is safe without any locking
// inside pkg/jump itself.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/frankkopp/sjadamgo/internal/config"
	"github.com/frankkopp/sjadamgo/pkg/board"
	"github.com/frankkopp/sjadamgo/pkg/jump"
)

// Result pairs a FEN from the input batch with the components reachable
// from its side to move, or the error that parsing/building it produced.
type Result struct {
	Fen        string
	Components []jump.Component
	Err        error
}

// Run computes Result.Components for every fen in fens concurrently,
// one goroutine per fen, with at most config.Settings.Batch.Workers of
// them computing at a time. Results are returned in the same order as fens regardless of
// completion order. A per-FEN parse error is reported in that Result's
// Err field rather than aborting the whole batch.
func Run(ctx context.Context, fens []string) ([]Result, error) {
	results := make([]Result, len(fens))

	workers := config.Settings.Batch.Workers
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for i, fen := range fens {
		i, fen := i, fen
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return ctx.Err()
			}
			results[i] = compute(fen)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch: %w", err)
	}
	return results, nil
}

func compute(fen string) Result {
	pos, err := board.NewPositionFen(fen)
	if err != nil {
		return Result{Fen: fen, Err: err}
	}
	g := jump.NewGraph(pos.OwnMask(), pos.EnemyMask())
	return Result{Fen: fen, Components: g.Components()}
}
