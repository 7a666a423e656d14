package search

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lifepath/automaton"
)

// SearchAll runs one independent Search per candidate automaton, at most
// Options.Workers at a time, and returns the results in candidate order.
// Candidates share no mutable state. The first error stops the dispatch of
// candidates not yet started; ctx cancellation does the same. Searches
// already running are never interrupted.
func SearchAll(ctx context.Context, candidates []*automaton.Automaton, opts ...Option) ([]*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	dispatched := 0
	for i, a := range candidates {
		if gctx.Err() != nil {
			break
		}
		dispatched++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Search(a, opts...)
			if err != nil {
				return fmt.Errorf("search: candidate %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if dispatched < len(candidates) {
		return results, ctx.Err()
	}
	return results, nil
}
