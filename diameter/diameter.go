package diameter

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/dijkstra"
)

// sweep is the best pair found from one source.
type sweep struct {
	dist   float64
	target int
}

// Estimate returns the approximate diameter of g.
//
// Steps:
//  1. Apply options; fail fast on ErrOptionViolation or a nil graph.
//  2. Run Dijkstra from every source in [0, k) on a bounded errgroup.
//  3. Reduce the per-source maxima in ascending source order.
//
// Returns ctx.Err() if the context is cancelled before all sweeps finish.
func Estimate(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}

	k := min(cfg.SampleSize, g.NodeCount())
	if k == 0 {
		return Result{}, nil
	}

	sweeps := make([]sweep, k)
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for src := 0; src < k; src++ {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			res, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
			if err != nil {
				return fmt.Errorf("diameter: source %d: %w", src, err)
			}
			target, d := res.Farthest()
			sweeps[src] = sweep{dist: d, target: target}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	out := Result{Sampled: k}
	for src, s := range sweeps {
		if s.dist > out.MaxDistance {
			out.MaxDistance = s.dist
			out.Source = src
			out.Target = s.target
		}
	}

	return out, nil
}
