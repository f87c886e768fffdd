package simgraph

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/matrix"
)

// cancelCheckEvery bounds how many rows a worker scans between context checks.
const cancelCheckEvery = 64

// Build computes the similarity graph of m's rows.
//
// Steps:
//  1. Apply options; fail fast on ErrOptionViolation or a nil matrix.
//  2. Fan out one scanner per stripe of rows under an errgroup.
//  3. Reduce: concatenate stripe buffers, sort by (From, To), insert.
//
// Returns ctx.Err() if the context is cancelled mid-scan.
func Build(ctx context.Context, m *matrix.Dense, opts ...Option) (*core.Graph, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if m == nil {
		return nil, ErrNilMatrix
	}

	n := m.Rows()
	workers := min(cfg.Workers, max(n, 1))

	// 2) Scan stripes concurrently
	buffers := make([][]core.Edge, workers)
	eg, egctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			edges, err := scanStripe(egctx, m, w, workers, cfg.Threshold)
			if err != nil {
				return err
			}
			buffers[w] = edges

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 3) Deterministic reduce
	var total int
	for _, b := range buffers {
		total += len(b)
	}
	all := make([]core.Edge, 0, total)
	for _, b := range buffers {
		all = append(all, b...)
	}
	slices.SortFunc(all, func(a, b core.Edge) int {
		if a.From != b.From {
			return a.From - b.From
		}

		return a.To - b.To
	})

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("simgraph: %w", err)
	}
	for _, e := range all {
		if _, err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("simgraph: edge %d—%d: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// scanStripe compares every row i ≡ stripe (mod stride) against all j > i
// and returns the pairs within threshold, ordered by (i, j).
func scanStripe(ctx context.Context, m *matrix.Dense, stripe, stride int, threshold float64) ([]core.Edge, error) {
	n := m.Rows()
	var out []core.Edge
	var scanned int
	for i := stripe; i < n; i += stride {
		if scanned%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		scanned++

		for j := i + 1; j < n; j++ {
			d, err := m.RowDistance(i, j)
			if err != nil {
				return nil, fmt.Errorf("simgraph: %w", err)
			}
			if d <= threshold {
				out = append(out, core.Edge{From: i, To: j, Weight: d})
			}
		}
	}

	return out, nil
}
