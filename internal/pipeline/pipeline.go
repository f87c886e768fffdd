// Package pipeline runs one similarity-graph analysis end to end:
// load, encode, build, paths (distances, hop layers, components, spanning
// trees), diameter estimate, report.
//
// Stages run strictly in sequence and each hands its output to the next
// unchanged. The first failure aborts the run with a *StageError naming
// the stage; nothing is reported for a failed run beyond what earlier
// sections already wrote.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/simgraph/bfs"
	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/dataset"
	"github.com/katalvlaran/simgraph/diameter"
	"github.com/katalvlaran/simgraph/dijkstra"
	"github.com/katalvlaran/simgraph/encoder"
	"github.com/katalvlaran/simgraph/internal/config"
	"github.com/katalvlaran/simgraph/mst"
	"github.com/katalvlaran/simgraph/report"
	"github.com/katalvlaran/simgraph/simgraph"
)

// Summary is what a successful run computed.
type Summary struct {
	Rows       int
	Features   int
	Nodes      int
	Edges      int
	Reachable  int
	Components int
	Forest     *mst.Forest
	SourceTree *mst.Forest
	Layers     []int
	Diameter   diameter.Result
	Path       []int
}

// Run executes the analysis described by cfg, writing the report to out.
// Progress is logged to logger at Info level, one record per stage.
func Run(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) (*Summary, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var sum Summary

	// 1) Load
	start := time.Now()
	tbl, err := dataset.LoadFile(cfg.Input, dataset.WithDelimiter(cfg.DelimiterRune()))
	if err != nil {
		return nil, fail(StageLoad, err)
	}
	sum.Rows = tbl.Len()
	logger.Info("stage complete", "stage", StageLoad, "file", cfg.Input,
		"rows", tbl.Len(), "columns", len(tbl.Header), "duration", time.Since(start))

	// 2) Encode
	start = time.Now()
	mode := cfg.ModeValue()
	sel, err := dataset.Resolve(tbl.Header, mode, cfg.Subsets)
	if err != nil {
		return nil, fail(StageEncode, err)
	}
	enc, err := encoder.Encode(tbl, sel)
	if err != nil {
		return nil, fail(StageEncode, err)
	}
	sum.Features = len(enc.Features)
	logger.Info("stage complete", "stage", StageEncode, "mode", mode,
		"numeric", len(enc.Numeric), "categorical", len(enc.Categorical),
		"features", len(enc.Features), "duration", time.Since(start))
	logger.Debug("feature layout", "features", enc.Features)

	// 3) Build
	start = time.Now()
	buildOpts := []simgraph.Option{simgraph.WithThreshold(cfg.Threshold)}
	if cfg.Workers > 0 {
		buildOpts = append(buildOpts, simgraph.WithWorkers(cfg.Workers))
	}
	g, err := simgraph.Build(ctx, enc.Matrix, buildOpts...)
	if err != nil {
		return nil, fail(StageBuild, err)
	}
	sum.Nodes, sum.Edges = g.NodeCount(), g.EdgeCount()
	logger.Info("stage complete", "stage", StageBuild, "threshold", cfg.Threshold,
		"nodes", sum.Nodes, "edges", sum.Edges, "duration", time.Since(start))

	rep := report.New(out, tbl, report.WithFormat(outputFormat(cfg.Output)), report.WithLabelColumn(cfg.Label))
	if !rep.HasLabel() {
		logger.Warn("label column not found; label sections omitted", "label", cfg.Label)
	}
	if err = rep.Summary(g, enc); err != nil {
		return nil, fail(StageReport, err)
	}

	// 4) Paths
	if sum.Nodes == 0 {
		logger.Warn("dataset has no rows; skipping path analysis")
		return &sum, nil
	}
	start = time.Now()
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(cfg.Source))
	if err != nil {
		return nil, fail(StagePaths, err)
	}
	layers, err := hopLayers(ctx, g, cfg.Source, cfg.Hops)
	if err != nil {
		return nil, fail(StagePaths, err)
	}
	comps := bfs.Components(g)
	forest, err := mst.Kruskal(g)
	if err != nil {
		return nil, fail(StagePaths, err)
	}
	tree, err := mst.Prim(g, cfg.Source)
	if err != nil {
		return nil, fail(StagePaths, err)
	}
	sum.Reachable, sum.Components, sum.Layers = len(res.Dist), len(comps), layers
	sum.Forest, sum.SourceTree = forest, tree
	logger.Info("stage complete", "stage", StagePaths, "source", cfg.Source,
		"reachable", sum.Reachable, "hop_layers", len(layers), "components", sum.Components,
		"forest_weight", forest.TotalWeight, "duration", time.Since(start))

	if err = rep.Distances(res); err != nil {
		return nil, fail(StageReport, err)
	}
	if err = rep.Layers(cfg.Source, layers); err != nil {
		return nil, fail(StageReport, err)
	}
	if err = rep.Classes(); err != nil {
		return nil, fail(StageReport, err)
	}

	// 5) Diameter
	start = time.Now()
	diaOpts := []diameter.Option{diameter.WithSampleSize(cfg.Sample)}
	if cfg.Workers > 0 {
		diaOpts = append(diaOpts, diameter.WithWorkers(cfg.Workers))
	}
	est, err := diameter.Estimate(ctx, g, diaOpts...)
	if err != nil {
		return nil, fail(StageDiameter, err)
	}
	sum.Diameter = est
	if est.Found() {
		sum.Path, err = diameterPath(g, est)
		if err != nil {
			return nil, fail(StageDiameter, err)
		}
	}
	logger.Info("stage complete", "stage", StageDiameter, "sampled", est.Sampled,
		"max_distance", est.MaxDistance, "source", est.Source, "target", est.Target,
		"duration", time.Since(start))

	// 6) Report
	if err = rep.Diameter(est, sum.Path); err != nil {
		return nil, fail(StageReport, err)
	}
	if err = rep.Components(comps, cfg.Components); err != nil {
		return nil, fail(StageReport, err)
	}
	if err = rep.Spanning(forest, cfg.Threshold); err != nil {
		return nil, fail(StageReport, err)
	}
	if err = rep.SourceTree(cfg.Source, tree); err != nil {
		return nil, fail(StageReport, err)
	}
	if cfg.Plot != "" {
		err = report.WriteHistogram(cfg.Plot, res)
		switch {
		case errors.Is(err, report.ErrNoData):
			logger.Warn("source reaches no other sample; histogram skipped", "source", cfg.Source, "path", cfg.Plot)
		case err != nil:
			return nil, fail(StageReport, err)
		default:
			logger.Info("histogram written", "path", cfg.Plot)
		}
	}

	return &sum, nil
}

// diameterPath returns the weighted shortest path between the diameter
// endpoints, so its length is est.MaxDistance.
func diameterPath(g *core.Graph, est diameter.Result) ([]int, error) {
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(est.Source), dijkstra.WithReturnPath())
	if err != nil {
		return nil, err
	}
	path, ok := res.PathTo(est.Target)
	if !ok {
		return nil, fmt.Errorf("no path between diameter endpoints %d and %d", est.Source, est.Target)
	}

	return path, nil
}

// hopLayers counts the samples at each hop depth around source, up to
// maxDepth hops (0 = all). layers[0] is always 1.
func hopLayers(ctx context.Context, g *core.Graph, source, maxDepth int) ([]int, error) {
	var layers []int
	_, err := bfs.BFS(g, source,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(maxDepth),
		bfs.WithOnVisit(func(_, depth int) error {
			if depth == len(layers) {
				layers = append(layers, 0)
			}
			layers[depth]++
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return layers, nil
}

// outputFormat maps a validated output name to its Format.
func outputFormat(name string) report.Format {
	f, err := report.ParseFormat(name)
	if err != nil {
		return report.FormatText
	}

	return f
}
