package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simgraph/dataset"
	"github.com/katalvlaran/simgraph/dijkstra"
	"github.com/katalvlaran/simgraph/internal/config"
	"github.com/katalvlaran/simgraph/internal/pipeline"
	"github.com/katalvlaran/simgraph/internal/testutil"
)

// fourRows has two numeric columns and one categorical column with two
// values. After encoding the rows are [0,0,0,1] [1,0,1,0] [0,1,0,1] [1,1,1,0].
const fourRows = `size,weight,color
10,5,red
20,5,blue
10,7,red
20,7,blue
`

const labelled = `size,weight,color,class
10,5,red,a
20,5,blue,b
10,7,red,a
20,7,blue,c
`

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func baseConfig(path string) *config.Config {
	return &config.Config{
		Input:      path,
		Mode:       "all",
		Threshold:  1.8,
		Sample:     config.DefaultSample,
		Output:     config.DefaultOutput,
		LogLevel:   config.DefaultLogLevel,
		Delimiter:  config.DefaultDelimiter,
		Components: config.DefaultComponents,
		Subsets:    dataset.DefaultSubsets(),
	}
}

func TestRun_EndToEnd(t *testing.T) {
	cfg := baseConfig(writeCSV(t, fourRows))
	// Every column is a feature: select them through the eating subset.
	cfg.Mode = "eating"
	cfg.Subsets.Eating = dataset.Subset{Indices: []int{0, 1, 2}}

	var out bytes.Buffer
	sum, err := pipeline.Run(context.Background(), cfg, &out, testutil.NewTestLogger(t))
	require.NoError(t, err)

	assert.Equal(t, 4, sum.Rows)
	assert.Equal(t, 4, sum.Features)
	assert.Equal(t, 4, sum.Nodes)
	// (0,1)=√3 (0,2)=1 (1,3)=1 (2,3)=√3; (0,3) and (1,2) are 2 apart.
	assert.Equal(t, 4, sum.Edges)
	assert.Equal(t, 4, sum.Reachable)
	assert.Equal(t, 1, sum.Components)
	require.NotNil(t, sum.Forest)
	assert.Equal(t, 1, sum.Forest.Trees)
	assert.InDelta(t, 2+math.Sqrt(3), sum.Forest.TotalWeight, 1e-9)
	require.NotNil(t, sum.SourceTree)
	assert.InDelta(t, 2+math.Sqrt(3), sum.SourceTree.TotalWeight, 1e-9)
	assert.Equal(t, []int{1, 2, 1}, sum.Layers)
	assert.InDelta(t, 1+math.Sqrt(3), sum.Diameter.MaxDistance, 1e-9)
	assert.Equal(t, 0, sum.Diameter.Source)
	assert.Equal(t, 3, sum.Diameter.Target)
	// 0—2—3 and 0—1—3 tie; the first settled predecessor wins.
	assert.Equal(t, []int{0, 2, 3}, sum.Path)

	text := out.String()
	assert.Contains(t, text, "Graph: 4 nodes, 4 edges")
	assert.Contains(t, text, "2.73 between nodes 0 and 3")
	assert.NotContains(t, text, "Class distribution")
	assert.Contains(t, text, "Minimum spanning forest")
	assert.Contains(t, text, "Spanning tree of node 0")
	assert.Contains(t, text, "Hop layers around node 0")
	assert.Contains(t, text, "Shortest path (2 hops): [0 2 3]")
}

func TestRun_HopLimit(t *testing.T) {
	cfg := baseConfig(writeCSV(t, fourRows))
	cfg.Mode = "eating"
	cfg.Subsets.Eating = dataset.Subset{Indices: []int{0, 1, 2}}
	cfg.Hops = 1

	sum, err := pipeline.Run(context.Background(), cfg, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, sum.Layers)
	assert.Equal(t, 4, sum.Reachable, "the hop limit does not cap distances")
}

// An isolated source has nothing to plot; the run still succeeds.
func TestRun_PlotIsolatedSource(t *testing.T) {
	cfg := baseConfig(writeCSV(t, labelled))
	cfg.Threshold = 0
	cfg.Plot = filepath.Join(t.TempDir(), "hist.png")

	var out bytes.Buffer
	sum, err := pipeline.Run(context.Background(), cfg, &out, testutil.NewTestLogger(t))
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Reachable)
	assert.Contains(t, out.String(), "Minimum spanning forest")

	_, err = os.Stat(cfg.Plot)
	assert.True(t, os.IsNotExist(err), "no histogram is written")
}

func TestRun_LabelledWithPlot(t *testing.T) {
	cfg := baseConfig(writeCSV(t, labelled))
	cfg.Label = "class"
	cfg.Output = "markdown"
	cfg.Plot = filepath.Join(t.TempDir(), "hist.png")
	cfg.Workers = 2

	var out bytes.Buffer
	sum, err := pipeline.Run(context.Background(), cfg, &out, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Features)
	assert.Contains(t, out.String(), "### Class distribution")
	assert.Contains(t, out.String(), "| a | 2 |")

	_, err = os.Stat(cfg.Plot)
	require.NoError(t, err)
}

func TestRun_HeaderOnly(t *testing.T) {
	cfg := baseConfig(writeCSV(t, "a,b,label\n"))
	var out bytes.Buffer
	sum, err := pipeline.Run(context.Background(), cfg, &out, nil)
	require.NoError(t, err)
	assert.Zero(t, sum.Nodes)
	assert.Contains(t, out.String(), "Graph: 0 nodes, 0 edges")
}

func TestRun_StageErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		stage  pipeline.Stage
		is     error
	}{
		{
			name:   "missing file",
			mutate: func(c *config.Config) { c.Input = filepath.Join(c.Input, "nope.csv") },
			stage:  pipeline.StageLoad,
			is:     dataset.ErrLoadFailure,
		},
		{
			name:   "subset outside header",
			mutate: func(c *config.Config) { c.Mode = "physical" },
			stage:  pipeline.StageEncode,
			is:     dataset.ErrInvalidSchema,
		},
		{
			name:   "source out of range",
			mutate: func(c *config.Config) { c.Source = 99 },
			stage:  pipeline.StagePaths,
			is:     dijkstra.ErrInvalidNode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig(writeCSV(t, labelled))
			tt.mutate(cfg)

			_, err := pipeline.Run(context.Background(), cfg, &bytes.Buffer{}, nil)
			require.ErrorIs(t, err, tt.is)
			var se *pipeline.StageError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.stage, se.Stage)
			assert.Contains(t, err.Error(), string(tt.stage)+": ")
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pipeline.Run(ctx, baseConfig(writeCSV(t, labelled)), &bytes.Buffer{}, nil)
	require.ErrorIs(t, err, context.Canceled)

	var se *pipeline.StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, pipeline.StageBuild, se.Stage)
}
