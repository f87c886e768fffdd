package diameter_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/diameter"
	"github.com/katalvlaran/simgraph/dijkstra"
	"github.com/katalvlaran/simgraph/matrix"
	"github.com/katalvlaran/simgraph/simgraph"
)

const tol = 1e-12

func mustGraph(t testing.TB, n int, edges [][3]float64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err = g.AddEdge(int(e[0]), int(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

// square is the encoded four-row fixture connected at threshold 1.8:
// (0,1)=√3, (0,2)=1, (1,3)=1, (2,3)=√3.
func square(t testing.TB) *core.Graph {
	t.Helper()
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 0, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 1, 1, 0},
	})
	require.NoError(t, err)
	g, err := simgraph.Build(context.Background(), m, simgraph.WithThreshold(1.8))
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())

	return g
}

func TestEstimate_Square(t *testing.T) {
	res, err := diameter.Estimate(context.Background(), square(t))
	require.NoError(t, err)
	assert.InDelta(t, 1+math.Sqrt(3), res.MaxDistance, tol)
	// Source 1 also reaches 1+√3 (to vertex 2); the first source wins.
	assert.Equal(t, 0, res.Source)
	assert.Equal(t, 3, res.Target)
	assert.Equal(t, 4, res.Sampled)
	assert.True(t, res.Found())
}

func TestEstimate_SampleSizeLimitsSources(t *testing.T) {
	// Star centred on 0; the longest pair is between two leaves, which
	// source 0 alone cannot see.
	//   1
	//   |
	//   0—2
	//   |
	//   3
	g := mustGraph(t, 4, [][3]float64{{0, 1, 0.1}, {0, 2, 0.2}, {0, 3, 0.4}})

	one, err := diameter.Estimate(context.Background(), g, diameter.WithSampleSize(1))
	require.NoError(t, err)
	assert.Equal(t, 1, one.Sampled)
	assert.InDelta(t, 0.4, one.MaxDistance, tol)
	assert.Equal(t, 0, one.Source)
	assert.Equal(t, 3, one.Target)

	all, err := diameter.Estimate(context.Background(), g, diameter.WithSampleSize(10))
	require.NoError(t, err)
	assert.Equal(t, 4, all.Sampled)
	assert.InDelta(t, 0.6, all.MaxDistance, tol)
	assert.Equal(t, 2, all.Source)
	assert.Equal(t, 3, all.Target)
}

func TestEstimate_NoEdges(t *testing.T) {
	res, err := diameter.Estimate(context.Background(), mustGraph(t, 5, nil))
	require.NoError(t, err)
	assert.Equal(t, diameter.Result{Sampled: 5}, res)
	assert.False(t, res.Found())
}

func TestEstimate_EmptyGraph(t *testing.T) {
	res, err := diameter.Estimate(context.Background(), mustGraph(t, 0, nil))
	require.NoError(t, err)
	assert.Equal(t, diameter.Result{}, res)
}

func TestEstimate_Disconnected(t *testing.T) {
	// {0,1} at 0.2 and {2,3} at 0.45: cross-component pairs never count.
	g := mustGraph(t, 4, [][3]float64{{0, 1, 0.2}, {2, 3, 0.45}})
	res, err := diameter.Estimate(context.Background(), g)
	require.NoError(t, err)
	assert.InDelta(t, 0.45, res.MaxDistance, tol)
	assert.Equal(t, 2, res.Source)
	assert.Equal(t, 3, res.Target)
}

func TestEstimate_Errors(t *testing.T) {
	_, err := diameter.Estimate(context.Background(), nil)
	require.ErrorIs(t, err, diameter.ErrNilGraph)

	g := mustGraph(t, 2, nil)
	_, err = diameter.Estimate(context.Background(), g, diameter.WithSampleSize(0))
	require.ErrorIs(t, err, diameter.ErrOptionViolation)
	_, err = diameter.Estimate(context.Background(), g, diameter.WithWorkers(0))
	require.ErrorIs(t, err, diameter.ErrOptionViolation)
}

func TestEstimate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := diameter.Estimate(ctx, square(t))
	require.ErrorIs(t, err, context.Canceled)
}

func randomGraph(t testing.TB, n int, seed int64) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{rng.Float64(), rng.Float64(), rng.Float64()}
	}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	g, err := simgraph.Build(context.Background(), m, simgraph.WithThreshold(0.3))
	require.NoError(t, err)

	return g
}

func TestEstimate_WorkerInvariance(t *testing.T) {
	g := randomGraph(t, 150, 7)
	want, err := diameter.Estimate(context.Background(), g, diameter.WithWorkers(1))
	require.NoError(t, err)
	for _, w := range []int{2, 3, 8, 64} {
		got, err := diameter.Estimate(context.Background(), g, diameter.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", w)
	}
}

func TestEstimate_MatchesSequentialSweep(t *testing.T) {
	g := randomGraph(t, 120, 11)
	res, err := diameter.Estimate(context.Background(), g, diameter.WithSampleSize(100))
	require.NoError(t, err)

	var best float64
	var bs, bt int
	for src := 0; src < 100; src++ {
		r, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		require.NoError(t, err)
		for _, v := range r.Reachable() {
			if d := r.Dist[v]; d > best {
				best, bs, bt = d, src, v
			}
		}
	}
	assert.Equal(t, best, res.MaxDistance)
	assert.Equal(t, bs, res.Source)
	assert.Equal(t, bt, res.Target)
	assert.Equal(t, 100, res.Sampled)
}

func BenchmarkEstimate(b *testing.B) {
	g := randomGraph(b, 400, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := diameter.Estimate(context.Background(), g); err != nil {
			b.Fatal(err)
		}
	}
}
