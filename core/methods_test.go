// SPDX-License-Identifier: MIT
// Package core_test verifies neighborhood, degree and stats contracts.
package core_test

import (
	"testing"

	"github.com/katalvlaran/simgraph/core"
	"github.com/stretchr/testify/require"
)

// newPath builds 0—1—2 plus an isolated vertex 3.
func newPath(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, WeightLo)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 1, WeightHi)
	require.NoError(t, err)

	return g
}

func TestGraph_NeighborsOrientation(t *testing.T) {
	g := newPath(t)

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Len(t, nbs, 2)
	for _, e := range nbs {
		require.Equal(t, 1, e.From, "neighbors must be oriented from the queried vertex")
	}
	require.Equal(t, 0, nbs[0].To)
	require.Equal(t, 2, nbs[1].To)

	ids, err := g.NeighborIDs(2)
	require.NoError(t, err)
	require.Equal(t, []int{1}, ids)

	ids, err = g.NeighborIDs(3)
	require.NoError(t, err)
	require.Empty(t, ids)

	_, err = g.Neighbors(4)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_Degree(t *testing.T) {
	g := newPath(t)
	for v, want := range []int{1, 2, 1, 0} {
		d, err := g.Degree(v)
		require.NoError(t, err)
		require.Equal(t, want, d, "degree(%d)", v)
	}
	_, err := g.Degree(-1)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_Stats(t *testing.T) {
	g := newPath(t)
	s := g.Stats()
	require.Equal(t, 4, s.NodeCount)
	require.Equal(t, 2, s.EdgeCount)
	require.Equal(t, 1, s.IsolatedCount)
	require.Equal(t, 2, s.MaxDegree)
	require.InDelta(t, 1.0, s.MeanDegree, 1e-12)
	require.Equal(t, WeightLo, s.MinWeight)
	require.Equal(t, WeightHi, s.MaxWeight)

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	require.Equal(t, core.GraphStats{}, empty.Stats())
}
