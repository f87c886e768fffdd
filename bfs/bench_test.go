package bfs_test

import (
	"testing"

	"github.com/katalvlaran/simgraph/bfs"
	"github.com/katalvlaran/simgraph/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g, _ := core.NewGraph(N + 1)
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(i, i+1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkComponents measures labelling on many small components.
func BenchmarkComponents(b *testing.B) {
	const N = 10000
	g, _ := core.NewGraph(N)
	for i := 0; i+1 < N; i += 2 {
		_, _ = g.AddEdge(i, i+1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.Components(g)
	}
}
