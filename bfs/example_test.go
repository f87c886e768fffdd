package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/simgraph/bfs"
	"github.com/katalvlaran/simgraph/core"
)

// ExampleBFS demonstrates hop-count layering on a small similarity graph.
func ExampleBFS() {
	g, _ := core.NewGraph(5)
	_, _ = g.AddEdge(0, 1, 0.2)
	_, _ = g.AddEdge(0, 2, 0.4)
	_, _ = g.AddEdge(2, 3, 0.1)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	path, _ := res.PathTo(3)
	fmt.Println(path)
	// Output:
	// [0 1 2 3]
	// [0 2 3]
}

// ExampleComponents shows that isolated samples form their own component.
func ExampleComponents() {
	g, _ := core.NewGraph(5)
	_, _ = g.AddEdge(0, 3, 0.2)
	_, _ = g.AddEdge(1, 2, 0.3)

	for _, c := range bfs.Components(g) {
		fmt.Println(c.ID, c.Members)
	}
	// Output:
	// 0 [0 3]
	// 1 [1 2]
	// 2 [4]
}
