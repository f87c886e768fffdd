package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/simgraph/core"
)

// Prim grows the minimum spanning tree of root's component.
//
// Steps:
//  1. Validate g and root (ErrInvalidRoot).
//  2. Push root's edges into a min-heap ordered by (Weight, ID).
//  3. Pop the cheapest edge to an unvisited vertex, accept it, push its
//     vertex's edges; repeat until the heap is empty.
//
// The result always has Trees == 1. Edges are oriented From = tree side,
// To = newly reached vertex.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root int) (*Forest, error) {
	// 1) Validate
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(root) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRoot, root)
	}

	visited := make([]bool, g.NodeCount())
	f := &Forest{Trees: 1}
	pq := &edgePQ{}

	push := func(v int) error {
		visited[v] = true
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return fmt.Errorf("mst: neighbors of %d: %w", v, err)
		}
		for _, e := range nbrs {
			if !visited[e.To] {
				heap.Push(pq, e)
			}
		}

		return nil
	}

	// 2) Seed with root
	if err := push(root); err != nil {
		return nil, err
	}

	// 3) Grow
	for pq.Len() > 0 {
		e := heap.Pop(pq).(core.Edge)
		if visited[e.To] {
			continue
		}
		f.Edges = append(f.Edges, e)
		f.TotalWeight += e.Weight
		if err := push(e.To); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// edgePQ is a min-heap of edges ordered by Weight, then ID.
type edgePQ []core.Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}

	return pq[i].ID < pq[j].ID
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
