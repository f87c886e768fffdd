// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// similarity graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/simgraph/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// reachable from it in g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be in [0, g.NodeCount()) (ErrInvalidNode).
//  4. No edge may have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate Source is a vertex of g
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidNode, cfg.Source, g.NodeCount())
	}

	// 4) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d—%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Prepare the runner. best holds tentative distances; settled marks finals.
	V := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		best:    make(map[int]float64),
		settled: make([]bool, V),
		pq:      make(nodePQ, 0, min(V, 1024)),
		res: &Result{
			Source: cfg.Source,
			Dist:   make(map[int]float64),
		},
	}
	if cfg.ReturnPath {
		r.res.Prev = make(map[int]int)
	}

	// 6) Initialize algorithm state and run main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph     // read-only within Dijkstra
	options Options         // Source, MaxDistance, ReturnPath
	best    map[int]float64 // tentative distances of discovered vertices
	settled []bool          // settled[v] once v's distance is final
	pq      nodePQ          // min-heap of (vertex, distance) entries
	res     *Result         // output; Dist only receives settled vertices
}

// init pushes the source at distance 0.
func (r *runner) init() {
	r.best[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop: pop the closest unsettled vertex, settle it,
// relax its edges. Ends when the heap is empty or the next distance
// exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// 2) Skip stale entries.
		if r.settled[u] {
			continue
		}

		// 3) Everything left is farther than the cap.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Settle u; its distance is final.
		r.settled[u] = true
		r.res.Dist[u] = d

		// 5) Relax all edges incident to u.
		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the tentative distance of each neighbor of u.
func (r *runner) relax(u int, du float64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	var v int
	var newDist float64
	for _, e := range neighbors {
		v = e.To
		if r.settled[v] {
			continue
		}

		newDist = du + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal distances keep the first predecessor.
		if cur, seen := r.best[v]; seen && newDist >= cur {
			continue
		}

		r.best[v] = newDist
		if r.res.Prev != nil {
			r.res.Prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and one candidate distance for it.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by id so that
// equal-distance vertices settle in ascending index order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties by vertex index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop moves the minimum there first).
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
