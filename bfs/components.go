package bfs

import (
	"slices"

	"github.com/katalvlaran/simgraph/core"
)

// Components labels the connected components of g. Components are ordered
// by their smallest member and numbered from 0 in that order; isolated
// vertices form singleton components. A nil graph yields nil.
func Components(g *core.Graph) []Component {
	if g == nil {
		return nil
	}
	n := g.NodeCount()
	seen := make([]bool, n)
	var out []Component
	for v := 0; v < n; v++ {
		if seen[v] {
			continue
		}
		members := []int{v}
		seen[v] = true
		for head := 0; head < len(members); head++ {
			nbrs, _ := g.NeighborIDs(members[head])
			for _, u := range nbrs {
				if !seen[u] {
					seen[u] = true
					members = append(members, u)
				}
			}
		}
		slices.Sort(members)
		out = append(out, Component{ID: len(out), Members: members})
	}

	return out
}

// Largest returns the component with the most members; ties go to the
// lowest ID. The second result is false when comps is empty.
func Largest(comps []Component) (Component, bool) {
	if len(comps) == 0 {
		return Component{}, false
	}
	best := comps[0]
	for _, c := range comps[1:] {
		if c.Size() > best.Size() {
			best = c
		}
	}

	return best, true
}
