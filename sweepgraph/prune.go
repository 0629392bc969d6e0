package sweepgraph

import (
	"github.com/basalt-robotics/sweepcover/costfn"
	"github.com/basalt-robotics/sweepcover/visgraph"
)

// prune implements isNonOptimal (spec.md §4.F step 4): a single
// forward pass over candidates, dropping n as soon as some still-alive
// n' visits the same cluster more cheaply end-to-end even after paying
// to stitch its endpoints to n's. Because later candidates only see
// the alive set as of their turn, the result is order-dependent by
// construction — an explicitly tolerated conservative heuristic, never
// removing the true optimum (spec.md §9 open question (b)).
func prune(candidates []NodeProperty, vg visgraph.Graph, pathCost costfn.PathCostFunc) []NodeProperty {
	alive := make([]bool, len(candidates))
	for i := range alive {
		alive[i] = true
	}
	for i, n := range candidates {
		for j, other := range candidates {
			if i == j || !alive[j] {
				continue
			}
			cost, ok := stitchCost(n, other, vg, pathCost)
			if ok && cost < n.Cost {
				alive[i] = false
				break
			}
		}
	}

	out := make([]NodeProperty, 0, len(candidates))
	for i, keep := range alive {
		if keep {
			out = append(out, candidates[i])
		}
	}
	return out
}

// stitchCost computes cost(shortest_path(n.first, n'.first)) + n'.cost
// + cost(shortest_path(n'.last, n.last)) per spec.md §4.F step 4. ok is
// false if either stitching path is unreachable, in which case n'
// cannot dominate n.
func stitchCost(n, other NodeProperty, vg visgraph.Graph, pathCost costfn.PathCostFunc) (float64, bool) {
	lead, err := vg.ShortestPath(n.First(), other.First())
	if err != nil {
		return 0, false
	}
	trail, err := vg.ShortestPath(other.Last(), n.Last())
	if err != nil {
		return 0, false
	}
	return pathCost(lead) + other.Cost + pathCost(trail), true
}
