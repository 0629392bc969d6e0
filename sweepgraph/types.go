package sweepgraph

import (
	"github.com/basalt-robotics/sweepcover/geom"
	"github.com/basalt-robotics/sweepcover/internal/glvlath/core"
)

// NodeProperty is a sweep-plan-graph node (spec.md §3): one candidate
// boustrophedon sweep through a single cell, or (after start/goal
// injection) the degenerate single-point sweep at the start or goal.
type NodeProperty struct {
	// Waypoints is the node's Sweep; length >= 1.
	Waypoints []geom.Point

	// Cost is the user path-cost-function applied to Waypoints.
	Cost float64

	// Cluster is the owning cell index (0..C-1), or C/C+1 for the
	// reserved start/goal singleton clusters.
	Cluster int

	// VisibilityPolygons holds one entry per distinct endpoint: one if
	// Waypoints starts and ends at the same point, else two (first,
	// last).
	VisibilityPolygons [][]geom.Point
}

// First returns the node's first waypoint.
func (n NodeProperty) First() geom.Point { return n.Waypoints[0] }

// Last returns the node's last waypoint.
func (n NodeProperty) Last() geom.Point { return n.Waypoints[len(n.Waypoints)-1] }

// EdgeProperty is a sweep-plan-graph edge (spec.md §3): the obstacle-
// avoiding shortest path stitching one node's last waypoint to the
// next node's first, plus its cost: the source node's Cost plus the
// path cost of Waypoints, the value the edge's graph weight is scaled
// from.
type EdgeProperty struct {
	Waypoints []geom.Point
	Cost      float64
}

// Diagnostic records a recoverable failure encountered while building
// or solving the graph (spec.md §7: per-cell sweep-planning and single-
// edge shortest-path failures are recoverable). Returned by Build and
// Solve, never logged — this module carries no logging dependency.
// planner.Setup discards Build's diagnostics, and planner.Solve uses
// Solve's only to classify a solver failure.
type Diagnostic struct {
	Cluster int
	Err     error
}

// Graph is the directed sweep-plan graph: an embedded
// internal/glvlath/core.Graph for topology (spec.md §3's "Graph —
// directed adjacency with per-edge cost"), plus side maps for
// NodeProperty/EdgeProperty, following the "arena + index" separation
// of topology from properties described in spec.md §9's design notes
// and already used by visgraph for the same reason.
type Graph struct {
	topology *core.Graph
	nodes    map[string]NodeProperty
	edges    map[string]EdgeProperty
	order    []string // node ids in creation order, for deterministic iteration
	numCells int

	deps buildDeps
}

// NodeIDs returns every node id, in creation order.
func (g *Graph) NodeIDs() []string { return append([]string(nil), g.order...) }

// Node returns the NodeProperty for id.
func (g *Graph) Node(id string) (NodeProperty, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge returns the EdgeProperty for the edge from -> to, if one exists.
func (g *Graph) Edge(from, to string) (EdgeProperty, bool) {
	if !g.topology.HasEdge(from, to) {
		return EdgeProperty{}, false
	}
	edges, _ := g.topology.Neighbors(from)
	for _, e := range edges {
		if e.To == to {
			if p, ok := g.edges[e.ID]; ok {
				return p, true
			}
		}
	}
	return EdgeProperty{}, false
}

// NumCells returns the number of BCD-cell clusters in the base graph
// (clusters 0..NumCells-1), not counting start/goal.
func (g *Graph) NumCells() int { return g.numCells }

// EdgeRef names an edge's endpoints by node id.
type EdgeRef struct{ From, To string }

// Edges returns every edge's endpoints, sorted by internal/glvlath/core's
// edge-ID order for determinism.
func (g *Graph) Edges() []EdgeRef {
	topoEdges := g.topology.Edges()
	out := make([]EdgeRef, len(topoEdges))
	for i, e := range topoEdges {
		out[i] = EdgeRef{From: e.From, To: e.To}
	}
	return out
}
