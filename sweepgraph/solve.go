package sweepgraph

import (
	"github.com/basalt-robotics/sweepcover/geom"
	"github.com/basalt-robotics/sweepcover/gtsp"
	"github.com/basalt-robotics/sweepcover/internal/glvlath/core"
)

const (
	startNodeID = "start"
	goalNodeID  = "goal"
)

// Solve clones the base graph, injects start/goal nodes, solves the
// resulting GTSP instance, and reconstructs the waypoint tour (spec.md
// §4.F "Start / goal injection" and "Solve"). The cached base graph
// itself is never mutated.
func (g *Graph) Solve(start, goal geom.Point) ([]geom.Point, []Diagnostic, error) {
	clone := g.clone()
	var diags []Diagnostic

	startCluster := g.numCells
	goalCluster := g.numCells + 1

	startPt := projectIntoRegion(g.deps.region, start)
	goalPt := projectIntoRegion(g.deps.region, goal)

	startVP, err := g.deps.region.ComputeVisibilityPolygon(startPt)
	if err != nil {
		return nil, diags, err
	}
	goalVP, err := g.deps.region.ComputeVisibilityPolygon(goalPt)
	if err != nil {
		return nil, diags, err
	}

	clone.addInjectedNode(startNodeID, NodeProperty{
		Waypoints:          []geom.Point{startPt},
		Cost:               g.deps.pathCost([]geom.Point{startPt}),
		Cluster:            startCluster,
		VisibilityPolygons: [][]geom.Point{startVP},
	})
	clone.addInjectedNode(goalNodeID, NodeProperty{
		Waypoints:          []geom.Point{goalPt},
		Cost:               g.deps.pathCost([]geom.Point{goalPt}),
		Cluster:            goalCluster,
		VisibilityPolygons: [][]geom.Point{goalVP},
	})

	for _, id := range g.order {
		if err := addEdge(clone, startNodeID, id, g.deps.vg, g.deps.pathCost); err != nil {
			diags = append(diags, Diagnostic{Cluster: startCluster, Err: err})
		}
		if err := addEdge(clone, id, goalNodeID, g.deps.vg, g.deps.pathCost); err != nil {
			diags = append(diags, Diagnostic{Cluster: goalCluster, Err: err})
		}
	}

	matrix, clusters, startIdx, goalIdx := clone.exportMatrix(startCluster, goalCluster)

	cycle, err := gtsp.Solve(matrix, clusters, startIdx, goalIdx)
	if err != nil {
		return nil, diags, err
	}

	startNode := indexOf(clone.order, startNodeID)
	rotated := rotateToFront(cycle, startNode)
	if len(rotated) == 0 || rotated[len(rotated)-1] != indexOf(clone.order, goalNodeID) {
		return nil, diags, ErrMalformedSolution
	}

	waypoints, err := reconstructWaypoints(clone, rotated)
	if err != nil {
		return nil, diags, err
	}
	return waypoints, diags, nil
}

// clone deep-copies topology, node properties, and edge properties
// into a fresh Graph so start/goal injection never mutates the cached
// base graph (spec.md §4.F: "The base graph is immutable after
// creation").
func (g *Graph) clone() *Graph {
	out := &Graph{
		topology: core.NewGraph(),
		nodes:    make(map[string]NodeProperty, len(g.nodes)),
		edges:    make(map[string]EdgeProperty, len(g.edges)),
		order:    append([]string(nil), g.order...),
		numCells: g.numCells,
		deps:     g.deps,
	}
	for id, prop := range g.nodes {
		out.nodes[id] = prop
		_ = out.topology.AddVertex(id)
	}
	for _, e := range g.topology.Edges() {
		eid, _ := out.topology.AddEdge(e.From, e.To, e.Weight)
		out.edges[eid] = g.edges[e.ID]
	}
	return out
}

func (g *Graph) addInjectedNode(id string, prop NodeProperty) {
	g.nodes[id] = prop
	g.order = append(g.order, id)
	_ = g.topology.AddVertex(id)
}

// exportMatrix builds the integer adjacency matrix and cluster
// partition gtsp.Solve consumes (spec.md §4.F step 1-2): missing edges
// saturate at gtsp.InfWeight, and edge weights are already rescaled to
// the millisecond-integer CostScale by addEdge.
func (g *Graph) exportMatrix(startCluster, goalCluster int) (matrix [][]int64, clusters [][]int, startIdx, goalIdx int) {
	n := len(g.order)
	idx := make(map[string]int, n)
	for i, id := range g.order {
		idx[id] = i
	}

	matrix = make([][]int64, n)
	for i := range matrix {
		matrix[i] = make([]int64, n)
		for j := range matrix[i] {
			if i == j {
				continue
			}
			matrix[i][j] = gtsp.InfWeight
		}
	}
	for _, e := range g.topology.Edges() {
		matrix[idx[e.From]][idx[e.To]] = e.Weight
	}

	maxCluster := goalCluster
	byCluster := make([][]int, maxCluster+1)
	for i, id := range g.order {
		c := g.nodes[id].Cluster
		byCluster[c] = append(byCluster[c], i)
	}
	// A cell that contributed no node has an empty cluster; it is left
	// out, and startIdx/goalIdx index the remaining clusters.
	for c, members := range byCluster {
		if len(members) == 0 {
			continue
		}
		if c == startCluster {
			startIdx = len(clusters)
		}
		if c == goalCluster {
			goalIdx = len(clusters)
		}
		clusters = append(clusters, members)
	}
	return matrix, clusters, startIdx, goalIdx
}

func indexOf(ids []string, target string) int {
	for i, id := range ids {
		if id == target {
			return i
		}
	}
	return -1
}

func rotateToFront(cycle []int, target int) []int {
	pos := -1
	for i, v := range cycle {
		if v == target {
			pos = i
			break
		}
	}
	if pos <= 0 {
		return cycle
	}
	return append(append([]int(nil), cycle[pos:]...), cycle[:pos]...)
}

func reconstructWaypoints(g *Graph, rotated []int) ([]geom.Point, error) {
	var waypoints []geom.Point
	for i := 0; i+1 < len(rotated); i++ {
		uid := g.order[rotated[i]]
		vid := g.order[rotated[i+1]]
		u := g.nodes[uid]
		waypoints = append(waypoints, u.Waypoints...)

		ep, ok := g.Edge(uid, vid)
		if !ok {
			return nil, ErrInternalInvariant
		}
		if len(ep.Waypoints) > 2 {
			waypoints = append(waypoints, ep.Waypoints[1:len(ep.Waypoints)-1]...)
		}
		if i+2 == len(rotated) {
			waypoints = append(waypoints, ep.Waypoints[len(ep.Waypoints)-1])
		}
	}
	return waypoints, nil
}
