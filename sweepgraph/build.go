package sweepgraph

import (
	"fmt"
	"math"
	"math/big"

	"github.com/basalt-robotics/sweepcover/costfn"
	"github.com/basalt-robotics/sweepcover/geom"
	"github.com/basalt-robotics/sweepcover/internal/glvlath/core"
	"github.com/basalt-robotics/sweepcover/polygon"
	"github.com/basalt-robotics/sweepcover/sensormodel"
	"github.com/basalt-robotics/sweepcover/sweep"
	"github.com/basalt-robotics/sweepcover/visgraph"
)

// CostScale rescales floating-point edge costs into the int64 weights
// internal/glvlath/core.Graph requires, matching visgraph.CostScale so
// both graphs' notion of "cost" stays at the same millisecond-scale
// magnitude (SPEC_FULL.md §3, spec.md §4.F step 1).
const CostScale = 1000

// buildDeps are the external collaborators Build receives and Solve
// later needs again to inject and wire the start/goal nodes into a
// fresh clone (spec.md §4.F "Start / goal injection").
type buildDeps struct {
	region   *polygon.WithHoles
	vg       visgraph.Graph
	pathCost costfn.PathCostFunc
}

// Build constructs the immutable base sweep-plan graph over cells
// (spec.md §4.F "Node creation"/"Edge creation"). vg supplies obstacle-
// avoiding shortest paths between waypoint endpoints; sensor supplies
// the sweep spacing; pathCost scores a waypoint sequence.
//
// Returns ErrEmptyDecomposition if every cell fails to contribute at
// least one surviving node (spec.md §7).
func Build(cells []polygon.Simple, region *polygon.WithHoles, vg visgraph.Graph, sensor sensormodel.SensorModel, pathCost costfn.PathCostFunc) (*Graph, []Diagnostic, error) {
	g := &Graph{
		topology: core.NewGraph(),
		nodes:    make(map[string]NodeProperty),
		edges:    make(map[string]EdgeProperty),
		numCells: len(cells),
		deps:     buildDeps{region: region, vg: vg, pathCost: pathCost},
	}
	var diags []Diagnostic

	for ci, cell := range cells {
		working := cell
		if shrunk, ok := shrinkCell(cell, sensor.SweepDistance()); ok {
			working = shrunk
		} else {
			diags = append(diags, Diagnostic{Cluster: ci, Err: polygon.ErrOffsetCollapsed})
		}

		var candidates []NodeProperty
		n := working.Len()
		for i := 0; i < n; i++ {
			for _, ccw := range [2]bool{true, false} {
				wp, err := sweep.Plan(working, i, ccw, sensor.SweepDistance())
				if err != nil {
					diags = append(diags, Diagnostic{Cluster: ci, Err: err})
					continue
				}
				prop, err := buildNodeProperty(wp, ci, region, pathCost)
				if err != nil {
					diags = append(diags, Diagnostic{Cluster: ci, Err: err})
					continue
				}
				candidates = append(candidates, prop)
			}
		}

		if len(candidates) == 0 {
			diags = append(diags, Diagnostic{Cluster: ci, Err: sweep.ErrInvalidCell})
			continue
		}

		survivors := prune(candidates, vg, pathCost)
		for ni, prop := range survivors {
			id := fmt.Sprintf("c%d_n%d", ci, ni)
			g.nodes[id] = prop
			g.order = append(g.order, id)
			_ = g.topology.AddVertex(id)
		}
	}

	if len(g.order) == 0 {
		return nil, diags, ErrEmptyDecomposition
	}

	for _, u := range g.order {
		for _, v := range g.order {
			if u == v || g.nodes[u].Cluster == g.nodes[v].Cluster {
				continue
			}
			if err := addEdge(g, u, v, vg, pathCost); err != nil {
				diags = append(diags, Diagnostic{Cluster: g.nodes[u].Cluster, Err: err})
			}
		}
	}

	return g, diags, nil
}

// addEdge wires u -> v if the visibility graph can connect their
// stitching endpoints; a failure here removes only this one edge
// (spec.md §7).
func addEdge(g *Graph, u, v string, vg visgraph.Graph, pathCost costfn.PathCostFunc) error {
	un, vn := g.nodes[u], g.nodes[v]
	wp, err := vg.ShortestPath(un.Last(), vn.First())
	if err != nil {
		return err
	}
	cost := un.Cost + pathCost(wp)
	weight := int64(math.Round(cost * CostScale))
	eid, err := g.topology.AddEdge(u, v, weight)
	if err != nil {
		return err
	}
	g.edges[eid] = EdgeProperty{Waypoints: wp, Cost: cost}
	return nil
}

// shrinkCell offsets every edge of cell inward by delta, the same
// sequential-offset loop polygon.WithHoles.ComputeOffsetPolygon runs
// over a boundary, applied directly to a hole-free cell. ok is false
// if any offset collapses the cell (spec.md §4.F step 1: "fail
// tolerant — log and proceed with original if shrinking collapses").
func shrinkCell(cell polygon.Simple, delta float64) (polygon.Simple, bool) {
	cur := cell
	for i := 0; i < cur.Len(); i++ {
		next, err := polygon.OffsetEdge(cur, i, delta)
		if err != nil {
			return cell, false
		}
		cur = next
	}
	return cur, true
}

// buildNodeProperty projects waypoints' endpoints into region if they
// lie outside it, computes their visibility polygons, and scores the
// resulting waypoint sequence.
func buildNodeProperty(waypoints []geom.Point, cluster int, region *polygon.WithHoles, pathCost costfn.PathCostFunc) (NodeProperty, error) {
	if len(waypoints) == 0 {
		return NodeProperty{}, sweep.ErrInvalidCell
	}
	out := append([]geom.Point(nil), waypoints...)
	out[0] = projectIntoRegion(region, out[0])
	out[len(out)-1] = projectIntoRegion(region, out[len(out)-1])

	first := out[0]
	last := out[len(out)-1]

	vpFirst, err := region.ComputeVisibilityPolygon(first)
	if err != nil {
		return NodeProperty{}, err
	}
	vps := [][]geom.Point{vpFirst}
	if !first.Equal(last) {
		vpLast, err := region.ComputeVisibilityPolygon(last)
		if err != nil {
			return NodeProperty{}, err
		}
		vps = append(vps, vpLast)
	}

	return NodeProperty{
		Waypoints:          out,
		Cost:               pathCost(out),
		Cluster:            cluster,
		VisibilityPolygons: vps,
	}, nil
}

// projectIntoRegion returns p unchanged if it already lies inside
// region, else its nearest projection onto the boundary or a hole ring
// (spec.md §4.F step 3, §8 boundary scenario 5).
func projectIntoRegion(region *polygon.WithHoles, p geom.Point) geom.Point {
	if region.PointInPolygon(p) {
		return p
	}
	best := p
	var bestDist *big.Rat
	consider := func(ring polygon.Simple) {
		for i := 0; i < ring.Len(); i++ {
			a, b := ring.Edge(i)
			cand := geom.ProjectOntoSegment(p, a, b)
			d := geom.SquaredDistance(p, cand)
			if bestDist == nil || d.Cmp(bestDist) < 0 {
				best, bestDist = cand, d
			}
		}
	}
	consider(region.Boundary)
	for _, h := range region.Holes {
		consider(h)
	}
	return best
}
