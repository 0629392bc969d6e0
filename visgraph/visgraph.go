package visgraph

import (
	"math"
	"math/big"
	"strconv"

	"github.com/basalt-robotics/sweepcover/costfn"
	"github.com/basalt-robotics/sweepcover/geom"
	"github.com/basalt-robotics/sweepcover/internal/glvlath/core"
	"github.com/basalt-robotics/sweepcover/internal/glvlath/dijkstra"
	"github.com/basalt-robotics/sweepcover/polygon"
)

// CostScale rescales Euclidean distances into the integer-weighted
// graph core.Graph requires, matching the ×1000 millisecond-scale
// rescaling sweepgraph applies to its own adjacency matrix (spec.md
// §4.F step 1) so the two packages' notion of "cost" stays consistent
// in magnitude.
const CostScale = 1000

// Graph is the visibility-graph shortest-path interface spec.md §4.E
// describes as an external collaborator.
type Graph interface {
	// ShortestPath returns the obstacle-avoiding shortest polyline
	// between from and to, both endpoints included. Fails with
	// ErrUnreachable if they lie in disconnected components of the
	// free region.
	ShortestPath(from, to geom.Point) ([]geom.Point, error)
}

// VisibilityGraph is the concrete Graph backed by a static visibility
// graph over region's boundary and hole vertices, extended per query
// with the two endpoints (spec.md §4.F "Start / goal injection" follows
// the same clone-and-extend shape for its own base graph).
type VisibilityGraph struct {
	region  *polygon.WithHoles
	verts   []geom.Point
	ids     []string
	base    *core.Graph
	segCost costfn.SegmentCostFunc
}

// New precomputes the static mutual-visibility edges among region's
// boundary and hole vertices, weighting each by Euclidean distance.
func New(region *polygon.WithHoles) *VisibilityGraph {
	return NewWithSegmentCost(region, nil)
}

// NewWithSegmentCost is New, but scores each visibility edge with
// segCost instead of the default Euclidean distance (spec.md §6's
// segment_cost_fn, "independent" from the path-cost callable
// sweepgraph applies to whole sweeps). A nil segCost behaves exactly
// like New.
func NewWithSegmentCost(region *polygon.WithHoles, segCost costfn.SegmentCostFunc) *VisibilityGraph {
	vg := &VisibilityGraph{region: region, segCost: segCost}
	vg.verts = collectVertices(region)
	vg.ids = make([]string, len(vg.verts))
	vg.base = core.NewGraph()
	for i := range vg.verts {
		vg.ids[i] = "v" + strconv.Itoa(i)
		_ = vg.base.AddVertex(vg.ids[i])
	}
	for i := 0; i < len(vg.verts); i++ {
		for j := i + 1; j < len(vg.verts); j++ {
			if !visible(region, vg.verts[i], vg.verts[j]) {
				continue
			}
			w := vg.weight(vg.verts[i], vg.verts[j])
			_, _ = vg.base.AddEdge(vg.ids[i], vg.ids[j], w)
			_, _ = vg.base.AddEdge(vg.ids[j], vg.ids[i], w)
		}
	}
	return vg
}

// weight scores an edge with segCost if set, else the default
// Euclidean distance.
func (vg *VisibilityGraph) weight(p, q geom.Point) int64 {
	if vg.segCost == nil {
		return weight(p, q)
	}
	return int64(math.Round(vg.segCost(p, q) * CostScale))
}

// ShortestPath clones the static graph, injects "start"/"goal" nodes
// wired to every mutually visible existing node (and to each other),
// and runs Dijkstra between them.
func (vg *VisibilityGraph) ShortestPath(from, to geom.Point) ([]geom.Point, error) {
	g := core.NewGraph()
	for _, id := range vg.ids {
		_ = g.AddVertex(id)
	}
	for _, e := range vg.base.Edges() {
		_, _ = g.AddEdge(e.From, e.To, e.Weight)
	}

	const startID, goalID = "start", "goal"
	_ = g.AddVertex(startID)
	_ = g.AddVertex(goalID)

	idOf := func(p geom.Point) string {
		for i, v := range vg.verts {
			if v.Equal(p) {
				return vg.ids[i]
			}
		}
		return ""
	}

	wireEndpoint := func(id string, p geom.Point) {
		for i, v := range vg.verts {
			if id == idOf(v) && v.Equal(p) {
				continue
			}
			if !visible(vg.region, p, v) {
				continue
			}
			w := vg.weight(p, v)
			_, _ = g.AddEdge(id, vg.ids[i], w)
			_, _ = g.AddEdge(vg.ids[i], id, w)
		}
	}
	wireEndpoint(startID, from)
	wireEndpoint(goalID, to)
	if visible(vg.region, from, to) {
		w := vg.weight(from, to)
		_, _ = g.AddEdge(startID, goalID, w)
		_, _ = g.AddEdge(goalID, startID, w)
	}

	dist, prev, err := dijkstra.Dijkstra(g, startID, dijkstra.WithReturnPath())
	if err != nil {
		return nil, err
	}
	d, ok := dist[goalID]
	if !ok || d == math.MaxInt64 {
		return nil, ErrUnreachable
	}

	var idPath []string
	for cur := goalID; cur != ""; {
		idPath = append([]string{cur}, idPath...)
		if cur == startID {
			break
		}
		cur = prev[cur]
	}
	if len(idPath) == 0 || idPath[0] != startID {
		return nil, ErrUnreachable
	}

	pointOf := map[string]geom.Point{startID: from, goalID: to}
	for i, id := range vg.ids {
		pointOf[id] = vg.verts[i]
	}
	waypoints := make([]geom.Point, len(idPath))
	for i, id := range idPath {
		waypoints[i] = pointOf[id]
	}
	return waypoints, nil
}

func collectVertices(region *polygon.WithHoles) []geom.Point {
	var out []geom.Point
	out = append(out, region.Boundary.Vertices...)
	for _, h := range region.Holes {
		out = append(out, h.Vertices...)
	}
	return out
}

// visible reports whether the open segment p-q stays within region's
// free space: it must not cross or touch any boundary/hole edge not
// incident to p or q (geom.SegmentsIntersect counts shared points), and
// its midpoint must lie inside the region.
func visible(region *polygon.WithHoles, p, q geom.Point) bool {
	if p.Equal(q) {
		return true
	}
	check := func(ring polygon.Simple) bool {
		n := ring.Len()
		for i := 0; i < n; i++ {
			a, b := ring.Edge(i)
			if a.Equal(p) || a.Equal(q) || b.Equal(p) || b.Equal(q) {
				continue
			}
			if geom.SegmentsIntersect(p, q, a, b) {
				return false
			}
		}
		return true
	}
	if !check(region.Boundary) {
		return false
	}
	for _, h := range region.Holes {
		if !check(h) {
			return false
		}
	}
	mid := geom.NewPointRat(
		new(big.Rat).Quo(new(big.Rat).Add(p.X, q.X), big.NewRat(2, 1)),
		new(big.Rat).Quo(new(big.Rat).Add(p.Y, q.Y), big.NewRat(2, 1)),
	)
	return region.PointInPolygon(mid)
}

func weight(p, q geom.Point) int64 {
	d := math.Sqrt(mustFloat(geom.SquaredDistance(p, q)))
	return int64(math.Round(d * CostScale))
}

func mustFloat(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}
