package serialize

import (
	"encoding/binary"
	"io"

	"github.com/basalt-robotics/sweepcover/geom"
	"github.com/basalt-robotics/sweepcover/sweepgraph"
)

// DecodedNode is the on-disk representation of a sweepgraph.NodeProperty,
// with its owning node identified by position (its index in DecodedGraph.Nodes)
// rather than by sweepgraph's internal string id.
type DecodedNode struct {
	Cluster            uint64
	Cost               float64
	VisibilityPolygons [][]geom.Point
	Waypoints          []geom.Point
}

// DecodedEdge is the on-disk representation of a sweepgraph.EdgeProperty.
// From/To are indices into DecodedGraph.Nodes.
type DecodedEdge struct {
	From, To uint64
	Cost     float64
	Waypoints []geom.Point
}

// DecodedGraph is the full decoded contents of a serialized base graph.
type DecodedGraph struct {
	Nodes []DecodedNode
	Edges []DecodedEdge
}

// FromGraph flattens a sweepgraph.Graph's base (pre start/goal-injection)
// topology into a DecodedGraph, remapping its string node ids to dense
// 0..n-1 indices via the graph's own creation order (spec.md §3's node/
// edge ids are positional, not named).
func FromGraph(g *sweepgraph.Graph) *DecodedGraph {
	ids := g.NodeIDs()
	index := make(map[string]int, len(ids))
	nodes := make([]DecodedNode, len(ids))
	for i, id := range ids {
		index[id] = i
		n, _ := g.Node(id)
		nodes[i] = DecodedNode{
			Cluster:            uint64(n.Cluster),
			Cost:               n.Cost,
			VisibilityPolygons: n.VisibilityPolygons,
			Waypoints:          n.Waypoints,
		}
	}

	var edges []DecodedEdge
	for _, ref := range g.Edges() {
		ep, ok := g.Edge(ref.From, ref.To)
		if !ok {
			continue
		}
		edges = append(edges, DecodedEdge{
			From:      uint64(index[ref.From]),
			To:        uint64(index[ref.To]),
			Cost:      ep.Cost,
			Waypoints: ep.Waypoints,
		})
	}

	return &DecodedGraph{Nodes: nodes, Edges: edges}
}

// Write encodes g to w in the little-endian layout described in the
// package doc comment.
func Write(w io.Writer, g *DecodedGraph) error {
	if err := writeUint64(w, uint64(len(g.Nodes))); err != nil {
		return err
	}
	for _, n := range g.Nodes {
		if err := writeUint64(w, n.Cluster); err != nil {
			return err
		}
		if err := writeFloat64(w, n.Cost); err != nil {
			return err
		}
		if err := writeVisibilityPolygons(w, n.VisibilityPolygons); err != nil {
			return err
		}
		if err := writePoints(w, n.Waypoints); err != nil {
			return err
		}
	}

	if err := writeUint64(w, uint64(len(g.Edges))); err != nil {
		return err
	}
	for _, e := range g.Edges {
		if err := writeUint64(w, e.From); err != nil {
			return err
		}
		if err := writeUint64(w, e.To); err != nil {
			return err
		}
		if err := writeFloat64(w, e.Cost); err != nil {
			return err
		}
		if err := writePoints(w, e.Waypoints); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes a DecodedGraph previously produced by Write.
func Read(r io.Reader) (*DecodedGraph, error) {
	nodeCount, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	nodes := make([]DecodedNode, nodeCount)
	for i := range nodes {
		cluster, err := readUint64(r)
		if err != nil {
			return nil, err
		}
		cost, err := readFloat64(r)
		if err != nil {
			return nil, err
		}
		vps, err := readVisibilityPolygons(r)
		if err != nil {
			return nil, err
		}
		waypoints, err := readPoints(r)
		if err != nil {
			return nil, err
		}
		nodes[i] = DecodedNode{Cluster: cluster, Cost: cost, VisibilityPolygons: vps, Waypoints: waypoints}
	}

	edgeCount, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	edges := make([]DecodedEdge, edgeCount)
	for i := range edges {
		from, err := readUint64(r)
		if err != nil {
			return nil, err
		}
		to, err := readUint64(r)
		if err != nil {
			return nil, err
		}
		cost, err := readFloat64(r)
		if err != nil {
			return nil, err
		}
		waypoints, err := readPoints(r)
		if err != nil {
			return nil, err
		}
		edges[i] = DecodedEdge{From: from, To: to, Cost: cost, Waypoints: waypoints}
	}

	return &DecodedGraph{Nodes: nodes, Edges: edges}, nil
}

func writeUint64(w io.Writer, v uint64) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func writeFloat64(w io.Writer, v float64) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func writePoints(w io.Writer, pts []geom.Point) error {
	if err := writeUint64(w, uint64(len(pts))); err != nil {
		return err
	}
	for _, p := range pts {
		x, y := p.Approx()
		if err := writeFloat64(w, x); err != nil {
			return err
		}
		if err := writeFloat64(w, y); err != nil {
			return err
		}
	}
	return nil
}

func writeVisibilityPolygons(w io.Writer, polys [][]geom.Point) error {
	if err := writeUint64(w, uint64(len(polys))); err != nil {
		return err
	}
	for _, poly := range polys {
		if err := writePoints(w, poly); err != nil {
			return err
		}
	}
	return nil
}

func readUint64(r io.Reader) (uint64, error) {
	var v uint64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, ErrTruncated
		}
		return 0, err
	}
	return v, nil
}

func readFloat64(r io.Reader) (float64, error) {
	var v float64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, ErrTruncated
		}
		return 0, err
	}
	return v, nil
}

func readPoints(r io.Reader) ([]geom.Point, error) {
	count, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	pts := make([]geom.Point, count)
	for i := range pts {
		x, err := readFloat64(r)
		if err != nil {
			return nil, err
		}
		y, err := readFloat64(r)
		if err != nil {
			return nil, err
		}
		pts[i] = geom.NewPoint(x, y)
	}
	return pts, nil
}

func readVisibilityPolygons(r io.Reader) ([][]geom.Point, error) {
	count, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	polys := make([][]geom.Point, count)
	for i := range polys {
		pts, err := readPoints(r)
		if err != nil {
			return nil, err
		}
		polys[i] = pts
	}
	return polys, nil
}
