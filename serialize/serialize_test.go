package serialize_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-robotics/sweepcover/geom"
	"github.com/basalt-robotics/sweepcover/serialize"
)

func sampleGraph() *serialize.DecodedGraph {
	return &serialize.DecodedGraph{
		Nodes: []serialize.DecodedNode{
			{
				Cluster: 0,
				Cost:    1.5,
				VisibilityPolygons: [][]geom.Point{
					{geom.NewPoint(0, 0), geom.NewPoint(1, 0), geom.NewPoint(1, 1)},
				},
				Waypoints: []geom.Point{geom.NewPoint(0, 0), geom.NewPoint(1, 1)},
			},
			{
				Cluster: 1,
				Cost:    2.25,
				VisibilityPolygons: [][]geom.Point{
					{geom.NewPoint(1, 0)},
					{geom.NewPoint(2, 1)},
				},
				Waypoints: []geom.Point{geom.NewPoint(1, 0), geom.NewPoint(2, 1)},
			},
		},
		Edges: []serialize.DecodedEdge{
			{
				From:      0,
				To:        1,
				Cost:      0.75,
				Waypoints: []geom.Point{geom.NewPoint(1, 1), geom.NewPoint(1, 0)},
			},
		},
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	original := sampleGraph()

	var buf bytes.Buffer
	require.NoError(t, serialize.Write(&buf, original))

	decoded, err := serialize.Read(&buf)
	require.NoError(t, err)

	require.Len(t, decoded.Nodes, len(original.Nodes))
	require.Len(t, decoded.Edges, len(original.Edges))

	for i, n := range original.Nodes {
		assert.Equal(t, n.Cluster, decoded.Nodes[i].Cluster)
		assert.Equal(t, n.Cost, decoded.Nodes[i].Cost)
		require.Len(t, decoded.Nodes[i].VisibilityPolygons, len(n.VisibilityPolygons))
		for j, poly := range n.VisibilityPolygons {
			require.Len(t, decoded.Nodes[i].VisibilityPolygons[j], len(poly))
			for k, p := range poly {
				assertPointEqual(t, p, decoded.Nodes[i].VisibilityPolygons[j][k])
			}
		}
		require.Len(t, decoded.Nodes[i].Waypoints, len(n.Waypoints))
		for k, p := range n.Waypoints {
			assertPointEqual(t, p, decoded.Nodes[i].Waypoints[k])
		}
	}

	for i, e := range original.Edges {
		assert.Equal(t, e.From, decoded.Edges[i].From)
		assert.Equal(t, e.To, decoded.Edges[i].To)
		assert.Equal(t, e.Cost, decoded.Edges[i].Cost)
		require.Len(t, decoded.Edges[i].Waypoints, len(e.Waypoints))
		for k, p := range e.Waypoints {
			assertPointEqual(t, p, decoded.Edges[i].Waypoints[k])
		}
	}
}

func TestWriteRead_EmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, serialize.Write(&buf, &serialize.DecodedGraph{}))

	decoded, err := serialize.Read(&buf)
	require.NoError(t, err)
	assert.Empty(t, decoded.Nodes)
	assert.Empty(t, decoded.Edges)
}

func TestRead_TruncatedInputFails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, serialize.Write(&buf, sampleGraph()))

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-4])
	_, err := serialize.Read(truncated)
	assert.ErrorIs(t, err, serialize.ErrTruncated)
}

func assertPointEqual(t *testing.T, want, got geom.Point) {
	t.Helper()
	wx, wy := want.Approx()
	gx, gy := got.Approx()
	assert.InDelta(t, wx, gx, 1e-12)
	assert.InDelta(t, wy, gy, 1e-12)
}
