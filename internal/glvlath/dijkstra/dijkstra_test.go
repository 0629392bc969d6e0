package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/basalt-robotics/sweepcover/internal/glvlath/core"
	"github.com/basalt-robotics/sweepcover/internal/glvlath/dijkstra"
)

func TestDijkstra_EmptySource(t *testing.T) {
	g := core.NewGraph()
	if _, _, err := dijkstra.Dijkstra(g, ""); !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraph(t *testing.T) {
	if _, _, err := dijkstra.Dijkstra(nil, "a"); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("b")
	if _, _, err := dijkstra.Dijkstra(g, "a"); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", -1)
	if _, _, err := dijkstra.Dijkstra(g, "a"); !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_ShortestPath(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 4)
	_, _ = g.AddEdge("a", "c", 1)
	_, _ = g.AddEdge("c", "b", 1)
	_, _ = g.AddEdge("b", "d", 1)

	dist, prev, err := dijkstra.Dijkstra(g, "a", dijkstra.WithReturnPath())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist["b"] != 2 {
		t.Fatalf("expected dist[b]=2 (via c), got %d", dist["b"])
	}
	if dist["d"] != 3 {
		t.Fatalf("expected dist[d]=3, got %d", dist["d"])
	}
	if prev["b"] != "c" {
		t.Fatalf("expected predecessor of b to be c, got %q", prev["b"])
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("a")
	_ = g.AddVertex("isolated")
	dist, _, err := dijkstra.Dijkstra(g, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist["isolated"] != math.MaxInt64 {
		t.Fatalf("expected unreachable vertex to have dist MaxInt64, got %d", dist["isolated"])
	}
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 100)
	dist, _, err := dijkstra.Dijkstra(g, "a", dijkstra.WithInfEdgeThreshold(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist["b"] != math.MaxInt64 {
		t.Fatalf("expected edge above threshold to be impassable, got dist=%d", dist["b"])
	}
}
