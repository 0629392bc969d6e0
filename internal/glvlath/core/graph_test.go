package core_test

import (
	"errors"
	"testing"

	"github.com/basalt-robotics/sweepcover/internal/glvlath/core"
)

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("expected ErrEmptyVertexID, got %v", err)
	}
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("repeat insert should be a no-op, got %v", err)
	}
	if len(g.Vertices()) != 1 {
		t.Fatalf("expected 1 vertex, got %d", len(g.Vertices()))
	}
}

func TestAddEdge_AutoAddsEndpoints(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("a", "b", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.HasVertex("a") || !g.HasVertex("b") {
		t.Fatalf("expected endpoints to be auto-added")
	}
	if !g.HasEdge("a", "b") {
		t.Fatalf("expected edge a->b")
	}
	if g.HasEdge("b", "a") {
		t.Fatalf("graph is directed, b->a must not exist")
	}
}

func TestAddEdge_LoopRejectedByDefault(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("a", "a", 1); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Fatalf("expected ErrLoopNotAllowed, got %v", err)
	}
	g2 := core.NewGraph(core.WithLoops())
	if _, err := g2.AddEdge("a", "a", 1); err != nil {
		t.Fatalf("loop should be allowed with WithLoops: %v", err)
	}
}

func TestAddEdge_MultiEdgeRejectedByDefault(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("a", "b", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.AddEdge("a", "b", 2); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Fatalf("expected ErrMultiEdgeNotAllowed, got %v", err)
	}
	g2 := core.NewGraph(core.WithMultiEdges())
	if _, err := g2.AddEdge("a", "b", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g2.AddEdge("a", "b", 2); err != nil {
		t.Fatalf("multi-edge should be allowed with WithMultiEdges: %v", err)
	}
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.Neighbors("missing"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound, got %v", err)
	}
}

func TestVerticesAndEdges_Sorted(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("c", "a", 1)
	_, _ = g.AddEdge("a", "b", 2)
	verts := g.Vertices()
	for i := 1; i < len(verts); i++ {
		if verts[i-1] > verts[i] {
			t.Fatalf("Vertices() not sorted: %v", verts)
		}
	}
	edges := g.Edges()
	for i := 1; i < len(edges); i++ {
		if edges[i-1].ID > edges[i].ID {
			t.Fatalf("Edges() not sorted by ID: %v", edges)
		}
	}
}
