// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// internal/glvlath/core directed weighted graph, used by visgraph to turn
// a visibility graph into point-to-point shortest paths.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/basalt-robotics/sweepcover/internal/glvlath/core"
)

// Sentinel errors.
var (
	// ErrEmptySource indicates an empty source vertex ID.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")
	// ErrNilGraph indicates a nil graph was supplied.
	ErrNilGraph = errors.New("dijkstra: graph is nil")
	// ErrVertexNotFound indicates the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")
	// ErrNegativeWeight indicates a negative edge weight was found.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures a single Dijkstra run.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// WithReturnPath requests the predecessor map in the result.
func WithReturnPath() Option { return func(o *Options) { o.ReturnPath = true } }

// WithMaxDistance caps exploration at the given distance.
func WithMaxDistance(max int64) Option { return func(o *Options) { o.MaxDistance = max } }

// WithInfEdgeThreshold treats edges with weight >= threshold as impassable.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Dijkstra computes shortest distances (and optionally predecessors) from
// Source to every other vertex in g. Unreachable vertices get
// math.MaxInt64 in dist and "" in prev.
func Dijkstra(g *core.Graph, source string, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions(source)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s->%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	vertices := g.Vertices()
	dist := make(map[string]int64, len(vertices))
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, len(vertices))
	}
	visited := make(map[string]bool, len(vertices))
	for _, v := range vertices {
		dist[v] = math.MaxInt64
		if prev != nil {
			prev[v] = ""
		}
	}
	dist[cfg.Source] = 0

	pq := make(nodePQ, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: cfg.Source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		if d > cfg.MaxDistance {
			break
		}
		visited[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
		}
		for _, e := range neighbors {
			if e.Weight >= cfg.InfEdgeThreshold {
				continue
			}
			newDist := dist[u] + e.Weight
			if newDist > cfg.MaxDistance || newDist >= dist[e.To] {
				continue
			}
			dist[e.To] = newDist
			if prev != nil {
				prev[e.To] = u
			}
			heap.Push(&pq, &nodeItem{id: e.To, dist: newDist})
		}
	}

	return dist, prev, nil
}

type nodeItem struct {
	id   string
	dist int64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
