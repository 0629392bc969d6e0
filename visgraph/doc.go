// Package visgraph builds a classic visibility graph over a
// polygon-with-holes' vertices plus two query points, and returns the
// shortest obstacle-avoiding polyline between them (spec.md §4.E,
// consumed as an external collaborator by sweepgraph). Grounded on
// internal/glvlath's core.Graph/dijkstra.Dijkstra, adapted from the
// teacher's weighted shortest-path stack.
package visgraph
