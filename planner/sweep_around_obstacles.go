package planner

import (
	"github.com/basalt-robotics/sweepcover/geom"
	"github.com/basalt-robotics/sweepcover/polygon"
)

// sweepAroundObstacles prepends a CCW traversal of region's outer
// boundary, shrunk inward by wallDistance, to waypoints (spec.md §4.H:
// "re-splicing ... so that every boundary edge is viewed at least once
// at range <= w"). The traversal starts at the boundary vertex nearest
// waypoints[0] so the splice point is a short hop from the solved tour.
func sweepAroundObstacles(region *polygon.WithHoles, wallDistance float64, waypoints []geom.Point) ([]geom.Point, error) {
	if len(waypoints) == 0 {
		return waypoints, nil
	}

	ring, err := shrinkBoundary(region.Boundary, wallDistance)
	if err != nil {
		return nil, err
	}
	if ring.Len() == 0 {
		return waypoints, nil
	}

	start := nearestVertexIndex(ring, waypoints[0])
	loop := make([]geom.Point, 0, ring.Len()+1)
	for i := 0; i <= ring.Len(); i++ {
		loop = append(loop, ring.At(start+i))
	}

	out := make([]geom.Point, 0, len(loop)+len(waypoints))
	out = append(out, loop...)
	out = append(out, waypoints...)
	return out, nil
}

// shrinkBoundary offsets every edge of the outer boundary ring inward
// by delta, the same sequential polygon.OffsetEdge loop sweepgraph's
// (unexported) shrinkCell applies to a cell, applied here to the whole
// region boundary instead (spec.md §4.H "wall distance"). ok is folded
// into the returned error: a collapsed boundary ring means wallDistance
// is too large for this region.
func shrinkBoundary(boundary polygon.Simple, delta float64) (polygon.Simple, error) {
	cur := boundary
	for i := 0; i < cur.Len(); i++ {
		next, err := polygon.OffsetEdge(cur, i, delta)
		if err != nil {
			return polygon.Simple{}, err
		}
		cur = next
	}
	return cur, nil
}

func nearestVertexIndex(ring polygon.Simple, p geom.Point) int {
	best := 0
	bestSq := geom.SquaredDistance(p, ring.At(0))
	for i := 1; i < ring.Len(); i++ {
		d := geom.SquaredDistance(p, ring.At(i))
		if d.Cmp(bestSq) < 0 {
			bestSq = d
			best = i
		}
	}
	return best
}
