// Package geom is the exact geometry kernel adapter: Point, Direction,
// and orientation/rotation/clip/distance primitives operating on
// *big.Rat coordinates. Every predicate here is exact; float64 only
// appears at the edges, via Point.Approx, for bounding boxes and final
// waypoint output.
package geom
