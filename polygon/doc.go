// Package polygon implements the polygon-with-holes container: orientation
// and collinear-vertex invariants on construction, point-in-polygon
// testing, visibility-polygon queries, inward offsetting, and the
// edge-direction enumeration BCD uses to seed its sweep orientations.
package polygon
