// Package serialize encodes/decodes a sweepgraph.Graph to the fixed
// little-endian binary layout spec.md §6 names for the "optional:
// serialize the base graph to a binary blob" persisted-state feature:
//
//	uint64 node_count
//	per node: cluster:u64, cost:f64, visibility_polygon_bytes,
//	          waypoint_count:u64, waypoints:(f64 f64)*
//	uint64 edge_count
//	per edge: from:u64, to:u64, cost:f64, waypoint_count:u64,
//	          waypoints:(f64 f64)*
//
// where visibility_polygon_bytes is itself
// [polygon_count:u64, per polygon: [point_count:u64, points:(f64 f64)*]],
// left unspecified by spec.md and filled in here since NodeProperty
// carries one or two visibility polygons per node.
package serialize
