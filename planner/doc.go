// Package planner is the top-level orchestration described in spec.md
// §4.H and §6: configure a region and cost model, run setup once to
// build the decomposition and sweep-plan graph, then solve repeatedly
// for different start/goal pairs against the cached base graph.
//
// Grounded on
// original_source/include/.../planners/polygon_stripmap_planner.h
// (Settings / setup / solve / getDecomposition / sweepAroundObstacles).
package planner
