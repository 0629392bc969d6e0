// Package sweepgraph builds the sweep-plan graph: one cluster of
// candidate boustrophedon sweeps per BCD cell, pruned and wired into a
// directed graph whose edges are obstacle-avoiding shortest paths
// between sweep endpoints, then solved as a Generalized TSP to produce
// an ordered waypoint tour from a start point to a goal point (spec.md
// §3, §4.F).
package sweepgraph
