// Package gtsp solves the Generalized Traveling Salesman Problem over
// an integer adjacency matrix and a partition of nodes into clusters,
// visiting exactly one node per cluster while pinning a start and goal
// cluster first/last (spec.md §4.G). Grounded on the accept-if-improves
// local-search shape of lvlath/tsp/two_opt.go and the Options/
// determinism/TwoOptMaxIters conventions of lvlath/tsp/types.go,
// generalized from single-cluster Hamiltonian TSP to the clustered
// case; independently implemented since lvlath/tsp solves ordinary TSP,
// not GTSP.
package gtsp
