package gtsp

// InfWeight is the saturating sentinel for a missing edge in the
// adjacency matrix (spec.md §4.F step 1's "replace missing edges with
// a saturating sentinel ∞"). Kept well below math.MaxInt64 so sums of
// a tour's worth of edges never overflow.
const InfWeight = int64(1) << 40

// Options configures a DefaultSolver run, mirroring lvlath/tsp/types.go's
// Options/DefaultOptions shape (Eps, TwoOptMaxIters, Seed) narrowed to
// the fields this deterministic, no-RNG solver actually uses.
type Options struct {
	// TwoOptMaxIters bounds the number of accepted local-search moves of
	// the inter-cluster 2-opt pass and, separately, of the representative-
	// swap pass: each keeps its own count, starting from zero on every
	// call. Zero means unlimited (run to a local optimum).
	TwoOptMaxIters int

	// Eps is the minimal strictly-better improvement (in matrix units)
	// a candidate move must achieve to be accepted.
	Eps int64
}

// DefaultOptions returns the solver's default knobs: a generous but
// finite iteration cap and zero-tolerance acceptance, matching
// lvlath/tsp's DefaultOptions() "safe, production-ready defaults" idiom.
func DefaultOptions() Options {
	return Options{
		TwoOptMaxIters: 10_000,
		Eps:            0,
	}
}

// Solver is the interface sweepgraph.Graph.Solve consumes (spec.md
// §4.G: "the core does not depend on its internals"). matrix is a
// square adjacency matrix of non-negative edge weights (InfWeight for
// missing edges); clusters partitions [0, len(matrix)) into disjoint,
// non-empty node-id groups; startCluster and goalCluster index into
// clusters and are pinned first/last in the returned cycle.
//
// Solve returns a permutation of length len(clusters), one node id per
// cluster in visitation order, with result[0] the chosen start node and
// result[len-1] the chosen goal node.
type Solver interface {
	Solve(matrix [][]int64, clusters [][]int, startCluster, goalCluster int) ([]int, error)
}

// DefaultSolver is the concrete Solver: nearest-fragment cluster
// insertion construction followed by inter-cluster 2-opt and
// per-cluster representative-swap local search (spec.md §4.G,
// SPEC_FULL.md §4.G).
type DefaultSolver struct {
	Options Options
}

// NewDefaultSolver builds a DefaultSolver with the given options.
func NewDefaultSolver(opts Options) *DefaultSolver {
	return &DefaultSolver{Options: opts}
}

// Solve is the package-level convenience entry point used by
// sweepgraph, equivalent to NewDefaultSolver(DefaultOptions()).Solve.
func Solve(matrix [][]int64, clusters [][]int, startCluster, goalCluster int) ([]int, error) {
	return NewDefaultSolver(DefaultOptions()).Solve(matrix, clusters, startCluster, goalCluster)
}
