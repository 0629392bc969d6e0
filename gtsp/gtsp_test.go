package gtsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-robotics/sweepcover/gtsp"
)

func line4Matrix() [][]int64 {
	// 0=start, 1,2 two candidates for the middle cluster, 3=goal.
	// Node 2 is the cheaper representative (dist 1 each way) vs node 1 (dist 5 each way).
	m := make([][]int64, 4)
	for i := range m {
		m[i] = make([]int64, 4)
		for j := range m[i] {
			m[i][j] = gtsp.InfWeight
		}
	}
	m[0][1], m[1][0] = 5, 5
	m[0][2], m[2][0] = 1, 1
	m[1][3], m[3][1] = 5, 5
	m[2][3], m[3][2] = 1, 1
	return m
}

func TestSolve_PicksCheaperRepresentative(t *testing.T) {
	matrix := line4Matrix()
	clusters := [][]int{{0}, {1, 2}, {3}}
	tour, err := gtsp.Solve(matrix, clusters, 0, 2)
	require.NoError(t, err)
	require.Len(t, tour, 3)
	assert.Equal(t, 0, tour[0])
	assert.Equal(t, 3, tour[len(tour)-1])
	assert.Equal(t, 2, tour[1])
}

func TestSolve_SingleIntermediateCluster(t *testing.T) {
	matrix := [][]int64{
		{0, 3, 7},
		{3, 0, 2},
		{7, 2, 0},
	}
	clusters := [][]int{{0}, {1}, {2}}
	tour, err := gtsp.Solve(matrix, clusters, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, tour)
}

func TestSolve_RejectsMismatchedClusterPartition(t *testing.T) {
	matrix := [][]int64{{0, 1}, {1, 0}}
	_, err := gtsp.Solve(matrix, [][]int{{0}}, 0, 0)
	assert.ErrorIs(t, err, gtsp.ErrInvalidInput)
}

func TestSolve_FailsWhenGoalUnreachable(t *testing.T) {
	inf := gtsp.InfWeight
	matrix := [][]int64{
		{0, 1, inf},
		{1, 0, inf},
		{inf, inf, 0},
	}
	clusters := [][]int{{0}, {1}, {2}}
	_, err := gtsp.Solve(matrix, clusters, 0, 2)
	assert.ErrorIs(t, err, gtsp.ErrSolverFailed)
}

// TestSolve_PruningMonotonicity exhaustively enumerates every
// representative choice (in the instance's fixed cluster order) over a
// 6-node, 4-cluster instance and checks that
// DefaultSolver's pruned tour cost never falls below the true optimum
// (spec.md §8 invariant 5, adapted from a per-node pruning property to
// the solver's own representative-selection local search).
func TestSolve_PruningMonotonicity(t *testing.T) {
	inf := gtsp.InfWeight
	// 6 nodes: 0=start, 1,2=cluster A, 3,4=cluster B, 5=goal.
	matrix := [][]int64{
		{0, 2, 9, inf, inf, inf},
		{2, 0, inf, 3, 8, inf},
		{9, inf, 0, 7, 2, inf},
		{inf, 3, 7, 0, inf, 4},
		{inf, 8, 2, inf, 0, 6},
		{inf, inf, inf, 4, 6, 0},
	}
	clusters := [][]int{{0}, {1, 2}, {3, 4}, {5}}

	best := bruteForceOptimum(matrix, clusters, 0, 3)

	tour, err := gtsp.Solve(matrix, clusters, 0, 3)
	require.NoError(t, err)
	got := tourCostOf(matrix, tour)
	assert.GreaterOrEqual(t, got, best)
}

func tourCostOf(matrix [][]int64, tour []int) int64 {
	var total int64
	for i := 0; i+1 < len(tour); i++ {
		total += matrix[tour[i]][tour[i+1]]
	}
	return total
}

// bruteForceOptimum enumerates every representative choice for every
// non-singleton cluster, in cluster order between the fixed start and
// goal, and returns the minimal path cost.
func bruteForceOptimum(matrix [][]int64, clusters [][]int, startCluster, goalCluster int) int64 {
	var middle [][]int
	for i, c := range clusters {
		if i == startCluster || i == goalCluster {
			continue
		}
		middle = append(middle, c)
	}
	start := clusters[startCluster][0]
	goal := clusters[goalCluster][0]

	best := gtsp.InfWeight
	var rec func(idx int, path []int, cost int64)
	rec = func(idx int, path []int, cost int64) {
		if cost >= best {
			return
		}
		if idx == len(middle) {
			total := cost + matrix[path[len(path)-1]][goal]
			if total < best {
				best = total
			}
			return
		}
		for _, node := range middle[idx] {
			last := path[len(path)-1]
			next := make([]int, len(path)+1)
			copy(next, path)
			next[len(path)] = node
			rec(idx+1, next, cost+matrix[last][node])
		}
	}
	rec(0, []int{start}, 0)
	return best
}
