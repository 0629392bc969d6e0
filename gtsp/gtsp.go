package gtsp

// Solve implements Solver. It constructs an initial tour via
// nearestFragmentInsertion, then alternates inter-cluster 2-opt and
// per-cluster representative-swap passes until neither improves the
// tour cost, matching SPEC_FULL.md §4.G's three-step pipeline. Start
// and goal clusters are pinned first/last throughout since both are
// singleton clusters with nothing to substitute.
func (s *DefaultSolver) Solve(matrix [][]int64, clusters [][]int, startCluster, goalCluster int) ([]int, error) {
	if err := validate(matrix, clusters, startCluster, goalCluster); err != nil {
		return nil, err
	}

	tour, err := nearestFragmentInsertion(matrix, clusters, startCluster, goalCluster)
	if err != nil {
		return nil, err
	}

	clusterOf := make(map[int]int, len(matrix))
	for ci, nodes := range clusters {
		for _, node := range nodes {
			clusterOf[node] = ci
		}
	}

	opts := s.Options
	prevCost := tourCost(matrix, tour)
	for {
		tour = twoOpt(matrix, tour, opts)
		tour = representativeSwap(matrix, tour, clusterOf, clusters, opts)
		cost := tourCost(matrix, tour)
		if cost >= prevCost {
			break
		}
		prevCost = cost
	}

	if prevCost >= InfWeight {
		return nil, ErrSolverFailed
	}
	return tour, nil
}

func validate(matrix [][]int64, clusters [][]int, startCluster, goalCluster int) error {
	n := len(matrix)
	if n == 0 {
		return ErrInvalidInput
	}
	for _, row := range matrix {
		if len(row) != n {
			return ErrInvalidInput
		}
	}
	if len(clusters) == 0 {
		return ErrInvalidInput
	}
	if startCluster < 0 || startCluster >= len(clusters) || goalCluster < 0 || goalCluster >= len(clusters) {
		return ErrInvalidInput
	}
	seen := make([]bool, n)
	count := 0
	for _, cluster := range clusters {
		if len(cluster) == 0 {
			return ErrInvalidInput
		}
		for _, node := range cluster {
			if node < 0 || node >= n || seen[node] {
				return ErrInvalidInput
			}
			seen[node] = true
			count++
		}
	}
	if count != n {
		return ErrInvalidInput
	}
	return nil
}
