package gtsp

// nearestFragmentInsertion builds an initial tour visiting exactly one
// node per cluster, starting from the fixed start cluster and ending at
// the fixed goal cluster: repeatedly append, from any not-yet-visited
// cluster, the node whose edge from the current tour end is cheapest
// (nearest-fragment growth). Deterministic, no RNG (mirrors
// lvlath/tsp/approx.go's TSPApprox "no RNG is used here" guarantee).
func nearestFragmentInsertion(matrix [][]int64, clusters [][]int, startCluster, goalCluster int) ([]int, error) {
	n := len(clusters)
	if n == 0 {
		return nil, ErrInvalidInput
	}

	visited := make([]bool, n)
	visited[startCluster] = true
	visited[goalCluster] = true

	tour := make([]int, 0, n)
	tour = append(tour, clusters[startCluster][0])

	for {
		remaining := 0
		for i := 0; i < n; i++ {
			if !visited[i] {
				remaining++
			}
		}
		if remaining == 0 {
			break
		}

		last := tour[len(tour)-1]
		bestCost := InfWeight
		bestCluster := -1
		bestNode := -1
		for ci := 0; ci < n; ci++ {
			if visited[ci] {
				continue
			}
			for _, node := range clusters[ci] {
				cost := matrix[last][node]
				if cost < bestCost {
					bestCost, bestCluster, bestNode = cost, ci, node
				}
			}
		}
		if bestCluster < 0 {
			return nil, ErrSolverFailed
		}
		visited[bestCluster] = true
		tour = append(tour, bestNode)
	}

	tour = append(tour, clusters[goalCluster][0])
	return tour, nil
}

// addCost saturates at InfWeight instead of overflowing when either
// operand is already the missing-edge sentinel.
func addCost(a, b int64) int64 {
	if a >= InfWeight || b >= InfWeight {
		return InfWeight
	}
	sum := a + b
	if sum < 0 || sum >= InfWeight {
		return InfWeight
	}
	return sum
}

func tourCost(matrix [][]int64, tour []int) int64 {
	total := int64(0)
	for i := 0; i+1 < len(tour); i++ {
		total = addCost(total, matrix[tour[i]][tour[i+1]])
	}
	return total
}
