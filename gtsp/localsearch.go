package gtsp

// twoOpt performs deterministic first-improvement 2-opt edge-reversal
// swaps on tour, leaving tour[0] and tour[len-1] (the pinned start and
// goal nodes) untouched as endpoints. Ported from the accept-if-improves
// loop shape of lvlath/tsp/two_opt.go, generalized only in that it
// operates on a fixed-endpoint path rather than a closed cycle.
func twoOpt(matrix [][]int64, tour []int, opts Options) []int {
	n := len(tour)
	if n < 4 {
		return tour
	}
	cur := append([]int(nil), tour...)
	iters := 0
	improved := true
	for improved {
		improved = false
		for i := 1; i < n-2; i++ {
			for k := i + 1; k < n-1; k++ {
				a, b := cur[i-1], cur[i]
				c, d := cur[k], cur[k+1]
				delta := addCost(matrix[a][c], matrix[b][d]) - addCost(matrix[a][b], matrix[c][d])
				if delta < -opts.Eps {
					reverse(cur, i, k)
					improved = true
					iters++
					if opts.TwoOptMaxIters > 0 && iters >= opts.TwoOptMaxIters {
						return cur
					}
				}
			}
		}
	}
	return cur
}

func reverse(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// representativeSwap independently substitutes, for each interior tour
// position (start/goal excluded, since those clusters are singletons),
// a cheaper node from the same cluster — the per-cluster node-
// substitution pass SPEC_FULL.md §4.G describes, ported from the same
// accept-if-improves shape as twoOpt.
func representativeSwap(matrix [][]int64, tour []int, clusterOf map[int]int, clusters [][]int, opts Options) []int {
	n := len(tour)
	if n < 3 {
		return tour
	}
	cur := append([]int(nil), tour...)
	iters := 0
	for pos := 1; pos < n-1; pos++ {
		cluster := clusterOf[cur[pos]]
		candidates := clusters[cluster]
		if len(candidates) < 2 {
			continue
		}
		prev, next := cur[pos-1], cur[pos+1]
		bestNode := cur[pos]
		bestCost := addCost(matrix[prev][bestNode], matrix[bestNode][next])
		for _, cand := range candidates {
			if cand == bestNode {
				continue
			}
			cost := addCost(matrix[prev][cand], matrix[cand][next])
			if cost < bestCost-opts.Eps {
				bestCost, bestNode = cost, cand
			}
		}
		if bestNode != cur[pos] {
			cur[pos] = bestNode
			iters++
			if opts.TwoOptMaxIters > 0 && iters >= opts.TwoOptMaxIters {
				break
			}
		}
	}
	return cur
}
