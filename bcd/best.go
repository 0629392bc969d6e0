package bcd

import (
	"math"

	"github.com/basalt-robotics/sweepcover/geom"
	"github.com/basalt-robotics/sweepcover/polygon"
)

// cellEdgeDirections returns the distinct edge directions of a single
// cell, without the "augmented with negatives" doubling
// polygon.FindEdgeDirections performs (rotating by d and by -d gives
// the same altitude).
func cellEdgeDirections(cell polygon.Simple) []geom.Direction {
	var dirs []geom.Direction
	n := cell.Len()
	for i := 0; i < n; i++ {
		a, b := cell.Edge(i)
		d, err := geom.DirectionBetween(a, b)
		if err != nil {
			continue
		}
		dup := false
		for _, u := range dirs {
			if d.IsCollinearWith(u) {
				dup = true
				break
			}
		}
		if !dup {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// isApproxYMonotone reports whether pts, rotated into the current
// frame, is y-monotone up to eps: walking from the minimum-y vertex to
// the maximum-y vertex along each of the two boundary chains, y must be
// monotonic along that chain.
func isApproxYMonotone(pts []geom.Point, eps float64) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	ys := make([]float64, n)
	for i, p := range pts {
		_, ys[i] = p.Approx()
	}
	minI, maxI := 0, 0
	for i := 1; i < n; i++ {
		if ys[i] < ys[minI] {
			minI = i
		}
		if ys[i] > ys[maxI] {
			maxI = i
		}
	}
	if minI == maxI {
		return false
	}
	chainMonotone := func(from, to int, nonDecreasing bool) bool {
		i := from
		last := ys[i]
		for i != to {
			next := (i + 1) % n
			cur := ys[next]
			if nonDecreasing && cur < last-eps {
				return false
			}
			if !nonDecreasing && cur > last+eps {
				return false
			}
			last = cur
			i = next
		}
		return true
	}
	return chainMonotone(minI, maxI, true) && chainMonotone(maxI, minI, false)
}

// minAltitude computes the cell's minimum, over its own candidate edge
// directions, of the bounding-box height once rotated to align that
// direction with +x — the altitude used by the best-direction search.
// Returns math.Inf(1) if the cell is not approximately y-monotone under
// any of its own edge directions.
func minAltitude(cell polygon.Simple, eps float64) float64 {
	best := math.Inf(1)
	for _, d := range cellEdgeDirections(cell) {
		rot := geom.NewRotationTo(d).Inverse()
		rotated := rot.ApplyAll(cell.Vertices)
		if !isApproxYMonotone(rotated, eps) {
			continue
		}
		box := geom.BoundingBox(rotated)
		h := box.MaxY - box.MinY
		if h < best {
			best = h
		}
	}
	return best
}

// DefaultEps is the tolerance used by the y-monotone approximate checks
// in minAltitude and BestDecompose.
const DefaultEps = 1e-6

// BestDecompose tries BCD along every candidate direction returned by
// p.FindEdgeDirections, keeping the result minimizing the sum of
// minAltitude over all produced cells (spec.md §4.C "Best-direction
// search").
func BestDecompose(p *polygon.WithHoles) ([]polygon.Simple, geom.Direction, error) {
	dirs := p.FindEdgeDirections()
	if len(dirs) == 0 {
		return nil, geom.Direction{}, ErrDegenerate
	}

	var bestCells []polygon.Simple
	var bestDir geom.Direction
	bestSum := math.Inf(1)
	var lastErr error

	for _, d := range dirs {
		cells, err := Decompose(p, d)
		if err != nil {
			lastErr = err
			continue
		}
		sum := 0.0
		for _, c := range cells {
			sum += minAltitude(c, DefaultEps)
		}
		if sum < bestSum {
			bestSum, bestCells, bestDir = sum, cells, d
		}
	}

	if bestCells == nil {
		if lastErr != nil {
			return nil, geom.Direction{}, lastErr
		}
		return nil, geom.Direction{}, ErrEmptyDecomposition
	}
	return bestCells, bestDir, nil
}
