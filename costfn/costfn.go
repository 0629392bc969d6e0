package costfn

import (
	"math"

	"github.com/basalt-robotics/sweepcover/geom"
)

// PathCostFunc computes a non-negative scalar cost for an ordered
// waypoint sequence (spec.md §3 NodeProperty.cost).
type PathCostFunc func(path []geom.Point) float64

// SegmentCostFunc computes a non-negative scalar cost for the direct
// hop between two points.
type SegmentCostFunc func(from, to geom.Point) float64

// EuclideanPath sums the Euclidean length of each consecutive segment
// in path. Grounded on
// original_source/.../path_cost_functions.cc::computeEuclideanPathCost.
func EuclideanPath(path []geom.Point) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += EuclideanSegment(path[i], path[i+1])
	}
	return total
}

// EuclideanSegment returns the Euclidean distance between from and to.
// Grounded on
// original_source/.../path_cost_functions.cc::computeEuclideanSegmentCost.
func EuclideanSegment(from, to geom.Point) float64 {
	sq, _ := geom.SquaredDistance(from, to).Float64()
	if sq <= 0 {
		return 0
	}
	return math.Sqrt(sq)
}
