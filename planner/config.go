package planner

import (
	"github.com/basalt-robotics/sweepcover/costfn"
	"github.com/basalt-robotics/sweepcover/sensormodel"
)

// settings mirrors original_source's PolygonStripmapPlanner::Settings
// (spec.md §6 configure()): a cost model, a sensor model, and the
// decomposition/sweep-around-obstacles options. The polygon itself is
// held by Planner, not here.
type settings struct {
	pathCostFn           costfn.PathCostFunc
	segmentCostFn        costfn.SegmentCostFunc
	sensorModel          sensormodel.SensorModel
	decompositionType    Strategy
	sweepAroundObstacles bool
	wallDistance         float64
}

func defaultSettings() settings {
	return settings{
		pathCostFn:        costfn.EuclideanPath,
		segmentCostFn:     costfn.EuclideanSegment,
		decompositionType: Bcd,
	}
}

// Option configures a Planner at construction time, following the same
// functional-options idiom internal/glvlath/dijkstra uses.
type Option func(*settings)

// WithPathCostFunc overrides the path-cost callable (default:
// costfn.EuclideanPath).
func WithPathCostFunc(fn costfn.PathCostFunc) Option {
	return func(s *settings) { s.pathCostFn = fn }
}

// WithSegmentCostFunc overrides the segment-cost callable (default:
// costfn.EuclideanSegment).
func WithSegmentCostFunc(fn costfn.SegmentCostFunc) Option {
	return func(s *settings) { s.segmentCostFn = fn }
}

// WithSensorModel sets the sensor model used to derive sweep distance
// during per-cell sweep planning. Required; Setup fails without one.
func WithSensorModel(m sensormodel.SensorModel) Option {
	return func(s *settings) { s.sensorModel = m }
}

// WithDecompositionType chooses among Trapezoidal / Bcd /
// BestTrapezoidal / BestBcd (default: Bcd).
func WithDecompositionType(strategy Strategy) Option {
	return func(s *settings) { s.decompositionType = strategy }
}

// WithSweepAroundObstacles enables prepending a CCW boundary traversal
// at wallDistance to every solved tour (spec.md §4.H).
func WithSweepAroundObstacles(wallDistance float64) Option {
	return func(s *settings) {
		s.sweepAroundObstacles = true
		s.wallDistance = wallDistance
	}
}
