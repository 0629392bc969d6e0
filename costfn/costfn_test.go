package costfn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basalt-robotics/sweepcover/costfn"
	"github.com/basalt-robotics/sweepcover/geom"
)

func TestEuclideanSegment_ThreeFourFive(t *testing.T) {
	d := costfn.EuclideanSegment(geom.NewPoint(0, 0), geom.NewPoint(3, 4))
	assert.InDelta(t, 5.0, d, 1e-9)
}

func TestEuclideanSegment_SamePointIsZero(t *testing.T) {
	p := geom.NewPoint(2, 2)
	d := costfn.EuclideanSegment(p, p)
	assert.InDelta(t, 0.0, d, 1e-9)
}

func TestEuclideanPath_SumsSegments(t *testing.T) {
	path := []geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(3, 4),
		geom.NewPoint(3, 0),
	}
	d := costfn.EuclideanPath(path)
	assert.InDelta(t, 9.0, d, 1e-9)
}

func TestEuclideanPath_EmptyOrSinglePointIsZero(t *testing.T) {
	assert.InDelta(t, 0.0, costfn.EuclideanPath(nil), 1e-9)
	assert.InDelta(t, 0.0, costfn.EuclideanPath([]geom.Point{geom.NewPoint(1, 1)}), 1e-9)
}

func TestPathCostFunc_AcceptsEuclideanPath(t *testing.T) {
	var f costfn.PathCostFunc = costfn.EuclideanPath
	assert.InDelta(t, 5.0, f([]geom.Point{geom.NewPoint(0, 0), geom.NewPoint(3, 4)}), 1e-9)
}

func TestSegmentCostFunc_AcceptsEuclideanSegment(t *testing.T) {
	var f costfn.SegmentCostFunc = costfn.EuclideanSegment
	assert.InDelta(t, 5.0, f(geom.NewPoint(0, 0), geom.NewPoint(3, 4)), 1e-9)
}
