package geom_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-robotics/sweepcover/geom"
)

func TestOrientationOf(t *testing.T) {
	a := geom.NewPoint(0, 0)
	b := geom.NewPoint(1, 0)
	c := geom.NewPoint(1, 1)
	assert.Equal(t, geom.CounterClockwise, geom.OrientationOf(a, b, c))
	assert.Equal(t, geom.Clockwise, geom.OrientationOf(a, c, b))
	assert.Equal(t, geom.Collinear, geom.OrientationOf(a, b, geom.NewPoint(2, 0)))
}

func TestDirectionEqual(t *testing.T) {
	d1, err := geom.NewDirection(big.NewRat(1, 1), big.NewRat(1, 1))
	require.NoError(t, err)
	d2, err := geom.NewDirection(big.NewRat(2, 1), big.NewRat(2, 1))
	require.NoError(t, err)
	assert.True(t, d1.Equal(d2))

	d3 := d1.Negate()
	assert.False(t, d1.Equal(d3))
	assert.True(t, d1.IsCollinearWith(d3))
}

func TestNewDirection_Degenerate(t *testing.T) {
	_, err := geom.NewDirection(new(big.Rat), new(big.Rat))
	assert.ErrorIs(t, err, geom.ErrDegenerate)
}

func TestRotation_RoundTrip(t *testing.T) {
	dir, err := geom.NewDirection(big.NewRat(3, 1), big.NewRat(4, 1))
	require.NoError(t, err)
	r := geom.NewRotationTo(dir)
	inv := r.Inverse()

	p := geom.NewPoint(5, -2)
	rotated := r.Apply(p)
	back := inv.Apply(rotated)

	bx, by := back.Approx()
	px, py := p.Approx()
	assert.InDelta(t, px, bx, 1e-6)
	assert.InDelta(t, py, by, 1e-6)
}

func TestClipHalfPlaneY(t *testing.T) {
	square := []geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(1, 0),
		geom.NewPoint(1, 1),
		geom.NewPoint(0, 1),
	}
	half := geom.ClipHalfPlaneY(square, big.NewRat(1, 2), true)
	require.Len(t, half, 4)
	for _, p := range half {
		_, y := p.Approx()
		assert.GreaterOrEqual(t, y, 0.5-1e-9)
	}
}

func TestClipBand(t *testing.T) {
	square := []geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(1, 0),
		geom.NewPoint(1, 1),
		geom.NewPoint(0, 1),
	}
	band := geom.ClipBand(square, big.NewRat(1, 4), big.NewRat(3, 4))
	require.NotEmpty(t, band)
	for _, p := range band {
		_, y := p.Approx()
		assert.GreaterOrEqual(t, y, 0.25-1e-9)
		assert.LessOrEqual(t, y, 0.75+1e-9)
	}
}

func TestSegmentsIntersect(t *testing.T) {
	assert.True(t, geom.SegmentsIntersect(
		geom.NewPoint(0, 0), geom.NewPoint(1, 1),
		geom.NewPoint(0, 1), geom.NewPoint(1, 0),
	))
	assert.False(t, geom.SegmentsIntersect(
		geom.NewPoint(0, 0), geom.NewPoint(1, 0),
		geom.NewPoint(0, 1), geom.NewPoint(1, 1),
	))
}

func TestProjectOntoSegment(t *testing.T) {
	a := geom.NewPoint(0, 0)
	b := geom.NewPoint(10, 0)
	proj := geom.ProjectOntoSegment(geom.NewPoint(4, 5), a, b)
	x, y := proj.Approx()
	assert.InDelta(t, 4, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestBoundingBox(t *testing.T) {
	pts := []geom.Point{geom.NewPoint(-1, 2), geom.NewPoint(3, -4)}
	box := geom.BoundingBox(pts)
	assert.Equal(t, -1.0, box.MinX)
	assert.Equal(t, -4.0, box.MinY)
	assert.Equal(t, 3.0, box.MaxX)
	assert.Equal(t, 2.0, box.MaxY)
}
