package polygon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-robotics/sweepcover/geom"
	"github.com/basalt-robotics/sweepcover/polygon"
)

func square(x0, y0, x1, y1 float64) []geom.Point {
	return []geom.Point{
		geom.NewPoint(x0, y0),
		geom.NewPoint(x1, y0),
		geom.NewPoint(x1, y1),
		geom.NewPoint(x0, y1),
	}
}

func TestNew_OrientsCCW(t *testing.T) {
	cw := []geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(0, 1),
		geom.NewPoint(1, 1),
		geom.NewPoint(1, 0),
	}
	p, err := polygon.New(cw, nil)
	require.NoError(t, err)
	assert.True(t, polygon.TwiceSignedArea(p.Boundary.Vertices).Sign() > 0)
}

func TestNew_RejectsSelfIntersecting(t *testing.T) {
	bowtie := []geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(1, 1),
		geom.NewPoint(1, 0),
		geom.NewPoint(0, 1),
	}
	_, err := polygon.New(bowtie, nil)
	assert.ErrorIs(t, err, polygon.ErrInvalidGeometry)
}

func TestNew_SimplifiesCollinearVertices(t *testing.T) {
	withMid := []geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(0.5, 0),
		geom.NewPoint(1, 0),
		geom.NewPoint(1, 1),
		geom.NewPoint(0, 1),
	}
	p, err := polygon.New(withMid, nil)
	require.NoError(t, err)
	assert.Len(t, p.Boundary.Vertices, 4)
}

func TestArea_SquareWithHole(t *testing.T) {
	p, err := polygon.New(square(0, 0, 1, 1), [][]geom.Point{square(0.4, 0.4, 0.6, 0.6)})
	require.NoError(t, err)
	area := p.Area()
	f, _ := area.Float64()
	assert.InDelta(t, 0.96, f, 1e-9)
}

func TestPointInPolygon(t *testing.T) {
	p, err := polygon.New(square(0, 0, 1, 1), [][]geom.Point{square(0.4, 0.4, 0.6, 0.6)})
	require.NoError(t, err)

	assert.True(t, p.PointInPolygon(geom.NewPoint(0.1, 0.1)))
	assert.False(t, p.PointInPolygon(geom.NewPoint(0.5, 0.5)))
	assert.False(t, p.PointInPolygon(geom.NewPoint(2, 2)))
	assert.True(t, p.PointInPolygon(geom.NewPoint(0, 0)))
}

func TestComputeVisibilityPolygon_OutsideRegion(t *testing.T) {
	p, err := polygon.New(square(0, 0, 1, 1), nil)
	require.NoError(t, err)
	_, err = p.ComputeVisibilityPolygon(geom.NewPoint(2, 2))
	assert.ErrorIs(t, err, polygon.ErrOutsideRegion)
}

func TestComputeVisibilityPolygon_ConvexCaseIsFullPolygon(t *testing.T) {
	p, err := polygon.New(square(0, 0, 1, 1), nil)
	require.NoError(t, err)
	vis, err := p.ComputeVisibilityPolygon(geom.NewPoint(0.5, 0.5))
	require.NoError(t, err)
	assert.Len(t, vis, 4)
}

func TestOffsetEdge_Shrinks(t *testing.T) {
	cell := polygon.Simple{Vertices: square(0, 0, 1, 1)}
	shrunk, err := polygon.OffsetEdge(cell, 0, 0.1)
	require.NoError(t, err)
	box := geom.BoundingBox(shrunk.Vertices)
	assert.InDelta(t, 0.1, box.MinY, 1e-6)
}

func TestOffsetEdge_Collapses(t *testing.T) {
	cell := polygon.Simple{Vertices: square(0, 0, 1, 1)}
	_, err := polygon.OffsetEdge(cell, 0, 2.0)
	assert.ErrorIs(t, err, polygon.ErrOffsetCollapsed)
}

func TestFindEdgeDirections_SquareHasFourUniquePlusNegatives(t *testing.T) {
	p, err := polygon.New(square(0, 0, 1, 1), nil)
	require.NoError(t, err)
	dirs := p.FindEdgeDirections()
	assert.Len(t, dirs, 4)
}

func TestRotate_AlignsEdgeHorizontal(t *testing.T) {
	p, err := polygon.New(square(0, 0, 1, 1), nil)
	require.NoError(t, err)
	dir, err := geom.DirectionBetween(geom.NewPoint(0, 0), geom.NewPoint(1, 0))
	require.NoError(t, err)
	rotated := p.Rotate(dir)
	assert.Len(t, rotated.Boundary.Vertices, 4)
}
