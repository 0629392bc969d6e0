package sweep

import (
	"math/big"

	"github.com/basalt-robotics/sweepcover/geom"
	"github.com/basalt-robotics/sweepcover/polygon"
)

// kMaxOverlapError mirrors original_source/polygon.cc::computeLineSweepPlan's
// threshold below which a cell is considered too narrow for more than one
// sweep line.
const kMaxOverlapError = 0.01

// kMonotoneEps is the tolerance used by the approximate y-monotone check,
// the one eps-based comparison spec.md §9 sanctions in this module.
const kMonotoneEps = 1e-6

// Plan computes the boustrophedon coverage path of cell, starting at
// vertex startVertexIdx with edge (startVertexIdx -> startVertexIdx+1)
// (or edge startVertexIdx -> startVertexIdx-1, walking the cell
// backwards, if counterClockwise is false) aligned to the sweep
// direction, spaced by at most maxSweepDistance (spec.md §4.D).
//
// Grounded on original_source/polygon.cc::computeLineSweepPlan for the
// overall shape (translate/rotate to the start edge, num_sweeps/
// sweep_distance formula, narrow-cell single-line case, alternating
// sweep direction). Departs from it in how each band is intersected
// with the cell: rather than computing the exact polygon/polygon
// intersection of a rectangular mask against Q and walking its boundary
// with the isCovered corner-extension test, Plan exploits the fact that
// a horizontal band intersected with a y-monotone polygon is exactly
// the quad bounded by the polygon's left and right monotone chains
// evaluated at the band's two y-bounds — so each sweep's endpoints are
// obtained directly by evaluating those two chains at the sweep's y,
// with no separate corner-coverage pass needed since every sweep line,
// including the first and last, is evaluated exactly at the true
// boundary. This is a documented narrowing of the literal
// mask-intersection/isCovered procedure (see DESIGN.md), not a
// different output: the two agree wherever the intersection condition
// in spec.md §8 invariant 2 (every interior point within s/2+eps of a
// sweep) holds.
//
// Fails with ErrInvalidCell if cell has fewer than three vertices or
// maxSweepDistance exceeds half the cell's diameter (spec.md §9 open
// question (a)); ErrNotYMonotone if the rotated cell is not
// approximately y-monotone.
func Plan(cell polygon.Simple, startVertexIdx int, counterClockwise bool, maxSweepDistance float64) ([]geom.Point, error) {
	n := cell.Len()
	if n < 3 || maxSweepDistance <= 0 {
		return nil, ErrInvalidCell
	}
	if _, err := polygon.New(cell.Vertices, nil); err != nil {
		return nil, ErrInvalidCell
	}

	ordered := make([]geom.Point, n)
	if counterClockwise {
		for i := 0; i < n; i++ {
			ordered[i] = cell.At(startVertexIdx + i)
		}
	} else {
		for i := 0; i < n; i++ {
			ordered[i] = cell.At(startVertexIdx - i)
		}
	}

	diameter := geom.BoundingBox(ordered).Diameter()
	if maxSweepDistance > diameter/2 {
		return nil, ErrInvalidCell
	}

	dir, err := geom.DirectionBetween(ordered[0], ordered[1])
	if err != nil {
		return nil, ErrInvalidCell
	}

	ox, oy := ordered[0].X, ordered[0].Y
	translated := make([]geom.Point, n)
	for i, p := range ordered {
		translated[i] = geom.NewPointRat(
			new(big.Rat).Sub(p.X, ox),
			new(big.Rat).Sub(p.Y, oy),
		)
	}
	rot := geom.NewRotationTo(dir).Inverse()
	rotated := rot.ApplyAll(translated)

	if !approxYMonotone(rotated, kMonotoneEps) {
		return nil, ErrNotYMonotone
	}

	box := geom.BoundingBox(rotated)
	polygonLength := box.MaxY - box.MinY

	var waypoints []geom.Point
	if polygonLength < kMaxOverlapError*maxSweepDistance {
		waypoints = []geom.Point{rotated[0], rotated[1]}
	} else {
		waypoints, err = ladder(rotated, box, polygonLength, maxSweepDistance)
		if err != nil {
			return nil, err
		}
	}

	forward := geom.NewRotationTo(dir)
	out := make([]geom.Point, len(waypoints))
	for i, p := range waypoints {
		undone := forward.Apply(p)
		out[i] = geom.NewPointRat(
			new(big.Rat).Add(undone.X, ox),
			new(big.Rat).Add(undone.Y, oy),
		)
	}
	return out, nil
}
