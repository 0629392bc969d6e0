package polygon

import (
	"math/big"

	"github.com/basalt-robotics/sweepcover/geom"
)

// OffsetEdge shifts edge i of the simple polygon cell inward by delta,
// re-clipping to the polygon via mask-difference: rotate/translate the
// polygon so edge i lies on the origin along +x with the interior above
// it, clip away the band 0 <= y < delta, then undo the transform.
// Grounded line-for-line on
// original_source/polygon.cc::offsetEdge's translate -> rotate -> build
// mask -> intersect -> untransform pipeline, narrowed to the single
// band-clip shape geom.ClipHalfPlaneY provides (see DESIGN.md).
//
// Returns ErrOffsetCollapsed if the offset removes the whole polygon.
func OffsetEdge(cell Simple, i int, delta float64) (Simple, error) {
	a, b := cell.Edge(i)
	dir, err := geom.DirectionBetween(a, b)
	if err != nil {
		return Simple{}, ErrInvalidGeometry
	}
	rot := geom.NewRotationTo(dir).Inverse()

	translated := make([]geom.Point, cell.Len())
	for idx, v := range cell.Vertices {
		dx, dy := v.Sub(a)
		translated[idx] = rot.Apply(geom.NewPointRat(dx, dy))
	}

	deltaRat := new(big.Rat).SetFloat64(delta)
	if deltaRat == nil {
		deltaRat = new(big.Rat)
	}
	clipped := geom.ClipHalfPlaneY(translated, deltaRat, true)
	if len(clipped) < 3 {
		return Simple{}, ErrOffsetCollapsed
	}

	fwd := rot.Inverse()
	out := make([]geom.Point, len(clipped))
	for idx, v := range clipped {
		undone := fwd.Apply(v)
		out[idx] = undone.Add(a.X, a.Y)
	}
	return Simple{Vertices: out}, nil
}

// ComputeOffsetPolygon applies an inward offset of delta to the
// boundary, sequentially clipping away the band adjacent to each
// boundary edge (spec.md §4.B computeOffsetPolygon). Holes are left
// unchanged: growing a hole by the same delta is a distinct operation
// this system never calls (every caller only ever shrinks a cell, which
// is already hole-free by construction — see bcd).
func (p *WithHoles) ComputeOffsetPolygon(delta float64) (*WithHoles, error) {
	cur := p.Boundary
	for i := 0; i < cur.Len(); i++ {
		next, err := OffsetEdge(cur, i, delta)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return &WithHoles{Boundary: cur, Holes: p.Holes}, nil
}
