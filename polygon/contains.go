package polygon

import (
	"math/big"

	"github.com/basalt-robotics/sweepcover/geom"
)

// pointInRing reports whether p is inside or on the boundary of the
// simple ring pts, via exact ray casting (a horizontal ray to +infinity
// x, crossing-parity test using exact orientation comparisons in place
// of float epsilon checks).
func pointInRing(p geom.Point, pts []geom.Point) bool {
	n := len(pts)
	inside := false
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]

		if onSegmentExact(p, a, b) {
			return true
		}

		// Does edge (a,b) straddle p's y, and does the crossing x exceed p.X?
		ay, by := a.Y, b.Y
		if (ay.Cmp(p.Y) > 0) != (by.Cmp(p.Y) > 0) {
			// x_cross = a.X + (p.Y - a.Y) * (b.X - a.X) / (b.Y - a.Y)
			dy := new(big.Rat).Sub(by, ay)
			t := new(big.Rat).Quo(new(big.Rat).Sub(p.Y, ay), dy)
			dx := new(big.Rat).Sub(b.X, a.X)
			xCross := new(big.Rat).Add(a.X, new(big.Rat).Mul(t, dx))
			if xCross.Cmp(p.X) > 0 {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegmentExact(p, a, b geom.Point) bool {
	if geom.OrientationOf(a, b, p) != geom.Collinear {
		return false
	}
	minX, maxX := a.X, b.X
	if minX.Cmp(maxX) > 0 {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY.Cmp(maxY) > 0 {
		minY, maxY = maxY, minY
	}
	return p.X.Cmp(minX) >= 0 && p.X.Cmp(maxX) <= 0 &&
		p.Y.Cmp(minY) >= 0 && p.Y.Cmp(maxY) <= 0
}

// PointInPolygon reports whether p lies in the closed region (the outer
// boundary minus hole interiors): spec.md §4.B pointInPolygon.
func (p *WithHoles) PointInPolygon(q geom.Point) bool {
	if !pointInRing(q, p.Boundary.Vertices) {
		return false
	}
	for _, h := range p.Holes {
		if pointInHoleInterior(q, h.Vertices) {
			return false
		}
	}
	return true
}

// InHoleInterior reports whether q lies strictly inside one of p's
// holes, as distinct from lying outside the outer boundary entirely.
// Both cases make PointInPolygon report false; planner uses this to
// tell spec.md §8 boundary scenario 5 (point outside the hull, to be
// projected) apart from scenario 6 (point unreachable inside a hole,
// surfaced as an error instead of silently projected).
func (p *WithHoles) InHoleInterior(q geom.Point) bool {
	for _, h := range p.Holes {
		if pointInHoleInterior(q, h.Vertices) {
			return true
		}
	}
	return false
}

// pointInHoleInterior reports whether q is strictly inside the hole
// (boundary points of a hole are still part of the covered region).
func pointInHoleInterior(q geom.Point, hole []geom.Point) bool {
	if onRingBoundary(q, hole) {
		return false
	}
	return pointInRing(q, hole)
}

func onRingBoundary(p geom.Point, pts []geom.Point) bool {
	n := len(pts)
	for i := 0; i < n; i++ {
		if onSegmentExact(p, pts[i], pts[(i+1)%n]) {
			return true
		}
	}
	return false
}
