package geom

import "math/big"

// ProjectOntoSegment returns the closest point on segment [a, b] to p,
// exactly. If a == b, a is returned.
func ProjectOntoSegment(p, a, b Point) Point {
	dx, dy := b.Sub(a)
	if dx.Sign() == 0 && dy.Sign() == 0 {
		return a
	}
	apx, apy := p.Sub(a)
	num := new(big.Rat).Add(
		new(big.Rat).Mul(apx, dx),
		new(big.Rat).Mul(apy, dy),
	)
	den := new(big.Rat).Add(
		new(big.Rat).Mul(dx, dx),
		new(big.Rat).Mul(dy, dy),
	)
	t := new(big.Rat).Quo(num, den)
	zero := new(big.Rat)
	one := big.NewRat(1, 1)
	if t.Cmp(zero) < 0 {
		t = zero
	} else if t.Cmp(one) > 0 {
		t = one
	}
	return a.Add(new(big.Rat).Mul(t, dx), new(big.Rat).Mul(t, dy))
}

// SegmentsIntersect reports whether closed segments (p1,p2) and (p3,p4)
// intersect (properly or at a shared endpoint), using exact orientation
// tests. Used by visgraph to test mutual visibility between two points
// against every obstacle edge.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	o1 := OrientationOf(p1, p2, p3)
	o2 := OrientationOf(p1, p2, p4)
	o3 := OrientationOf(p3, p4, p1)
	o4 := OrientationOf(p3, p4, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == Collinear && onSegment(p1, p3, p2) {
		return true
	}
	if o2 == Collinear && onSegment(p1, p4, p2) {
		return true
	}
	if o3 == Collinear && onSegment(p3, p1, p4) {
		return true
	}
	if o4 == Collinear && onSegment(p3, p2, p4) {
		return true
	}
	return false
}

// onSegment reports whether q, known collinear with p and r, lies on
// the closed segment [p, r].
func onSegment(p, q, r Point) bool {
	minX, maxX := p.X, r.X
	if minX.Cmp(maxX) > 0 {
		minX, maxX = maxX, minX
	}
	minY, maxY := p.Y, r.Y
	if minY.Cmp(maxY) > 0 {
		minY, maxY = maxY, minY
	}
	return q.X.Cmp(minX) >= 0 && q.X.Cmp(maxX) <= 0 &&
		q.Y.Cmp(minY) >= 0 && q.Y.Cmp(maxY) <= 0
}
