package geom

import "math/big"

// ClipHalfPlaneY clips the simple polygon poly against the horizontal
// half-plane y >= yLine (keepAbove=true) or y <= yLine (keepAbove=false),
// using the Sutherland-Hodgman algorithm. poly is assumed simple and
// given in order (orientation is preserved). Returns nil if the
// half-plane excludes the entire polygon.
//
// This, composed twice via ClipBand, is the documented narrowing of
// spec.md §4.A's general polygon-polygon intersection/difference to the
// one shape this module's callers ever construct: an axis-aligned band
// spanning the polygon's full x-range (see DESIGN.md).
func ClipHalfPlaneY(poly []Point, yLine *big.Rat, keepAbove bool) []Point {
	n := len(poly)
	if n == 0 {
		return nil
	}
	inside := func(p Point) bool {
		cmp := p.Y.Cmp(yLine)
		if keepAbove {
			return cmp >= 0
		}
		return cmp <= 0
	}
	intersect := func(a, b Point) Point {
		// Parametrize the segment a->b and find t where y == yLine.
		dy := new(big.Rat).Sub(b.Y, a.Y)
		if dy.Sign() == 0 {
			return a
		}
		t := new(big.Rat).Quo(new(big.Rat).Sub(yLine, a.Y), dy)
		dx := new(big.Rat).Sub(b.X, a.X)
		x := new(big.Rat).Add(a.X, new(big.Rat).Mul(t, dx))
		return Point{X: x, Y: new(big.Rat).Set(yLine)}
	}

	var out []Point
	prev := poly[n-1]
	prevIn := inside(prev)
	for _, cur := range poly {
		curIn := inside(cur)
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, intersect(prev, cur), cur)
		case !curIn && prevIn:
			out = append(out, intersect(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// ClipBand intersects poly with the horizontal band yLo <= y <= yHi,
// the "sweep mask" / "offset mask" shape used throughout sweep and
// polygon.offsetEdge.
func ClipBand(poly []Point, yLo, yHi *big.Rat) []Point {
	above := ClipHalfPlaneY(poly, yLo, true)
	if len(above) == 0 {
		return nil
	}
	return ClipHalfPlaneY(above, yHi, false)
}

// ClipHalfPlaneX is ClipHalfPlaneY's mirror image across x/y, used by
// bcd's vertical sweep-line slab decomposition.
func ClipHalfPlaneX(poly []Point, xLine *big.Rat, keepRight bool) []Point {
	n := len(poly)
	if n == 0 {
		return nil
	}
	inside := func(p Point) bool {
		cmp := p.X.Cmp(xLine)
		if keepRight {
			return cmp >= 0
		}
		return cmp <= 0
	}
	intersect := func(a, b Point) Point {
		dx := new(big.Rat).Sub(b.X, a.X)
		if dx.Sign() == 0 {
			return a
		}
		t := new(big.Rat).Quo(new(big.Rat).Sub(xLine, a.X), dx)
		dy := new(big.Rat).Sub(b.Y, a.Y)
		y := new(big.Rat).Add(a.Y, new(big.Rat).Mul(t, dy))
		return Point{X: new(big.Rat).Set(xLine), Y: y}
	}

	var out []Point
	prev := poly[n-1]
	prevIn := inside(prev)
	for _, cur := range poly {
		curIn := inside(cur)
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, intersect(prev, cur), cur)
		case !curIn && prevIn:
			out = append(out, intersect(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// ClipBandX intersects poly with the vertical band xLo <= x <= xHi, the
// per-slab shape bcd's sweep-line decomposition clips against.
func ClipBandX(poly []Point, xLo, xHi *big.Rat) []Point {
	right := ClipHalfPlaneX(poly, xLo, true)
	if len(right) == 0 {
		return nil
	}
	return ClipHalfPlaneX(right, xHi, false)
}
