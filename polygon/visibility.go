package polygon

import (
	"math"
	"math/big"
	"sort"

	"github.com/basalt-robotics/sweepcover/geom"
)

// ComputeVisibilityPolygon returns a star-shaped polygon visible from q
// (spec.md §4.B), via a radial sweep over every boundary/hole vertex
// direction from q: for each direction, the visible point is the first
// obstacle edge the ray from q hits. Each ray stops at that first hit
// and is not continued past a vertex it grazes, so in a non-convex
// region the result can be smaller than the full visibility region of
// q. This is
// the standard rotational-sweep construction cited against Bungiu et
// al. 2014 in original_source/include/.../polygon.h; it is an
// independent implementation (no CGAL visibility package exists in the
// retrieved corpus).
//
// Fails with ErrOutsideRegion if q is not inside the closed region.
func (p *WithHoles) ComputeVisibilityPolygon(q geom.Point) ([]geom.Point, error) {
	if !p.PointInPolygon(q) {
		return nil, ErrOutsideRegion
	}

	edges := p.allEdges()
	if len(edges) == 0 {
		return nil, ErrInvalidGeometry
	}

	type hit struct {
		angle float64
		pt    geom.Point
	}
	seen := make(map[[2]float64]bool)
	var hits []hit

	addDirection := func(v geom.Point) {
		dir, err := geom.DirectionBetween(q, v)
		if err != nil {
			return // v == q
		}
		dx, _ := dir.DX.Float64()
		dy, _ := dir.DY.Float64()
		angle := math.Atan2(dy, dx)
		key := [2]float64{math.Round(angle * 1e9), 0}
		if seen[key] {
			return
		}
		seen[key] = true

		best, ok := nearestHit(q, dir, edges)
		if !ok {
			return
		}
		hits = append(hits, hit{angle: angle, pt: best})
	}

	for _, e := range edges {
		addDirection(e.a)
		addDirection(e.b)
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].angle < hits[j].angle })

	out := make([]geom.Point, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.pt)
	}
	return out, nil
}

type polyEdge struct{ a, b geom.Point }

func (p *WithHoles) allEdges() []polyEdge {
	var out []polyEdge
	n := p.Boundary.Len()
	for i := 0; i < n; i++ {
		a, b := p.Boundary.Edge(i)
		out = append(out, polyEdge{a, b})
	}
	for _, h := range p.Holes {
		m := h.Len()
		for i := 0; i < m; i++ {
			a, b := h.Edge(i)
			out = append(out, polyEdge{a, b})
		}
	}
	return out
}

// nearestHit casts a ray from q along dir and returns the closest
// intersection point with any of edges, exactly (by comparing squared
// distances as big.Rat).
func nearestHit(q geom.Point, dir geom.Direction, edges []polyEdge) (geom.Point, bool) {
	var best geom.Point
	var bestDist *big.Rat
	found := false

	for _, e := range edges {
		t, s, ok := rayIntersect(q, dir, e.a, e.b)
		if !ok || t.Sign() < 0 || s.Sign() < 0 || s.Cmp(big.NewRat(1, 1)) > 0 {
			continue
		}
		pt := q.Add(new(big.Rat).Mul(t, dir.DX), new(big.Rat).Mul(t, dir.DY))
		d := geom.SquaredDistance(q, pt)
		if !found || d.Cmp(bestDist) < 0 {
			best, bestDist, found = pt, d, true
		}
	}
	return best, found
}

// rayIntersect solves q + t*dir == a + s*(b-a) for (t, s) via Cramer's
// rule. ok is false if the ray and segment are parallel.
func rayIntersect(q geom.Point, dir geom.Direction, a, b geom.Point) (t, s *big.Rat, ok bool) {
	ex, ey := b.Sub(a)
	det := new(big.Rat).Sub(
		new(big.Rat).Mul(ex, dir.DY),
		new(big.Rat).Mul(ey, dir.DX),
	)
	if det.Sign() == 0 {
		return nil, nil, false
	}
	rx := new(big.Rat).Sub(a.X, q.X)
	ry := new(big.Rat).Sub(a.Y, q.Y)

	// t = (rx*(-ey) - (-ex)*ry) / det = (ex*ry - ey*rx) / det
	tNum := new(big.Rat).Sub(
		new(big.Rat).Mul(ex, ry),
		new(big.Rat).Mul(ey, rx),
	)
	t = new(big.Rat).Quo(tNum, det)

	// s = (dir.DX*ry - dir.DY*rx) / det
	sNum := new(big.Rat).Sub(
		new(big.Rat).Mul(dir.DX, ry),
		new(big.Rat).Mul(dir.DY, rx),
	)
	s = new(big.Rat).Quo(sNum, det)
	return t, s, true
}
