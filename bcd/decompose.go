package bcd

import (
	"math/big"
	"sort"

	"github.com/basalt-robotics/sweepcover/geom"
	"github.com/basalt-robotics/sweepcover/polygon"
)

// curve is a straight edge's y-value at the two x-coordinates bounding
// one sweep-line slab.
type curve struct {
	yLo, yHi *big.Rat
}

// Decompose runs Boustrophedon Cellular Decomposition on p along
// direction d, producing y-monotone cells (spec.md §4.C).
//
// Algorithm: rotate p so d maps to (1,0); collect the distinct
// x-coordinates of every boundary/hole vertex as sweep-line event
// positions; between each consecutive pair of events the polygon's
// cross-section is a sorted stack of boundary/hole edges with no vertex
// in between, so slicing it into (outer-edge, hole-edge) gap pairs
// yields one trapezoidal, automatically y-monotone cell per gap — the
// IN/OUT/MIDDLE vertex classification of the textbook sweep
// (original_source/include/.../BCD.h) is implicit in which gaps a hole
// opens and closes between consecutive events, rather than tracked as
// an explicit event-type enum. Cells are not merged across slabs when
// no event separates them, so a run of topologically-identical slabs
// yields one cell per slab rather than a single merged cell; this is a
// deliberate scope narrowing (see DESIGN.md) that still satisfies
// spec.md §8 invariant 1 (disjoint, y-monotone, area-preserving cells).
//
// Fails with ErrDegenerate if p has zero area, ErrEmptyDecomposition if
// no cell survives.
func Decompose(p *polygon.WithHoles, d geom.Direction) ([]polygon.Simple, error) {
	if p.Area().Sign() == 0 {
		return nil, ErrDegenerate
	}

	rotated := p.Rotate(d)
	xs := distinctXs(rotated)
	if len(xs) < 2 {
		return nil, ErrDegenerate
	}

	forward := geom.NewRotationTo(d)
	var cells []polygon.Simple

	for i := 0; i+1 < len(xs); i++ {
		xLo, xHi := xs[i], xs[i+1]
		if xLo.Cmp(xHi) == 0 {
			continue
		}

		bQuad := geom.ClipBandX(rotated.Boundary.Vertices, xLo, xHi)
		bottom, top, ok := extractBottomTop(bQuad, xLo, xHi)
		if !ok {
			continue
		}

		curves := []curve{bottom}
		for _, h := range rotated.Holes {
			hQuad := geom.ClipBandX(h.Vertices, xLo, xHi)
			if len(hQuad) == 0 {
				continue
			}
			hBottom, hTop, ok := extractBottomTop(hQuad, xLo, xHi)
			if !ok {
				continue
			}
			curves = append(curves, hBottom, hTop)
		}
		curves = append(curves, top)
		sort.Slice(curves, func(a, b int) bool { return curves[a].yLo.Cmp(curves[b].yLo) < 0 })

		for j := 0; j+1 < len(curves); j += 2 {
			cell := cellFromCurves(xLo, xHi, curves[j], curves[j+1])
			if cell == nil {
				continue
			}
			undone := make([]geom.Point, len(cell))
			for k, v := range cell {
				undone[k] = forward.Apply(v)
			}
			cells = append(cells, polygon.Simple{Vertices: undone})
		}
	}

	if len(cells) == 0 {
		return nil, ErrEmptyDecomposition
	}
	return cells, nil
}

func distinctXs(p *polygon.WithHoles) []*big.Rat {
	var xs []*big.Rat
	add := func(ring polygon.Simple) {
		for _, v := range ring.Vertices {
			xs = append(xs, v.X)
		}
	}
	add(p.Boundary)
	for _, h := range p.Holes {
		add(h)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i].Cmp(xs[j]) < 0 })

	var out []*big.Rat
	for _, x := range xs {
		if len(out) == 0 || out[len(out)-1].Cmp(x) != 0 {
			out = append(out, x)
		}
	}
	return out
}

// extractBottomTop splits a band-clip quad into its bottom and top
// curves by matching the endpoints of its slab-crossing edges against
// xLo/xHi; vertical pieces lying on a slab wall are skipped.
func extractBottomTop(quad []geom.Point, xLo, xHi *big.Rat) (bottom, top curve, ok bool) {
	if len(quad) < 4 {
		return curve{}, curve{}, false
	}
	var loYs, hiYs []*big.Rat
	for i, a := range quad {
		b := quad[(i+1)%len(quad)]
		if a.X.Cmp(b.X) == 0 {
			continue
		}
		for _, v := range [2]geom.Point{a, b} {
			switch {
			case v.X.Cmp(xLo) == 0:
				loYs = append(loYs, v.Y)
			case v.X.Cmp(xHi) == 0:
				hiYs = append(hiYs, v.Y)
			}
		}
	}
	if len(loYs) < 2 || len(hiYs) < 2 {
		return curve{}, curve{}, false
	}
	loMin, loMax := minMax(loYs)
	hiMin, hiMax := minMax(hiYs)
	return curve{yLo: loMin, yHi: hiMin}, curve{yLo: loMax, yHi: hiMax}, true
}

func minMax(vs []*big.Rat) (min, max *big.Rat) {
	min, max = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v.Cmp(min) < 0 {
			min = v
		}
		if v.Cmp(max) > 0 {
			max = v
		}
	}
	return min, max
}

// cellFromCurves builds the quad cell between a bottom and a top curve
// over [xLo, xHi]. Returns nil if the gap has zero height throughout.
func cellFromCurves(xLo, xHi *big.Rat, bottom, top curve) []geom.Point {
	if bottom.yLo.Cmp(top.yLo) == 0 && bottom.yHi.Cmp(top.yHi) == 0 {
		return nil
	}
	return []geom.Point{
		geom.NewPointRat(xLo, bottom.yLo),
		geom.NewPointRat(xHi, bottom.yHi),
		geom.NewPointRat(xHi, top.yHi),
		geom.NewPointRat(xLo, top.yLo),
	}
}
