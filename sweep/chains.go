package sweep

import (
	"math"

	"github.com/basalt-robotics/sweepcover/geom"
	"github.com/basalt-robotics/sweepcover/polygon"
)

type point2 struct{ x, y float64 }

// approxYMonotone reports whether pts is y-monotone up to eps: walking
// from the minimum-y vertex to the maximum-y vertex along each of the
// two boundary chains, y must be monotonically non-decreasing along
// that chain.
func approxYMonotone(pts []geom.Point, eps float64) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	ys := make([]float64, n)
	for i, p := range pts {
		_, ys[i] = p.Approx()
	}
	minI, maxI := 0, 0
	for i := 1; i < n; i++ {
		if ys[i] < ys[minI] {
			minI = i
		}
		if ys[i] > ys[maxI] {
			maxI = i
		}
	}
	if minI == maxI {
		return false
	}
	monotone := func(from, to int, nonDecreasing bool) bool {
		i, last := from, ys[from]
		for i != to {
			next := (i + 1) % n
			if nonDecreasing && ys[next] < last-eps {
				return false
			}
			if !nonDecreasing && ys[next] > last+eps {
				return false
			}
			last, i = ys[next], next
		}
		return true
	}
	return monotone(minI, maxI, true) && monotone(maxI, minI, false)
}

// chains splits the y-monotone polygon pts (indexed by its minimum- and
// maximum-y vertices) into the two boundary chains, both returned in
// ascending-y order (minI's y to maxI's y) so chainXAtY can assume a
// consistent direction regardless of which chain is which.
func chains(pts []geom.Point, minI, maxI int) (a, b []point2) {
	n := len(pts)
	walk := func(from, to int) []point2 {
		var out []point2
		i := from
		for {
			x, y := pts[i].Approx()
			out = append(out, point2{x, y})
			if i == to {
				break
			}
			i = (i + 1) % n
		}
		return out
	}
	a = walk(minI, maxI)
	bDescending := walk(maxI, minI)
	b = make([]point2, len(bDescending))
	for i, p := range bDescending {
		b[len(bDescending)-1-i] = p
	}
	return a, b
}

// chainXAtY linearly interpolates chain's x-coordinate at height y.
// chain is monotonic in y by construction; y is clamped to the chain's
// own range to absorb floating rounding at the sweep extremes.
func chainXAtY(chain []point2, y float64) float64 {
	if y <= chain[0].y {
		return chain[0].x
	}
	last := chain[len(chain)-1]
	if y >= last.y {
		return last.x
	}
	for i := 0; i+1 < len(chain); i++ {
		a, b := chain[i], chain[i+1]
		lo, hi := a.y, b.y
		if lo > hi {
			lo, hi = hi, lo
		}
		if y >= lo && y <= hi {
			if hi == lo {
				return a.x
			}
			t := (y - a.y) / (b.y - a.y)
			return a.x + t*(b.x-a.x)
		}
	}
	return last.x
}

// flatEps groups vertices within this y-distance of the polygon's
// global min/max into the same flat edge, so a trapezoid's flat
// top/bottom contributes its full width rather than a single chain
// vertex's x.
const flatEps = 1e-9

// xRangeAt returns the [min, max] x among pts' vertices whose y lies
// within flatEps of target.
func xRangeAt(pts []geom.Point, target float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		x, y := p.Approx()
		if math.Abs(y-target) <= flatEps {
			if x < lo {
				lo = x
			}
			if x > hi {
				hi = x
			}
		}
	}
	return lo, hi
}

// ladder builds the boustrophedon waypoint sequence for the rotated,
// y-monotone polygon pts, spacing horizontal passes by at most
// maxSweepDistance.
func ladder(pts []geom.Point, box geom.BBox, polygonLength, maxSweepDistance float64) ([]geom.Point, error) {
	n := len(pts)
	ys := make([]float64, n)
	minI, maxI := 0, 0
	for i, p := range pts {
		_, ys[i] = p.Approx()
		if ys[i] < ys[minI] {
			minI = i
		}
		if ys[i] > ys[maxI] {
			maxI = i
		}
	}

	forwardChain, otherChain := chains(pts, minI, maxI)
	ccw := polygon.TwiceSignedArea(pts).Sign() > 0
	rightChain, leftChain := forwardChain, otherChain
	if !ccw {
		rightChain, leftChain = otherChain, forwardChain
	}

	numSweeps := int(math.Ceil(polygonLength/maxSweepDistance)) + 1
	if numSweeps < 2 {
		return nil, ErrInternalInvariant
	}
	sweepDistance := polygonLength / float64(numSweeps-1)

	minXLo, minXHi := xRangeAt(pts, box.MinY)
	maxXLo, maxXHi := xRangeAt(pts, box.MaxY)

	var out []geom.Point
	for i := 0; i < numSweeps; i++ {
		y := box.MinY + float64(i)*sweepDistance
		var xL, xR float64
		switch {
		case i == 0:
			xL, xR = minXLo, minXHi
		case i == numSweeps-1:
			y = box.MaxY
			xL, xR = maxXLo, maxXHi
		default:
			xL, xR = chainXAtY(leftChain, y), chainXAtY(rightChain, y)
		}
		if i%2 == 0 {
			out = append(out, geom.NewPoint(xL, y), geom.NewPoint(xR, y))
		} else {
			out = append(out, geom.NewPoint(xR, y), geom.NewPoint(xL, y))
		}
	}
	return out, nil
}
