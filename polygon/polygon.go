package polygon

import (
	"math/big"

	"github.com/basalt-robotics/sweepcover/geom"
)

// Simple is an ordered cyclic sequence of >= 3 points with no
// self-intersections (spec.md §3 "Polygon (simple)").
type Simple struct {
	Vertices []geom.Point
}

// Len returns the number of vertices.
func (s Simple) Len() int { return len(s.Vertices) }

// At returns vertex i, wrapping cyclically — the "index modulo |V|,
// never back-pointers" convention of spec.md §9.
func (s Simple) At(i int) geom.Point {
	n := len(s.Vertices)
	return s.Vertices[((i%n)+n)%n]
}

// Edge returns the ordered pair (At(i), At(i+1)).
func (s Simple) Edge(i int) (geom.Point, geom.Point) {
	return s.At(i), s.At(i + 1)
}

// TwiceSignedArea returns twice the exact signed area (shoelace sum),
// positive for CCW, negative for CW, zero for degenerate input.
func TwiceSignedArea(pts []geom.Point) *big.Rat {
	sum := new(big.Rat)
	n := len(pts)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		sum.Add(sum, new(big.Rat).Sub(
			new(big.Rat).Mul(a.X, b.Y),
			new(big.Rat).Mul(b.X, a.Y),
		))
	}
	return sum
}

// Area returns the exact unsigned area.
func (s Simple) Area() *big.Rat {
	a := TwiceSignedArea(s.Vertices)
	a.Abs(a)
	return a.Quo(a, big.NewRat(2, 1))
}

// isCCW reports whether pts, taken as a cyclic polygon, wind
// counter-clockwise.
func isCCW(pts []geom.Point) bool {
	return TwiceSignedArea(pts).Sign() > 0
}

// reversed returns pts in reverse order.
func reversed(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// simplifyCollinear merges consecutive vertices where the middle one is
// collinear with its neighbours, repeating until no merge applies or
// fewer than 3 vertices remain. Grounded on
// original_source/polygon.cc's simplify() pass over each ring.
func simplifyCollinear(pts []geom.Point) []geom.Point {
	for {
		n := len(pts)
		if n < 3 {
			return pts
		}
		out := make([]geom.Point, 0, n)
		changed := false
		for i := 0; i < n; i++ {
			prev := pts[(i-1+n)%n]
			cur := pts[i]
			next := pts[(i+1)%n]
			if geom.OrientationOf(prev, cur, next) == geom.Collinear {
				changed = true
				continue
			}
			out = append(out, cur)
		}
		if !changed || len(out) == len(pts) {
			return out
		}
		pts = out
	}
}

// isStrictlySimple reports whether the cyclic polygon pts has no
// self-intersections among non-adjacent edges.
func isStrictlySimple(pts []geom.Point) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := pts[i], pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip edges that share a vertex with edge i.
			adjacent := (j+1)%n == i || (i+1)%n == j
			if adjacent {
				continue
			}
			b1, b2 := pts[j], pts[(j+1)%n]
			if geom.SegmentsIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

// WithHoles is one simple outer boundary (CCW) plus zero or more simple
// hole polygons (CW), pairwise disjoint and strictly interior to the
// boundary (spec.md §3 "PolygonWithHoles").
type WithHoles struct {
	Boundary Simple
	Holes    []Simple
}

// New constructs a WithHoles from raw vertex rings: (1) rejects a
// non-simple outer boundary; (2) enforces CCW boundary / CW holes,
// reversing where needed; (3) merges collinear consecutive vertices in
// the boundary and each hole. Grounded on
// original_source/polygon.cc's constructor pipeline
// (checkStrictlySimple -> sortCC -> simplify).
func New(boundary []geom.Point, holes [][]geom.Point) (*WithHoles, error) {
	if len(boundary) < 3 {
		return nil, ErrInvalidGeometry
	}
	if !isStrictlySimple(boundary) {
		return nil, ErrInvalidGeometry
	}
	b := simplifyCollinear(boundary)
	if !isCCW(b) {
		b = reversed(b)
	}

	out := &WithHoles{Boundary: Simple{Vertices: b}}
	for _, h := range holes {
		if len(h) < 3 {
			return nil, ErrInvalidGeometry
		}
		if !isStrictlySimple(h) {
			return nil, ErrInvalidGeometry
		}
		hv := simplifyCollinear(h)
		if isCCW(hv) {
			hv = reversed(hv)
		}
		out.Holes = append(out.Holes, Simple{Vertices: hv})
	}
	return out, nil
}

// Area returns the exact area of the region: boundary area minus the
// sum of hole areas.
func (p *WithHoles) Area() *big.Rat {
	total := p.Boundary.Area()
	for _, h := range p.Holes {
		total = new(big.Rat).Sub(total, h.Area())
	}
	return total
}
