package polygon

import "github.com/basalt-robotics/sweepcover/geom"

// FindEdgeDirections returns the set of distinct edge directions over
// the boundary and holes, deduplicated by collinearity, augmented with
// their negatives — used to seed BCD's candidate sweep orientations.
// Grounded on original_source/polygon.cc::findEdgeDirections.
func (p *WithHoles) FindEdgeDirections() []geom.Direction {
	var dirs []geom.Direction
	collect := func(ring Simple) {
		n := ring.Len()
		for i := 0; i < n; i++ {
			a, b := ring.Edge(i)
			d, err := geom.DirectionBetween(a, b)
			if err != nil {
				continue
			}
			dirs = append(dirs, d)
		}
	}
	collect(p.Boundary)
	for _, h := range p.Holes {
		collect(h)
	}

	var unique []geom.Direction
	for _, d := range dirs {
		dup := false
		for _, u := range unique {
			if d.IsCollinearWith(u) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, d)
		}
	}

	out := make([]geom.Direction, 0, len(unique)*2)
	out = append(out, unique...)
	for _, d := range unique {
		out = append(out, d.Negate())
	}
	return out
}

// Rotate applies the inverse of the rotation that sends (1,0) to dir,
// producing a polygon in which dir-aligned edges become horizontal
// (spec.md §4.B rotate).
func (p *WithHoles) Rotate(dir geom.Direction) *WithHoles {
	rot := geom.NewRotationTo(dir).Inverse()
	rotateRing := func(ring Simple) Simple {
		out := make([]geom.Point, ring.Len())
		for i, v := range ring.Vertices {
			out[i] = rot.Apply(v)
		}
		return Simple{Vertices: out}
	}
	out := &WithHoles{Boundary: rotateRing(p.Boundary)}
	for _, h := range p.Holes {
		out.Holes = append(out.Holes, rotateRing(h))
	}
	return out
}
