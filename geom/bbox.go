package geom

import "math"

// BBox is an axis-aligned bounding box in float64, the approximate
// output sanctioned by spec.md §4.A.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// BoundingBox computes the bounding box of pts via Point.Approx. Panics
// if pts is empty — callers own ensuring a non-empty polygon before
// calling this.
func BoundingBox(pts []Point) BBox {
	x0, y0 := pts[0].Approx()
	box := BBox{MinX: x0, MinY: y0, MaxX: x0, MaxY: y0}
	for _, p := range pts[1:] {
		x, y := p.Approx()
		if x < box.MinX {
			box.MinX = x
		}
		if x > box.MaxX {
			box.MaxX = x
		}
		if y < box.MinY {
			box.MinY = y
		}
		if y > box.MaxY {
			box.MaxY = y
		}
	}
	return box
}

// Diameter returns the Euclidean length of the bounding box diagonal.
func (b BBox) Diameter() float64 {
	dx := b.MaxX - b.MinX
	dy := b.MaxY - b.MinY
	return math.Sqrt(dx*dx + dy*dy)
}
