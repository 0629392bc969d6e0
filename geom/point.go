package geom

import "math/big"

// Point is an exact rational 2D coordinate. All predicates in this
// package operate on Points; Approx is the only bridge to float64, used
// exclusively for bounding boxes and final waypoint output (spec §4.A).
type Point struct {
	X, Y *big.Rat
}

// NewPoint builds a Point from float64 coordinates, converting each to
// its exact rational representation. Coordinates must be finite; callers
// reading untrusted input should check with math.IsNaN/IsInf first, as
// big.Rat.SetFloat64 returns nil for NaN/Inf which would otherwise panic
// on first use.
func NewPoint(x, y float64) Point {
	rx := new(big.Rat).SetFloat64(x)
	ry := new(big.Rat).SetFloat64(y)
	if rx == nil {
		rx = new(big.Rat)
	}
	if ry == nil {
		ry = new(big.Rat)
	}
	return Point{X: rx, Y: ry}
}

// NewPointRat builds a Point directly from exact rationals.
func NewPointRat(x, y *big.Rat) Point {
	return Point{X: x, Y: y}
}

// Approx returns the float64 approximation of p. This is the only
// sanctioned place rounding enters the geometry kernel.
func (p Point) Approx() (float64, float64) {
	x, _ := p.X.Float64()
	y, _ := p.Y.Float64()
	return x, y
}

// Equal reports exact rational equality.
func (p Point) Equal(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Sub returns p - q as a vector (dx, dy).
func (p Point) Sub(q Point) (dx, dy *big.Rat) {
	return new(big.Rat).Sub(p.X, q.X), new(big.Rat).Sub(p.Y, q.Y)
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy *big.Rat) Point {
	return Point{X: new(big.Rat).Add(p.X, dx), Y: new(big.Rat).Add(p.Y, dy)}
}

// SquaredDistance returns the exact squared Euclidean distance between
// p and q.
func SquaredDistance(p, q Point) *big.Rat {
	dx, dy := p.Sub(q)
	sx := new(big.Rat).Mul(dx, dx)
	sy := new(big.Rat).Mul(dy, dy)
	return sx.Add(sx, sy)
}
