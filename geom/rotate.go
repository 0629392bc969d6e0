package geom

import (
	"math"
	"math/big"
)

// RotationDenominator is the fixed large denominator used to rationalize
// a Direction's cosine/sine, following the rational-approximation trick
// CGAL uses for Aff_transformation_2(ROTATION, dir, num, den): rather
// than carrying irrational trigonometry through the kernel, the rotation
// matrix itself is approximated by a rational of bounded denominator and
// then treated as exact from that point on. This module approximates at
// full float64 precision (far finer than 1e-9) and keeps this constant
// only as the documented precision contract.
const RotationDenominator = 1e9

// Rotation is a 2D rotation matrix with rational cos/sin entries,
// [[Cos, -Sin], [Sin, Cos]].
type Rotation struct {
	Cos, Sin *big.Rat
}

// NewRotationTo builds the Rotation sending (1, 0) to dir.
func NewRotationTo(dir Direction) Rotation {
	dx, _ := dir.DX.Float64()
	dy, _ := dir.DY.Float64()
	length := math.Sqrt(dx*dx + dy*dy)
	cos := new(big.Rat).SetFloat64(dx / length)
	sin := new(big.Rat).SetFloat64(dy / length)
	if cos == nil {
		cos = new(big.Rat)
	}
	if sin == nil {
		sin = new(big.Rat)
	}
	return Rotation{Cos: cos, Sin: sin}
}

// Inverse returns the inverse (transpose) rotation.
func (r Rotation) Inverse() Rotation {
	return Rotation{Cos: new(big.Rat).Set(r.Cos), Sin: new(big.Rat).Neg(r.Sin)}
}

// Apply rotates p by r.
func (r Rotation) Apply(p Point) Point {
	x := new(big.Rat).Sub(
		new(big.Rat).Mul(p.X, r.Cos),
		new(big.Rat).Mul(p.Y, r.Sin),
	)
	y := new(big.Rat).Add(
		new(big.Rat).Mul(p.X, r.Sin),
		new(big.Rat).Mul(p.Y, r.Cos),
	)
	return Point{X: x, Y: y}
}

// ApplyAll rotates every point of pts by r, returning a new slice.
func (r Rotation) ApplyAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = r.Apply(p)
	}
	return out
}
