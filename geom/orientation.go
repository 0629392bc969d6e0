package geom

import "math/big"

// Orientation classifies the turn formed by three ordered points.
type Orientation int

const (
	// Collinear indicates a, b, c lie on a common line.
	Collinear Orientation = iota
	// CounterClockwise indicates a left turn at b.
	CounterClockwise
	// Clockwise indicates a right turn at b.
	Clockwise
)

// OrientationOf computes the exact orientation of the ordered triple
// (a, b, c) via the sign of the cross product (b-a) x (c-a). This is
// the one predicate every higher-level exact operation in this module
// (simplification, point-in-polygon, BCD event classification) reduces
// to.
func OrientationOf(a, b, c Point) Orientation {
	abx, aby := b.Sub(a)
	acx, acy := c.Sub(a)
	cross := new(big.Rat).Sub(
		new(big.Rat).Mul(abx, acy),
		new(big.Rat).Mul(aby, acx),
	)
	switch cross.Sign() {
	case 0:
		return Collinear
	case 1:
		return CounterClockwise
	default:
		return Clockwise
	}
}

// Cross returns the exact cross product (b-a) x (c-a). Exposed for
// callers that need the signed magnitude, not just its sign (e.g. exact
// polygon area via the shoelace formula).
func Cross(a, b, c Point) *big.Rat {
	abx, aby := b.Sub(a)
	acx, acy := c.Sub(a)
	return new(big.Rat).Sub(
		new(big.Rat).Mul(abx, acy),
		new(big.Rat).Mul(aby, acx),
	)
}
