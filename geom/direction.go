package geom

import "math/big"

// Direction is a nonzero 2D vector equivalence class under positive
// scaling: (dx, dy) and (k*dx, k*dy) for k > 0 are the same Direction,
// but (dx, dy) and (-dx, -dy) are distinct (spec §3).
type Direction struct {
	DX, DY *big.Rat
}

// NewDirection builds a Direction from an endpoint vector, keeping
// (dx, dy) as given; Equal is what treats positive multiples as the
// same Direction. Returns ErrDegenerate if (dx, dy) is the zero vector.
func NewDirection(dx, dy *big.Rat) (Direction, error) {
	if dx.Sign() == 0 && dy.Sign() == 0 {
		return Direction{}, ErrDegenerate
	}
	return Direction{DX: new(big.Rat).Set(dx), DY: new(big.Rat).Set(dy)}, nil
}

// DirectionBetween returns the Direction from p to q.
func DirectionBetween(p, q Point) (Direction, error) {
	dx, dy := q.Sub(p)
	return NewDirection(dx, dy)
}

// Equal reports whether d and e point the same way, i.e. are positive
// scalar multiples of one another.
func (d Direction) Equal(e Direction) bool {
	// d and e are equal directions iff dx*ey - dy*ex == 0 (collinear)
	// and they agree in sign (dot product > 0).
	cross := new(big.Rat).Sub(
		new(big.Rat).Mul(d.DX, e.DY),
		new(big.Rat).Mul(d.DY, e.DX),
	)
	if cross.Sign() != 0 {
		return false
	}
	dot := new(big.Rat).Add(
		new(big.Rat).Mul(d.DX, e.DX),
		new(big.Rat).Mul(d.DY, e.DY),
	)
	return dot.Sign() > 0
}

// Negate returns the opposite Direction.
func (d Direction) Negate() Direction {
	return Direction{DX: new(big.Rat).Neg(d.DX), DY: new(big.Rat).Neg(d.DY)}
}

// IsCollinearWith reports whether d and e lie on the same line,
// regardless of sign (used to deduplicate edge directions in
// findEdgeDirections).
func (d Direction) IsCollinearWith(e Direction) bool {
	cross := new(big.Rat).Sub(
		new(big.Rat).Mul(d.DX, e.DY),
		new(big.Rat).Mul(d.DY, e.DX),
	)
	return cross.Sign() == 0
}
