package geom

import "errors"

// Sentinel errors returned by this package. Callers must branch with
// errors.Is, never string comparison.
var (
	// ErrDegenerate indicates a construction would produce a zero-area
	// or zero-length geometric object (e.g. a Direction from two equal
	// points, or a polygon with zero area).
	ErrDegenerate = errors.New("geom: degenerate input")

	// ErrNotCollinear is returned internally by helpers that require
	// three points to lie on a common line.
	ErrNotCollinear = errors.New("geom: points are not collinear")
)
