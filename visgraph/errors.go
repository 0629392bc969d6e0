package visgraph

import "errors"

// Sentinel errors. Callers must branch with errors.Is.
var (
	// ErrUnreachable indicates from and to lie in disconnected
	// components of the free region.
	ErrUnreachable = errors.New("visgraph: no obstacle-avoiding path between the two points")
)
