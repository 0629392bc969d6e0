package polygon

import "errors"

// Sentinel errors. Callers must branch with errors.Is.
var (
	// ErrInvalidGeometry indicates a non-simple outer boundary or hole,
	// or a hole that is not strictly interior to the boundary.
	ErrInvalidGeometry = errors.New("polygon: invalid geometry")

	// ErrOutsideRegion indicates a query point lies outside the closed
	// region (outer boundary minus hole interiors).
	ErrOutsideRegion = errors.New("polygon: point outside region")

	// ErrOffsetCollapsed indicates an inward offset would make some edge
	// vanish (the polygon has no interior left at that offset).
	ErrOffsetCollapsed = errors.New("polygon: offset collapsed the polygon")
)
