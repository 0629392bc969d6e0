package sweep

import "errors"

// Sentinel errors. Callers must branch with errors.Is.
var (
	// ErrInvalidCell indicates the input cell is not strictly simple,
	// has fewer than three vertices, or the requested sweep distance
	// exceeds half the cell's diameter (spec.md §9 open question (a)):
	// a spacing that coarse cannot produce a meaningful ladder of passes.
	ErrInvalidCell = errors.New("sweep: invalid cell or sweep distance")

	// ErrNotYMonotone indicates the rotated cell fails the approximate
	// y-monotone test in step 2 of the plan.
	ErrNotYMonotone = errors.New("sweep: cell is not y-monotone along the requested start edge")

	// ErrInternalInvariant indicates the number of sweep lines computed
	// for a cell came out below two — a bug, not a bad input.
	ErrInternalInvariant = errors.New("sweep: internal invariant violated")
)
