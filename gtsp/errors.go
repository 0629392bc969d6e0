package gtsp

import "errors"

// Sentinel errors. Callers must branch with errors.Is.
var (
	// ErrSolverFailed indicates the solver could not produce a
	// feasible tour (e.g. a required cluster is unreachable from
	// every other cluster). Fatal per spec.md §7.
	ErrSolverFailed = errors.New("gtsp: solver failed to produce a feasible tour")

	// ErrInvalidInput indicates malformed matrix/cluster arguments
	// (non-square matrix, empty cluster, start/goal out of range).
	ErrInvalidInput = errors.New("gtsp: invalid matrix or cluster input")
)
