package bcd

import "errors"

// Sentinel errors. Callers must branch with errors.Is.
var (
	// ErrDegenerate indicates the input polygon has zero area.
	ErrDegenerate = errors.New("bcd: degenerate (zero-area) input polygon")

	// ErrEmptyDecomposition indicates no cell survived cleanup.
	ErrEmptyDecomposition = errors.New("bcd: no cell survived decomposition")
)
