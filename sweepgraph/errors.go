package sweepgraph

import (
	"errors"

	"github.com/basalt-robotics/sweepcover/bcd"
)

// Sentinel errors. Callers must branch with errors.Is.
var (
	// ErrEmptyDecomposition indicates every cell failed to produce at
	// least one surviving sweep candidate (spec.md §7: "if all cells
	// fail, the top-level call surfaces EmptyDecomposition"). Reuses
	// bcd's sentinel since it names the same condition one layer up.
	ErrEmptyDecomposition = bcd.ErrEmptyDecomposition

	// ErrInternalInvariant indicates a broken graph invariant (e.g. an
	// edge created between same-cluster nodes) — a bug, not a bad input.
	ErrInternalInvariant = errors.New("sweepgraph: internal invariant violated")

	// ErrMalformedSolution indicates the GTSP solver's cycle, after
	// rotation to start first, does not end at the goal node
	// (spec.md §4.F step 4).
	ErrMalformedSolution = errors.New("sweepgraph: solver cycle does not end at the goal node")
)
