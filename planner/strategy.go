package planner

// Strategy is the tagged variant spec.md §9 names for decomposition
// choice, dispatched once in Setup.
type Strategy string

const (
	Trapezoidal     Strategy = "trapezoidal"
	Bcd             Strategy = "bcd"
	BestTrapezoidal Strategy = "best_trapezoidal"
	BestBcd         Strategy = "best_bcd"
)
