// Package sweep computes the boustrophedon ("lawnmower") coverage path
// for a single y-monotone cell: a back-and-forth ladder of horizontal
// passes spaced by at most the sensor's sweep distance (spec.md §4.D).
package sweep
