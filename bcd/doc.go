// Package bcd implements Boustrophedon Cellular Decomposition: a
// sweep-line decomposition of a polygon-with-holes into y-monotone
// cells (Choset 2000), plus the best-direction search that tries every
// candidate sweep orientation and keeps the one minimizing total cell
// altitude.
package bcd
