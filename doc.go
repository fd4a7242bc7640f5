// Package percolate is a small toolkit for studying site percolation on
// square grids, from the connectivity primitive up to threshold estimation.
//
// 🚀 What is percolation?
//
//	Open the sites of an n×n grid one at a time. The system percolates once
//	some chain of orthogonally adjacent open sites joins the top row to the
//	bottom row. For large n this happens abruptly near an open fraction of
//	p* ≈ 0.5927, the site-percolation threshold of the square lattice.
//
// ✨ Packages:
//
//	unionfind/   — weighted quick-union forest with path halving
//	percolation/ — n×n Grid with virtual top/bottom sites and Percolates()
//	montecarlo/  — parallel, reproducible threshold estimation + metrics
//	cmd/percolation — command-line driver: percolation N T
//
// Quick ASCII example (O = open, . = closed), 4×4, percolating:
//
//	O O . .
//	. O . .
//	. O O .
//	O . O .
//
//	go install github.com/katalvlaran/percolate/cmd/percolation@latest
//	percolation 200 100
package percolate
