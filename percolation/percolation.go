package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolate/unionfind"
)

// New creates an n×n grid with every site closed. The virtual top is linked
// to each site of row 1 and the virtual bottom to each site of row n.
// Returns ErrInvalidSize if n ≤ 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	sites := n * n
	g := &Grid{
		n:      n,
		open:   make([]bool, sites),
		uf:     unionfind.New(sites + 2),
		top:    sites,
		bottom: sites + 1,
	}
	for col := 1; col <= n; col++ {
		g.uf.Union(g.top, g.index(1, col))
		g.uf.Union(g.bottom, g.index(n, col))
	}

	return g, nil
}

// Size returns the grid dimension n.
func (g *Grid) Size() int {
	return g.n
}

// InBounds reports whether (row, col) lies within [1, n]×[1, n].
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// Open opens site (row, col) if it is not open already and links it with
// every open orthogonal neighbor. Opening an open site is a no-op.
// Returns *RangeError if the coordinates are out of bounds.
// Complexity: amortized O(α(n²)).
func (g *Grid) Open(row, col int) error {
	full, err := g.IsFull(row, col)
	if err != nil {
		return err
	}
	if !full {
		return nil
	}

	site := g.index(row, col)
	g.open[site] = true
	g.openSites++
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		if nb := g.index(nr, nc); g.open[nb] {
			g.uf.Union(site, nb)
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) has been opened.
// Returns *RangeError if the coordinates are out of bounds.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.open[g.index(row, col)], nil
}

// IsFull reports whether site (row, col) is still closed, i.e. !IsOpen.
// Returns *RangeError if the coordinates are out of bounds.
func (g *Grid) IsFull(row, col int) (bool, error) {
	open, err := g.IsOpen(row, col)
	if err != nil {
		return false, err
	}

	return !open, nil
}

// NumberOfOpenSites returns how many distinct sites have been opened.
// Complexity: O(1).
func (g *Grid) NumberOfOpenSites() int {
	return g.openSites
}

// OpenFraction returns NumberOfOpenSites / n².
func (g *Grid) OpenFraction() float64 {
	return float64(g.openSites) / float64(g.n*g.n)
}

// Percolates reports whether an open path joins row 1 to row n, i.e.
// whether the virtual top and bottom share a set.
// On a 1×1 grid both sentinels are linked to the only site, so a fresh
// 1×1 grid already reports true before anything is opened.
// Complexity: amortized O(α(n²)).
func (g *Grid) Percolates() bool {
	return g.uf.Connected(g.top, g.bottom)
}

// validate returns a *RangeError describing every violated axis.
func (g *Grid) validate(row, col int) error {
	if g.InBounds(row, col) {
		return nil
	}

	return &RangeError{Row: row, Col: col, N: g.n}
}

// index maps 1-indexed (row, col) to a row-major element: (row-1)*n + (col-1).
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + (col - 1)
}
