// Package percolation models site percolation on an n×n grid.
//
// What:
//
//   - Grid holds n×n sites, each closed or open. Sites only ever open.
//   - Every open adds the site to a disjoint-set forest together with its
//     open orthogonal neighbors (N, S, W, E).
//   - Two virtual sites, top and bottom, are pre-linked to all of row 1 and
//     row n, so "does the system percolate?" is a single Connected query.
//
// Coordinates are 1-indexed: (1,1) is the upper-left site, (n,n) the
// lower-right one.
//
// Complexity:
//
//   - New:        O(n²) time and memory.
//   - Open:       amortized O(α(n²)).
//   - Percolates: amortized O(α(n²)).
//
// Errors:
//
//   - ErrInvalidSize: n ≤ 0 passed to New.
//   - ErrOutOfRange:  row or column outside [1, n]; returned as *RangeError.
//
// A 1×1 grid is the one exception to "a fresh grid does not percolate":
// the virtual top and bottom are both linked to its only site, so
// Percolates reports true before any open. Callers that run until the
// first percolation must open at least one site.
//
// Note that IsFull is defined as the plain negation of IsOpen (a site that
// has not been opened yet), not as "connected to the top row".
//
// A Grid is not safe for concurrent use; give each goroutine its own.
package percolation
