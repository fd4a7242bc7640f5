package percolation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/percolate/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates a grid size that is not strictly positive.
	ErrInvalidSize = errors.New("percolation: grid size must be greater than 0")
	// ErrOutOfRange indicates a row or column outside [1, n].
	ErrOutOfRange = errors.New("percolation: site index out of range")
)

// RangeError reports a site coordinate outside the grid. Both axes are
// checked, so a single RangeError may describe a bad row and a bad column.
type RangeError struct {
	Row, Col int // Requested coordinates
	N        int // Grid size
}

func (e *RangeError) Error() string {
	var parts []string
	if e.Row < 1 || e.Row > e.N {
		parts = append(parts, fmt.Sprintf("row should be between 1 and %d, got %d", e.N, e.Row))
	}
	if e.Col < 1 || e.Col > e.N {
		parts = append(parts, fmt.Sprintf("column should be between 1 and %d, got %d", e.N, e.Col))
	}

	return "percolation: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrOutOfRange) hold for any *RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// neighborOffsets lists the four orthogonal (row, col) steps: N, S, W, E.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an n×n percolation system backed by a disjoint-set forest of
// n²+2 elements. Elements 0..n²-1 are sites in row-major order, n² is the
// virtual top and n²+1 the virtual bottom.
type Grid struct {
	n         int
	open      []bool
	openSites int
	uf        *unionfind.UnionFind
	top       int
	bottom    int
}
