// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Passable reports whether a step between the orthogonal neighbors
// (x1,y1) and (x2,y2) is allowed. A nil Passable allows every step.
type Passable func(x1, y1, x2, y2 int) bool

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered an answer cell.
	LandThreshold int
	// Passable optionally vetoes steps between neighbors (bars).
	Passable Passable
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are answer cells), every step passable.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	LandThreshold int
	passable      Passable
}
