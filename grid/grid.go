// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/crossgrid/entries"
	"github.com/katalvlaran/crossgrid/gridgraph"
	"github.com/katalvlaran/crossgrid/symmetry"
)

// Grid size limits, inclusive.
const (
	MinDimension = 2
	MaxDimension = 99
)

// Cell addresses a grid square by column and row.
type Cell = symmetry.Cell

func checkDimensions(cols, rows int) error {
	if cols < MinDimension || cols > MaxDimension || rows < MinDimension || rows > MaxDimension {
		return fmt.Errorf("%w: %dx%d not within [%d,%d]", ErrBadDimensions, cols, rows, MinDimension, MaxDimension)
	}
	return nil
}

// Grid is a rectangular crossword: a layout that honours a symmetry, the
// fields derived from it and their entries. The embedded Topology exposes
// field queries and entry editing.
type Grid struct {
	*Topology
	layout *Layout
	sym    symmetry.Symmetry
}

// New returns a blank grid: no blocks or bars, so every row and column is
// one field.
func New(sep Separator, cols, rows int, sym symmetry.Symmetry, opts ...Option) (*Grid, error) {
	l, err := NewLayout(sep, cols, rows)
	if err != nil {
		return nil, err
	}
	return FromLayout(l, sym, opts...)
}

// FromDefinition parses a compact definition text (see ParseLayout) and
// builds the grid.
func FromDefinition(sep Separator, cols, rows int, sym symmetry.Symmetry, def string, opts ...Option) (*Grid, error) {
	l, err := ParseLayout(sep, cols, rows, def)
	if err != nil {
		return nil, err
	}
	return FromLayout(l, sym, opts...)
}

// FromLayout validates l against sym and derives its fields. The grid keeps
// its own copy of l.
//
// Errors: ErrBadDimensions, ErrIncompatibleSymmetry, ErrAsymmetricLayout.
func FromLayout(l *Layout, sym symmetry.Symmetry, opts ...Option) (*Grid, error) {
	if err := checkDimensions(l.cols, l.rows); err != nil {
		return nil, err
	}
	if !sym.Valid() {
		return nil, fmt.Errorf("%w: %d", symmetry.ErrUnknownSymmetry, sym)
	}
	if !sym.SupportsDimensions(l.cols, l.rows) {
		return nil, fmt.Errorf("%w: %s on %dx%d", ErrIncompatibleSymmetry, sym, l.cols, l.rows)
	}
	if !l.Honours(sym) {
		return nil, fmt.Errorf("%w: %s", ErrAsymmetricLayout, sym)
	}
	return build(l.clone(), sym, gatherOptions(opts...))
}

func build(l *Layout, sym symmetry.Symmetry, o Options) (*Grid, error) {
	t, err := NewTopology(l.cols, l.rows)
	if err != nil {
		return nil, err
	}
	t.opts = o
	if err = deriveFields(l, t); err != nil {
		return nil, err
	}
	return &Grid{Topology: t, layout: l, sym: sym}, nil
}

// Cols returns the column count.
func (g *Grid) Cols() int { return g.layout.cols }

// Rows returns the row count.
func (g *Grid) Rows() int { return g.layout.rows }

// Separator returns the separator kind.
func (g *Grid) Separator() Separator { return g.layout.sep }

// Symmetry returns the enforced symmetry.
func (g *Grid) Symmetry() symmetry.Symmetry { return g.sym }

// Layout returns a copy of the separator layout.
func (g *Grid) Layout() *Layout { return g.layout.clone() }

// Definition renders the compact definition text.
func (g *Grid) Definition() string { return g.layout.Definition() }

// IsBlock reports whether (col,row) is a block; see Layout.IsBlock.
func (g *Grid) IsBlock(col, row int) bool { return g.layout.IsBlock(col, row) }

// HasBar reports whether (col,row) carries a bar on edge e.
func (g *Grid) HasBar(col, row int, e Edge) bool { return g.layout.HasBar(col, row, e) }

// ToggleBlock flips (col,row) and every symmetric image between block and
// open, and returns the rebuilt grid. Letters in cells that remain in a
// field are carried over; g itself is unchanged.
//
// Errors: ErrWrongSeparator on bar grids, ErrOutOfRange.
func (g *Grid) ToggleBlock(col, row int) (*Grid, error) {
	if g.layout.sep != Block {
		return nil, fmt.Errorf("%w: ToggleBlock on a %s grid", ErrWrongSeparator, g.layout.sep)
	}
	if !g.layout.inBounds(col, row) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, col, row)
	}
	l := g.layout.clone()
	on := !l.IsBlock(col, row)
	for _, img := range g.sym.Images(col, row, l.cols, l.rows) {
		l.setBit(img.Col, img.Row, bitBlock, on)
	}
	return g.rebuild(l)
}

// ToggleBar flips the bar on edge e of (col,row) and its symmetric images,
// and returns the rebuilt grid.
//
// Errors: ErrWrongSeparator on block grids, ErrOutOfRange for cells outside
// the grid or edges on the border.
func (g *Grid) ToggleBar(col, row int, e Edge) (*Grid, error) {
	if g.layout.sep != Bar {
		return nil, fmt.Errorf("%w: ToggleBar on a %s grid", ErrWrongSeparator, g.layout.sep)
	}
	l := g.layout.clone()
	if !l.inBounds(col, row) || (e == Right && col == l.cols-1) || (e == Bottom && row == l.rows-1) {
		return nil, fmt.Errorf("%w: %s edge of (%d,%d)", ErrOutOfRange, edgeName(e), col, row)
	}
	on := !l.HasBar(col, row, e)
	for _, img := range l.edgeOrbit(barEdge{col: col, row: row, edge: e}, g.sym) {
		bit := bitBarRight
		if img.edge == Bottom {
			bit = bitBarBottom
		}
		l.setBit(img.col, img.row, bit, on)
	}
	return g.rebuild(l)
}

func edgeName(e Edge) string {
	if e == Bottom {
		return "bottom"
	}
	return "right"
}

// rebuild derives a grid from l and copies over letters whose cells are
// still in a field.
func (g *Grid) rebuild(l *Layout) (*Grid, error) {
	ng, err := build(l, g.sym, g.opts)
	if err != nil {
		return nil, err
	}
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			v, _ := g.entries.Value(r, c)
			if !entries.IsLetter(v) {
				continue
			}
			if cur, _ := ng.entries.Value(r, c); cur == entries.Undefined {
				if err = ng.entries.SetValue(r, c, v); err != nil {
					return nil, err
				}
			}
		}
	}
	return ng, nil
}

// WithSymmetry returns a copy of g enforcing sym. The layout must already
// honour it; entries are kept.
func (g *Grid) WithSymmetry(sym symmetry.Symmetry) (*Grid, error) {
	if !sym.Valid() {
		return nil, fmt.Errorf("%w: %d", symmetry.ErrUnknownSymmetry, sym)
	}
	if !sym.SupportsDimensions(g.layout.cols, g.layout.rows) {
		return nil, fmt.Errorf("%w: %s on %dx%d", ErrIncompatibleSymmetry, sym, g.layout.cols, g.layout.rows)
	}
	if !g.layout.Honours(sym) {
		return nil, fmt.Errorf("%w: %s", ErrAsymmetricLayout, sym)
	}
	cp := *g.Topology
	cp.across = append([]Field(nil), g.across...)
	cp.down = append([]Field(nil), g.down...)
	cp.entries = g.entries.Clone()
	return &Grid{Topology: &cp, layout: g.layout, sym: sym}, nil
}

// DetectSymmetry returns the most constrained symmetry the layout honours,
// regardless of the enforced one.
func (g *Grid) DetectSymmetry() symmetry.Symmetry { return g.layout.DetectSymmetry() }

// Islands returns the groups of in-field cells reachable from one another
// without crossing a block or bar. Cells lying in no field are ignored.
// Complexity: O(W×H).
func (g *Grid) Islands() [][]Cell {
	values := make([][]int, g.layout.rows)
	for r := range values {
		values[r] = make([]int, g.layout.cols)
		for c := range values[r] {
			if v, _ := g.entries.Value(r, c); v != entries.NoValue {
				values[r][c] = 1
			}
		}
	}
	gg, err := gridgraph.From2D(values, func(x1, y1, x2, y2 int) bool {
		return !g.layout.separated(x1, y1, x2, y2)
	})
	if err != nil {
		// Dimensions are validated at construction.
		return nil
	}
	comps := gg.ConnectedComponents()
	out := make([][]Cell, len(comps))
	for i, comp := range comps {
		out[i] = make([]Cell, len(comp))
		for j, idx := range comp {
			x, y := gg.Coordinate(idx)
			out[i][j] = Cell{Col: x, Row: y}
		}
	}
	return out
}

// IsConnected reports whether all in-field cells form a single island.
func (g *Grid) IsConnected() bool { return len(g.Islands()) <= 1 }
