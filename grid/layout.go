// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/crossgrid/symmetry"
)

// Separator is the kind of marker that delimits fields.
type Separator uint8

const (
	// Block grids separate fields with filled cells.
	Block Separator = iota
	// Bar grids separate fields with thick cell edges.
	Bar
)

// Key returns the persisted identifier (separator= attribute).
func (s Separator) Key() string {
	if s == Bar {
		return "bar"
	}
	return "block"
}

// String implements fmt.Stringer.
func (s Separator) String() string { return s.Key() }

// ParseSeparator resolves "block" or "bar".
func ParseSeparator(key string) (Separator, error) {
	switch key {
	case "block":
		return Block, nil
	case "bar":
		return Bar, nil
	}
	return Block, fmt.Errorf("%w: %q", ErrUnknownSeparator, key)
}

// Edge selects one of the two edges a cell owns in a bar layout.
type Edge uint8

const (
	// Right is the edge shared with the cell to the right.
	Right Edge = iota
	// Bottom is the edge shared with the cell below.
	Bottom
)

type cellBits uint8

const (
	bitBlock cellBits = 1 << iota
	bitBarRight
	bitBarBottom
)

// Definition-text markers.
const (
	markOpen      = '.'
	markBlock     = '#'
	markBarRight  = '|'
	markBarBottom = '_'
	markBarBoth   = '+'
)

// Layout is the separator pattern of a grid: a tagged cell array where each
// cell may carry a block, a right bar and a bottom bar. Which markers are
// legal depends on the separator tag.
type Layout struct {
	sep        Separator
	cols, rows int
	cells      []cellBits
}

// NewLayout returns an open cols×rows layout (no blocks, no bars).
func NewLayout(sep Separator, cols, rows int) (*Layout, error) {
	if err := checkDimensions(cols, rows); err != nil {
		return nil, err
	}
	if sep != Block && sep != Bar {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeparator, sep)
	}
	return &Layout{sep: sep, cols: cols, rows: rows, cells: make([]cellBits, cols*rows)}, nil
}

// ParseLayout reads the compact grid-definition text: one line per row,
// one character per cell. Block grids use '#' (block) and '.' (open); bar
// grids use '.', '|' (bar on the right), '_' (bar below) and '+' (both).
// Surrounding whitespace and line indentation are ignored.
func ParseLayout(sep Separator, cols, rows int, def string) (*Layout, error) {
	l, err := NewLayout(sep, cols, rows)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(def), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != rows {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrBadDefinition, len(lines), rows)
	}
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadDefinition, r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			bits, ok := l.decodeMark(line[c])
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrBadDefinition, line[c], r, c)
			}
			if (bits&bitBarRight != 0 && c == cols-1) || (bits&bitBarBottom != 0 && r == rows-1) {
				return nil, fmt.Errorf("%w: bar on the border at row %d column %d", ErrBadDefinition, r, c)
			}
			l.cells[r*cols+c] = bits
		}
	}
	return l, nil
}

func (l *Layout) decodeMark(m byte) (cellBits, bool) {
	if m == markOpen {
		return 0, true
	}
	if l.sep == Block {
		return bitBlock, m == markBlock
	}
	switch m {
	case markBarRight:
		return bitBarRight, true
	case markBarBottom:
		return bitBarBottom, true
	case markBarBoth:
		return bitBarRight | bitBarBottom, true
	}
	return 0, false
}

func encodeMark(b cellBits) byte {
	switch {
	case b&bitBlock != 0:
		return markBlock
	case b&(bitBarRight|bitBarBottom) == bitBarRight|bitBarBottom:
		return markBarBoth
	case b&bitBarRight != 0:
		return markBarRight
	case b&bitBarBottom != 0:
		return markBarBottom
	}
	return markOpen
}

// Definition renders the compact grid-definition text (rows joined by '\n').
func (l *Layout) Definition() string {
	var sb strings.Builder
	for r := 0; r < l.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < l.cols; c++ {
			sb.WriteByte(encodeMark(l.cells[r*l.cols+c]))
		}
	}
	return sb.String()
}

// Separator returns the layout's separator kind.
func (l *Layout) Separator() Separator { return l.sep }

// Cols returns the column count.
func (l *Layout) Cols() int { return l.cols }

// Rows returns the row count.
func (l *Layout) Rows() int { return l.rows }

func (l *Layout) inBounds(col, row int) bool {
	return col >= 0 && col < l.cols && row >= 0 && row < l.rows
}

// IsBlock reports whether (col,row) is a block. Out-of-range cells count as blocks.
func (l *Layout) IsBlock(col, row int) bool {
	if !l.inBounds(col, row) {
		return true
	}
	return l.cells[row*l.cols+col]&bitBlock != 0
}

// HasBar reports whether (col,row) carries a bar on the given edge.
func (l *Layout) HasBar(col, row int, e Edge) bool {
	if !l.inBounds(col, row) {
		return false
	}
	bit := bitBarRight
	if e == Bottom {
		bit = bitBarBottom
	}
	return l.cells[row*l.cols+col]&bit != 0
}

// separated reports whether moving between orthogonal neighbors crosses a
// block or bar.
func (l *Layout) separated(c1, r1, c2, r2 int) bool {
	if l.IsBlock(c1, r1) || l.IsBlock(c2, r2) {
		return true
	}
	switch {
	case r1 == r2 && c2 == c1+1:
		return l.HasBar(c1, r1, Right)
	case r1 == r2 && c1 == c2+1:
		return l.HasBar(c2, r2, Right)
	case c1 == c2 && r2 == r1+1:
		return l.HasBar(c1, r1, Bottom)
	case c1 == c2 && r1 == r2+1:
		return l.HasBar(c2, r2, Bottom)
	}
	return true
}

func (l *Layout) clone() *Layout {
	cp := *l
	cp.cells = append([]cellBits(nil), l.cells...)
	return &cp
}

// Clone returns an independent copy.
func (l *Layout) Clone() *Layout { return l.clone() }

func (l *Layout) setBit(col, row int, bit cellBits, on bool) {
	i := row*l.cols + col
	if on {
		l.cells[i] |= bit
	} else {
		l.cells[i] &^= bit
	}
}

// barEdge is an edge between two orthogonally adjacent cells, normalized to
// the owning cell (left or upper) and its edge.
type barEdge struct {
	col, row int
	edge     Edge
}

// edgeBetween normalizes the edge shared by two adjacent cells.
func edgeBetween(c1, r1, c2, r2 int) barEdge {
	if r1 == r2 {
		return barEdge{col: min(c1, c2), row: r1, edge: Right}
	}
	return barEdge{col: c1, row: min(r1, r2), edge: Bottom}
}

// mapEdge returns the image of e under t.
func (l *Layout) mapEdge(e barEdge, t symmetry.Transform) barEdge {
	c2, r2 := e.col+1, e.row
	if e.edge == Bottom {
		c2, r2 = e.col, e.row+1
	}
	a1, b1 := t.Apply(e.col, e.row, l.cols, l.rows)
	a2, b2 := t.Apply(c2, r2, l.cols, l.rows)
	return edgeBetween(a1, b1, a2, b2)
}

// edgeOrbit lists e and its distinct images under s.
func (l *Layout) edgeOrbit(e barEdge, s symmetry.Symmetry) []barEdge {
	out := []barEdge{e}
	for _, t := range s.Transforms() {
		img := l.mapEdge(e, t)
		dup := false
		for _, seen := range out {
			if seen == img {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, img)
		}
	}
	return out
}

// invariantUnder reports whether every block and bar maps onto a block or
// bar of the same kind under t.
func (l *Layout) invariantUnder(t symmetry.Transform) bool {
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			tc, tr := t.Apply(c, r, l.cols, l.rows)
			if l.IsBlock(c, r) != l.IsBlock(tc, tr) {
				return false
			}
			for _, e := range []Edge{Right, Bottom} {
				if !l.HasBar(c, r, e) {
					continue
				}
				img := l.mapEdge(barEdge{col: c, row: r, edge: e}, t)
				if !l.HasBar(img.col, img.row, img.edge) {
					return false
				}
			}
		}
	}
	return true
}

// Honours reports whether the layout is unchanged by every transform of s.
func (l *Layout) Honours(s symmetry.Symmetry) bool {
	if !s.SupportsDimensions(l.cols, l.rows) {
		return false
	}
	for _, t := range s.Transforms() {
		if !l.invariantUnder(t) {
			return false
		}
	}
	return true
}

// DetectSymmetry returns the most constrained symmetry the layout honours.
func (l *Layout) DetectSymmetry() symmetry.Symmetry {
	return symmetry.DetectBy(l.cols, l.rows, l.invariantUnder)
}
