// SPDX-License-Identifier: MIT

package symmetry

// Transform is a single non-identity isometry of a rectangular grid.
type Transform uint8

const (
	// Rotate90 turns the grid a quarter clockwise. Square grids only.
	Rotate90 Transform = iota + 1
	// Rotate180 turns the grid half a turn.
	Rotate180
	// Rotate270 turns the grid three quarters clockwise. Square grids only.
	Rotate270
	// MirrorLeftRight reflects across the vertical axis.
	MirrorLeftRight
	// MirrorTopBottom reflects across the horizontal axis.
	MirrorTopBottom
)

// Cell addresses one grid cell by column and row.
type Cell struct {
	Col, Row int
}

// Apply maps (col,row) of a cols×rows grid to its image under t.
// Rotate90 and Rotate270 assume cols == rows.
// Complexity: O(1).
func (t Transform) Apply(col, row, cols, rows int) (int, int) {
	switch t {
	case Rotate90:
		return cols - 1 - row, col
	case Rotate180:
		return cols - 1 - col, rows - 1 - row
	case Rotate270:
		return row, rows - 1 - col
	case MirrorLeftRight:
		return cols - 1 - col, row
	case MirrorTopBottom:
		return col, rows - 1 - row
	}

	return col, row
}

// String returns a short name for diagnostics.
func (t Transform) String() string {
	switch t {
	case Rotate90:
		return "rotate-90"
	case Rotate180:
		return "rotate-180"
	case Rotate270:
		return "rotate-270"
	case MirrorLeftRight:
		return "mirror-left-right"
	case MirrorTopBottom:
		return "mirror-top-bottom"
	}

	return "identity"
}
