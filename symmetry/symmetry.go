// SPDX-License-Identifier: MIT

package symmetry

import "fmt"

// Symmetry is a geometric constraint on block/bar placement.
// The zero value is None.
type Symmetry uint8

const (
	// None places no constraint on the layout.
	None Symmetry = iota
	// HalfTurnRotation: the layout is unchanged by a 180° turn.
	HalfTurnRotation
	// QuarterTurnRotation: the layout is unchanged by a 90° turn. Square grids only.
	QuarterTurnRotation
	// ReflectVerticalAxis: the layout mirrors left to right.
	ReflectVerticalAxis
	// ReflectHorizontalAxis: the layout mirrors top to bottom.
	ReflectHorizontalAxis
	// ReflectBothAxes: the layout mirrors across both axes.
	ReflectBothAxes
)

// detectOrder lists candidates from most to least constrained.
var detectOrder = []Symmetry{
	QuarterTurnRotation,
	ReflectBothAxes,
	HalfTurnRotation,
	ReflectVerticalAxis,
	ReflectHorizontalAxis,
}

// transforms holds the non-identity group elements per symmetry.
var transforms = [...][]Transform{
	None:                  nil,
	HalfTurnRotation:      {Rotate180},
	QuarterTurnRotation:   {Rotate90, Rotate180, Rotate270},
	ReflectVerticalAxis:   {MirrorLeftRight},
	ReflectHorizontalAxis: {MirrorTopBottom},
	ReflectBothAxes:       {MirrorLeftRight, MirrorTopBottom, Rotate180},
}

var keys = [...]string{
	None:                  "none",
	HalfTurnRotation:      "rotate-half-turn",
	QuarterTurnRotation:   "rotate-quarter-turn",
	ReflectVerticalAxis:   "reflect-vertical-axis",
	ReflectHorizontalAxis: "reflect-horizontal-axis",
	ReflectBothAxes:       "reflect-both-axes",
}

// All returns every symmetry in declaration order.
func All() []Symmetry {
	return []Symmetry{None, HalfTurnRotation, QuarterTurnRotation, ReflectVerticalAxis, ReflectHorizontalAxis, ReflectBothAxes}
}

// Valid reports whether s is one of the declared variants.
func (s Symmetry) Valid() bool {
	return int(s) < len(keys)
}

// Key returns the persisted identifier of s (the symmetry= attribute).
func (s Symmetry) Key() string {
	if !s.Valid() {
		return fmt.Sprintf("symmetry(%d)", uint8(s))
	}

	return keys[s]
}

// String implements fmt.Stringer.
func (s Symmetry) String() string { return s.Key() }

// Parse resolves a persisted key back to its Symmetry.
func Parse(key string) (Symmetry, error) {
	for i, k := range keys {
		if k == key {
			return Symmetry(i), nil
		}
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownSymmetry, key)
}

// Transforms returns the non-identity transforms that must leave a layout
// unchanged for s to hold. The returned slice is a copy.
func (s Symmetry) Transforms() []Transform {
	if !s.Valid() {
		return nil
	}

	return append([]Transform(nil), transforms[s]...)
}

// SupportsDimensions reports whether s can constrain a cols×rows grid.
// Every variant except QuarterTurnRotation supports any shape.
// Complexity: O(1).
func (s Symmetry) SupportsDimensions(cols, rows int) bool {
	if s == QuarterTurnRotation {
		return cols == rows
	}

	return s.Valid()
}

// PrincipalDimensions returns the width and height of the minimal region
// whose cell pattern determines the whole cols×rows grid under s.
// The region is anchored at the top-left corner.
// Complexity: O(1).
func (s Symmetry) PrincipalDimensions(cols, rows int) (w, h int) {
	halfCols, halfRows := (cols+1)/2, (rows+1)/2
	switch s {
	case HalfTurnRotation, ReflectHorizontalAxis:
		return cols, halfRows
	case QuarterTurnRotation, ReflectBothAxes:
		return halfCols, halfRows
	case ReflectVerticalAxis:
		return halfCols, rows
	}

	return cols, rows
}

// Images returns the orbit of (col,row) under s: the cell itself followed by
// each distinct image, in transform order.
func (s Symmetry) Images(col, row, cols, rows int) []Cell {
	out := []Cell{{Col: col, Row: row}}
	for _, t := range s.Transforms() {
		c, r := t.Apply(col, row, cols, rows)
		dup := false
		for _, seen := range out {
			if seen.Col == c && seen.Row == r {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, Cell{Col: c, Row: r})
		}
	}

	return out
}

// Holds reports whether pred is invariant under every transform of s on a
// cols×rows grid. A symmetry that does not support the shape never holds.
// Complexity: O(W×H×t).
func (s Symmetry) Holds(pred func(col, row int) bool, cols, rows int) bool {
	if !s.SupportsDimensions(cols, rows) {
		return false
	}
	for _, t := range s.Transforms() {
		if !transformHolds(t, pred, cols, rows) {
			return false
		}
	}

	return true
}

func transformHolds(t Transform, pred func(col, row int) bool, cols, rows int) bool {
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c, r := t.Apply(col, row, cols, rows)
			if pred(col, row) != pred(c, r) {
				return false
			}
		}
	}

	return true
}

// Detect classifies the cell pattern described by pred, trying
// QuarterTurnRotation, ReflectBothAxes, HalfTurnRotation, ReflectVerticalAxis
// and ReflectHorizontalAxis in that order. The first symmetry whose mapping
// reproduces the pattern exactly wins; otherwise None.
//
// Example:
//
//	s := symmetry.Detect(func(c, r int) bool { return blocks[r][c] }, 15, 15)
func Detect(pred func(col, row int) bool, cols, rows int) Symmetry {
	return DetectBy(cols, rows, func(t Transform) bool {
		return transformHolds(t, pred, cols, rows)
	})
}

// DetectBy is Detect for layouts that are not a plain cell predicate (bar
// grids map edges, not cells). holds must report whether the layout is
// unchanged by t. Results for a transform are cached across candidates.
func DetectBy(cols, rows int, holds func(t Transform) bool) Symmetry {
	cache := make(map[Transform]bool, 5)
	check := func(t Transform) bool {
		v, ok := cache[t]
		if !ok {
			v = holds(t)
			cache[t] = v
		}
		return v
	}

	for _, s := range detectOrder {
		if !s.SupportsDimensions(cols, rows) {
			continue
		}
		ok := true
		for _, t := range transforms[s] {
			if !check(t) {
				ok = false
				break
			}
		}
		if ok {
			return s
		}
	}

	return None
}

// Expand rebuilds a full cols×rows pattern ([row][col]) from the principal
// region: every cell takes the value of the first member of its orbit (in
// row-major order) that lies inside PrincipalDimensions(cols, rows).
// The result is invariant under s by construction.
// Complexity: O(W×H×t).
func (s Symmetry) Expand(principal func(col, row int) bool, cols, rows int) ([][]bool, error) {
	if cols <= 0 || rows <= 0 || !s.SupportsDimensions(cols, rows) {
		return nil, fmt.Errorf("%w: %s on %dx%d", ErrUnsupportedDimensions, s, cols, rows)
	}
	w, h := s.PrincipalDimensions(cols, rows)

	out := make([][]bool, rows)
	for row := 0; row < rows; row++ {
		out[row] = make([]bool, cols)
		for col := 0; col < cols; col++ {
			rep, found := Cell{}, false
			for _, img := range s.Images(col, row, cols, rows) {
				if img.Col >= w || img.Row >= h {
					continue
				}
				if !found || img.Row < rep.Row || (img.Row == rep.Row && img.Col < rep.Col) {
					rep, found = img, true
				}
			}
			// Every orbit meets the principal region; found is always true.
			out[row][col] = principal(rep.Col, rep.Row)
		}
	}

	return out, nil
}
