// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction orients a field. NoDirection acts as a wildcard in FieldID.Matches.
type Direction uint8

const (
	// NoDirection matches either direction.
	NoDirection Direction = iota
	// Across runs left to right.
	Across
	// Down runs top to bottom.
	Down
)

// Suffix is the one-letter marker used in field ids ("12a", "3d").
func (d Direction) Suffix() string {
	switch d {
	case Across:
		return "a"
	case Down:
		return "d"
	}
	return ""
}

// Perpendicular returns the crossing direction.
func (d Direction) Perpendicular() Direction {
	switch d {
	case Across:
		return Down
	case Down:
		return Across
	}
	return NoDirection
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Across:
		return "across"
	case Down:
		return "down"
	}
	return "none"
}

// FieldID addresses a field by clue number and direction.
type FieldID struct {
	Number    int
	Direction Direction
}

// Matches reports whether both ids name the same number and either
// direction is NoDirection or both agree.
func (id FieldID) Matches(other FieldID) bool {
	if id.Number != other.Number {
		return false
	}
	return id.Direction == NoDirection || other.Direction == NoDirection || id.Direction == other.Direction
}

// String renders the id as number plus direction suffix, e.g. "12a".
func (id FieldID) String() string {
	return strconv.Itoa(id.Number) + id.Direction.Suffix()
}

// ParseFieldID reads "12a", "12D" or "12" (no direction).
func ParseFieldID(s string) (FieldID, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimRight(s, "aAdD")
	dir := NoDirection
	switch strings.ToLower(s[len(digits):]) {
	case "":
	case "a":
		dir = Across
	case "d":
		dir = Down
	default:
		return FieldID{}, fmt.Errorf("%w: %q", ErrBadFieldID, s)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return FieldID{}, fmt.Errorf("%w: %q", ErrBadFieldID, s)
	}
	return FieldID{Number: n, Direction: dir}, nil
}

// Field is a maximal run of contiguous answer cells. Fields are immutable
// once derived.
type Field struct {
	Row, Col  int
	Direction Direction
	Length    int
	Number    int
}

// ID returns the field's identifier.
func (f Field) ID() FieldID {
	return FieldID{Number: f.Number, Direction: f.Direction}
}

// Cell returns the row and column of the i-th cell of f.
func (f Field) Cell(i int) (row, col int) {
	if f.Direction == Down {
		return f.Row + i, f.Col
	}
	return f.Row, f.Col + i
}

// Contains reports whether (row,col) lies in f and at which index.
func (f Field) Contains(row, col int) (int, bool) {
	var i int
	switch f.Direction {
	case Across:
		if row != f.Row {
			return 0, false
		}
		i = col - f.Col
	case Down:
		if col != f.Col {
			return 0, false
		}
		i = row - f.Row
	default:
		return 0, false
	}
	if i < 0 || i >= f.Length {
		return 0, false
	}
	return i, true
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return fmt.Sprintf("%s@(%d,%d)x%d", f.ID(), f.Row, f.Col, f.Length)
}
