// SPDX-License-Identifier: MIT

package entries

import (
	"strings"
	"unicode"
)

const (
	// NoValue marks a cell outside every field. It is the zero rune, so a
	// fresh buffer is all NoValue.
	NoValue rune = 0

	// Undefined marks an in-field cell without a letter.
	Undefined rune = -1
)

// Entries is a rows×cols row-major buffer of tri-state cells.
//   - data is shared with clones until the first write (shared == true).
//   - numCells counts in-field cells, numValues counts letters.
type Entries struct {
	r, c      int
	data      []rune
	shared    bool
	numCells  int
	numValues int
}

// New returns a rows×cols buffer in which every cell is NoValue.
// Complexity: O(r*c).
func New(rows, cols int) (*Entries, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Entries{r: rows, c: cols, data: make([]rune, rows*cols)}, nil
}

// Rows returns the row count.
func (e *Entries) Rows() int { return e.r }

// Cols returns the column count.
func (e *Entries) Cols() int { return e.c }

// NumCells returns the number of in-field cells.
func (e *Entries) NumCells() int { return e.numCells }

// NumValues returns the number of in-field cells holding a letter.
func (e *Entries) NumValues() int { return e.numValues }

// IsComplete reports whether every in-field cell holds a letter.
func (e *Entries) IsComplete() bool { return e.numValues == e.numCells }

// IsEmpty reports whether no cell holds a letter.
func (e *Entries) IsEmpty() bool { return e.numValues == 0 }

// IsLetter reports whether v is a stored letter (neither NoValue nor Undefined).
func IsLetter(v rune) bool { return v > 0 }

func (e *Entries) indexOf(row, col int) (int, error) {
	if row < 0 || row >= e.r || col < 0 || col >= e.c {
		return 0, ErrOutOfRange
	}

	return row*e.c + col, nil
}

// own detaches a shared buffer before the first write.
func (e *Entries) own() {
	if !e.shared {
		return
	}
	cp := make([]rune, len(e.data))
	copy(cp, e.data)
	e.data = cp
	e.shared = false
}

// InitValue moves (row,col) from NoValue to Undefined. Calling it again on
// the same cell is a no-op; numCells grows only on the first call.
// Complexity: O(1).
func (e *Entries) InitValue(row, col int) error {
	off, err := e.indexOf(row, col)
	if err != nil {
		return entriesErrorf(ctxInit, row, col, err)
	}
	if e.data[off] != NoValue {
		return nil
	}
	e.own()
	e.data[off] = Undefined
	e.numCells++

	return nil
}

// Value returns the content of (row,col): NoValue, Undefined or a letter.
// Complexity: O(1).
func (e *Entries) Value(row, col int) (rune, error) {
	off, err := e.indexOf(row, col)
	if err != nil {
		return NoValue, entriesErrorf(ctxValue, row, col, err)
	}

	return e.data[off], nil
}

// SetValue stores v (a letter or Undefined) at an in-field cell and updates
// numValues from the old/new letter state.
//
// Errors:
//   - ErrOutOfRange for bad coordinates.
//   - ErrNoValueCell when the cell lies outside every field.
//   - ErrIllegalValue when v is NoValue, whitespace or not graphic.
//
// Complexity: O(1) (O(r*c) on the first write after Clone).
func (e *Entries) SetValue(row, col int, v rune) error {
	off, err := e.indexOf(row, col)
	if err != nil {
		return entriesErrorf(ctxSet, row, col, err)
	}
	old := e.data[off]
	if old == NoValue {
		return entriesErrorf(ctxSet, row, col, ErrNoValueCell)
	}
	if v != Undefined && (v <= 0 || unicode.IsSpace(v) || !unicode.IsGraphic(v)) {
		return entriesErrorf(ctxSet, row, col, ErrIllegalValue)
	}
	if old == v {
		return nil
	}
	e.own()
	e.data[off] = v
	switch {
	case IsLetter(old) && !IsLetter(v):
		e.numValues--
	case !IsLetter(old) && IsLetter(v):
		e.numValues++
	}

	return nil
}

// Clear resets every in-field cell to Undefined. NoValue cells are untouched.
// Complexity: O(r*c).
func (e *Entries) Clear() {
	if e.numValues == 0 {
		return
	}
	e.own()
	for i, v := range e.data {
		if IsLetter(v) {
			e.data[i] = Undefined
		}
	}
	e.numValues = 0
}

// ClearMasked resets to Undefined every letter whose mask cell is true, and
// returns how many letters were removed. Typical use is
// e.ClearMasked(e.Compare(solution)) to drop incorrect entries.
func (e *Entries) ClearMasked(mask [][]bool) (int, error) {
	if len(mask) != e.r {
		return 0, ErrShapeMismatch
	}
	cleared := 0
	for row := 0; row < e.r; row++ {
		if len(mask[row]) != e.c {
			return cleared, ErrShapeMismatch
		}
		for col := 0; col < e.c; col++ {
			off := row*e.c + col
			if !mask[row][col] || !IsLetter(e.data[off]) {
				continue
			}
			e.own()
			e.data[off] = Undefined
			e.numValues--
			cleared++
		}
	}

	return cleared, nil
}

// Compare returns a [row][col] mask flagging in-field cells whose content
// differs from other. NoValue cells are never flagged. Both buffers must
// share shape and field layout.
// Complexity: O(r*c).
func (e *Entries) Compare(other *Entries) ([][]bool, error) {
	if err := e.sameLayout(other); err != nil {
		return nil, err
	}
	mask := make([][]bool, e.r)
	for row := 0; row < e.r; row++ {
		mask[row] = make([]bool, e.c)
		for col := 0; col < e.c; col++ {
			off := row*e.c + col
			v := e.data[off]
			mask[row][col] = v != NoValue && v != other.data[off]
		}
	}

	return mask, nil
}

// sameLayout checks shape and that NoValue cells coincide.
func (e *Entries) sameLayout(other *Entries) error {
	if other == nil || e.r != other.r || e.c != other.c || e.numCells != other.numCells {
		return ErrShapeMismatch
	}
	for i, v := range e.data {
		if (v == NoValue) != (other.data[i] == NoValue) {
			return ErrShapeMismatch
		}
	}

	return nil
}

// SameLayout reports whether other has this buffer's shape and in-field cells.
func (e *Entries) SameLayout(other *Entries) bool {
	return e.sameLayout(other) == nil
}

// Equal reports whether both buffers hold the same shape and content.
func (e *Entries) Equal(other *Entries) bool {
	if other == nil || e.r != other.r || e.c != other.c || e.numValues != other.numValues {
		return false
	}
	for i, v := range e.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// Clone returns an independent view of e in O(1). The buffer is copied by
// whichever side writes first.
func (e *Entries) Clone() *Entries {
	e.shared = true
	cp := *e

	return &cp
}

// String renders one line per row: '#' for NoValue, '.' for Undefined.
func (e *Entries) String() string {
	var sb strings.Builder
	for row := 0; row < e.r; row++ {
		for col := 0; col < e.c; col++ {
			switch v := e.data[row*e.c+col]; v {
			case NoValue:
				sb.WriteByte('#')
			case Undefined:
				sb.WriteByte('.')
			default:
				sb.WriteRune(v)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
