// SPDX-License-Identifier: MIT

package entries

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates non-positive rows or columns.
	ErrInvalidDimensions = errors.New("entries: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column outside the buffer.
	ErrOutOfRange = errors.New("entries: index out of range")

	// ErrNoValueCell indicates a write to a cell outside every field.
	ErrNoValueCell = errors.New("entries: cell holds no value")

	// ErrIllegalValue indicates a rune that cannot be stored as a letter.
	ErrIllegalValue = errors.New("entries: illegal value")

	// ErrShapeMismatch indicates two buffers of different shape or field layout.
	ErrShapeMismatch = errors.New("entries: shape mismatch")
)

const (
	ctxInit  = "InitValue"
	ctxValue = "Value"
	ctxSet   = "SetValue"
)

// entriesErrorf attaches method context and coordinates to a sentinel.
func entriesErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Entries.%s(%d,%d): %w", method, row, col, err)
}
