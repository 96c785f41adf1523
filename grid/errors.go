// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimensions indicates columns or rows outside [MinDimension, MaxDimension].
	ErrBadDimensions = errors.New("grid: dimensions out of range")

	// ErrIncompatibleSymmetry indicates a symmetry that cannot apply to the grid shape.
	ErrIncompatibleSymmetry = errors.New("grid: symmetry incompatible with dimensions")

	// ErrAsymmetricLayout indicates a layout that breaks the grid's declared symmetry.
	ErrAsymmetricLayout = errors.New("grid: layout does not honour symmetry")

	// ErrBadDefinition indicates a malformed grid-definition text.
	ErrBadDefinition = errors.New("grid: malformed grid definition")

	// ErrUnknownSeparator indicates a separator key other than block or bar.
	ErrUnknownSeparator = errors.New("grid: unknown separator")

	// ErrWrongSeparator indicates an edit that does not apply to the grid's separator.
	ErrWrongSeparator = errors.New("grid: operation not supported by separator")

	// ErrOutOfRange indicates a cell outside the grid.
	ErrOutOfRange = errors.New("grid: cell out of range")

	// ErrBadField indicates a field that is empty, misdirected or leaves the grid.
	ErrBadField = errors.New("grid: invalid field")

	// ErrDuplicateField indicates a second field registered under the same id.
	ErrDuplicateField = errors.New("grid: duplicate field id")

	// ErrFieldNotFound indicates a field id absent from the topology.
	ErrFieldNotFound = errors.New("grid: field not found")

	// ErrBadFieldID indicates an unparsable field id.
	ErrBadFieldID = errors.New("grid: malformed field id")

	// ErrIncorrectCount indicates a bulk load whose text count differs from the field count.
	ErrIncorrectCount = errors.New("grid: incorrect entry count")

	// ErrIncorrectLength indicates an entry whose length differs from its field.
	ErrIncorrectLength = errors.New("grid: incorrect entry length")

	// ErrIllegalCharacter indicates a character outside the allowed entry set.
	ErrIllegalCharacter = errors.New("grid: illegal character")

	// ErrConflictingEntry indicates two intersecting fields disagreeing on a cell.
	ErrConflictingEntry = errors.New("grid: conflicting entry")
)

// FieldError reports an entry validation failure with its substitution
// values. Code is one of ErrIncorrectLength, ErrIllegalCharacter or
// ErrConflictingEntry and is what errors.Is matches.
type FieldError struct {
	Code error
	// ID is the field being written.
	ID FieldID
	// Index is the zero-based position within the field (not set for length errors).
	Index int
	// Char is the offending character (not set for length errors).
	Char rune
	// Crossing is the intersecting field for conflicts, if one was found.
	Crossing FieldID
	// Want and Got are the expected and actual lengths for length errors.
	Want, Got int
}

// Error implements error.
func (e *FieldError) Error() string {
	switch e.Code {
	case ErrIncorrectLength:
		return fmt.Sprintf("%v: %s wants %d letters, got %d", e.Code, e.ID, e.Want, e.Got)
	case ErrIllegalCharacter:
		return fmt.Sprintf("%v: %q in %s at index %d", e.Code, e.Char, e.ID, e.Index)
	case ErrConflictingEntry:
		if e.Crossing.Number > 0 {
			return fmt.Sprintf("%v: %s index %d (%q) disagrees with %s", e.Code, e.ID, e.Index, e.Char, e.Crossing)
		}
		return fmt.Sprintf("%v: %s index %d (%q)", e.Code, e.ID, e.Index, e.Char)
	}
	return fmt.Sprintf("%v: %s", e.Code, e.ID)
}

// Unwrap exposes Code to errors.Is.
func (e *FieldError) Unwrap() error { return e.Code }
