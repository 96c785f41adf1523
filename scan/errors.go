// SPDX-License-Identifier: MIT

package scan

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewLines indicates fewer than three candidate lines in one orientation.
	ErrTooFewLines = errors.New("scan: too few lines")

	// ErrTooFewCoincidentLines indicates no self-consistent set of three rules per orientation.
	ErrTooFewCoincidentLines = errors.New("scan: too few coincident lines")

	// ErrInvalidParams indicates out-of-range scanner parameters.
	ErrInvalidParams = errors.New("scan: invalid parameters")
)

// Orientation tells horizontal from vertical lines.
type Orientation uint8

const (
	// Horizontal lines run along a row.
	Horizontal Orientation = iota
	// Vertical lines run along a column.
	Vertical
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// TooFewLinesError reports the orientation that lacked candidates.
type TooFewLinesError struct {
	Orientation Orientation
	Count       int
}

// Error implements error.
func (e *TooFewLinesError) Error() string {
	return fmt.Sprintf("%v: %d %s candidates, need 3", ErrTooFewLines, e.Count, e.Orientation)
}

// Unwrap exposes ErrTooFewLines to errors.Is.
func (e *TooFewLinesError) Unwrap() error { return ErrTooFewLines }
