// SPDX-License-Identifier: MIT

package xmldoc

import "errors"

var (
	// ErrMalformed indicates bad hex, base64 or a missing required attribute.
	ErrMalformed = errors.New("xmldoc: malformed element")

	// ErrUnsupportedKind indicates a grid kind other than rectangular-orthogonal.
	ErrUnsupportedKind = errors.New("xmldoc: unsupported grid kind")

	// ErrNoGrid indicates a puzzle document without a grid element.
	ErrNoGrid = errors.New("xmldoc: missing grid")
)
