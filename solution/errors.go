// SPDX-License-Identifier: MIT

package solution

import "errors"

var (
	// ErrIncorrectPassphrase indicates a MAC mismatch: wrong passphrase or corrupted data.
	ErrIncorrectPassphrase = errors.New("solution: incorrect passphrase")

	// ErrSolutionLengthMismatch indicates a plaintext that does not fit the field lengths.
	ErrSolutionLengthMismatch = errors.New("solution: length mismatch")

	// ErrIncompleteSolution indicates an answer key with undefined cells.
	ErrIncompleteSolution = errors.New("solution: incomplete solution")

	// ErrUnknownEncryption indicates an encryption key other than none or salsa20.
	ErrUnknownEncryption = errors.New("solution: unknown encryption")

	// ErrBadNonce indicates a nonce of the wrong size for the encryption mode.
	ErrBadNonce = errors.New("solution: bad nonce")
)
