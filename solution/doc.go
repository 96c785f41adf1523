// SPDX-License-Identifier: MIT

// Package solution encodes and verifies a crossword's answer key.
//
// What:
//
//   - The plaintext is every field's answer concatenated in canonical field
//     order (see grid.Topology.Fields).
//   - A passphrase is expanded to a 256-bit key with SHA-256 (no salt, no
//     work factor; kept for compatibility with existing documents).
//   - Salsa20 keystream block 0 under (key, nonce) yields the 32-byte MAC
//     key; blocks 1 onward encrypt the plaintext.
//   - The MAC is HMAC-SHA256(macKey, plaintext), taken before encryption.
//     It detects tampering and verifies the passphrase with one check.
//   - An empty passphrase selects plain mode: empty MAC key, ciphertext
//     equals plaintext.
//
// Errors:
//
//   - ErrIncorrectPassphrase covers both a wrong passphrase and corrupted
//     data; it never says which.
//   - ErrSolutionLengthMismatch when the verified plaintext does not split
//     into the requested field lengths.
//   - A declined passphrase prompt yields progress.ErrCancelled.
//
// Nonces come from crypto/rand unless WithNonceSource overrides it.
package solution
