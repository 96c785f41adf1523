// SPDX-License-Identifier: MIT

// Package grid is the structural model of a rectangular crossword: its
// separator layout (blocks or bars), enforced symmetry, derived fields and
// the entry store behind them.
//
// What:
//
//   - Layout holds block/bar markers per cell and its compact text form.
//   - Fields are derived from the layout (maximal runs of ≥2 answer cells,
//     numbered in row-major order) and registered on a Topology.
//   - Topology answers field queries (Field, FindFields, UncrossedFields) and
//     loads entries in canonical order: all Across fields by ascending
//     number, then all Down fields by ascending number.
//   - Grid ties a Layout, a symmetry.Symmetry and a Topology together. It is
//     replaced wholesale on structural edits (ToggleBlock, ToggleBar); only
//     its entries mutate in place.
//
// Errors:
//
//   - Structural: ErrBadDimensions, ErrIncompatibleSymmetry,
//     ErrAsymmetricLayout, ErrBadDefinition, ErrWrongSeparator.
//   - Entry validation (as *FieldError): ErrIncorrectLength,
//     ErrIllegalCharacter, ErrConflictingEntry; plus ErrIncorrectCount.
//
// A Grid is owned by one caller at a time; there is no internal locking.
package grid
