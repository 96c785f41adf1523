// SPDX-License-Identifier: MIT

// Package symmetry models the geometric symmetries a crossword grid may be
// constrained to, and their consequences for block or bar placement.
//
// What:
//
//   - Symmetry is a closed enum: None, HalfTurnRotation, QuarterTurnRotation,
//     ReflectVerticalAxis, ReflectHorizontalAxis, ReflectBothAxes.
//   - Each symmetry is a small group of Transforms (rotations, mirrors) acting
//     on cell coordinates; behavior dispatches on the tag, there is no
//     per-variant type.
//   - PrincipalDimensions gives the smallest region whose pattern determines
//     the whole grid; Expand rebuilds the full pattern from it.
//   - Detect classifies an existing pattern, preferring the most constrained
//     symmetry that holds.
//
// Why:
//
//   - Editors mirror every block/bar toggle to its symmetric partners.
//   - Loaders verify that a stored layout honours its declared symmetry.
//
// Complexity:
//
//   - PrincipalDimensions, SupportsDimensions, Transform.Apply: O(1).
//   - Detect, Expand: O(W×H×t), t ≤ 3 transforms per symmetry.
//
// Errors:
//
//   - ErrUnknownSymmetry: Parse was given an unrecognized key.
//   - ErrUnsupportedDimensions: the symmetry cannot apply to the grid shape.
package symmetry
