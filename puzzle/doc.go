// SPDX-License-Identifier: MIT

// Package puzzle pairs a grid with its optional answer key and offers the
// checks a solver needs: which cells are wrong, is the grid solved.
//
// Every operation that installs a solution (SetSolution, DecodeSolution,
// ResolveRemoteSolution, LoadSolution) either succeeds completely or
// leaves the previous solution in place; cancellation included.
package puzzle
