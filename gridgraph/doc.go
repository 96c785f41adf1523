// Package gridgraph treats a crossword layout as a graph of answer cells,
// enabling connectivity analysis.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are answer cells; the rest (blocks,
//     cells outside every field) are separators.
//   - Neighbors are orthogonal (N/E/S/W); an optional Passable hook removes
//     individual adjacencies, which is how bar grids cut connectivity.
//   - Identifies connected components ("islands") of answer cells.
//
// Why:
//
//   - A well-formed crossword has exactly one island; more than one means a
//     region of the grid is unreachable from the rest.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
