// Package crossgrid is a crossword grid engine: layouts, answer fields,
// letter entries, sealed answer keys and grid detection in scanned images.
//
// The work is split across subpackages:
//
//	symmetry/  the six grid symmetries, orbit expansion and detection
//	entries/   the per-cell letter buffer (copy-on-write)
//	grid/      block and bar layouts, field derivation, entry writing
//	gridgraph/ island analysis over answer cells
//	solution/  answer key codec (plain or Salsa20 + HMAC-SHA256)
//	remote/    fetching answer keys stored by reference
//	xmldoc/    the puzzle XML document format
//	puzzle/    a grid paired with its answer key
//	scan/      locating a ruled grid in a bitmap
//	progress/  cancellation checkpoints and progress sinks
//	config/    HCL configuration
//
// Quick example:
//
//	g, _ := grid.FromDefinition(grid.Block, 3, 3, symmetry.None, "...\n.#.\n...")
//	_ = g.SetEntries([]string{"CAT", "TOE", "COT", "TIE"})
//	fmt.Println(g.IsComplete()) // true
//
// The xwgrid command in cmd/xwgrid wraps scanning and puzzle checks.
package crossgrid
