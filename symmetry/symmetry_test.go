// SPDX-License-Identifier: MIT

package symmetry_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crossgrid/symmetry"
)

// pattern wraps a [row][col] matrix as a cell predicate.
func pattern(p [][]bool) func(col, row int) bool {
	return func(col, row int) bool { return p[row][col] }
}

// parsePattern reads '#' as true, anything else as false.
func parsePattern(lines ...string) [][]bool {
	out := make([][]bool, len(lines))
	for r, line := range lines {
		out[r] = make([]bool, len(line))
		for c, ch := range line {
			out[r][c] = ch == '#'
		}
	}
	return out
}

func TestPrincipalDimensions(t *testing.T) {
	cases := []struct {
		sym        symmetry.Symmetry
		cols, rows int
		w, h       int
	}{
		{symmetry.None, 5, 7, 5, 7},
		{symmetry.HalfTurnRotation, 5, 5, 5, 3},
		{symmetry.HalfTurnRotation, 6, 4, 6, 2},
		{symmetry.QuarterTurnRotation, 5, 5, 3, 3},
		{symmetry.QuarterTurnRotation, 4, 4, 2, 2},
		{symmetry.ReflectVerticalAxis, 5, 4, 3, 4},
		{symmetry.ReflectHorizontalAxis, 5, 4, 5, 2},
		{symmetry.ReflectBothAxes, 7, 5, 4, 3},
	}
	for _, tc := range cases {
		t.Run(tc.sym.Key(), func(t *testing.T) {
			w, h := tc.sym.PrincipalDimensions(tc.cols, tc.rows)
			assert.Equal(t, tc.w, w, "width")
			assert.Equal(t, tc.h, h, "height")
		})
	}
}

func TestSupportsDimensions(t *testing.T) {
	for _, s := range symmetry.All() {
		assert.True(t, s.SupportsDimensions(9, 9), "%s on square", s)
	}
	assert.False(t, symmetry.QuarterTurnRotation.SupportsDimensions(9, 8))
	assert.True(t, symmetry.HalfTurnRotation.SupportsDimensions(9, 8))
	assert.False(t, symmetry.Symmetry(42).SupportsDimensions(3, 3))
}

func TestParseKeyRoundTrip(t *testing.T) {
	for _, s := range symmetry.All() {
		got, err := symmetry.Parse(s.Key())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := symmetry.Parse("diagonal")
	require.ErrorIs(t, err, symmetry.ErrUnknownSymmetry)
}

func TestTransformApply(t *testing.T) {
	// 4×3 grid, cell (1,0).
	c, r := symmetry.Rotate180.Apply(1, 0, 4, 3)
	assert.Equal(t, [2]int{2, 2}, [2]int{c, r})
	c, r = symmetry.MirrorLeftRight.Apply(1, 0, 4, 3)
	assert.Equal(t, [2]int{2, 0}, [2]int{c, r})
	c, r = symmetry.MirrorTopBottom.Apply(1, 0, 4, 3)
	assert.Equal(t, [2]int{1, 2}, [2]int{c, r})

	// Quarter turns on 3×3 compose to the identity.
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c, r := col, row
			for i := 0; i < 4; i++ {
				c, r = symmetry.Rotate90.Apply(c, r, 3, 3)
			}
			assert.Equal(t, [2]int{col, row}, [2]int{c, r})
			c1, r1 := symmetry.Rotate90.Apply(col, row, 3, 3)
			c3, r3 := symmetry.Rotate270.Apply(c1, r1, 3, 3)
			assert.Equal(t, [2]int{col, row}, [2]int{c3, r3})
		}
	}
}

func TestImages(t *testing.T) {
	imgs := symmetry.QuarterTurnRotation.Images(0, 0, 5, 5)
	assert.ElementsMatch(t, []symmetry.Cell{{Col: 0, Row: 0}, {Col: 4, Row: 0}, {Col: 4, Row: 4}, {Col: 0, Row: 4}}, imgs)

	// The centre of an odd grid is its own orbit.
	assert.Len(t, symmetry.ReflectBothAxes.Images(2, 2, 5, 5), 1)
	assert.Len(t, symmetry.None.Images(1, 3, 5, 5), 1)
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		grid [][]bool
		want symmetry.Symmetry
	}{
		{"HalfTurnSquare", parsePattern(
			"#...",
			"...#",
			"#...",
			"...#",
		), symmetry.HalfTurnRotation},
		{"Asymmetric", parsePattern(
			"#..",
			"...",
			"#.#",
		), symmetry.None},
		{"HalfTurnOdd", parsePattern(
			"#....",
			"....#",
			".....",
			"#....",
			"....#",
		), symmetry.HalfTurnRotation},
		{"Pinwheel", parsePattern(
			".#...",
			"....#",
			".....",
			"#....",
			"...#.",
		), symmetry.QuarterTurnRotation},
		{"Both", parsePattern(
			"#...#",
			".....",
			"#...#",
		), symmetry.ReflectBothAxes},
		{"Vertical", parsePattern(
			"#..#",
			".##.",
			"....",
		), symmetry.ReflectVerticalAxis},
		{"Horizontal", parsePattern(
			"#...",
			".#..",
			"#...",
		), symmetry.ReflectHorizontalAxis},
		{"Empty", parsePattern(
			"....",
			"....",
			"....",
		), symmetry.ReflectBothAxes},
		{"EmptySquare", parsePattern(
			"...",
			"...",
			"...",
		), symmetry.QuarterTurnRotation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cols, rows := len(tc.grid[0]), len(tc.grid)
			got := symmetry.Detect(pattern(tc.grid), cols, rows)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestExpandReconstructs checks that for every symmetry and supported shape,
// expanding a random principal region yields a pattern the symmetry holds on,
// and that cutting that pattern's principal region and expanding again gives
// the identical pattern.
func TestExpandReconstructs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, s := range symmetry.All() {
		for cols := 2; cols <= 8; cols++ {
			for rows := 2; rows <= 8; rows++ {
				if !s.SupportsDimensions(cols, rows) {
					_, err := s.Expand(func(int, int) bool { return false }, cols, rows)
					require.ErrorIs(t, err, symmetry.ErrUnsupportedDimensions)
					continue
				}
				w, h := s.PrincipalDimensions(cols, rows)
				principal := make([][]bool, h)
				for r := range principal {
					principal[r] = make([]bool, w)
					for c := range principal[r] {
						principal[r][c] = rng.Intn(3) == 0
					}
				}
				full, err := s.Expand(pattern(principal), cols, rows)
				require.NoError(t, err)
				require.Len(t, full, rows)
				require.Len(t, full[0], cols)
				require.True(t, s.Holds(pattern(full), cols, rows), "%s %dx%d", s, cols, rows)

				again, err := s.Expand(pattern(full), cols, rows)
				require.NoError(t, err)
				require.Equal(t, full, again, "%s %dx%d", s, cols, rows)
			}
		}
	}
}

func TestHoldsRejectsUnsupported(t *testing.T) {
	empty := func(int, int) bool { return false }
	assert.False(t, symmetry.QuarterTurnRotation.Holds(empty, 4, 5))
	assert.True(t, symmetry.None.Holds(empty, 4, 5))
}
