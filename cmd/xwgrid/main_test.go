// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crossgrid/grid"
	"github.com/katalvlaran/crossgrid/internal/cli"
	"github.com/katalvlaran/crossgrid/puzzle"
	"github.com/katalvlaran/crossgrid/symmetry"
	"github.com/katalvlaran/crossgrid/xmldoc"
)

const definition = `
#....
.#.#.
.....
.#.#.
....#`

var answers = []string{"ABCD", "HIJKL", "PQRS", "BFJNR", "DGLO", "EHMP"}

func writePNG(t *testing.T) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 200, 200))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for k := 0; k <= 5; k++ {
		p := 20 + 30*k
		for q := 20; q <= 170; q++ {
			img.SetGray(q, p, color.Gray{})
			img.SetGray(p, q, color.Gray{})
		}
	}
	path := filepath.Join(t.TempDir(), "grid.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func writePuzzle(t *testing.T, fill bool, passphrase string) string {
	t.Helper()
	g, err := grid.FromDefinition(grid.Block, 5, 5, symmetry.HalfTurnRotation, definition)
	require.NoError(t, err)
	doc, err := puzzle.New(g)
	require.NoError(t, err)
	require.NoError(t, doc.SetSolution(answers))
	if fill {
		require.NoError(t, g.SetEntries(answers))
	}
	p, err := doc.Export(passphrase)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, xmldoc.Write(&buf, p))
	path := filepath.Join(t.TempDir(), "puzzle.xml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestRunScan(t *testing.T) {
	path := writePNG(t)
	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{"scan", path})
	require.NoError(t, err)
	assert.Equal(t, "columns=5 rows=5 bounds=(20,20)-(171,171)\n", out.String())
}

func TestRunScanNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"scan", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}

func TestRunCheck(t *testing.T) {
	testCases := []struct {
		name string
		fill bool
		seal string
		args []string
		want []string
	}{
		{
			name: "solved plain",
			fill: true,
			want: []string{
				"grid: 5x5 block symmetry=rotate-half-turn fields=6",
				"filled: 19/19 complete=true",
				"solution: solved",
			},
		},
		{
			name: "empty plain",
			want: []string{"filled: 0/19 complete=false", "solution: not solved, 0 incorrect letters"},
		},
		{
			name: "sealed without passphrase",
			fill: true,
			seal: "secret",
			want: []string{"solution: locked"},
		},
		{
			name: "sealed with passphrase",
			fill: true,
			seal: "secret",
			args: []string{"-passphrase", "secret"},
			want: []string{"solution: solved"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writePuzzle(t, tc.fill, tc.seal)
			args := append([]string{"check"}, tc.args...)
			args = append(args, path)
			var out bytes.Buffer
			require.NoError(t, run(context.Background(), &out, &bytes.Buffer{}, args))
			for _, w := range tc.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestRunCheckWrongPassphrase(t *testing.T) {
	path := writePuzzle(t, true, "secret")
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"check", "-passphrase", "guess", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solution:")
}

func TestRunUsageErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown command", args: []string{"frobnicate", "x"}},
		{name: "missing file", args: []string{"scan"}},
		{name: "bad log level", args: []string{"scan", "-log-level", "loud", "x.png"}},
		{name: "bad log format", args: []string{"check", "-log-format", "xml", "x.xml"}},
		{name: "missing config", args: []string{"check", "-config", "/nonexistent.hcl", "x.xml"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, tc.args)
			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr), "got %v", err)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestRunHelp(t *testing.T) {
	var errOut bytes.Buffer
	require.NoError(t, run(context.Background(), &bytes.Buffer{}, &errOut, []string{"-h"}))
	assert.Contains(t, errOut.String(), "Usage:")
}
