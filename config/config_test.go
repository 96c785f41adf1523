// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crossgrid/config"
	"github.com/katalvlaran/crossgrid/grid"
	"github.com/katalvlaran/crossgrid/scan"
	"github.com/katalvlaran/crossgrid/symmetry"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, scan.DefaultParams(), cfg.ScanParams())
	assert.Equal(t, '.', cfg.Entry.UndefinedMark)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(""), "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseOverlays(t *testing.T) {
	src := `
entry {
  allowed_characters = upper("abcdefghijklmnopqrstuvwxyz")
  undefined_mark     = "?"
}
scan {
  brightness_threshold = default.scan.brightness_threshold * 0.8
  endpoint_tolerance   = max(default.scan.endpoint_tolerance, 5)
}
remote {
  timeout   = "5s"
  max_bytes = 2048
}
log {
  level  = "debug"
  format = "json"
}
`
	cfg, err := config.Parse([]byte(src), "full.hcl")
	require.NoError(t, err)

	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", cfg.Entry.AllowedCharacters)
	assert.Equal(t, '?', cfg.Entry.UndefinedMark)
	assert.InDelta(t, 0.4, cfg.Scan.BrightnessThreshold, 1e-9)
	assert.Equal(t, 5, cfg.Scan.EndpointTolerance)
	assert.Equal(t, 20, cfg.Scan.MinLineLength, "unset attributes keep defaults")
	assert.Equal(t, 5*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, int64(2048), cfg.Remote.MaxBytes)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, config.FormatJSON, cfg.Log.Format)

	f := cfg.Fetcher()
	assert.Equal(t, int64(2048), f.MaxBytes)
	assert.Equal(t, 5*time.Second, f.Client.Timeout)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("XWGRID_TEST_LEVEL", "WARN")
	cfg, err := config.Parse([]byte(`log { level = lower(env.XWGRID_TEST_LEVEL) }`), "env.hcl")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.Log.Level)
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"MarkIsLetter":  `entry { undefined_mark = "x" }`,
		"MarkTooLong":   `entry { undefined_mark = ".." }`,
		"MarkAllowed":   "entry {\n  allowed_characters = \"AB?\"\n  undefined_mark = \"?\"\n}",
		"Threshold":     `scan { brightness_threshold = 2 }`,
		"Timeout":       `remote { timeout = "soon" }`,
		"NegativeBytes": `remote { max_bytes = -1 }`,
		"LogLevel":      `log { level = "loud" }`,
		"LogFormat":     `log { format = "xml" }`,
		"Separation":    `scan { min_line_separation = 1 }`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(src), name+".hcl")
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParseSyntaxAndSchemaErrors(t *testing.T) {
	_, err := config.Parse([]byte(`scan {`), "broken.hcl")
	assert.Error(t, err)
	_, err = config.Parse([]byte(`colour = "red"`), "unknown.hcl")
	assert.Error(t, err)
	_, err = config.Parse([]byte(`scan { min_line_length = "long" }`), "type.hcl")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xwgrid.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`scan { min_line_length = 12 }`), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Scan.MinLineLength)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestGridOptionsApply(t *testing.T) {
	cfg, err := config.Parse([]byte(`entry {
  allowed_characters = "AB"
  undefined_mark     = "-"
}`), "entry.hcl")
	require.NoError(t, err)

	g, err := grid.New(grid.Block, 2, 2, symmetry.None, cfg.GridOptions()...)
	require.NoError(t, err)
	assert.Equal(t, []string{"--", "--", "--", "--"}, g.EntryTexts())
	assert.ErrorIs(t, g.SetEntries([]string{"AC", "--", "--", "--"}), grid.ErrIllegalCharacter)
}

func TestLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Format = config.FormatJSON
	var buf bytes.Buffer
	cfg.Logger(&buf).Info("Scanned.", "columns", 15)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "Scanned.", rec["msg"])
	assert.EqualValues(t, 15, rec["columns"])

	buf.Reset()
	cfg.Logger(&buf).Debug("hidden")
	assert.Zero(t, buf.Len())
}
