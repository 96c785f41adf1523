// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// hclFile is the decoding schema. Pointers mark optional values.
type hclFile struct {
	Entry  *hclEntry  `hcl:"entry,block"`
	Scan   *hclScan   `hcl:"scan,block"`
	Remote *hclRemote `hcl:"remote,block"`
	Log    *hclLog    `hcl:"log,block"`
}

type hclEntry struct {
	AllowedCharacters *string `hcl:"allowed_characters,optional"`
	UndefinedMark     *string `hcl:"undefined_mark,optional"`
}

type hclScan struct {
	BrightnessThreshold *float64 `hcl:"brightness_threshold,optional"`
	MinLineLength       *int     `hcl:"min_line_length,optional"`
	MinLineSeparation   *int     `hcl:"min_line_separation,optional"`
	EndpointTolerance   *int     `hcl:"endpoint_tolerance,optional"`
}

type hclRemote struct {
	Timeout  *string `hcl:"timeout,optional"`
	MaxBytes *int64  `hcl:"max_bytes,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load reads and validates the HCL file at path.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse reads and validates HCL source; filename is used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, name string) (*Config, error) {
	cfg := Default()
	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(cfg), &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", name, diags)
	}
	if err := raw.apply(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// evalContext exposes the defaults, the environment and a few functions
// to expressions.
func evalContext(def *Config) *hcl.EvalContext {
	env := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default": def.ctyValue(),
			"env":     cty.ObjectVal(env),
		},
		Functions: map[string]function.Function{
			"upper":  stdlib.UpperFunc,
			"lower":  stdlib.LowerFunc,
			"min":    stdlib.MinFunc,
			"max":    stdlib.MaxFunc,
			"format": stdlib.FormatFunc,
		},
	}
}

// ctyValue renders c with the attribute names of the HCL schema.
func (c *Config) ctyValue() cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"entry": cty.ObjectVal(map[string]cty.Value{
			"allowed_characters": cty.StringVal(c.Entry.AllowedCharacters),
			"undefined_mark":     cty.StringVal(string(c.Entry.UndefinedMark)),
		}),
		"scan": cty.ObjectVal(map[string]cty.Value{
			"brightness_threshold": cty.NumberFloatVal(c.Scan.BrightnessThreshold),
			"min_line_length":      cty.NumberIntVal(int64(c.Scan.MinLineLength)),
			"min_line_separation":  cty.NumberIntVal(int64(c.Scan.MinLineSeparation)),
			"endpoint_tolerance":   cty.NumberIntVal(int64(c.Scan.EndpointTolerance)),
		}),
		"remote": cty.ObjectVal(map[string]cty.Value{
			"timeout":   cty.StringVal(c.Remote.Timeout.String()),
			"max_bytes": cty.NumberIntVal(c.Remote.MaxBytes),
		}),
		"log": cty.ObjectVal(map[string]cty.Value{
			"level":  cty.StringVal(strings.ToLower(c.Log.Level.String())),
			"format": cty.StringVal(c.Log.Format),
		}),
	})
}

// apply overlays the values present in f onto cfg.
func (f *hclFile) apply(cfg *Config) error {
	if e := f.Entry; e != nil {
		if e.AllowedCharacters != nil {
			cfg.Entry.AllowedCharacters = *e.AllowedCharacters
		}
		if e.UndefinedMark != nil {
			r, err := singleRune("entry.undefined_mark", *e.UndefinedMark)
			if err != nil {
				return err
			}
			cfg.Entry.UndefinedMark = r
		}
	}
	if s := f.Scan; s != nil {
		setIf(&cfg.Scan.BrightnessThreshold, s.BrightnessThreshold)
		setIf(&cfg.Scan.MinLineLength, s.MinLineLength)
		setIf(&cfg.Scan.MinLineSeparation, s.MinLineSeparation)
		setIf(&cfg.Scan.EndpointTolerance, s.EndpointTolerance)
	}
	if r := f.Remote; r != nil {
		if r.Timeout != nil {
			d, err := time.ParseDuration(*r.Timeout)
			if err != nil {
				return fmt.Errorf("%w: remote.timeout: %v", ErrInvalid, err)
			}
			cfg.Remote.Timeout = d
		}
		setIf(&cfg.Remote.MaxBytes, r.MaxBytes)
	}
	if l := f.Log; l != nil {
		if l.Level != nil {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(*l.Level)); err != nil {
				return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
			}
			cfg.Log.Level = lvl
		}
		setIf(&cfg.Log.Format, l.Format)
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
