// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads mooplot style files.
//
// A style file is YAML. Settings are applied in order: built-in
// defaults, the file, then MOOPLOT_* environment variables. Command
// line flags are applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aclements/mooplot"
	"github.com/aclements/mooplot/style"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output OutputConfig   `yaml:"output"`
	PF     PFConfig       `yaml:"pf"`
	EAF    EAFConfig      `yaml:"eaf"`
	Layout map[string]any `yaml:"layout"`
}

// OutputConfig is the size of rendered figures in pixels. 0 fills the
// page in HTML output and picks a default size for SVG.
type OutputConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PFConfig struct {
	Type              string    `yaml:"type"`
	NoFilter          bool      `yaml:"no_filter"`
	Maximise          []bool    `yaml:"maximise"`
	Colorway          style.Arg `yaml:"colorway"`
	FillBorderColours style.Arg `yaml:"fill_border_colours"`
}

type EAFConfig struct {
	Type              style.Arg `yaml:"type"`
	Percentiles       style.Arg `yaml:"percentiles"`
	Colorway          style.Arg `yaml:"colorway"`
	FillBorderColours style.Arg `yaml:"fill_border_colours"`
	LineDashes        style.Arg `yaml:"line_dashes"`
	LineWidth         style.Arg `yaml:"line_width"`
	TraceNames        []string  `yaml:"trace_names"`
	Legend            any       `yaml:"legend"`
	Template          string    `yaml:"template"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		PF: PFConfig{
			Type: "points",
		},
		EAF: EAFConfig{
			Type:     style.Of("fill"),
			Template: mooplot.DefaultTemplate,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MOOPLOT_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Output.Width = n
		}
	}
	if v := os.Getenv("MOOPLOT_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Output.Height = n
		}
	}
	if v := os.Getenv("MOOPLOT_TYPE"); v != "" {
		cfg.PF.Type = v
	}
	if v := os.Getenv("MOOPLOT_EAF_TYPE"); v != "" {
		cfg.EAF.Type = style.Of(v)
	}
	if v := os.Getenv("MOOPLOT_TEMPLATE"); v != "" {
		cfg.EAF.Template = v
	}
	if v := os.Getenv("MOOPLOT_LEGEND"); v != "" {
		cfg.EAF.Legend = v
	}
}

// PFOptions returns the options for mooplot.PlotPF.
func (c *Config) PFOptions() mooplot.PFOptions {
	opts := mooplot.PFOptions{
		Type:              c.PF.Type,
		NoFilter:          c.PF.NoFilter,
		Colorway:          c.PF.Colorway,
		FillBorderColours: c.PF.FillBorderColours,
		Layout:            c.Layout,
	}
	copy(opts.Maximise[:], c.PF.Maximise)
	return opts
}

// EAFOptions returns the options for mooplot.PlotEAF.
func (c *Config) EAFOptions() mooplot.EAFOptions {
	return mooplot.EAFOptions{
		Type:              c.EAF.Type,
		Percentiles:       c.EAF.Percentiles,
		Colorway:          c.EAF.Colorway,
		FillBorderColours: c.EAF.FillBorderColours,
		LineDashes:        c.EAF.LineDashes,
		LineWidth:         c.EAF.LineWidth,
		TraceNames:        c.EAF.TraceNames,
		Legend:            c.EAF.Legend,
		Template:          c.EAF.Template,
		Layout:            c.Layout,
	}
}
