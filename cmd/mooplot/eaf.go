// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aclements/mooplot"
	"github.com/aclements/mooplot/dataset"
	"github.com/aclements/mooplot/style"
	"github.com/spf13/cobra"
)

func eafCmd() *cobra.Command {
	var (
		types       []string
		percentiles []float64
		colorway    []string
		borders     []string
		dashes      []string
		widths      []float64
		traceNames  []string
		legend      string
		template    string
	)
	cmd := &cobra.Command{
		Use:   "eaf [flags] file | name=file...",
		Short: "Plot empirical attainment functions",
		Long: `eaf plots the attainment surfaces in EAF files. Each row of an
EAF file is two objectives and a percentile.

With a single file, each percentile is a legend entry. With several
name=file arguments (or several files, named after the file), the
datasets are drawn together with one colour gradient each.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			e := &cfg.EAF
			changed := cmd.Flags().Changed
			if changed("type") {
				e.Type = stringsArg(types)
			}
			if changed("percentiles") {
				e.Percentiles = floatsArg(percentiles)
			}
			if changed("colorway") {
				e.Colorway = stringsArg(colorway)
			}
			if changed("border") {
				e.FillBorderColours = stringsArg(borders)
			}
			if changed("dash") {
				e.LineDashes = stringsArg(dashes)
			}
			if changed("line-width") {
				e.LineWidth = floatsArg(widths)
			}
			if changed("trace-names") {
				e.TraceNames = traceNames
			}
			if changed("legend") {
				e.Legend = legend
			}
			if changed("template") {
				e.Template = template
			}

			datasets, err := readEAFArgs(args)
			if err != nil {
				return err
			}
			f, err := mooplot.PlotEAF(datasets, cfg.EAFOptions())
			if err != nil {
				return err
			}
			return writeFigure(f, flagOutput, cfg.Output)
		},
	}
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "plot `type` of each dataset: fill, points or lines")
	cmd.Flags().Float64SliceVarP(&percentiles, "percentiles", "p", nil, "plot only these `percentiles`")
	cmd.Flags().StringSliceVar(&colorway, "colorway", nil, "comma-separated percentile `colours`")
	cmd.Flags().StringSliceVar(&borders, "border", nil, "comma-separated fill border `colours`")
	cmd.Flags().StringSliceVar(&dashes, "dash", nil, "line `dashes`: solid, dot, dash, longdash, dashdot or longdashdot")
	cmd.Flags().Float64SliceVar(&widths, "line-width", nil, "line `widths`")
	cmd.Flags().StringSliceVar(&traceNames, "trace-names", nil, "rename legend entries, in order")
	cmd.Flags().StringVar(&legend, "legend", "", "legend `position`, such as top_left or outside_top_right")
	cmd.Flags().StringVar(&template, "template", "", "layout `template`: simple_white, plotly_white, plotly or none")
	return cmd
}

func floatsArg(vs []float64) style.Arg {
	switch len(vs) {
	case 0:
		return style.None()
	case 1:
		return style.Of(vs[0])
	}
	args := make([]any, len(vs))
	for i, v := range vs {
		args[i] = v
	}
	return style.List(args...)
}

// readEAFArgs reads the datasets named by args. A single argument
// without a name is an unnamed dataset; otherwise each dataset is
// named by its name= prefix or its file name.
func readEAFArgs(args []string) ([]mooplot.EAFDataset, error) {
	var out []mooplot.EAFDataset
	for _, arg := range args {
		name, path, ok := strings.Cut(arg, "=")
		if !ok {
			name, path = "", arg
			if len(args) > 1 {
				name = strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg))
			}
		}
		if path == "" {
			return nil, fmt.Errorf("dataset %q has no file", name)
		}
		data, err := dataset.ReadFile(path, true)
		if err != nil {
			return nil, err
		}
		out = append(out, mooplot.EAFDataset{Name: name, Data: data})
	}
	return out, nil
}
