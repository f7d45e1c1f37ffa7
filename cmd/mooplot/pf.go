// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/mooplot"
	"github.com/aclements/mooplot/dataset"
	"github.com/aclements/mooplot/style"
	"github.com/spf13/cobra"
)

func pfCmd() *cobra.Command {
	var (
		typ      string
		noFilter bool
		maximise []bool
		colorway []string
	)
	cmd := &cobra.Command{
		Use:   "pf [flags] file",
		Short: "Plot the Pareto front of each set",
		Long: `pf plots the Pareto front of each set in file.

Types are points, lines, points,lines and fill for two objectives, and
points, surface, surface,points and cube for three. Types may be
abbreviated, as in "p,l".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("type") {
				cfg.PF.Type = typ
			}
			if cmd.Flags().Changed("no-filter") {
				cfg.PF.NoFilter = noFilter
			}
			if cmd.Flags().Changed("maximise") {
				cfg.PF.Maximise = maximise
			}
			if cmd.Flags().Changed("colorway") {
				cfg.PF.Colorway = stringsArg(colorway)
			}

			data, err := dataset.ReadFile(args[0], false)
			if err != nil {
				return err
			}
			f, err := mooplot.PlotPF(data, cfg.PFOptions())
			if err != nil {
				return err
			}
			return writeFigure(f, flagOutput, cfg.Output)
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "points", "plot `type`")
	cmd.Flags().BoolVar(&noFilter, "no-filter", false, "keep dominated points")
	cmd.Flags().BoolSliceVar(&maximise, "maximise", nil, "maximise each objective (for example true,false)")
	cmd.Flags().StringSliceVar(&colorway, "colorway", nil, "comma-separated set `colours`")
	return cmd
}

// stringsArg converts a flag list to a style argument. A single value
// is a scalar.
func stringsArg(vs []string) style.Arg {
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
