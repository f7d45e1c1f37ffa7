// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/mooplot/colour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func gradientsCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "gradients [family...]",
		Short: "Show the named colour gradients",
		Long: `gradients prints a swatch of each named gradient. The
scientific family is the default colouring of multi-dataset EAF plots.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			families := args
			if len(families) == 0 {
				families = colour.Families()
			}
			return printGradients(cmd.OutOrStdout(), families, steps)
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 8, "swatch `steps` per gradient")
	return cmd
}

func printGradients(w io.Writer, families []string, steps int) error {
	for _, fam := range families {
		grads, err := colour.Catalogue(fam)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s:\n", fam)
		for _, g := range grads {
			fmt.Fprintf(w, "  %-20s ", g.Name)
			for _, sw := range swatches(g.Gradient, steps) {
				fmt.Fprint(w, sw)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

// swatches samples p at steps evenly spaced points in [0, 1] and
// returns a terminal swatch for each.
func swatches(p palette.Continuous, steps int) []string {
	out := make([]string, steps)
	for i := range out {
		x := 0.0
		if steps > 1 {
			x = float64(i) / float64(steps-1)
		}
		out[i] = swatch(p.Map(x).RGBA())
	}
	return out
}

// swatch returns two spaces on a background of the given
// alpha-premultiplied colour. Alpha is dropped.
func swatch(r, g, b, a uint32) string {
	if a == 0 {
		return "  "
	}
	ch := func(x uint32) int { return int((x*0xff + a/2) / a) }
	return color.BgRGB(ch(r), ch(g), ch(b)).Sprint("  ")
}
