// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mooplot plots Pareto fronts and empirical attainment
// functions.
//
// Usage:
//
//	mooplot pf [flags] file
//	mooplot eaf [flags] file | name=file...
//	mooplot gradients [family...]
//
// Input files are whitespace-separated numbers, with blank lines
// between sets, or .xlsx spreadsheets. "-" reads standard input.
//
// The figure is written as plotly JSON to standard output, or to the
// file named by -o. The output format follows the file extension:
// .json, .html (a standalone page using plotly.js) or .svg (a static
// rendering of 2-D plots).
//
// Style defaults can be kept in a YAML file given with --config. Layout
// attributes can be set with --layout, which takes shell-quoted
// key=value pairs, for example
//
//	--layout "title.text='My fronts' xaxis.type=log width=800"
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/mooplot/figure"
	"github.com/aclements/mooplot/internal/config"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

// Default SVG size, used when no size is configured.
const (
	svgWidth  = 800
	svgHeight = 600
)

var (
	flagConfig string
	flagOutput string
	flagLayout []string
	flagWidth  int
	flagHeight int
)

var rootCmd = &cobra.Command{
	Use:   "mooplot",
	Short: "Plot Pareto fronts and empirical attainment functions",
	Long: `mooplot plots Pareto fronts (pf) and empirical attainment
functions (eaf) of multi-objective optimisation results.`,
	SilenceUsage: true,
}

func main() {
	log.SetPrefix("mooplot: ")
	log.SetFlags(0)

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "load style defaults from YAML `file`")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "write figure to `file` (.json, .html or .svg)")
	rootCmd.PersistentFlags().StringArrayVar(&flagLayout, "layout", nil, "set layout attributes from shell-quoted `key=value` pairs")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "figure width in pixels")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "figure height in pixels")
	rootCmd.AddCommand(pfCmd(), eafCmd(), gradientsCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// loadConfig loads the configuration file and applies the flags shared
// by all plotting commands.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("width") {
		cfg.Output.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Output.Height = flagHeight
	}
	for _, s := range flagLayout {
		over, err := parseLayout(s)
		if err != nil {
			return nil, err
		}
		if cfg.Layout == nil {
			cfg.Layout = make(map[string]any)
		}
		for k, v := range over {
			cfg.Layout[k] = v
		}
	}
	return cfg, nil
}

// parseLayout parses shell-quoted key=value pairs. Values that parse as
// numbers or booleans become float64 or bool.
func parseLayout(s string) (map[string]any, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("bad --layout %q: %w", s, err)
	}
	out := make(map[string]any, len(words))
	for _, w := range words {
		k, v, ok := strings.Cut(w, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("bad --layout %q: %q is not key=value", s, w)
		}
		out[k] = layoutValue(v)
	}
	return out, nil
}

func layoutValue(v string) any {
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v
}

// writeFigure writes f to path in the format given by its extension.
// An empty path writes JSON to standard output.
func writeFigure(f *figure.Figure, path string, out config.OutputConfig) error {
	if path == "" || path == "-" {
		return f.WriteJSON(os.Stdout)
	}
	var write func(*os.File) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		write = func(w *os.File) error { return f.WriteJSON(w) }
	case ".html", ".htm":
		write = func(w *os.File) error { return f.WriteHTML(w, out.Width, out.Height) }
	case ".svg":
		w, h := out.Width, out.Height
		if w <= 0 {
			w = svgWidth
		}
		if h <= 0 {
			h = svgHeight
		}
		write = func(file *os.File) error { return f.WriteSVG(file, w, h) }
	default:
		return fmt.Errorf("unknown output format %q; use .json, .html or .svg", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
