// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mooplot

import (
	"fmt"

	"github.com/aclements/mooplot/colour"
	"github.com/aclements/mooplot/figure"
	"github.com/aclements/mooplot/internal/pareto"
	"github.com/aclements/mooplot/plottype"
	"github.com/aclements/mooplot/style"
)

// PFOptions control PlotPF.
type PFOptions struct {
	// Type is the plot type. The default is "points". See package
	// plottype for the grammar.
	Type string

	// NoFilter disables removing dominated points from each set.
	NoFilter bool

	// Colorway gives one colour per set. The default is plotly's
	// qualitative palette, or a black opacity ramp for "fill".
	Colorway style.Arg

	// FillBorderColours gives the line colour of each set for
	// "fill". It defaults to the same ramp as Colorway.
	FillBorderColours style.Arg

	// Maximise gives the direction of the first two objectives.
	Maximise [2]bool

	// Layout holds layout overrides, applied last. For 3-D plots,
	// "title" or "title.text" is moved into a centred title block.
	Layout map[string]any
}

// margin3D is the layout margin of 3-D plots.
var margin3D = map[string]any{"r": 5, "l": 5, "b": 20, "t": 20}

// PlotPF plots the Pareto front of each set of data. data has one row
// per point: 2 or 3 objectives followed by the set number.
func PlotPF(data [][]float64, opts PFOptions) (*figure.Figure, error) {
	ncols, err := checkTable(data, 3, 4)
	if err != nil {
		return nil, err
	}
	dim := ncols - 1
	typ := opts.Type
	if typ == "" {
		typ = "points"
	}
	mode, err := plottype.Parse(typ, dim)
	if err != nil {
		return nil, err
	}
	if dim == 3 && (mode.HasLines() || mode == plottype.Fill) {
		return nil, &plottype.Error{Err: plottype.ErrIncompatibleDimension, Raw: typ, Dim: dim}
	}
	if !opts.NoFilter {
		data = pareto.FilterWithinSets(data, opts.Maximise[:])
	}

	switch {
	case dim == 2 && mode == plottype.Fill:
		return pfFill(data, opts)
	case dim == 2:
		return pfLines(data, mode, opts)
	}
	return pf3D(data, mode, opts)
}

func pfFill(data [][]float64, opts PFOptions) (*figure.Figure, error) {
	sets := eafSets(data)
	n := len(sets)
	def := style.ColourArg(colour.DefaultFillColourway(n))
	st := eafStyle{mode: plottype.Fill}
	var err error
	if st.colorway, err = colourStrings(opts.Colorway, n, def); err != nil {
		return nil, fmt.Errorf("colorway: %w", err)
	}
	if st.borders, err = colourStrings(opts.FillBorderColours, n, def); err != nil {
		return nil, fmt.Errorf("fill border colours: %w", err)
	}
	if st.dashes, err = style.Dashes(style.None(), n, style.Of(style.Solid)); err != nil {
		return nil, err
	}
	if st.widths, err = style.Widths(style.None(), n, style.Of(2.0)); err != nil {
		return nil, err
	}

	f := figure.New()
	addEAFTraces(f, sets, st)
	f.UpdateLayout(opts.Layout)
	return f, nil
}

func pfLines(data [][]float64, mode plottype.Mode, opts PFOptions) (*figure.Figure, error) {
	sets := groupSets(data, true)
	colorway, err := colourStrings(opts.Colorway, len(sets), defaultColorway())
	if err != nil {
		return nil, fmt.Errorf("colorway: %w", err)
	}

	f := figure.New()
	for i, s := range sets {
		x, y := AddExtremes(s.x(), s.y(), opts.Maximise)
		f.AddTrace(&figure.Trace{
			Type:        figure.Scatter,
			Mode:        string(mode),
			Name:        setName(s.id),
			LegendGroup: setName(s.id),
			ShowLegend:  true,
			X:           x,
			Y:           y,
			Line:        &figure.Line{Shape: "hv", Color: colorway[i]},
		})
	}
	f.Layout.Set("colorway", colorway)
	f.Layout.Set("xaxis.title.text", objectiveName(0))
	f.Layout.Set("yaxis.title.text", objectiveName(1))
	f.Layout.Set("legend.title.text", "Set")
	f.UpdateLayout(opts.Layout)
	return f, nil
}

func pf3D(data [][]float64, mode plottype.Mode, opts PFOptions) (*figure.Figure, error) {
	sets := groupSets(data, false)
	colorway, err := colourStrings(opts.Colorway, len(sets), defaultColorway())
	if err != nil {
		return nil, fmt.Errorf("colorway: %w", err)
	}

	f := figure.New()
	for i, s := range sets {
		switch mode {
		case plottype.Markers:
			f.AddTrace(&figure.Trace{
				Type:        figure.Scatter3D,
				Mode:        "markers",
				Name:        setName(s.id),
				LegendGroup: setName(s.id),
				ShowLegend:  true,
				X:           s.x(),
				Y:           s.y(),
				Z:           s.z(),
				Marker:      &figure.Marker{Size: 4, Color: colorway[i]},
			})

		case plottype.Surface, plottype.SurfaceMarkers:
			f.AddTrace(&figure.Trace{
				Type:       figure.Mesh3D,
				Name:       "Set " + setName(s.id),
				ShowLegend: true,
				X:          s.x(),
				Y:          s.y(),
				Z:          s.z(),
				Color:      colorway[i],
				Opacity:    0.85,
			})
			if mode.HasMarkers() {
				f.AddTrace(&figure.Trace{
					Type:       figure.Scatter3D,
					Mode:       "markers",
					Name:       "Set " + setName(s.id) + " points",
					ShowLegend: true,
					X:          s.x(),
					Y:          s.y(),
					Z:          s.z(),
					Marker:     &figure.Marker{Size: 3, Color: colorway[i]},
				})
			}

		case plottype.Cube:
			x, y, z := CubePoints(s.x(), s.y(), s.z())
			ti, tj, tk := TriangleIndices(len(s.x()))
			f.AddTrace(&figure.Trace{
				Type:       figure.Mesh3D,
				Name:       "Set " + setName(s.id),
				ShowLegend: true,
				X:          x,
				Y:          y,
				Z:          z,
				I:          ti,
				J:          tj,
				K:          tk,
				Color:      colorway[i],
			})
		}
	}

	f.Layout.Set("margin", margin3D)
	f.Layout.Set("legend.title.text", "Set")
	for k, axis := range []string{"xaxis", "yaxis", "zaxis"} {
		f.Layout.Set("scene."+axis+".title.text", objectiveName(k))
	}

	over := make(map[string]any, len(opts.Layout))
	for k, v := range opts.Layout {
		if k == "title" || k == "title.text" {
			if text := titleText(v); text != "" {
				f.Layout.Set("title", map[string]any{
					"text":    text,
					"y":       0.9,
					"x":       0.45,
					"xanchor": "center",
					"yanchor": "top",
				})
			}
			continue
		}
		over[k] = v
	}
	f.UpdateLayout(over)
	return f, nil
}

// titleText extracts the text of a title layout override, which may be
// a string or a map with a "text" key.
func titleText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case map[string]any:
		s, _ := v["text"].(string)
		return s
	}
	return ""
}
