// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mooplot

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/mooplot/colour"
	"github.com/aclements/mooplot/figure"
	"github.com/aclements/mooplot/legend"
	"github.com/aclements/mooplot/plottype"
	"github.com/aclements/mooplot/style"
)

// DefaultTemplate is the layout template used by PlotEAF when
// EAFOptions.Template is empty.
const DefaultTemplate = "simple_white"

// defaultBorder is the fill border colour of each dataset when PlotEAF
// is given several datasets.
var defaultBorder = colour.Colour{R: 0, G: 0, B: 0, A: 0.7}

// An EAFDataset is one attainment table for PlotEAF. Each row is two
// objectives followed by the percentile the row belongs to.
type EAFDataset struct {
	// Name labels the dataset in the legend. A single dataset with
	// no name is plotted on its own, with percentiles as the legend
	// entries.
	Name string
	Data [][]float64
}

// EAFOptions control PlotEAF. The zero value plots every percentile
// as filled areas with the default styles.
type EAFOptions struct {
	// Type is the plot type of each dataset: "fill" (the default),
	// "points" or "lines" and their abbreviations. A scalar applies
	// to every dataset; a list must have one type per dataset.
	Type style.Arg

	// Percentiles selects the percentiles to plot. A list selects
	// the same percentiles from every dataset; a nested list has one
	// list per dataset. Absent keeps all percentiles.
	Percentiles style.Arg

	// Colorway gives the fill colour of each percentile, or the line
	// colour for non-fill types. FillBorderColours gives the line
	// colour between filled areas.
	Colorway          style.Arg
	FillBorderColours style.Arg

	LineDashes style.Arg
	LineWidth  style.Arg

	// TraceNames renames the traces shown in the legend, in order.
	TraceNames []string

	// Legend is a legend preset; see legend.Resolve. Nil means
	// legend.DefaultPosition.
	Legend any

	Template string
	Layout   map[string]any
}

// PlotEAF plots the attainment surfaces of one or more EAF datasets.
//
// A single unnamed dataset gets one trace per percentile, shaded with
// a black opacity ramp. Several datasets are drawn on one figure with
// one colour gradient per dataset and the dataset names in the
// legend. Layout overrides from opts.Layout are applied after the
// legend preset.
func PlotEAF(datasets []EAFDataset, opts EAFOptions) (*figure.Figure, error) {
	if len(datasets) == 0 {
		return nil, ErrEmptyDataset
	}
	n := len(datasets)
	single := n == 1 && datasets[0].Name == ""

	for i, d := range datasets {
		if _, err := checkTable(d.Data, 3, 3); err != nil {
			return nil, fmt.Errorf("%s: %w", datasetLabel(i, d), err)
		}
	}
	keep, err := percentileFilters(opts.Percentiles, n)
	if err != nil {
		return nil, err
	}
	modes, err := eafModes(opts.Type, n)
	if err != nil {
		return nil, err
	}
	preset := opts.Legend
	if preset == nil {
		preset = legend.DefaultPosition
	}
	lg, err := legend.Resolve(preset)
	if err != nil {
		return nil, err
	}
	f := figure.New()
	tmpl := opts.Template
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	if err := f.ApplyTemplate(tmpl); err != nil {
		return nil, err
	}

	sets := make([][]*set, n)
	cards := make([]int, n)
	for i, d := range datasets {
		rows := filterPercentiles(d.Data, keep[i])
		if len(rows) == 0 {
			return nil, fmt.Errorf("%s: %w after selecting percentiles %s", datasetLabel(i, d), ErrEmptyDataset, opts.Percentiles)
		}
		sets[i] = eafSets(rows)
		cards[i] = len(sets[i])
	}

	if single {
		st, err := singleEAFStyle(opts, modes[0], cards[0])
		if err != nil {
			return nil, err
		}
		addEAFTraces(f, sets[0], st)
		f.Layout.Set("legend.title.text", "Percentile")
		f.Layout.Set("title.text", "2D Empirical Attainment Function")
	} else {
		sts, err := multiEAFStyles(opts, modes, cards)
		if err != nil {
			return nil, err
		}
		for i := range datasets {
			sts[i].name = datasets[i].Name
			addEAFTraces(f, sets[i], sts[i])
		}
		f.Layout.Set("legend.title.text", "Algorithm")
		f.Layout.Set("title.text", "2d Empirical Attainment Function")
	}
	f.Layout.Set("xaxis.title.text", "Objective 0")
	f.Layout.Set("yaxis.title.text", "Objective 1")

	f.UpdateLayout(lg.Layout())
	f.UpdateLayout(opts.Layout)

	if len(opts.TraceNames) > 0 {
		if err := f.RenameLegendTraces(opts.TraceNames); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func datasetLabel(i int, d EAFDataset) string {
	if d.Name != "" {
		return fmt.Sprintf("dataset %q", d.Name)
	}
	return fmt.Sprintf("dataset %d", i)
}

// percentileFilters returns, for each of n datasets, the percentiles
// to keep, or nil to keep them all.
func percentileFilters(arg style.Arg, n int) ([]map[float64]bool, error) {
	out := make([]map[float64]bool, n)
	switch {
	case arg.IsAbsent():
	case arg.Kind() == style.KindNested:
		if arg.Len() != n {
			return nil, fmt.Errorf("%w: got %d percentile lists for %d datasets", ErrCardinalityMismatch, arg.Len(), n)
		}
		for i := range out {
			keep, err := percentileSet(arg.Index(i))
			if err != nil {
				return nil, fmt.Errorf("dataset %d: %w", i, err)
			}
			out[i] = keep
		}
	default:
		keep, err := percentileSet(arg)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = keep
		}
	}
	return out, nil
}

func percentileSet(arg style.Arg) (map[float64]bool, error) {
	if arg.IsAbsent() {
		return nil, nil
	}
	ps, err := style.Broadcast[float64](arg, arg.Len(), style.None(), parsePercentile)
	if err != nil {
		return nil, err
	}
	keep := make(map[float64]bool, len(ps))
	for _, p := range ps {
		keep[p] = true
	}
	return keep, nil
}

func parsePercentile(v any) (float64, error) {
	p, err := style.ParseWidth(v)
	if err != nil {
		return 0, fmt.Errorf("%w: percentile %v (%T) is not a number", ErrInvalidStyleValue, v, v)
	}
	return p, nil
}

func filterPercentiles(rows [][]float64, keep map[float64]bool) [][]float64 {
	if keep == nil {
		return rows
	}
	var out [][]float64
	for _, row := range rows {
		if keep[row[2]] {
			out = append(out, row)
		}
	}
	return out
}

// eafModes parses the plot type of each of n datasets.
func eafModes(arg style.Arg, n int) ([]plottype.Mode, error) {
	if !arg.IsAbsent() && arg.Kind() == style.KindList && arg.Len() != n {
		return nil, fmt.Errorf("%w: got %d types for %d datasets", ErrCardinalityMismatch, arg.Len(), n)
	}
	raws, err := style.Names(arg, n, style.Of(string(plottype.Fill)))
	if err != nil {
		return nil, err
	}
	modes := make([]plottype.Mode, n)
	for i, raw := range raws {
		if modes[i], err = plottype.Parse(raw, 2); err != nil {
			return nil, err
		}
	}
	return modes, nil
}

// eafSets groups the rows of an EAF table by percentile, in increasing
// percentile order, with each percentile sorted by the first
// objective.
func eafSets(rows [][]float64) []*set {
	sets := groupSets(rows, true)
	sort.SliceStable(sets, func(i, j int) bool { return sets[i].id < sets[j].id })
	return sets
}

// eafStyle is the style of one attainment plot, with one entry per
// percentile in each slice.
type eafStyle struct {
	mode     plottype.Mode
	name     string
	colorway []string
	borders  []string
	dashes   []style.Dash
	widths   []float64
}

func singleEAFStyle(opts EAFOptions, mode plottype.Mode, n int) (eafStyle, error) {
	st := eafStyle{mode: mode}
	def := style.ColourArg(colour.DefaultFillColourway(n))
	var err error
	if st.colorway, err = colourStrings(opts.Colorway, n, def); err != nil {
		return st, fmt.Errorf("colorway: %w", err)
	}
	if st.borders, err = colourStrings(opts.FillBorderColours, n, def); err != nil {
		return st, fmt.Errorf("fill border colours: %w", err)
	}
	if st.dashes, err = style.Dashes(opts.LineDashes, n, style.Of(style.Solid)); err != nil {
		return st, fmt.Errorf("line dashes: %w", err)
	}
	if st.widths, err = style.Widths(opts.LineWidth, n, style.Of(2.0)); err != nil {
		return st, fmt.Errorf("line width: %w", err)
	}
	return st, nil
}

func multiEAFStyles(opts EAFOptions, modes []plottype.Mode, cards []int) ([]eafStyle, error) {
	grads, err := colour.ExampleGradients(colour.DefaultFamily, cards)
	if err != nil {
		return nil, err
	}
	colorways, err := style.Colours2D(opts.Colorway, cards, style.NestedColourArg(grads))
	if err != nil {
		return nil, fmt.Errorf("colorway: %w", err)
	}
	borders, err := style.Colours2D(opts.FillBorderColours, cards, style.NestedColourArg(colour.UniformNested(cards, defaultBorder)))
	if err != nil {
		return nil, fmt.Errorf("fill border colours: %w", err)
	}
	dashes, err := style.Dashes2D(opts.LineDashes, cards, style.Of(style.Solid))
	if err != nil {
		return nil, fmt.Errorf("line dashes: %w", err)
	}
	widths, err := style.Widths2D(opts.LineWidth, cards, style.Of(2.0))
	if err != nil {
		return nil, fmt.Errorf("line width: %w", err)
	}
	sts := make([]eafStyle, len(cards))
	for i := range sts {
		sts[i] = eafStyle{
			mode:     modes[i],
			colorway: colour.Strings(colorways[i]),
			borders:  colour.Strings(borders[i]),
			dashes:   dashes[i],
			widths:   widths[i],
		}
	}
	return sts, nil
}

// addEAFTraces adds the attainment surfaces of sets to f, one trace per
// set plus a closing trace along the top of the plot.
//
// In a fill plot, trace i is filled down to trace i-1 in the colour of
// set i-1, so the first trace is drawn but hidden from the legend and
// the closing trace fills above the last set. In other plots trace i
// is set i and the closing trace repeats the last set's style, hidden
// from the legend.
func addEAFTraces(f *figure.Figure, sets []*set, st eafStyle) {
	type line struct{ x, y []float64 }
	lines := make([]line, 0, len(sets)+1)
	for _, s := range sets {
		x, y := AddExtremes(s.x(), s.y(), [2]bool{})
		lines = append(lines, line{x, y})
	}
	lines = append(lines, line{[]float64{0, math.MaxFloat64}, []float64{math.MaxFloat64, math.MaxFloat64}})

	n := len(sets)
	fill := st.mode == plottype.Fill
	mode := "lines"
	if st.mode == plottype.Markers {
		mode = "markers"
	}
	for i, ln := range lines {
		fillI := max(i-1, 0)
		nameI := fillI
		if !fill {
			nameI = min(i, n-1)
		}

		pct := setName(sets[nameI].id)
		name, group := pct, pct
		if st.name != "" {
			name, group = st.name+" - "+pct, st.name
		}
		lineColour := st.colorway[nameI]
		fillMode := "none"
		if fill {
			lineColour = st.borders[nameI]
			if i > 0 {
				fillMode = "tonexty"
			}
		}
		f.AddTrace(&figure.Trace{
			Type:        figure.Scatter,
			Mode:        mode,
			Name:        name,
			LegendGroup: group,
			ShowLegend:  !(fill && i == 0 || !fill && i == len(lines)-1),
			X:           ln.x,
			Y:           ln.y,
			Line: &figure.Line{
				Shape: "hv",
				Dash:  string(st.dashes[nameI]),
				Color: lineColour,
				Width: figure.Float(st.widths[nameI]),
			},
			Fill:      fillMode,
			FillColor: st.colorway[fillI],
		})
	}
}
