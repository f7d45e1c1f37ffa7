// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure is a small plotly-style figure model: a list of
// traces plus a free-form layout, with JSON, HTML and static SVG
// output.
//
// Colours in traces are stored in the canonical rgba(r,g,b,a) form of
// package colour, with channels in [0, 1]. The HTML and SVG writers
// translate them to CSS colours when rendering.
package figure

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// Warning is a logger for conditions that don't prevent rendering a
// figure but may lead to unexpected output.
var Warning = log.New(os.Stderr, "[figure] ", log.Lshortfile)

// Trace types.
const (
	Scatter   = "scatter"
	Scatter3D = "scatter3d"
	Mesh3D    = "mesh3d"
)

// Line styles a trace's lines.
type Line struct {
	Shape string `json:"shape,omitempty"`
	Dash  string `json:"dash,omitempty"`
	Color string `json:"color,omitempty"`

	// Width is nil to use the renderer's default. A width of 0
	// hides the line.
	Width *float64 `json:"width,omitempty"`
}

// Float returns a pointer to v, for optional attributes such as
// Line.Width.
func Float(v float64) *float64 { return &v }

// Marker styles a trace's points.
type Marker struct {
	Size  float64 `json:"size,omitempty"`
	Color string  `json:"color,omitempty"`
}

// Trace is one series of a figure.
type Trace struct {
	Type        string    `json:"type"`
	Mode        string    `json:"mode,omitempty"`
	Name        string    `json:"name"`
	LegendGroup string    `json:"legendgroup,omitempty"`
	ShowLegend  bool      `json:"showlegend"`
	X           []float64 `json:"x"`
	Y           []float64 `json:"y"`
	Z           []float64 `json:"z,omitempty"`

	// I, J and K index the vertices of mesh triangles.
	I []int `json:"i,omitempty"`
	J []int `json:"j,omitempty"`
	K []int `json:"k,omitempty"`

	Line      *Line   `json:"line,omitempty"`
	Marker    *Marker `json:"marker,omitempty"`
	Fill      string  `json:"fill,omitempty"`
	FillColor string  `json:"fillcolor,omitempty"`
	Color     string  `json:"color,omitempty"`
	Opacity   float64 `json:"opacity,omitempty"`
}

// Figure is a list of traces and a layout.
type Figure struct {
	Data   []*Trace `json:"data"`
	Layout Layout   `json:"layout"`
}

// New returns an empty figure.
func New() *Figure {
	return &Figure{Layout: Layout{}}
}

// AddTrace appends t to f.
func (f *Figure) AddTrace(t *Trace) *Figure {
	f.Data = append(f.Data, t)
	return f
}

// UpdateTraces calls fn on every trace of f, in order.
func (f *Figure) UpdateTraces(fn func(*Trace)) *Figure {
	for _, t := range f.Data {
		fn(t)
	}
	return f
}

// UpdateLayout merges over into f's layout. See Layout.Update.
func (f *Figure) UpdateLayout(over map[string]any) *Figure {
	f.Layout.Update(over)
	return f
}

// LegendTraces returns the traces of f that appear in the legend.
func (f *Figure) LegendTraces() []*Trace {
	var out []*Trace
	for _, t := range f.Data {
		if t.ShowLegend {
			out = append(out, t)
		}
	}
	return out
}

// ErrTraceNameCount is returned by RenameLegendTraces when the number
// of names differs from the number of legend traces.
var ErrTraceNameCount = errors.New("number of trace names does not match number of legend traces")

// RenameLegendTraces gives the legend traces of f the names in names,
// in order. Every trace, shown in the legend or not, that shares a
// name with a legend trace is renamed with it. Names are matched
// against the names f had before any renaming; if two legend traces
// share a name, the first one's new name is used.
func (f *Figure) RenameLegendTraces(names []string) error {
	cur := f.LegendTraces()
	if len(names) != len(cur) {
		return fmt.Errorf("%w: got %d names for %d traces", ErrTraceNameCount, len(names), len(cur))
	}
	rename := make(map[string]string, len(cur))
	for i, t := range cur {
		if _, ok := rename[t.Name]; !ok {
			rename[t.Name] = names[i]
		}
	}
	for _, t := range f.Data {
		if n, ok := rename[t.Name]; ok {
			t.Name = n
		}
	}
	return nil
}

// WriteJSON writes f as plotly figure JSON.
func (f *Figure) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}
