// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutSetGet(t *testing.T) {
	l := Layout{}
	l.Set("legend.title.text", "Set")
	l.Set("title", "x")
	l.Set("title.text", "y")

	v, ok := l.Get("legend.title.text")
	require.True(t, ok)
	assert.Equal(t, "Set", v)
	assert.Equal(t, "y", l.GetString("title.text"))

	_, ok = l.Get("legend.nope")
	assert.False(t, ok)
	_, ok = l.Get("title.text.deeper")
	assert.False(t, ok)
	assert.Equal(t, "", l.GetString("legend"))
}

func TestLayoutUpdate(t *testing.T) {
	l := Layout{}
	l.Set("legend.x", 1.0)
	l.Set("legend.y", 0.5)

	over := map[string]any{
		"legend":        map[string]any{"x": 0.0},
		"xaxis.range":   []float64{0, 1},
		"plot_bgcolor":  "white",
		"scene.xaxis":   map[string]any{"title": "a"},
		"scene.xaxis.x": 2,
	}
	l.Update(over)
	assert.Equal(t, 0.0, mustGet(t, l, "legend.x"))
	assert.Equal(t, 0.5, mustGet(t, l, "legend.y"))
	assert.Equal(t, []float64{0, 1}, mustGet(t, l, "xaxis.range"))
	assert.Equal(t, "white", mustGet(t, l, "plot_bgcolor"))
	assert.Equal(t, "a", mustGet(t, l, "scene.xaxis.title"))

	// The layout does not alias the override maps.
	over["legend"].(map[string]any)["x"] = 99.0
	assert.Equal(t, 0.0, mustGet(t, l, "legend.x"))

	// Non-map values replace maps.
	l.Update(map[string]any{"legend": false})
	assert.Equal(t, false, l["legend"])
}

func mustGet(t *testing.T, l Layout, path string) any {
	t.Helper()
	v, ok := l.Get(path)
	require.True(t, ok, path)
	return v
}

func testFigure() *Figure {
	f := New()
	f.AddTrace(&Trace{Type: Scatter, Mode: "lines", Name: "1", ShowLegend: false,
		X: []float64{1, 2, 3}, Y: []float64{3, 2, 1},
		Line: &Line{Shape: "hv", Color: "rgba(1,0,0,1)", Width: Float(2), Dash: "dot"}})
	f.AddTrace(&Trace{Type: Scatter, Mode: "lines", Name: "1", ShowLegend: true,
		X: []float64{1, 2, math.MaxFloat64}, Y: []float64{math.MaxFloat64, 2, 1},
		Line: &Line{Shape: "hv", Color: "rgba(0,0,1,1)"}, Fill: "tonexty", FillColor: "rgba(0,0,0,0.6)"})
	f.AddTrace(&Trace{Type: Scatter, Mode: "lines+markers", Name: "2", ShowLegend: true,
		X: []float64{0, 4}, Y: []float64{4, 0}, Marker: &Marker{Size: 4}})
	return f
}

func TestLegendTraces(t *testing.T) {
	f := testFigure()
	lt := f.LegendTraces()
	require.Len(t, lt, 2)
	assert.Same(t, f.Data[1], lt[0])
	assert.Same(t, f.Data[2], lt[1])

	n := 0
	f.UpdateTraces(func(t *Trace) { n++ })
	assert.Equal(t, 3, n)
}

func TestRenameLegendTraces(t *testing.T) {
	f := testFigure()
	require.NoError(t, f.RenameLegendTraces([]string{"first", "1"}))
	assert.Equal(t, "first", f.Data[0].Name)
	assert.Equal(t, "first", f.Data[1].Name)
	// Renaming "2" to "1" does not pull in the traces that were
	// originally named "1".
	assert.Equal(t, "1", f.Data[2].Name)

	err := f.RenameLegendTraces([]string{"a"})
	assert.ErrorIs(t, err, ErrTraceNameCount)
	assert.ErrorContains(t, err, "got 1 names for 2 traces")
}

func TestWriteJSON(t *testing.T) {
	f := testFigure()
	f.Layout.Set("title.text", "T")
	var buf bytes.Buffer
	require.NoError(t, f.WriteJSON(&buf))

	var got struct {
		Data []struct {
			Type       string    `json:"type"`
			Name       string    `json:"name"`
			ShowLegend bool      `json:"showlegend"`
			X          []float64 `json:"x"`
			Line       *Line     `json:"line"`
			Fill       string    `json:"fill"`
		} `json:"data"`
		Layout map[string]any `json:"layout"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Data, 3)
	assert.Equal(t, "scatter", got.Data[0].Type)
	assert.False(t, got.Data[0].ShowLegend)
	assert.Equal(t, "rgba(1,0,0,1)", got.Data[0].Line.Color)
	assert.Equal(t, math.MaxFloat64, got.Data[1].X[2])
	assert.Equal(t, "tonexty", got.Data[1].Fill)
	assert.Equal(t, map[string]any{"text": "T"}, got.Layout["title"])
}

func TestApplyTemplate(t *testing.T) {
	f := New()
	require.NoError(t, f.ApplyTemplate("simple_white"))
	assert.Equal(t, "white", f.Layout.GetString("template.layout.plot_bgcolor"))
	assert.Equal(t, "white", f.styleValue("plot_bgcolor", "grey"))
	f.Layout.Set("plot_bgcolor", "ivory")
	assert.Equal(t, "ivory", f.styleValue("plot_bgcolor", "grey"))
	assert.Equal(t, "grey", f.styleValue("nothing", "grey"))

	err := f.ApplyTemplate("seaborn")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
	assert.Contains(t, Templates(), "simple_white")
}

func TestWriteHTML(t *testing.T) {
	f := testFigure()
	f.Layout.Set("title.text", "EAF <1>")
	f.Layout.Set("colorway", []string{"rgba(1,0,0,1)"})
	var buf bytes.Buffer
	require.NoError(t, f.WriteHTML(&buf, 800, 0))
	page := buf.String()

	assert.Contains(t, page, PlotlyJS)
	assert.Contains(t, page, "<title>EAF &lt;1&gt;</title>")
	assert.Contains(t, page, `id="mooplot-`)
	assert.Contains(t, page, "width:800px;height:95vh")
	assert.Contains(t, page, "Plotly.newPlot(")
	// Colours are translated to CSS for plotly.js.
	assert.Contains(t, page, "rgba(255,0,0,1)")
	assert.NotContains(t, page, "rgba(1,0,0,1)")

	// The figure itself is unchanged.
	assert.Equal(t, "rgba(1,0,0,1)", f.Data[0].Line.Color)
	assert.Equal(t, []string{"rgba(1,0,0,1)"}, f.Layout["colorway"])
}

func TestCSSColour(t *testing.T) {
	assert.Equal(t, "rgba(0,0,255,0.5)", cssColour("rgba(0,0,1,0.5)"))
	assert.Equal(t, "white", cssColour("white"))
	assert.Equal(t, "rgb(36,36,36)", cssColour("rgb(36,36,36)"))
	assert.Equal(t, "", cssColour(""))
}

func TestWriteSVG(t *testing.T) {
	f := testFigure()
	f.AddTrace(&Trace{Type: Mesh3D, Name: "skip", X: []float64{1}, Y: []float64{1}, Z: []float64{1}})
	f.Layout.Set("title.text", "Fronts")
	f.Layout.Set("xaxis.title.text", "Objective 1")
	f.Layout.Set("legend", map[string]any{"x": 1.0, "y": 1.0, "xanchor": "right", "yanchor": "top",
		"bgcolor": "rgba(0,0,0,0)", "bordercolor": "rgba(0,0,0,1)", "borderwidth": 2.5,
		"title": map[string]any{"text": "Percentile"}})

	var logs bytes.Buffer
	Warning.SetOutput(&logs)
	defer Warning.SetOutput(log.Default().Writer())

	var buf bytes.Buffer
	require.NoError(t, f.WriteSVG(&buf, 640, 480))
	out := buf.String()

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "Fronts")
	assert.Contains(t, out, "Objective 1")
	assert.Contains(t, out, "Percentile")
	assert.Contains(t, out, "stroke-dasharray:3,3")
	assert.Contains(t, out, "fill:rgba(0,0,0,0.6)")
	assert.Contains(t, out, "stroke:rgba(255,0,0,1)")
	assert.Contains(t, logs.String(), `skipping mesh3d trace "skip"`)

	assert.Error(t, f.WriteSVG(io.Discard, 50, 50))
}

func TestLayoutNumber(t *testing.T) {
	f := New()
	f.UpdateLayout(map[string]any{"legend": map[string]any{
		"x": 1, "y": float32(0.5), "borderwidth": uint8(3), "xanchor": "right",
	}})
	assert.Equal(t, 1.0, f.layoutNumber("legend.x", 0))
	assert.Equal(t, 0.5, f.layoutNumber("legend.y", 0))
	assert.Equal(t, 3.0, f.layoutNumber("legend.borderwidth", 0))
	assert.Equal(t, 7.0, f.layoutNumber("legend.xanchor", 7))
	assert.Equal(t, 7.0, f.layoutNumber("legend.missing", 7))
}

func TestTracePoints(t *testing.T) {
	r := &svgRender{left: 0, top: 0, w: 100, h: 100}
	var xr, yr dataRange
	xr.add([]float64{0, 10, math.MaxFloat64})
	yr.add([]float64{0, 10, -math.MaxFloat64, math.Inf(1)})
	assert.Equal(t, dataRange{0, 10, true}, xr)
	assert.Equal(t, dataRange{0, 10, true}, yr)
	r.xs, r.ys = xr.linear(), yr.linear()

	pts := r.tracePoints(&Trace{X: []float64{0, 10, math.MaxFloat64}, Y: []float64{10, 0, 0}, Line: &Line{Shape: "hv"}})
	require.Len(t, pts, 5)
	// Horizontal then vertical.
	assert.Equal(t, pts[0].y, pts[1].y)
	assert.Equal(t, pts[1].x, pts[2].x)
	// The infinite extreme is pinned to the right edge.
	assert.Equal(t, 100.0, pts[4].x)
}
