// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/scale"
	svg "github.com/ajstarks/svgo"
)

const fontSize = 14

// Plot area margins in pixels.
const (
	marginTop    = 50
	marginRight  = 20
	marginBottom = 55
	marginLeft   = 75
)

// dashArrays gives the SVG stroke-dasharray for each plotly dash name.
var dashArrays = map[string]string{
	"dot":         "3,3",
	"dash":        "9,9",
	"longdash":    "15,15",
	"dashdot":     "9,3,3,3",
	"longdashdot": "15,3,3,3",
}

// WriteSVG renders the 2-D traces of f as a static SVG image. Other
// traces are skipped with a warning. Points beyond the plot area,
// such as the extremes added to step lines, are pinned to its edge.
func (f *Figure) WriteSVG(w io.Writer, width, height int) error {
	pw := float64(width - marginLeft - marginRight)
	ph := float64(height - marginTop - marginBottom)
	if pw <= 0 || ph <= 0 {
		return fmt.Errorf("figure: %dx%d is too small to draw", width, height)
	}

	var traces []*Trace
	var xr, yr dataRange
	for _, t := range f.Data {
		if t.Type != "" && t.Type != Scatter {
			Warning.Printf("skipping %s trace %q: only 2-D traces are drawn", t.Type, t.Name)
			continue
		}
		traces = append(traces, t)
		xr.add(t.X)
		yr.add(t.Y)
	}
	xs, ys := xr.linear(), yr.linear()

	r := &svgRender{
		left: marginLeft, top: marginTop, w: pw, h: ph,
		xs: xs, ys: ys,
	}

	canvas := svg.New(w)
	canvas.Start(width, height, fmt.Sprintf(`font-size="%dpx" font-family="Helvetica,Arial,sans-serif"`, fontSize))
	defer canvas.End()

	canvas.Rect(0, 0, width, height, "fill:"+cssColour(f.styleValue("paper_bgcolor", "white")))
	canvas.Rect(marginLeft, marginTop, int(pw), int(ph), "fill:"+cssColour(f.styleValue("plot_bgcolor", "white")))

	r.axes(canvas, f)

	var prev []point
	for _, t := range traces {
		pts := r.tracePoints(t)
		if t.Fill == "tonexty" && len(prev) > 0 && len(pts) > 0 {
			poly := append(append([]point(nil), pts...), reversed(prev)...)
			canvas.Path(pathData(poly, true), "stroke:none;fill:"+cssColour(t.FillColor))
		}
		if t.Mode == "" || strings.Contains(t.Mode, "lines") {
			canvas.Path(pathData(pts, false), lineStyle(t))
		}
		if strings.Contains(t.Mode, "markers") {
			r.markers(canvas, t)
		}
		prev = pts
	}

	if title := layoutText(f.Layout, "title"); title != "" {
		canvas.Text(width/2, marginTop/2+fontSize/2, title, "text-anchor:middle;font-size:17px")
	}
	if xt := layoutText(f.Layout, "xaxis.title"); xt != "" {
		canvas.Text(marginLeft+int(pw/2), height-10, xt, "text-anchor:middle")
	}
	if yt := layoutText(f.Layout, "yaxis.title"); yt != "" {
		x, y := 16, marginTop+int(ph/2)
		canvas.Text(x, y, yt, "text-anchor:middle", fmt.Sprintf(`transform="rotate(-90 %d %d)"`, x, y))
	}

	r.legend(canvas, f)
	return nil
}

// layoutText returns a title attribute that may be either a string or
// a map with a "text" key.
func layoutText(l Layout, path string) string {
	if s := l.GetString(path + ".text"); s != "" {
		return s
	}
	return l.GetString(path)
}

// layoutNumber returns the numeric layout attribute at path, or def if
// it is unset or not a number. Any Go integer or float type is
// accepted.
func (f *Figure) layoutNumber(path string, def float64) float64 {
	v, ok := f.Layout.Get(path)
	if !ok || v == nil {
		return def
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanFloat():
		return rv.Float()
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	}
	return def
}

type point struct{ x, y float64 }

func reversed(pts []point) []point {
	out := make([]point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// dataRange tracks the finite extent of plotted data. Values of
// magnitude math.MaxFloat64 stand for infinity and are ignored.
type dataRange struct {
	min, max float64
	ok       bool
}

func (d *dataRange) add(vs []float64) {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) == math.MaxFloat64 {
			continue
		}
		if !d.ok {
			d.min, d.max, d.ok = v, v, true
			continue
		}
		d.min, d.max = math.Min(d.min, v), math.Max(d.max, v)
	}
}

// linear returns a scale over d padded by 5% on each side.
func (d dataRange) linear() scale.Linear {
	if !d.ok {
		return scale.Linear{Min: -1, Max: 1}
	}
	lo, hi := d.min, d.max
	if lo == hi {
		pad := math.Max(math.Abs(lo)/2, 1)
		return scale.Linear{Min: lo - pad, Max: hi + pad}
	}
	pad := 0.05 * (hi - lo)
	return scale.Linear{Min: lo - pad, Max: hi + pad}
}

type svgRender struct {
	left, top, w, h float64
	xs, ys          scale.Linear
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func (r *svgRender) px(x float64) float64 {
	return clamp(r.left+r.xs.Map(x)*r.w, r.left, r.left+r.w)
}

func (r *svgRender) py(y float64) float64 {
	return clamp(r.top+(1-r.ys.Map(y))*r.h, r.top, r.top+r.h)
}

// tracePoints returns t's path in pixel coordinates. For "hv" lines
// each pair of points is joined by a horizontal then a vertical step.
func (r *svgRender) tracePoints(t *Trace) []point {
	n := len(t.X)
	if len(t.Y) < n {
		n = len(t.Y)
	}
	hv := t.Line != nil && t.Line.Shape == "hv"
	var pts []point
	for i := 0; i < n; i++ {
		p := point{r.px(t.X[i]), r.py(t.Y[i])}
		if hv && i > 0 {
			pts = append(pts, point{p.x, pts[len(pts)-1].y})
		}
		pts = append(pts, p)
	}
	return pts
}

func pathData(pts []point, closed bool) string {
	var path []byte
	for i, p := range pts {
		if i == 0 {
			path = append(path, 'M')
		} else {
			path = append(path, ' ', 'L')
		}
		path = strconv.AppendFloat(path, p.x, 'f', 2, 64)
		path = append(path, ' ')
		path = strconv.AppendFloat(path, p.y, 'f', 2, 64)
	}
	if closed && len(path) > 0 {
		path = append(path, ' ', 'Z')
	}
	return string(path)
}

func lineStyle(t *Trace) string {
	stroke, width, dash := "black", 2.0, ""
	if t.Line != nil {
		if t.Line.Color != "" {
			stroke = cssColour(t.Line.Color)
		}
		if t.Line.Width != nil {
			width = *t.Line.Width
		}
		dash = dashArrays[t.Line.Dash]
	}
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.6g", stroke, width)
	if dash != "" {
		style += ";stroke-dasharray:" + dash
	}
	return style
}

func markerColour(t *Trace) string {
	switch {
	case t.Marker != nil && t.Marker.Color != "":
		return cssColour(t.Marker.Color)
	case t.Line != nil && t.Line.Color != "":
		return cssColour(t.Line.Color)
	}
	return "black"
}

func (r *svgRender) markers(canvas *svg.SVG, t *Trace) {
	size := 6.0
	if t.Marker != nil && t.Marker.Size > 0 {
		size = t.Marker.Size
	}
	style := "fill:" + markerColour(t)
	for i := 0; i < len(t.X) && i < len(t.Y); i++ {
		x, y := t.X[i], t.Y[i]
		if math.Abs(x) == math.MaxFloat64 || math.Abs(y) == math.MaxFloat64 {
			continue
		}
		canvas.Circle(int(r.px(x)), int(r.py(y)), int(math.Ceil(size/2)), style)
	}
}

func (r *svgRender) axes(canvas *svg.SVG, f *Figure) {
	lineColour := cssColour(f.styleValue("xaxis.linecolor", "black"))
	gridColour := cssColour(f.styleValue("xaxis.gridcolor", "rgb(232,232,232)"))
	showGrid := false
	if v, ok := f.Layout.Get("template.layout.xaxis.showgrid"); ok {
		showGrid, _ = v.(bool)
	}
	tickStyle := "stroke:" + lineColour
	bottom, right := r.top+r.h, r.left+r.w

	xmajor, _ := r.xs.Ticks(scale.TickOptions{Max: int(r.w/90) + 2})
	for _, v := range xmajor {
		x := r.left + r.xs.Map(v)*r.w
		if x < r.left || x > right {
			continue
		}
		if showGrid {
			canvas.Line(int(x), int(r.top), int(x), int(bottom), "stroke:"+gridColour)
		}
		canvas.Line(int(x), int(bottom), int(x), int(bottom)+5, tickStyle)
		canvas.Text(int(x), int(bottom)+5+fontSize, fmt.Sprintf("%.6g", v), "text-anchor:middle")
	}
	ymajor, _ := r.ys.Ticks(scale.TickOptions{Max: int(r.h/50) + 2})
	for _, v := range ymajor {
		y := r.top + (1-r.ys.Map(v))*r.h
		if y < r.top || y > bottom {
			continue
		}
		if showGrid {
			canvas.Line(int(r.left), int(y), int(right), int(y), "stroke:"+gridColour)
		}
		canvas.Line(int(r.left)-5, int(y), int(r.left), int(y), tickStyle)
		canvas.Text(int(r.left)-8, int(y)+fontSize/3, fmt.Sprintf("%.6g", v), "text-anchor:end")
	}
	canvas.Rect(int(r.left), int(r.top), int(r.w), int(r.h), "fill:none;stroke:"+lineColour)
}

func (r *svgRender) legend(canvas *svg.SVG, f *Figure) {
	var items []*Trace
	for _, t := range f.LegendTraces() {
		if t.Type == "" || t.Type == Scatter {
			items = append(items, t)
		}
	}
	if len(items) == 0 {
		return
	}

	const rowHeight, swatch = 18, 30
	title := layoutText(f.Layout, "legend.title")
	longest := len(title)
	for _, t := range items {
		longest = max(longest, len(t.Name))
	}
	bw := float64(swatch + 12 + longest*8)
	bh := float64(len(items)*rowHeight + 8)
	if title != "" {
		bh += rowHeight
	}

	lx := f.layoutNumber("legend.x", 1.02)
	ly := f.layoutNumber("legend.y", 1)
	x := r.left + lx*r.w
	if f.Layout.GetString("legend.xanchor") == "right" {
		x -= bw
	}
	y := r.top + (1-ly)*r.h
	if f.Layout.GetString("legend.yanchor") == "bottom" {
		y -= bh
	}

	style := "fill:none"
	if bg := f.Layout.GetString("legend.bgcolor"); bg != "" {
		style = "fill:" + cssColour(bg)
	}
	if bc := f.Layout.GetString("legend.bordercolor"); bc != "" {
		style += fmt.Sprintf(";stroke:%s;stroke-width:%.6g", cssColour(bc), f.layoutNumber("legend.borderwidth", 0))
	}
	canvas.Rect(int(x), int(y), int(bw), int(bh), style)

	row := y + 4
	if title != "" {
		canvas.Text(int(x)+6, int(row)+fontSize, title)
		row += rowHeight
	}
	for _, t := range items {
		mid := int(row) + rowHeight/2
		if t.Fill != "" && t.Fill != "none" {
			canvas.Rect(int(x)+6, mid-6, swatch-6, 12, "fill:"+cssColour(t.FillColor))
		}
		if t.Mode == "" || strings.Contains(t.Mode, "lines") {
			canvas.Line(int(x)+6, mid, int(x)+swatch, mid, lineStyle(t))
		}
		if strings.Contains(t.Mode, "markers") {
			canvas.Circle(int(x)+6+swatch/2, mid, 4, "fill:"+markerColour(t))
		}
		canvas.Text(int(x)+swatch+10, mid+fontSize/3, t.Name)
		row += rowHeight
	}
}
