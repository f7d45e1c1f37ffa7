// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/aclements/mooplot/colour"
	"github.com/google/uuid"
)

// PlotlyJS is the plotly.js script loaded by HTML pages.
var PlotlyJS = "https://cdn.plot.ly/plotly-2.35.2.min.js"

const pageHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <script src="{{.Script}}" charset="utf-8"></script>
  </head>
  <body>
    <div id="{{.ID}}" style="{{.Style}}"></div>
    <script type="text/javascript">
      var figure = {{.Figure}};
      Plotly.newPlot({{.ID}}, figure.data, figure.layout, {responsive: true});
    </script>
  </body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// WriteHTML writes f as a standalone HTML page that draws it with
// plotly.js. If width or height is 0, the figure fills the page in
// that dimension.
func (f *Figure) WriteHTML(w io.Writer, width, height int) error {
	size := func(px int, fill string) string {
		if px <= 0 {
			return fill
		}
		return fmt.Sprintf("%dpx", px)
	}
	data := struct {
		Title  string
		Script string
		ID     string
		Style  template.CSS
		Figure *Figure
	}{
		Title:  f.title(),
		Script: PlotlyJS,
		ID:     "mooplot-" + uuid.NewString(),
		Style:  template.CSS("width:" + size(width, "100%") + ";height:" + size(height, "95vh")),
		Figure: f.cssCopy(),
	}
	return pageTemplate.Execute(w, data)
}

func (f *Figure) title() string {
	if s := f.Layout.GetString("title.text"); s != "" {
		return s
	}
	if s := f.Layout.GetString("title"); s != "" {
		return s
	}
	return "mooplot"
}

// cssColour translates a canonical rgba colour to CSS. Anything else
// is assumed to already be CSS.
func cssColour(s string) string {
	if !strings.HasPrefix(s, "rgba(") {
		return s
	}
	c, err := colour.ParseString(s)
	if err != nil {
		return s
	}
	return c.CSS()
}

// cssCopy returns a copy of f with the colours mooplot sets
// translated to CSS.
func (f *Figure) cssCopy() *Figure {
	g := &Figure{Layout: Layout(copyValue(f.Layout).(map[string]any))}
	for _, t := range f.Data {
		t2 := *t
		t2.Color = cssColour(t.Color)
		t2.FillColor = cssColour(t.FillColor)
		if t.Line != nil {
			l := *t.Line
			l.Color = cssColour(l.Color)
			t2.Line = &l
		}
		if t.Marker != nil {
			m := *t.Marker
			m.Color = cssColour(m.Color)
			t2.Marker = &m
		}
		g.Data = append(g.Data, &t2)
	}
	if cw, ok := g.Layout["colorway"].([]string); ok {
		out := make([]string, len(cw))
		for i, c := range cw {
			out[i] = cssColour(c)
		}
		g.Layout["colorway"] = out
	}
	for _, k := range []string{"legend.bgcolor", "legend.bordercolor"} {
		if s := g.Layout.GetString(k); s != "" {
			g.Layout.Set(k, cssColour(s))
		}
	}
	return g
}
