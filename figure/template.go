// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownTemplate is returned for a template name that is not
// built in.
var ErrUnknownTemplate = errors.New("unknown layout template")

func axisStyle(line, grid string, showGrid bool, ticks string) map[string]any {
	return map[string]any{
		"showline":  true,
		"linecolor": line,
		"showgrid":  showGrid,
		"gridcolor": grid,
		"ticks":     ticks,
		"zeroline":  false,
	}
}

// templates holds the layout part of the built-in plotly templates
// that mooplot uses.
var templates = map[string]func() map[string]any{
	"simple_white": func() map[string]any {
		return map[string]any{
			"font":          map[string]any{"color": "rgb(36,36,36)"},
			"paper_bgcolor": "white",
			"plot_bgcolor":  "white",
			"xaxis":         axisStyle("rgb(36,36,36)", "rgb(232,232,232)", false, "outside"),
			"yaxis":         axisStyle("rgb(36,36,36)", "rgb(232,232,232)", false, "outside"),
		}
	},
	"plotly_white": func() map[string]any {
		return map[string]any{
			"font":          map[string]any{"color": "#2a3f5f"},
			"paper_bgcolor": "white",
			"plot_bgcolor":  "white",
			"xaxis":         axisStyle("#EBF0F8", "#EBF0F8", true, ""),
			"yaxis":         axisStyle("#EBF0F8", "#EBF0F8", true, ""),
		}
	},
	"plotly": func() map[string]any {
		return map[string]any{
			"font":          map[string]any{"color": "#2a3f5f"},
			"paper_bgcolor": "white",
			"plot_bgcolor":  "#E5ECF6",
			"xaxis":         axisStyle("white", "white", true, ""),
			"yaxis":         axisStyle("white", "white", true, ""),
		}
	},
	"none": func() map[string]any { return map[string]any{} },
}

// Templates returns the names of the built-in templates.
func Templates() []string {
	names := make([]string, 0, len(templates))
	for n := range templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ApplyTemplate sets f's layout template to the built-in template
// name.
func (f *Figure) ApplyTemplate(name string) error {
	mk, ok := templates[name]
	if !ok {
		return fmt.Errorf("%w %q; must be one of %s", ErrUnknownTemplate, name, strings.Join(Templates(), ", "))
	}
	f.Layout["template"] = map[string]any{"layout": mk()}
	return nil
}

// styleValue looks up path in f's layout, falling back to its
// template and then to def.
func (f *Figure) styleValue(path, def string) string {
	if s := f.Layout.GetString(path); s != "" {
		return s
	}
	if s := f.Layout.GetString("template.layout." + path); s != "" {
		return s
	}
	return def
}
