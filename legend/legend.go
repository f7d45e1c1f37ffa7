// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legend resolves legend presets to explicit legend layout.
package legend

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aclements/mooplot/colour"
)

var (
	ErrInvalidPresetType = errors.New("legend preset must be a position name, a 4-element list or a mapping")
	ErrUnknownPosition   = errors.New("unknown legend position")
)

// DefaultPosition is used when a preset does not name a position.
const DefaultPosition = "centre_top_right"

// Invisible may be given for either preset colour to make it fully
// transparent.
const Invisible = "invisible"

// borderWidth is the legend border width when a border colour is set.
const borderWidth = 2.5

var positions = map[string][2]float64{
	"outside_top_right":   {1.02, 1},
	"outside_top_left":    {-0.2, 1},
	"top_right":           {1, 1},
	"bottom_right":        {1, 0},
	"top_left":            {0, 1},
	"bottom_left":         {0, 0},
	"centre_top_right":    {0.975, 0.95},
	"centre_top_left":     {0.025, 0.95},
	"centre_bottom_right": {0.975, 0.05},
	"centre_bottom_left":  {0.025, 0.05},
}

// Positions returns the preset position names in sorted order.
func Positions() []string {
	names := make([]string, 0, len(positions))
	for n := range positions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Preset is the structured form of a legend preset. Empty fields
// leave the corresponding setting unchanged, except Position, which
// defaults to DefaultPosition. A nil Title leaves the title alone;
// a pointer to "" removes it.
type Preset struct {
	Position   string
	Title      *string
	Background string
	Border     string
}

// Legend is a resolved legend preset.
type Legend struct {
	Position         string
	X, Y             float64
	XAnchor, YAnchor string
	Background       string // canonical colour, or "" to leave unchanged
	Border           string // canonical colour, or ""
	BorderWidth      float64
	Title            *string
}

// Resolve resolves a legend preset. p may be
//
//   - a position name, such as "top_left";
//   - a Preset or *Preset;
//   - a 4-element []string or []any: position, title, background
//     colour and border colour (nil elements of a []any are unset);
//   - a map[string]string or map[string]any with the keys position,
//     text, colour and border_colour.
func Resolve(p any) (Legend, error) {
	var pr Preset
	switch p := p.(type) {
	case string:
		pr.Position = p
	case Preset:
		pr = p
	case *Preset:
		if p != nil {
			pr = *p
		}
	case []string:
		if len(p) != 4 {
			return Legend{}, fmt.Errorf("%w: got %d-element list", ErrInvalidPresetType, len(p))
		}
		pr = Preset{p[0], &p[1], p[2], p[3]}
	case []any:
		if len(p) != 4 {
			return Legend{}, fmt.Errorf("%w: got %d-element list", ErrInvalidPresetType, len(p))
		}
		var err error
		if pr, err = fromFields(p[0], p[1], p[2], p[3]); err != nil {
			return Legend{}, err
		}
	case map[string]string:
		get := func(k string) any {
			if v, ok := p[k]; ok {
				return v
			}
			return nil
		}
		var err error
		if pr, err = fromFields(get("position"), get("text"), get("colour"), get("border_colour")); err != nil {
			return Legend{}, err
		}
	case map[string]any:
		var err error
		if pr, err = fromFields(p["position"], p["text"], p["colour"], p["border_colour"]); err != nil {
			return Legend{}, err
		}
	default:
		return Legend{}, fmt.Errorf("%w: got %T", ErrInvalidPresetType, p)
	}
	return pr.Resolve()
}

func fromFields(pos, title, bg, border any) (Preset, error) {
	var pr Preset
	str := func(v any, what string) (string, error) {
		switch v := v.(type) {
		case nil:
			return "", nil
		case string:
			return v, nil
		}
		return "", fmt.Errorf("%w: %s %v is a %T, not a string", ErrInvalidPresetType, what, v, v)
	}
	var err error
	if pr.Position, err = str(pos, "position"); err != nil {
		return pr, err
	}
	if title != nil {
		t, err := str(title, "title")
		if err != nil {
			return pr, err
		}
		pr.Title = &t
	}
	if pr.Background, err = str(bg, "colour"); err != nil {
		return pr, err
	}
	if pr.Border, err = str(border, "border colour"); err != nil {
		return pr, err
	}
	return pr, nil
}

// Resolve resolves p to explicit coordinates and colours.
func (p Preset) Resolve() (Legend, error) {
	pos := p.Position
	if pos == "" {
		pos = DefaultPosition
	}
	xy, ok := positions[pos]
	if !ok {
		return Legend{}, fmt.Errorf("%w %q; must be one of %s", ErrUnknownPosition, pos, strings.Join(Positions(), ", "))
	}
	l := Legend{
		Position: pos,
		X:        xy[0],
		Y:        xy[1],
		XAnchor:  "right",
		YAnchor:  "bottom",
		Title:    p.Title,
	}
	if strings.Contains(pos, "left") || strings.Contains(pos, "outside") {
		l.XAnchor = "left"
	}
	if strings.Contains(pos, "top") || strings.Contains(pos, "outside") {
		l.YAnchor = "top"
	}

	var err error
	if l.Background, err = presetColour(p.Background); err != nil {
		return Legend{}, err
	}
	if l.Border, err = presetColour(p.Border); err != nil {
		return Legend{}, err
	}
	if l.Border != "" {
		l.BorderWidth = borderWidth
	}
	return l, nil
}

func presetColour(s string) (string, error) {
	switch s {
	case "":
		return "", nil
	case Invisible:
		return colour.Transparent.String(), nil
	}
	c, err := colour.ParseString(s)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// Layout returns the legend as figure layout attributes.
func (l Legend) Layout() map[string]any {
	lg := map[string]any{
		"x":           l.X,
		"y":           l.Y,
		"xanchor":     l.XAnchor,
		"yanchor":     l.YAnchor,
		"borderwidth": l.BorderWidth,
	}
	if l.Background != "" {
		lg["bgcolor"] = l.Background
	}
	if l.Border != "" {
		lg["bordercolor"] = l.Border
	}
	if l.Title != nil {
		lg["title"] = map[string]any{"text": *l.Title}
	}
	return map[string]any{"legend": lg}
}
