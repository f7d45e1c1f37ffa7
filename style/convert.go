// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"fmt"
	"strings"

	"github.com/aclements/mooplot/colour"
)

// Dash is a line dash pattern.
type Dash string

const (
	Solid       Dash = "solid"
	Dot         Dash = "dot"
	Dashed      Dash = "dash"
	LongDash    Dash = "longdash"
	DashDot     Dash = "dashdot"
	LongDashDot Dash = "longdashdot"
)

var dashes = [...]Dash{Solid, Dot, Dashed, LongDash, DashDot, LongDashDot}

// DashNames returns the accepted dash names.
func DashNames() []string {
	out := make([]string, len(dashes))
	for i, d := range dashes {
		out[i] = string(d)
	}
	return out
}

// ParseDash accepts one of the names returned by DashNames.
func ParseDash(v any) (Dash, error) {
	var s string
	switch v := v.(type) {
	case Dash:
		s = string(v)
	case string:
		s = v
	default:
		return "", fmt.Errorf("%w: dash %v (%T) must be one of %s", ErrInvalidStyleValue, v, v, strings.Join(DashNames(), ", "))
	}
	for _, d := range dashes {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: dash %q must be one of %s", ErrInvalidStyleValue, s, strings.Join(DashNames(), ", "))
}

// ParseWidth accepts any Go integer or float type.
func ParseWidth(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%w: width %v (%T) must be a number", ErrInvalidStyleValue, v, v)
}

// ParseName accepts a string or a fmt.Stringer.
func ParseName(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return "", fmt.Errorf("%w: name %v (%T) must be a string", ErrInvalidStyleValue, v, v)
}

// Colours broadcasts a colour argument to n colours.
func Colours(arg Arg, n int, def Arg) ([]colour.Colour, error) {
	return Broadcast[colour.Colour](arg, n, def, colour.Parse)
}

// Dashes broadcasts a dash argument to n dashes.
func Dashes(arg Arg, n int, def Arg) ([]Dash, error) {
	return Broadcast[Dash](arg, n, def, ParseDash)
}

// Widths broadcasts a width argument to n widths.
func Widths(arg Arg, n int, def Arg) ([]float64, error) {
	return Broadcast[float64](arg, n, def, ParseWidth)
}

// Names broadcasts a name argument to n names.
func Names(arg Arg, n int, def Arg) ([]string, error) {
	return Broadcast[string](arg, n, def, ParseName)
}

// Colours2D broadcasts a colour argument across datasets.
func Colours2D(arg Arg, cards []int, def Arg) ([][]colour.Colour, error) {
	return Broadcast2D[colour.Colour](arg, cards, def, colour.Parse)
}

// Dashes2D broadcasts a dash argument across datasets.
func Dashes2D(arg Arg, cards []int, def Arg) ([][]Dash, error) {
	return Broadcast2D[Dash](arg, cards, def, ParseDash)
}

// Widths2D broadcasts a width argument across datasets.
func Widths2D(arg Arg, cards []int, def Arg) ([][]float64, error) {
	return Broadcast2D[float64](arg, cards, def, ParseWidth)
}

// ColourArg converts a list of colours into a list Arg, for use as a
// default.
func ColourArg(cs []colour.Colour) Arg {
	vs := make([]any, len(cs))
	for i, c := range cs {
		vs[i] = c
	}
	return List(vs...)
}

// NestedColourArg converts one colour list per dataset into a nested
// Arg.
func NestedColourArg(css [][]colour.Colour) Arg {
	args := make([]Arg, len(css))
	for i, cs := range css {
		args[i] = ColourArg(cs)
	}
	return PerDataset(args...)
}
