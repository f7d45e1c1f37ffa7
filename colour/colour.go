// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colour parses, formats and interpolates the colours used to
// style traces.
//
// A colour may be written as a CSS colour name ("hotpink"), a hex
// string ("#ff69b4"), an rgba(r,g,b,a) or rgb(r,g,b) string, or a
// packed 0xRRGGBBAA integer. Channels are floats nominally in [0, 1];
// the canonical text form is rgba(r,g,b,a) with each channel rounded
// to 4 decimal places.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	// ErrInvalidColourFormat is returned for strings that are not a
	// colour name, hex string, or rgb(a) pattern.
	ErrInvalidColourFormat = errors.New("invalid colour format")

	// ErrUnsupportedColourType is returned for values that are
	// neither strings nor integers.
	ErrUnsupportedColourType = errors.New("unsupported colour type")
)

// Colour is an RGBA colour with float channels. The zero Colour is
// transparent black.
type Colour struct {
	R, G, B, A float64
}

// Common colours.
var (
	Black       = Colour{0, 0, 0, 1}
	White       = Colour{1, 1, 1, 1}
	Transparent = Colour{0, 0, 0, 0}
)

var (
	rgbaRe = regexp.MustCompile(`^\s*rgba\s*\(\s*([\d.]+)\s*,\s*([\d.]+)\s*,\s*([\d.]+)\s*,\s*([\d.]+)\s*\)\s*$`)
	rgbRe  = regexp.MustCompile(`^\s*rgb\s*\(\s*([\d.]+)\s*,\s*([\d.]+)\s*,\s*([\d.]+)\s*\)\s*$`)
)

// baseColours are the single letter shorthands accepted alongside the
// CSS names.
var baseColours = map[string]Colour{
	"b":    {0, 0, 1, 1},
	"g":    {0, 0.5, 0, 1},
	"r":    {1, 0, 0, 1},
	"c":    {0, 0.75, 0.75, 1},
	"m":    {0.75, 0, 0.75, 1},
	"y":    {0.75, 0.75, 0, 1},
	"k":    {0, 0, 0, 1},
	"w":    {1, 1, 1, 1},
	"none": {0, 0, 0, 0},
}

// Parse converts a colour description into a Colour.
//
// Strings are tried, in order, as a colour name, an rgba(...)
// pattern and an rgb(...) pattern (alpha 1). Integers are packed
// 0xRRGGBBAA values. A Colour or image/color.Color is converted
// directly. Any other type yields ErrUnsupportedColourType.
func Parse(v any) (Colour, error) {
	switch v := v.(type) {
	case Colour:
		return v, nil
	case string:
		return ParseString(v)
	case int:
		return FromPacked(uint64(v)), nil
	case int8:
		return FromPacked(uint64(v)), nil
	case int16:
		return FromPacked(uint64(v)), nil
	case int32:
		return FromPacked(uint64(v)), nil
	case int64:
		return FromPacked(uint64(v)), nil
	case uint:
		return FromPacked(uint64(v)), nil
	case uint8:
		return FromPacked(uint64(v)), nil
	case uint16:
		return FromPacked(uint64(v)), nil
	case uint32:
		return FromPacked(uint64(v)), nil
	case uint64:
		return FromPacked(v), nil
	case color.Color:
		c := color.NRGBAModel.Convert(v).(color.NRGBA)
		return fromBytes(c.R, c.G, c.B, c.A), nil
	}
	return Colour{}, fmt.Errorf("%w: %v (%T)", ErrUnsupportedColourType, v, v)
}

// MustParse is like Parse but panics on error. It is meant for
// package-level colour tables.
func MustParse(v any) Colour {
	c, err := Parse(v)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseString parses a colour name, hex string, or rgb(a) string.
func ParseString(s string) (Colour, error) {
	if c, ok := lookupName(s); ok {
		return c, nil
	}
	if m := rgbaRe.FindStringSubmatch(s); m != nil {
		return parseChannels(s, m[1:])
	}
	if m := rgbRe.FindStringSubmatch(s); m != nil {
		return parseChannels(s, append(m[1:], "1"))
	}
	return Colour{}, fmt.Errorf("%w: %q is not a known colour name or rgba(r,g,b,a) string", ErrInvalidColourFormat, s)
}

func lookupName(s string) (Colour, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := baseColours[name]; ok {
		return c, true
	}
	if c, ok := colornames.Map[name]; ok {
		return fromBytes(c.R, c.G, c.B, c.A), true
	}
	if strings.HasPrefix(name, "#") {
		return parseHex(name[1:])
	}
	return Colour{}, false
}

func parseHex(h string) (Colour, bool) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return Colour{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Colour{}, false
	}
	return FromPacked(v), true
}

func parseChannels(s string, fields []string) (Colour, error) {
	var ch [4]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Colour{}, fmt.Errorf("%w: %q: bad channel %q", ErrInvalidColourFormat, s, f)
		}
		ch[i] = x
	}
	return Colour{ch[0], ch[1], ch[2], ch[3]}, nil
}

// FromPacked unpacks a 0xRRGGBBAA integer. Only the low 32 bits are
// used. Each byte is divided by 255 and kept to 4 decimal places, so
// that formatting and re-parsing the result yields the same Colour.
func FromPacked(v uint64) Colour {
	return fromBytes(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
}

func fromBytes(r, g, b, a uint8) Colour {
	ch := func(x uint8) float64 { return round4(float64(x) / 255) }
	return Colour{ch(r), ch(g), ch(b), ch(a)}
}

func round4(x float64) float64 {
	r := math.Round(x*1e4) / 1e4
	if r == 0 {
		// Avoid printing "-0".
		return 0
	}
	return r
}

func formatChannel(x float64) string {
	return strconv.FormatFloat(round4(x), 'f', -1, 64)
}

// String returns c as "rgba(r,g,b,a)" with each channel rounded to 4
// decimal places. Out of range channels are not clamped.
func (c Colour) String() string {
	return "rgba(" + formatChannel(c.R) + "," + formatChannel(c.G) + "," + formatChannel(c.B) + "," + formatChannel(c.A) + ")"
}

// Format is shorthand for c.String.
func Format(c Colour) string {
	return c.String()
}

// Strings formats each colour in cs, preserving order.
func Strings(cs []Colour) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

// WithAlpha returns c with its alpha channel replaced.
func (c Colour) WithAlpha(a float64) Colour {
	c.A = a
	return c
}

// CSS returns c in the 0-255 rgba() form understood by SVG and CSS
// renderers.
func (c Colour) CSS() string {
	b := func(x float64) int { return int(math.Round(clamp01(x) * 255)) }
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", b(c.R), b(c.G), b(c.B), formatChannel(clamp01(c.A)))
}

// RGBA implements image/color.Color. Channels are clamped to [0, 1]
// and alpha-premultiplied.
func (c Colour) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	ch := func(x float64) uint32 { return uint32(clamp01(x)*alpha*0xffff + 0.5) }
	return ch(c.R), ch(c.G), ch(c.B), uint32(alpha*0xffff + 0.5)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	} else if x > 1 {
		return 1
	}
	return x
}
