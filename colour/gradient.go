// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"image/color"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/vec"
)

// LinearGradient returns steps colours interpolated channel-wise
// between a and b, including both ends. If steps <= 1, it returns
// just a.
func LinearGradient(a, b Colour, steps int) []Colour {
	if steps <= 1 {
		return []Colour{a}
	}
	out := make([]Colour, steps)
	d := float64(steps - 1)
	for i := range out {
		f := float64(i)
		out[i] = Colour{
			a.R + f*(b.R-a.R)/d,
			a.G + f*(b.G-a.G)/d,
			a.B + f*(b.B-a.B)/d,
			a.A + f*(b.A-a.A)/d,
		}
	}
	// Pin the ends so they compare equal to the inputs.
	out[0], out[steps-1] = a, b
	return out
}

// OpacityRamp returns steps copies of c whose alpha runs linearly from
// start to end inclusive. If steps is 1, the alpha is start.
func OpacityRamp(c Colour, steps int, start, end float64) []Colour {
	if steps <= 0 {
		return nil
	}
	alphas := vec.Linspace(start, end, steps)
	if steps > 1 {
		alphas[steps-1] = end
	}
	out := make([]Colour, steps)
	for i, a := range alphas {
		out[i] = c.WithAlpha(a)
	}
	return out
}

// DefaultFillColourway is the colourway used for filled attainment
// surfaces: black with opacity rising from 0.6 to 1.
func DefaultFillColourway(steps int) []Colour {
	return OpacityRamp(Black, steps, 0.6, 1)
}

// UniformNested returns one list per entry of sizes, each filled with c.
func UniformNested(sizes []int, c Colour) [][]Colour {
	out := make([][]Colour, len(sizes))
	for i, n := range sizes {
		row := make([]Colour, n)
		for j := range row {
			row[j] = c
		}
		out[i] = row
	}
	return out
}

// Gradient is a two-colour linear gradient.
type Gradient struct {
	From, To Colour
}

var _ palette.Continuous = Gradient{}

// Steps samples g at n evenly spaced points.
func (g Gradient) Steps(n int) []Colour {
	return LinearGradient(g.From, g.To, n)
}

// Map returns the colour at position x in [0, 1]. Positions outside
// that range are clamped.
func (g Gradient) Map(x float64) color.Color {
	x = clamp01(x)
	lerp := func(a, b float64) float64 { return a + x*(b-a) }
	return Colour{
		lerp(g.From.R, g.To.R),
		lerp(g.From.G, g.To.G),
		lerp(g.From.B, g.To.B),
		lerp(g.From.A, g.To.A),
	}
}
