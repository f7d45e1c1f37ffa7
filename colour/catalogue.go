// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownGradientFamily is returned for a gradient family name
// that is not in the catalogue.
var ErrUnknownGradientFamily = errors.New("unknown gradient family")

// NamedGradient is a catalogue entry.
type NamedGradient struct {
	Name string
	Gradient
}

func g(name string, from, to uint32) NamedGradient {
	return NamedGradient{name, Gradient{FromPacked(uint64(from)), FromPacked(uint64(to))}}
}

// catalogue holds the built-in gradient families. Entries are in the
// order they are handed out to datasets. It is never modified.
var catalogue = map[string][]NamedGradient{
	"arctic_exploration": {
		g("frosty_blue", 0x93C5FDFF, 0x3693E1FF),
		g("icy_cyan", 0xA8E6CFFF, 0x5EB5A6FF),
		g("glacier_teal", 0x6CC3D5FF, 0x408C9EFF),
		g("snowy_white", 0xF0F8FFFF, 0xC8E1EAFF),
		g("arctic_blue", 0x65C1ECFF, 0x3088ABFF),
		g("polar_silver", 0xCFD8DCFF, 0x89979FFF),
		g("frozen_gray", 0xABB9C2FF, 0x6C7D86FF),
		g("cold_ice", 0xB5D9EBFF, 0x7FA8D4FF),
		g("crisp_blue", 0x6DAAD5FF, 0x3773A0FF),
		g("arctic_sky", 0x9EC9E8FF, 0x4B80A7FF),
	},
	"scientific": {
		g("gray_to_black", 0x808080FF, 0x000000FF),
		g("blue_to_gray", 0x1F77B4FF, 0x808080FF),
		g("green_to_gray", 0x2CA02CFF, 0x808080FF),
		g("orange_to_gray", 0xFF7F0EFF, 0x808080FF),
		g("purple_to_gray", 0x9467BDFF, 0x808080FF),
		g("teal_to_gray", 0x17BECFFF, 0x808080FF),
		g("red_to_gray", 0xD62728FF, 0x808080FF),
		g("pink_to_gray", 0xE377C2FF, 0x808080FF),
		g("brown_to_gray", 0x8C564BFF, 0x808080FF),
		g("blue_to_cyan", 0x1F77B4FF, 0x17BECFFF),
	},
	"contrast": {
		g("frosty_blue", 0x93C5FDFF, 0x3693E1FF),
		g("vibrant_green", 0x00FF00FF, 0x00CC00FF),
		g("intense_purple", 0x9B59B6FF, 0x5D328BFF),
		g("brilliant_orange", 0xFFA500FF, 0xFF8000FF),
		g("deep_cyan", 0x17BECFFF, 0x008B8BFF),
		g("hot_pink", 0xFF69B4FF, 0xFF1493FF),
		g("bright_turquoise", 0x40E0D0FF, 0x00CED1FF),
		g("fiery_red", 0xFF0000FF, 0xCC0000FF),
		g("luminous_lime", 0x00FF00FF, 0x32CD32FF),
		g("electric_yellow", 0xFFFF00FF, 0xFFCC00FF),
	},
	"warm": {
		g("red_to_yellow", 0xFF0000FF, 0xFFFF00FF),
		g("orange_to_yellow", 0xFFA500FF, 0xFFFF00FF),
		g("orange_to_red", 0xFFA500FF, 0xFF0000FF),
		g("brown_to_orange", 0x8B4513FF, 0xFFA500FF),
		g("red_to_brown", 0xFF0000FF, 0x8B4513FF),
		g("yellow_to_brown", 0xFFFF00FF, 0x8B4513FF),
		g("red_to_pink", 0xFF0000FF, 0xFF69B4FF),
		g("orange_to_pink", 0xFFA500FF, 0xFF69B4FF),
		g("yellow_to_red", 0xFFFF00FF, 0xFF0000FF),
		g("yellow_to_orange", 0xFFFF00FF, 0xFFA500FF),
	},
}

// DefaultFamily is the gradient family used for multi-dataset
// attainment plots.
const DefaultFamily = "scientific"

// Families returns the catalogue family names in sorted order.
func Families() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalogue returns a copy of the gradients in family.
func Catalogue(family string) ([]NamedGradient, error) {
	gs, ok := catalogue[family]
	if !ok {
		return nil, fmt.Errorf("%w %q; known families are %v", ErrUnknownGradientFamily, family, Families())
	}
	return append([]NamedGradient(nil), gs...), nil
}

// ExampleGradients assigns one gradient of family to each dataset and
// samples it at that dataset's size. Datasets beyond the size of the
// family reuse its gradients from the start.
func ExampleGradients(family string, sizes []int) ([][]Colour, error) {
	gs, err := Catalogue(family)
	if err != nil {
		return nil, err
	}
	out := make([][]Colour, len(sizes))
	for i, n := range sizes {
		out[i] = gs[i%len(gs)].Steps(n)
	}
	return out, nil
}
