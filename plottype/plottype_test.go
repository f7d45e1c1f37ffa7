// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plottype

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		raw  string
		dim  int
		want Mode
	}{
		{"points", 2, Markers},
		{"p", 2, Markers},
		{"P", 3, Markers},
		{"l", 2, Lines},
		{"line", 2, Lines},
		{"  Lines ", 2, Lines},
		{"LiNe ,  PoInTs", 2, LinesMarkers},
		{"l,p", 2, LinesMarkers},
		{"points,lines", 2, LinesMarkers},
		{"p,p", 2, Markers},
		{"s", 3, Surface},
		{"surface, points", 3, SurfaceMarkers},
		{"p,s", 3, SurfaceMarkers},
		{"c", 3, Cube},
		{"cube", 3, Cube},
		{"f", 2, Fill},
		{"fill", 2, Fill},
		{"l,s", 3, Lines},
		{"s,c", 3, Surface},
		{"Cube,Fill", 3, Cube},
	} {
		got, err := Parse(test.raw, test.dim)
		require.NoError(t, err, "Parse(%q, %d)", test.raw, test.dim)
		assert.Equal(t, test.want, got, "Parse(%q, %d)", test.raw, test.dim)
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		raw  string
		dim  int
		want error
	}{
		{"Bugel horn", 2, ErrUnrecognizedPlotType},
		{"", 2, ErrUnrecognizedPlotType},
		{"points,", 2, ErrUnrecognizedPlotType},
		{"x", 3, ErrUnrecognizedPlotType},
		{"pointsy", 2, ErrUnrecognizedPlotType},
		{"p,l,s", 3, ErrTooManyClauses},
		{"p,,", 2, ErrTooManyClauses},
		{"surface", 2, ErrIncompatibleDimension},
		{"c", 2, ErrIncompatibleDimension},
		{"p, s", 2, ErrIncompatibleDimension},
	} {
		_, err := Parse(test.raw, test.dim)
		require.Error(t, err, "Parse(%q, %d)", test.raw, test.dim)
		assert.ErrorIs(t, err, test.want, "Parse(%q, %d)", test.raw, test.dim)

		var perr *Error
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, test.raw, perr.Raw)
	}

	_, err := Parse("Surface", 2)
	assert.ErrorContains(t, err, `"Surface"`)
	assert.ErrorContains(t, err, "2-D")
}

func TestDimensionGuard(t *testing.T) {
	_, err := Parse("surface", 2)
	assert.ErrorIs(t, err, ErrIncompatibleDimension)
	m, err := Parse("surface", 3)
	require.NoError(t, err)
	assert.Equal(t, Surface, m)
}

func TestModePredicates(t *testing.T) {
	assert.True(t, LinesMarkers.HasMarkers())
	assert.True(t, LinesMarkers.HasLines())
	assert.False(t, Fill.HasLines())
	assert.True(t, SurfaceMarkers.Is3D())
	assert.False(t, Markers.Is3D())
	assert.Panics(t, func() { MustParse("q", 2) })
}
