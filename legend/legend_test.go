// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legend

import (
	"testing"

	"github.com/aclements/mooplot/colour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositions(t *testing.T) {
	for _, test := range []struct {
		pos            string
		x, y           float64
		xanchor, yanch string
	}{
		{"outside_top_right", 1.02, 1, "left", "top"},
		{"outside_top_left", -0.2, 1, "left", "top"},
		{"top_right", 1, 1, "right", "top"},
		{"bottom_right", 1, 0, "right", "bottom"},
		{"top_left", 0, 1, "left", "top"},
		{"bottom_left", 0, 0, "left", "bottom"},
		{"centre_top_right", 0.975, 0.95, "right", "top"},
		{"centre_top_left", 0.025, 0.95, "left", "top"},
		{"centre_bottom_right", 0.975, 0.05, "right", "bottom"},
		{"centre_bottom_left", 0.025, 0.05, "left", "bottom"},
	} {
		l, err := Resolve(test.pos)
		require.NoError(t, err, test.pos)
		assert.Equal(t, test.x, l.X, test.pos)
		assert.Equal(t, test.y, l.Y, test.pos)
		assert.Equal(t, test.xanchor, l.XAnchor, test.pos)
		assert.Equal(t, test.yanch, l.YAnchor, test.pos)
		assert.Zero(t, l.BorderWidth, test.pos)
		assert.Nil(t, l.Title, test.pos)
	}
	assert.Len(t, Positions(), 10)
}

func TestResolveDefaults(t *testing.T) {
	for _, p := range []any{"", Preset{}, []any{nil, nil, nil, nil}, map[string]string{}, map[string]any{}} {
		l, err := Resolve(p)
		require.NoError(t, err, "%#v", p)
		assert.Equal(t, DefaultPosition, l.Position, "%#v", p)
		assert.Equal(t, 0.975, l.X)
	}
}

func TestResolveList(t *testing.T) {
	l, err := Resolve([]string{"top_left", "Algorithms", "white", "black"})
	require.NoError(t, err)
	assert.Equal(t, "top_left", l.Position)
	require.NotNil(t, l.Title)
	assert.Equal(t, "Algorithms", *l.Title)
	assert.Equal(t, "rgba(1,1,1,1)", l.Background)
	assert.Equal(t, "rgba(0,0,0,1)", l.Border)
	assert.Equal(t, 2.5, l.BorderWidth)

	l, err = Resolve([]any{"bottom_right", "", nil, nil})
	require.NoError(t, err)
	require.NotNil(t, l.Title)
	assert.Equal(t, "", *l.Title)
	assert.Zero(t, l.BorderWidth)

	_, err = Resolve([]string{"top_left", "x"})
	assert.ErrorIs(t, err, ErrInvalidPresetType)
	_, err = Resolve([]any{"top_left", 3, nil, nil})
	assert.ErrorIs(t, err, ErrInvalidPresetType)
}

func TestResolveMap(t *testing.T) {
	l, err := Resolve(map[string]string{"position": "bottom_left", "colour": "invisible", "border_colour": "invisible"})
	require.NoError(t, err)
	assert.Equal(t, "bottom_left", l.Position)
	assert.Equal(t, colour.Transparent.String(), l.Background)
	assert.Equal(t, colour.Transparent.String(), l.Border)
	assert.Equal(t, 2.5, l.BorderWidth)
	assert.Nil(t, l.Title)

	// Each colour field is handled on its own.
	l, err = Resolve(map[string]any{"colour": "invisible", "text": "Runs"})
	require.NoError(t, err)
	assert.Equal(t, "rgba(0,0,0,0)", l.Background)
	assert.Equal(t, "", l.Border)
	assert.Zero(t, l.BorderWidth)
	assert.Equal(t, "Runs", *l.Title)
}

func TestResolveErrors(t *testing.T) {
	_, err := Resolve(42)
	assert.ErrorIs(t, err, ErrInvalidPresetType)
	_, err = Resolve(nil)
	assert.ErrorIs(t, err, ErrInvalidPresetType)
	_, err = Resolve("middle")
	assert.ErrorIs(t, err, ErrUnknownPosition)
	_, err = Resolve(Preset{Background: "not a colour"})
	assert.ErrorIs(t, err, colour.ErrInvalidColourFormat)
	_, err = Resolve(map[string]string{"border_colour": "not a colour"})
	assert.ErrorIs(t, err, colour.ErrInvalidColourFormat)
	_, err = Resolve(map[string]string{"position": "middle"})
	assert.ErrorIs(t, err, ErrUnknownPosition)
}

func TestLayout(t *testing.T) {
	title := "Algorithm"
	l, err := Preset{Position: "top_right", Title: &title, Border: "black"}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"legend": map[string]any{
			"x":           1.0,
			"y":           1.0,
			"xanchor":     "right",
			"yanchor":     "top",
			"borderwidth": 2.5,
			"bordercolor": "rgba(0,0,0,1)",
			"title":       map[string]any{"text": "Algorithm"},
		},
	}, l.Layout())
}
