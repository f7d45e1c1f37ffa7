// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"testing"

	"github.com/aclements/mooplot/colour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(v any) (any, error) { return v, nil }

func TestBroadcastCycles(t *testing.T) {
	got, err := Broadcast[any](List("a", "b"), 5, None(), identity)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b", "a", "b", "a"}, got)

	lists := [][]any{{1}, {1, 2}, {1, 2, 3}, {1, 2, 3, 4, 5, 6, 7}}
	for _, l := range lists {
		for n := 0; n < 10; n++ {
			got, err := Broadcast[any](List(l...), n, None(), identity)
			require.NoError(t, err)
			require.Len(t, got, n)
			for i := range got {
				assert.Equal(t, l[i%len(l)], got[i], "list %v, n=%d, i=%d", l, n, i)
			}
		}
	}
}

func TestBroadcastDefaults(t *testing.T) {
	def := List(1.5, 2.5)
	for _, arg := range []Arg{None(), List(), Of(nil)} {
		got, err := Widths(arg, 3, def)
		require.NoError(t, err)
		assert.Equal(t, []float64{1.5, 2.5, 1.5}, got, "arg %v", arg)
	}

	// Zero values given explicitly are not defaulted.
	got, err := Widths(Of(0), 2, def)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, got)

	names, err := Names(Of(""), 2, Of("x"))
	require.NoError(t, err)
	assert.Equal(t, []string{"", ""}, names)

	// No value and no default.
	names, err = Names(None(), 2, None())
	require.NoError(t, err)
	assert.Equal(t, []string{"", ""}, names)
}

func TestBroadcastScalar(t *testing.T) {
	cs, err := Colours(Of("red"), 3, None())
	require.NoError(t, err)
	assert.Equal(t, []colour.Colour{{R: 1, G: 0, B: 0, A: 1}, {R: 1, G: 0, B: 0, A: 1}, {R: 1, G: 0, B: 0, A: 1}}, cs)

	cs, err = Colours(Of(0x000000FF), 1, None())
	require.NoError(t, err)
	assert.Equal(t, []colour.Colour{colour.Black}, cs)

	ds, err := Dashes(Of("dot"), 2, None())
	require.NoError(t, err)
	assert.Equal(t, []Dash{Dot, Dot}, ds)
}

func TestBroadcastErrors(t *testing.T) {
	_, err := Dashes(List("solid", "wiggly"), 4, None())
	assert.ErrorIs(t, err, ErrInvalidStyleValue)
	assert.ErrorContains(t, err, "wiggly")
	assert.ErrorContains(t, err, "longdashdot")

	_, err = Widths(List(1, "2"), 4, None())
	assert.ErrorIs(t, err, ErrInvalidStyleValue)

	_, err = Widths(Of(true), 1, None())
	assert.ErrorIs(t, err, ErrInvalidStyleValue)

	_, err = Colours(List("red", "reddish"), 2, None())
	assert.ErrorIs(t, err, colour.ErrInvalidColourFormat)
	assert.ErrorContains(t, err, "reddish")

	_, err = Colours(Of(1.5), 2, None())
	assert.ErrorIs(t, err, colour.ErrUnsupportedColourType)

	_, err = Widths(PerDataset(Of(1)), 1, None())
	assert.ErrorIs(t, err, ErrInvalidStyleValue)
}

func TestBroadcast2DCardinality(t *testing.T) {
	cards := []int{3, 1, 0, 5}
	for _, arg := range []Arg{
		None(),
		Of("blue"),
		List("red", "green", "blue", "black"),
		PerDataset(List("red", "green"), Of("blue"), None(), List("black")),
	} {
		got, err := Colours2D(arg, cards, Of("white"))
		require.NoError(t, err, "arg %v", arg)
		require.Len(t, got, len(cards))
		for i, n := range cards {
			assert.Len(t, got[i], n, "arg %v, dataset %d", arg, i)
		}
	}
}

func TestBroadcast2D(t *testing.T) {
	cards := []int{2, 3}

	// One value for every trace.
	got, err := Widths2D(Of(3), cards, None())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 3}, {3, 3, 3}}, got)

	// One value per dataset.
	got, err = Widths2D(List(1, 2), cards, None())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}, {2, 2, 2}}, got)

	// A list per dataset, with a defaulted dataset.
	got, err = Widths2D(PerDataset(List(1, 4), None()), cards, Of(7))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {7, 7, 7}}, got)

	// Per-dataset defaults.
	got, err = Widths2D(None(), cards, PerDataset(Of(1), List(5, 6)))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}, {5, 6, 5}}, got)

	got, err = Widths2D(PerDataset(None(), Of(2)), cards, PerDataset(Of(1), List(5, 6)))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}, {2, 2, 2}}, got)
}

func TestBroadcast2DMismatch(t *testing.T) {
	_, err := Dashes2D(List("dot", "dash", "solid"), []int{1, 1}, None())
	require.ErrorIs(t, err, ErrCardinalityMismatch)
	assert.ErrorContains(t, err, "got 3 values for 2 datasets")

	_, err = Dashes2D(PerDataset(Of("dot")), []int{1, 1}, None())
	assert.ErrorIs(t, err, ErrCardinalityMismatch)

	_, err = Dashes2D(PerDataset(Of("dot"), Of("zigzag")), []int{1, 1}, None())
	assert.ErrorIs(t, err, ErrInvalidStyleValue)
}

func TestDashNames(t *testing.T) {
	names := DashNames()
	assert.Equal(t, []string{"solid", "dot", "dash", "longdash", "dashdot", "longdashdot"}, names)
	names[0] = "changed"
	assert.Equal(t, "solid", DashNames()[0])

	for _, n := range DashNames() {
		d, err := ParseDash(n)
		require.NoError(t, err)
		assert.Equal(t, n, string(d))
	}
	_, err := ParseDash(Dot)
	assert.NoError(t, err)
	_, err = ParseDash("Solid")
	assert.ErrorIs(t, err, ErrInvalidStyleValue)
}

func TestFromValue(t *testing.T) {
	assert.Equal(t, KindAbsent, FromValue(nil).Kind())
	assert.Equal(t, KindScalar, FromValue("red").Kind())
	assert.Equal(t, KindScalar, FromValue([]byte("red")).Kind())
	assert.Equal(t, KindScalar, FromValue(0xFF0000FF).Kind())

	l := FromValue([]string{"a", "b"})
	assert.Equal(t, KindList, l.Kind())
	assert.Equal(t, []any{"a", "b"}, l.Values())

	n := FromValue([][]float64{{1, 2}, {3}})
	require.Equal(t, KindNested, n.Kind())
	require.Equal(t, 2, n.Len())
	assert.Equal(t, []any{1.0, 2.0}, n.Index(0).Values())

	mixed := FromValue([]any{"red", []any{"green", "blue"}})
	require.Equal(t, KindNested, mixed.Kind())
	assert.Equal(t, KindScalar, mixed.Index(0).Kind())
	assert.Equal(t, KindList, mixed.Index(1).Kind())

	a := List(1)
	assert.Equal(t, a, FromValue(a))
}
