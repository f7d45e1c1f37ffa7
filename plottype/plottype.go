// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plottype parses plot type strings such as "points",
// "p,l" or "Surface, Points" into a drawing Mode.
//
// A type string has at most two comma-separated clauses. Each clause
// is an abbreviation of one of lines, points, surface, cube or fill:
// the first word in that order that starts with the clause wins, so
// "l" is lines and "p" is points. Case and whitespace are ignored.
package plottype

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Mode is a canonical drawing mode.
type Mode string

const (
	Markers        Mode = "markers"
	Lines          Mode = "lines"
	LinesMarkers   Mode = "lines+markers"
	Surface        Mode = "surface"
	SurfaceMarkers Mode = "surface+markers"
	Cube           Mode = "cube"
	Fill           Mode = "fill"
)

// HasMarkers reports whether m draws individual points.
func (m Mode) HasMarkers() bool {
	return m == Markers || m == LinesMarkers || m == SurfaceMarkers
}

// HasLines reports whether m draws lines between points.
func (m Mode) HasLines() bool {
	return m == Lines || m == LinesMarkers
}

// Is3D reports whether m is only meaningful for three objectives.
func (m Mode) Is3D() bool {
	return m == Surface || m == SurfaceMarkers || m == Cube
}

var (
	ErrTooManyClauses        = errors.New("too many plot type clauses")
	ErrIncompatibleDimension = errors.New("plot type is incompatible with data dimension")
	ErrUnrecognizedPlotType  = errors.New("unrecognized plot type")
)

// Error describes a plot type string that could not be parsed.
type Error struct {
	Err     error    // one of the Err* values
	Raw     string   // the string passed to Parse
	Clauses []string // normalised clauses
	Dim     int
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%v %q (clauses %q)", e.Err, e.Raw, e.Clauses)
	if e.Err == ErrIncompatibleDimension {
		msg += fmt.Sprintf(" for %d-D data", e.Dim)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

const (
	wLines = iota
	wPoints
	wSurface
	wCube
	wFill
)

var vocab = [...]string{
	wLines:   "lines",
	wPoints:  "points",
	wSurface: "surface",
	wCube:    "cube",
	wFill:    "fill",
}

// Parse parses a plot type string for data with dim objectives.
func Parse(raw string, dim int) (Mode, error) {
	norm := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cases.Fold().String(raw))
	clauses := strings.Split(norm, ",")
	fail := func(err error) (Mode, error) {
		return "", &Error{err, raw, clauses, dim}
	}
	if len(clauses) > 2 {
		return fail(ErrTooManyClauses)
	}

	var have [len(vocab)]bool
	for _, c := range clauses {
		w := lookup(c)
		if w < 0 {
			return fail(ErrUnrecognizedPlotType)
		}
		have[w] = true
	}
	if dim == 2 && (have[wSurface] || have[wCube]) {
		return fail(ErrIncompatibleDimension)
	}

	switch {
	case have[wPoints] && have[wLines]:
		return LinesMarkers, nil
	case have[wPoints] && have[wSurface]:
		return SurfaceMarkers, nil
	case have[wPoints]:
		return Markers, nil
	case have[wLines]:
		return Lines, nil
	case have[wSurface]:
		return Surface, nil
	case have[wCube]:
		return Cube, nil
	case have[wFill]:
		return Fill, nil
	}
	return fail(ErrUnrecognizedPlotType)
}

// MustParse is like Parse but panics on error.
func MustParse(raw string, dim int) Mode {
	m, err := Parse(raw, dim)
	if err != nil {
		panic(err)
	}
	return m
}

// lookup returns the index in vocab of the first word with prefix c,
// or -1.
func lookup(c string) int {
	if c == "" {
		return -1
	}
	for i, w := range vocab {
		if strings.HasPrefix(w, c) {
			return i
		}
	}
	return -1
}
