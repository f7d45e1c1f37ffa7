// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mooplot builds plotly-style figures of Pareto fronts and
// empirical attainment functions (EAFs) from objective tables.
//
// Input tables are [][]float64 in row-major order. For PlotPF the last
// column is the set each row belongs to and the other two or three
// columns are objectives. For PlotEAF every dataset has exactly three
// columns: two objectives and the percentile the row belongs to.
//
// Style arguments (colours, dashes, widths, percentiles, types) are
// style.Arg values, so a caller can give one value for everything, a
// list that is cycled, or one list per dataset. See package style.
package mooplot

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/mooplot/colour"
	"github.com/aclements/mooplot/figure"
	"github.com/aclements/mooplot/plottype"
	"github.com/aclements/mooplot/style"
)

var (
	ErrInsufficientColumns  = errors.New("table needs at least 3 columns")
	ErrUnsupportedDimension = errors.New("only 2 or 3 objectives are supported")
	ErrRaggedTable          = errors.New("table rows have different lengths")
	ErrEmptyDataset         = errors.New("dataset has no rows")
	ErrInvalidSet           = errors.New("set column is NaN")

	// These are returned by the packages that detect them and are
	// repeated here for callers of this package.
	ErrCardinalityMismatch   = style.ErrCardinalityMismatch
	ErrInvalidStyleValue     = style.ErrInvalidStyleValue
	ErrIncompatibleDimension = plottype.ErrIncompatibleDimension
	ErrTraceNameCount        = figure.ErrTraceNameCount
)

// plotlyColorway is plotly's default qualitative palette.
var plotlyColorway = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

func defaultColorway() style.Arg {
	vs := make([]any, len(plotlyColorway))
	for i, c := range plotlyColorway {
		vs[i] = c
	}
	return style.List(vs...)
}

// checkTable validates the shape of data and returns its column
// count. A table must have between lo and hi columns.
func checkTable(data [][]float64, lo, hi int) (int, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	ncols := len(data[0])
	for i, row := range data {
		if len(row) != ncols {
			return 0, fmt.Errorf("%w: row %d has %d columns, row 0 has %d", ErrRaggedTable, i, len(row), ncols)
		}
	}
	if ncols < lo {
		return 0, fmt.Errorf("%w: got %d", ErrInsufficientColumns, ncols)
	}
	if ncols > hi {
		return 0, fmt.Errorf("%w: got %d columns", ErrUnsupportedDimension, ncols)
	}
	for i, row := range data {
		if math.IsNaN(row[ncols-1]) {
			return 0, fmt.Errorf("%w: row %d", ErrInvalidSet, i)
		}
	}
	return ncols, nil
}

// objectiveName returns the table column name of objective k, counting
// from 0.
func objectiveName(k int) string {
	return "Objective " + strconv.Itoa(k+1)
}

// set is the rows of one set (or one percentile), column-wise.
type set struct {
	id   float64
	cols [][]float64
}

func (s *set) x() []float64 { return s.cols[0] }
func (s *set) y() []float64 { return s.cols[1] }
func (s *set) z() []float64 { return s.cols[2] }

// groupSets splits data by its last column into sets, in order of
// first appearance. If sortX is set, each set's rows are sorted by the
// first objective.
func groupSets(data [][]float64, sortX bool) []*set {
	nobj := len(data[0]) - 1
	cols := make([][]float64, nobj)
	ids := make([]float64, len(data))
	var order []float64
	seen := make(map[float64]bool)
	for i, row := range data {
		for k := 0; k < nobj; k++ {
			cols[k] = append(cols[k], row[k])
		}
		ids[i] = row[nobj]
		if !seen[ids[i]] {
			seen[ids[i]] = true
			order = append(order, ids[i])
		}
	}

	b := new(table.Builder)
	for k, col := range cols {
		b.Add(objectiveName(k), col)
	}
	g := table.GroupBy(b.Add("Set", ids).Done(), "Set")
	if sortX {
		g = table.SortBy(g, objectiveName(0))
	}

	byID := make(map[float64]*table.Table)
	for _, gid := range g.Tables() {
		byID[gid.Label().(float64)] = g.Table(gid)
	}
	sets := make([]*set, len(order))
	for i, id := range order {
		t := byID[id]
		s := &set{id: id, cols: make([][]float64, nobj)}
		for k := range s.cols {
			slice.Convert(&s.cols[k], t.MustColumn(objectiveName(k)))
		}
		sets[i] = s
	}
	return sets
}

// setName is the legend name of a set, such as "1" or "0.5".
func setName(id float64) string {
	return strconv.FormatFloat(id, 'f', -1, 64)
}

// colourStrings broadcasts arg to n colours in canonical form.
func colourStrings(arg style.Arg, n int, def style.Arg) ([]string, error) {
	cs, err := style.Colours(arg, n, def)
	if err != nil {
		return nil, err
	}
	return colour.Strings(cs), nil
}
