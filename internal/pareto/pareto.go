// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pareto filters dominated points out of objective tables.
package pareto

// FilterWithinSets returns the rows of rows that are not dominated by
// another row of the same set. The last column of each row is its set
// id; the other columns are objectives, minimised unless the
// corresponding element of maximise is true.
//
// Rows keep their input order. Of several identical rows in a set,
// only the first is kept. The check is O(n^2) in the size of a set.
func FilterWithinSets(rows [][]float64, maximise []bool) [][]float64 {
	if len(rows) == 0 {
		return rows
	}

	// Bucket row indexes by set, in order of first appearance.
	var order []float64
	sets := make(map[float64][]int)
	for i, row := range rows {
		id := row[len(row)-1]
		if _, ok := sets[id]; !ok {
			order = append(order, id)
		}
		sets[id] = append(sets[id], i)
	}

	keep := make([]bool, len(rows))
	for _, id := range order {
		idx := sets[id]
		for _, i := range idx {
			keep[i] = true
			for _, j := range idx {
				if i == j {
					continue
				}
				if dominates(rows[j], rows[i], maximise) || (j < i && equal(rows[j], rows[i])) {
					keep[i] = false
					break
				}
			}
		}
	}

	out := make([][]float64, 0, len(rows))
	for i, row := range rows {
		if keep[i] {
			out = append(out, row)
		}
	}
	return out
}

// dominates reports whether a is at least as good as b in every
// objective and strictly better in at least one. The last column is
// ignored.
func dominates(a, b []float64, maximise []bool) bool {
	better := false
	for k := 0; k < len(a)-1; k++ {
		x, y := a[k], b[k]
		if k < len(maximise) && maximise[k] {
			x, y = -x, -y
		}
		if x > y {
			return false
		}
		if x < y {
			better = true
		}
	}
	return better
}

func equal(a, b []float64) bool {
	for k := 0; k < len(a)-1; k++ {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}
