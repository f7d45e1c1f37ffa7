// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pareto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterWithinSets(t *testing.T) {
	for _, test := range []struct {
		name     string
		rows     [][]float64
		maximise []bool
		want     [][]float64
	}{
		{
			name: "empty",
			rows: nil,
			want: nil,
		},
		{
			name: "one set",
			rows: [][]float64{{1, 5, 1}, {2, 2, 1}, {3, 3, 1}, {5, 1, 1}},
			want: [][]float64{{1, 5, 1}, {2, 2, 1}, {5, 1, 1}},
		},
		{
			name: "sets are independent",
			rows: [][]float64{{1, 1, 1}, {2, 2, 2}, {3, 3, 1}, {1, 3, 2}},
			want: [][]float64{{1, 1, 1}, {2, 2, 2}, {1, 3, 2}},
		},
		{
			name: "weak dominance",
			rows: [][]float64{{1, 2, 1}, {1, 3, 1}},
			want: [][]float64{{1, 2, 1}},
		},
		{
			name: "duplicates",
			rows: [][]float64{{2, 2, 1}, {1, 3, 1}, {2, 2, 1}, {2, 2, 2}},
			want: [][]float64{{2, 2, 1}, {1, 3, 1}, {2, 2, 2}},
		},
		{
			name:     "maximise",
			rows:     [][]float64{{1, 5, 1}, {2, 2, 1}, {3, 3, 1}, {5, 1, 1}},
			maximise: []bool{true, true},
			want:     [][]float64{{1, 5, 1}, {3, 3, 1}, {5, 1, 1}},
		},
		{
			name: "three objectives",
			rows: [][]float64{{1, 1, 1, 7}, {0, 2, 2, 7}, {1, 1, 2, 7}, {2, 0, 0, 7}},
			want: [][]float64{{1, 1, 1, 7}, {0, 2, 2, 7}, {2, 0, 0, 7}},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, FilterWithinSets(test.rows, test.maximise))
		})
	}
}
