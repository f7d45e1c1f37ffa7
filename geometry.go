// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mooplot

import "math"

// AddExtremes extends a front so its stepped line runs off the edges
// of the plot. It returns copies of x and y with a point added at each
// end: first the best x paired with the worst possible y, last the
// worst possible x paired with the best y. maximise gives the
// direction of each objective.
//
// The "worst possible" value is ±math.MaxFloat64, which plotly draws
// as running off the axis.
func AddExtremes(x, y []float64, maximise [2]bool) (xs, ys []float64) {
	bestX, infX := extremes(x, maximise[0])
	bestY, infY := extremes(y, maximise[1])

	xs = make([]float64, 0, len(x)+2)
	xs = append(xs, bestX)
	xs = append(xs, x...)
	xs = append(xs, infX)

	ys = make([]float64, 0, len(y)+2)
	ys = append(ys, infY)
	ys = append(ys, y...)
	ys = append(ys, bestY)
	return xs, ys
}

func extremes(v []float64, maximise bool) (best, inf float64) {
	if maximise {
		best, inf = math.Inf(-1), -math.MaxFloat64
		for _, x := range v {
			best = math.Max(best, x)
		}
	} else {
		best, inf = math.Inf(1), math.MaxFloat64
		for _, x := range v {
			best = math.Min(best, x)
		}
	}
	return
}

// CubePoints expands each point of a 3-objective set into the 8
// corners of the box between the origin and the point. The result has
// 8 rows per input point, in input order; corner c of point n is row
// 8n+c with coordinates (x*i, y*j, z*k) where i, j and k are bits 2, 1
// and 0 of c.
func CubePoints(x, y, z []float64) (cx, cy, cz []float64) {
	n := len(x)
	cx = make([]float64, 0, 8*n)
	cy = make([]float64, 0, 8*n)
	cz = make([]float64, 0, 8*n)
	for p := 0; p < n; p++ {
		for c := 0; c < 8; c++ {
			i, j, k := float64(c>>2), float64((c>>1)&1), float64(c&1)
			cx = append(cx, x[p]*i)
			cy = append(cy, y[p]*j)
			cz = append(cz, z[p]*k)
		}
	}
	return
}

// Triangle vertex offsets for the 12 triangles covering the faces of
// one box from CubePoints.
var (
	cubeI = [12]int{1, 1, 4, 4, 2, 2, 0, 3, 3, 6, 4, 4}
	cubeJ = [12]int{3, 5, 5, 1, 4, 4, 2, 2, 2, 7, 6, 7}
	cubeK = [12]int{7, 7, 1, 0, 6, 0, 1, 1, 6, 3, 7, 5}
)

// TriangleIndices returns mesh3d triangle indices for n boxes laid out
// by CubePoints: 12 triangles per box, offset by 8 for each box.
func TriangleIndices(n int) (i, j, k []int) {
	i = make([]int, 0, 12*n)
	j = make([]int, 0, 12*n)
	k = make([]int, 0, 12*n)
	for b := 0; b < n; b++ {
		off := 8 * b
		for t := range cubeI {
			i = append(i, cubeI[t]+off)
			j = append(j, cubeJ[t]+off)
			k = append(k, cubeK[t]+off)
		}
	}
	return
}
