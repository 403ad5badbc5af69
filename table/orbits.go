// SPDX-License-Identifier: MIT
// Package: gridquad/table
//
// orbits.go — symmetry orbits on the unit sphere used by the built-in
// datasets. All point sets are generated from exact closed-form vertices
// and converted to native (θ, φ) coordinates once, at store build time.

package table

import (
	"math"

	"github.com/gridquad/gridquad/grid"
)

// octahedronXYZ returns the 6 vertices ±e_i of the regular octahedron.
func octahedronXYZ() [][]float64 {
	return [][]float64{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
}

// cubeXYZ returns the 8 vertices (±1, ±1, ±1)/√3 of the cube.
func cubeXYZ() [][]float64 {
	c := 1 / math.Sqrt(3)
	out := make([][]float64, 0, 8)
	for _, sx := range []float64{1, -1} {
		for _, sy := range []float64{1, -1} {
			for _, sz := range []float64{1, -1} {
				out = append(out, []float64{sx * c, sy * c, sz * c})
			}
		}
	}

	return out
}

// cuboctahedronXYZ returns the 12 edge midpoints of the octahedron,
// (±1, ±1, 0)/√2 and coordinate permutations.
func cuboctahedronXYZ() [][]float64 {
	c := 1 / math.Sqrt2
	out := make([][]float64, 0, 12)
	for _, s1 := range []float64{1, -1} {
		for _, s2 := range []float64{1, -1} {
			out = append(out,
				[]float64{s1 * c, s2 * c, 0},
				[]float64{s1 * c, 0, s2 * c},
				[]float64{0, s1 * c, s2 * c},
			)
		}
	}

	return out
}

// tetrahedronXYZ returns the 4 vertices of the regular tetrahedron
// inscribed in the cube, (1,1,1)-type corners with an even number of
// minus signs, normalized to the unit sphere.
func tetrahedronXYZ() [][]float64 {
	c := 1 / math.Sqrt(3)

	return [][]float64{
		{c, c, c},
		{c, -c, -c},
		{-c, c, -c},
		{-c, -c, c},
	}
}

// icosahedronXYZ returns the 12 vertices of the regular icosahedron,
// the cyclic permutations of (0, ±1, ±φ) normalized to the unit sphere,
// with φ the golden ratio.
func icosahedronXYZ() [][]float64 {
	phi := (1 + math.Sqrt(5)) / 2
	n := math.Sqrt(1 + phi*phi)
	a, b := 1/n, phi/n
	out := make([][]float64, 0, 12)
	for _, s1 := range []float64{1, -1} {
		for _, s2 := range []float64{1, -1} {
			out = append(out,
				[]float64{0, s1 * a, s2 * b},
				[]float64{s2 * b, 0, s1 * a},
				[]float64{s1 * a, s2 * b, 0},
			)
		}
	}

	return out
}

// anglesOf converts exact unit vectors to (θ, φ) rows. The inputs are
// generated vertices with unit norm by construction; a conversion failure
// is a programmer error and panics.
func anglesOf(xyz [][]float64) [][]float64 {
	out := make([][]float64, len(xyz))
	for i, p := range xyz {
		theta, phi, err := grid.AnglesFromXYZ(p[0], p[1], p[2])
		if err != nil {
			panic("table: non-unit orbit vertex: " + err.Error())
		}
		out[i] = []float64{theta, phi}
	}

	return out
}

// concat joins point orbits into one row-major array.
func concat(orbits ...[][]float64) [][]float64 {
	var out [][]float64
	for _, o := range orbits {
		out = append(out, o...)
	}

	return out
}

// repeat returns n copies of w.
func repeat(w float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = w
	}

	return out
}
