// SPDX-License-Identifier: MIT
// Package: gridquad/table
//
// data_lebedev.go — built-in Lebedev-Laikov S2 rules.
//
// Only the rules whose weights are exactly representable as rationals are
// bundled: degree 3 (6 points), degree 5 (14 points) and degree 7
// (26 points). The classic octahedral orbit structure gives
//
//	degree 3:  a1 = 1/6                     on the 6 octahedron vertices
//	degree 5:  a1 = 1/15,  a3 = 3/40        (6 + 8 points)
//	degree 7:  a1 = 1/21,  a2 = 4/105, a3 = 9/280   (6 + 12 + 8 points)
//
// Larger Lebedev grids carry numerically optimized weights and attach via
// Register, like any external source.

package table

import "fmt"

// lebedevDatasets assembles the built-in Lebedev-Laikov rules in native
// (θ, φ) coordinates with normalized weights.
func lebedevDatasets() []Dataset {
	a1 := anglesOf(octahedronXYZ())    // 6 vertices
	a2 := anglesOf(cuboctahedronXYZ()) // 12 edge midpoints
	a3 := anglesOf(cubeXYZ())          // 8 cube vertices

	return []Dataset{
		{
			Degree:  3,
			Size:    6,
			Points:  concat(a1),
			Weights: repeat(1.0/6, 6),
		},
		{
			Degree: 5,
			Size:   14,
			Points: concat(a1, a3),
			Weights: append(
				repeat(1.0/15, 6),
				repeat(3.0/40, 8)...,
			),
		},
		{
			Degree: 7,
			Size:   26,
			Points: concat(a1, a2, a3),
			Weights: append(append(
				repeat(1.0/21, 6),
				repeat(4.0/105, 12)...),
				repeat(9.0/280, 8)...,
			),
		},
	}
}

// registerLebedev populates the Lebedev key on a store.
func registerLebedev(s *Store) {
	for _, ds := range lebedevDatasets() {
		if err := s.Register(LebedevLaikov, ds); err != nil {
			panic(fmt.Sprintf("table: built-in Lebedev dataset: %v", err))
		}
	}
}
