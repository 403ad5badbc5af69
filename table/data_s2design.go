// SPDX-License-Identifier: MIT
// Package: gridquad/table
//
// data_s2design.go — built-in spherical designs (equal-weight S2 rules).
//
// The bundled designs are the exactly derivable polyhedral ones:
//
//	degree 1:  2 points  (antipodal pair)
//	degree 2:  4 points  (regular tetrahedron)
//	degree 3:  6 points  (regular octahedron)
//	degree 5: 12 points  (regular icosahedron)
//
// which coincide with the documented optimal design sizes at these
// degrees. Higher-degree designs (degree 7 at 24 points onward) exist
// only as numerically optimized tables and attach via Register.

package table

import "fmt"

// s2DesignDatasets assembles the built-in spherical designs. A nil
// weight slice denotes equal weights 1/size, the defining property of a
// design.
func s2DesignDatasets() []Dataset {
	pair := anglesOf([][]float64{{0, 0, 1}, {0, 0, -1}})

	return []Dataset{
		{Degree: 1, Size: 2, Points: pair},
		{Degree: 2, Size: 4, Points: anglesOf(tetrahedronXYZ())},
		{Degree: 3, Size: 6, Points: anglesOf(octahedronXYZ())},
		{Degree: 5, Size: 12, Points: anglesOf(icosahedronXYZ())},
	}
}

// registerS2Designs populates the polyhedral design key on a store.
func registerS2Designs(s *Store) {
	for _, ds := range s2DesignDatasets() {
		if err := s.Register(PolyhedralS2Design, ds); err != nil {
			panic(fmt.Sprintf("table: built-in S2 design dataset: %v", err))
		}
	}
}
