// SPDX-License-Identifier: MIT
// Package: gridquad/table
//
// data_so3.go — built-in equal-weight SO3 rules from finite rotation
// groups.
//
// Averaging over a finite subgroup G ⊂ SO(3) integrates every function
// whose band limit stays below the degree of the first non-trivial
// G-invariant. This yields the exactly derivable rules
//
//	 4 rotations  (Klein four-group)        degree 1
//	12 rotations  (tetrahedral group T)     degree 2
//	24 rotations  (octahedral group O)      degree 3
//	60 rotations  (icosahedral group I)     degree 5
//
// matching the documented optimal equal-weight sizes at these degrees.
// The groups are generated as binary (quaternion) groups and projected to
// rotations by identifying antipodal quaternions.

package table

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/gridquad/gridquad/grid"
)

// evenPerms are the 12 even permutations of four positions, used to
// expand the icosian orbit.
var evenPerms = [12][4]int{
	{0, 1, 2, 3}, {0, 2, 3, 1}, {0, 3, 1, 2},
	{1, 0, 3, 2}, {1, 2, 0, 3}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 1, 3, 0}, {2, 3, 0, 1},
	{3, 0, 2, 1}, {3, 1, 0, 2}, {3, 2, 1, 0},
}

// unitQuats returns ±1, ±i, ±j, ±k (the quaternion group, 8 elements).
func unitQuats() []quat.Number {
	var out []quat.Number
	for axis := 0; axis < 4; axis++ {
		for _, s := range []float64{1, -1} {
			q := quat.Number{}
			switch axis {
			case 0:
				q.Real = s
			case 1:
				q.Imag = s
			case 2:
				q.Jmag = s
			case 3:
				q.Kmag = s
			}
			out = append(out, q)
		}
	}

	return out
}

// halfQuats returns the 16 quaternions (±1 ±i ±j ±k)/2.
func halfQuats() []quat.Number {
	var out []quat.Number
	for _, sw := range []float64{0.5, -0.5} {
		for _, sx := range []float64{0.5, -0.5} {
			for _, sy := range []float64{0.5, -0.5} {
				for _, sz := range []float64{0.5, -0.5} {
					out = append(out, quat.Number{Real: sw, Imag: sx, Jmag: sy, Kmag: sz})
				}
			}
		}
	}

	return out
}

// pairQuats returns the 24 quaternions with two entries ±1/√2 and two
// zeros, over all position pairs and signs.
func pairQuats() []quat.Number {
	c := 1 / math.Sqrt2
	var out []quat.Number
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			for _, si := range []float64{1, -1} {
				for _, sj := range []float64{1, -1} {
					var v [4]float64
					v[i], v[j] = si*c, sj*c
					out = append(out, quat.Number{Real: v[0], Imag: v[1], Jmag: v[2], Kmag: v[3]})
				}
			}
		}
	}

	return out
}

// icosianQuats returns the 96 quaternions obtained from even
// permutations of (0, ±1, ±φ, ±1/φ)/2, φ the golden ratio. Together
// with the unit and half quaternions they form the binary icosahedral
// group (120 elements).
func icosianQuats() []quat.Number {
	phi := (1 + math.Sqrt(5)) / 2
	base := [4]float64{0, 0.5, phi / 2, 1 / (2 * phi)}

	var out []quat.Number
	for _, perm := range evenPerms {
		for _, s1 := range []float64{1, -1} {
			for _, s2 := range []float64{1, -1} {
				for _, s3 := range []float64{1, -1} {
					signed := [4]float64{0, s1 * base[1], s2 * base[2], s3 * base[3]}
					var v [4]float64
					for pos, src := range perm {
						v[pos] = signed[src]
					}
					out = append(out, quat.Number{Real: v[0], Imag: v[1], Jmag: v[2], Kmag: v[3]})
				}
			}
		}
	}

	return out
}

// canonical reports whether q is the representative of the antipodal
// pair {q, −q}: its first nonzero component is positive.
func canonical(q quat.Number) bool {
	for _, c := range [4]float64{q.Real, q.Imag, q.Jmag, q.Kmag} {
		if c > 0 {
			return true
		}
		if c < 0 {
			return false
		}
	}

	return false // the zero quaternion never occurs in a group
}

// rotations projects a binary group to SO(3): one representative per
// antipodal quaternion pair, in generation order.
func rotations(qs []quat.Number) []quat.Number {
	var out []quat.Number
	for _, q := range qs {
		if canonical(q) {
			out = append(out, q)
		}
	}

	return out
}

// eulerRows converts rotations to row-major (α, β, γ) points.
func eulerRows(qs []quat.Number) [][]float64 {
	out := make([][]float64, len(qs))
	for i, q := range qs {
		a, b, g := grid.EulerFromQuat(q)
		out[i] = []float64{a, b, g}
	}

	return out
}

// so3GroupDatasets assembles the built-in equal-weight SO3 rules.
func so3GroupDatasets() []Dataset {
	klein := rotations(unitQuats())                                                    // 4
	tetra := rotations(append(unitQuats(), halfQuats()...))                            // 12
	octa := rotations(append(append(unitQuats(), halfQuats()...), pairQuats()...))     // 24
	icosa := rotations(append(append(unitQuats(), halfQuats()...), icosianQuats()...)) // 60

	return []Dataset{
		{Degree: 1, Size: len(klein), Points: eulerRows(klein)},
		{Degree: 2, Size: len(tetra), Points: eulerRows(tetra)},
		{Degree: 3, Size: len(octa), Points: eulerRows(octa)},
		{Degree: 5, Size: len(icosa), Points: eulerRows(icosa)},
	}
}

// registerSO3Groups populates the polyhedral SO3 key on a store.
func registerSO3Groups(s *Store) {
	for _, ds := range so3GroupDatasets() {
		if err := s.Register(PolyhedralSO3, ds); err != nil {
			panic(fmt.Sprintf("table: built-in SO3 group dataset: %v", err))
		}
	}
}
