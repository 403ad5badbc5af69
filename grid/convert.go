// SPDX-License-Identifier: MIT
// Package: gridquad/grid
//
// convert.go — pure coordinate transformations between the native angle
// representations and their cartesian / quaternion counterparts.
//
// Conventions:
//   - S2: polar angle θ ∈ [0, π], azimuthal angle φ ∈ [0, 2π).
//   - SO3: Euler angles (α, β, γ) in z-y-z convention; quaternions are
//     gonum quat.Number values with the scalar part in Real.
//
// All functions are deterministic and allocation-free on the scalar forms.

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// twoPi is the period of the azimuthal angles.
const twoPi = 2 * math.Pi

// unitTol bounds the accepted deviation of |xyz| from 1 in AnglesFromXYZ.
const unitTol = 1e-12

// XYZFromAngles converts spherical polar angles to a cartesian unit vector.
//
//	x = sin θ cos φ, y = sin θ sin φ, z = cos θ
//
// Complexity: O(1).
func XYZFromAngles(theta, phi float64) (x, y, z float64) {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)

	return st * cp, st * sp, ct
}

// AnglesFromXYZ converts a cartesian unit vector to spherical polar angles.
// The azimuthal angle is normalized into [0, 2π). Returns ErrNotUnit when
// the input norm deviates from 1 by more than 1e-12 (relative).
//
// Complexity: O(1).
func AnglesFromXYZ(x, y, z float64) (theta, phi float64, err error) {
	norm := math.Sqrt(x*x + y*y + z*z)
	if math.Abs(norm-1) > unitTol {
		return 0, 0, fmt.Errorf("norm %.17g: %w", norm, ErrNotUnit)
	}
	theta = math.Acos(math.Max(-1, math.Min(1, z)))
	phi = math.Mod(math.Atan2(y, x), twoPi)
	if phi < 0 {
		phi += twoPi
	}

	return theta, phi, nil
}

// QuatFromEuler converts z-y-z Euler angles to a unit quaternion,
// q = qz(α) · qy(β) · qz(γ), expanded in closed form.
//
// Complexity: O(1).
func QuatFromEuler(alpha, beta, gamma float64) quat.Number {
	sb, cb := math.Sincos(beta / 2)
	sSum, cSum := math.Sincos((alpha + gamma) / 2)
	sDiff, cDiff := math.Sincos((alpha - gamma) / 2)

	return quat.Number{
		Real: cb * cSum,
		Imag: -sb * sDiff,
		Jmag: sb * cDiff,
		Kmag: cb * sSum,
	}
}

// EulerFromQuat converts a unit quaternion to z-y-z Euler angles with
// α, γ ∈ [0, 2π) and β ∈ [0, π]. Inverse of QuatFromEuler up to the usual
// gimbal ambiguity at β ∈ {0, π}, where only α+γ (resp. α−γ) is defined.
//
// Complexity: O(1).
func EulerFromQuat(q quat.Number) (alpha, beta, gamma float64) {
	halfSum := math.Atan2(q.Kmag, q.Real)
	halfDiff := math.Atan2(-q.Imag, q.Jmag)
	beta = 2 * math.Atan2(math.Hypot(q.Imag, q.Jmag), math.Hypot(q.Real, q.Kmag))
	alpha = mod2Pi(halfSum + halfDiff)
	gamma = mod2Pi(halfSum - halfDiff)

	return alpha, beta, gamma
}

// XYZGrid converts a row-major (n, 2) array of (θ, φ) pairs into a
// row-major (n, 3) array of cartesian coordinates.
//
// Complexity: O(n) time, O(n) space.
func XYZGrid(angles [][]float64) [][]float64 {
	out := make([][]float64, len(angles))
	for i, a := range angles {
		x, y, z := XYZFromAngles(a[0], a[1])
		out[i] = []float64{x, y, z}
	}

	return out
}

// QuatGrid converts a row-major (n, 3) array of Euler angle triples into a
// slice of unit quaternions.
//
// Complexity: O(n) time, O(n) space.
func QuatGrid(angles [][]float64) []quat.Number {
	out := make([]quat.Number, len(angles))
	for i, a := range angles {
		out[i] = QuatFromEuler(a[0], a[1], a[2])
	}

	return out
}

// mod2Pi reduces an angle into [0, 2π).
func mod2Pi(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi { // a tiny negative remainder rounds up to exactly 2π
		a = 0
	}

	return a
}
