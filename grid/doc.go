// Package grid provides coordinate conversions and plain-text persistence
// for quadrature grids on the sphere and the rotation group.
//
// 🚀 What is grid?
//
//	A stateless helper layer shared by the data store and the geometry
//	facades:
//	  • spherical polar angles (θ, φ) ↔ cartesian unit vectors (x, y, z)
//	  • Euler angles (z-y-z convention: α, β, γ) ↔ unit quaternions
//	  • row-wise text export and import of points + weights
//
// Conventions (fixed across the module):
//   - θ is the polar angle in [0, π], φ the azimuthal angle in [0, 2π).
//   - Euler angles follow the z-y-z convention: a rotation by α about z,
//     then β about y, then γ about z (all intrinsic, applied right-to-left
//     as quaternion products qz(α)·qy(β)·qz(γ)).
//   - Point arrays are row-major: one sample per row, one coordinate per
//     column; weights are a parallel slice of the same length.
//
// ⚙️ Text format (SaveTxt / LoadTxt):
//
//	# optional header lines
//	<index> <coord 0> ... <coord d-1> <weight>
//
// with a right-aligned integer index and %25.16e columns, lossless for
// float64 on round-trip.
//
// All functions are pure; nothing in this package holds state.
package grid
