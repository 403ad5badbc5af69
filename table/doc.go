// Package table is the read-only repository of precomputed quadrature
// datasets backing the table-based rule families.
//
// 🚀 What is table?
//
//	A process-wide, write-once store keyed by (source, geometry, class):
//	  • lookup by exact size, or by smallest size satisfying a degree
//	  • built-in datasets that are exactly derivable in source form:
//	      - Lebedev-Laikov S2 rules of degree 3, 5, 7 (6/14/26 points)
//	      - polyhedral spherical designs of degree 1, 2, 3, 5 (2/4/6/12)
//	      - polyhedral-group SO3 rules of degree 1, 2, 3, 5 (4/12/24/60)
//	  • Register for external datasets (Gräf, Womersley, Karney tables are
//	    distributed separately and plug in under their well-known keys)
//
// ✨ Contract:
//
//   - Weights are stored normalized to unit measure (Σw = 1); rule
//     families scale them by the domain volume (4π, 8π², b−a).
//   - Points are row-major: one sample per row, native coordinates per
//     column (θ, φ for S2; α, β, γ for SO3).
//   - Registration must complete before resolution starts. The store
//     takes no locks: it is populated once (the built-in store behind a
//     sync.Once barrier) and read-only afterwards, so concurrent lookups
//     are safe without synchronization.
//
// Lookups never substitute a nearby dataset: an absent (key, degree/size)
// combination fails with ErrNoDataset and the caller decides.
package table
