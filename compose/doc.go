// Package compose validates axis layouts and builds multi-dimensional
// quadrature grids as tensor products of per-axis rules.
//
// 🚀 What is compose?
//
//	The middle of the pipeline: resolved rules come in, one combined
//	grid comes out.
//	  • Domain — the axis model of a geometry: named axes with a kind
//	    (Interval, Periodic, Polar) and a managed window, plus the total
//	    volume the composed weights must reproduce
//	  • Check — the compatibility gate: the rules' dimensions must
//	    partition the domain's axes exactly once, and multi-angle rules
//	    must sit on admissible axis windows
//	  • Tensor — the Fubini composer: full Cartesian product of the
//	    rule nodes with multiplied weights, last rule fastest
//
// ✨ Invariants enforced here:
//
//   - grid size == ∏ rule sizes, row-major with the last rule's index
//     varying fastest
//   - Σ weights == domain volume within DefaultNormTolerance (relative);
//     violation is ErrWeightNormalization, never a silent rescale
//   - a 2-angle rule occupies one polar and one azimuthal axis, a
//     3-angle rule the whole rotation group; anything else is
//     ErrAxisCompatibility before any points are produced
//
// The volume check is skipped when the domain declares its volume NaN,
// which the facades do exactly when a user Jacobian makes the reference
// volume meaningless.
package compose
