// Package rules provides the rule provider abstraction: every quadrature
// method family — precomputed table, on-the-fly generator or stochastic
// sampler — resolves a parameter request into the same immutable Rule
// value (sample points, weights, covered dimension, exactness degree).
//
// 🚀 What is rules?
//
//	One interface, three variants:
//	  • Interpolatory — fixed nodes with a guaranteed polynomial
//	    exactness degree (Gauss-Legendre, Lebedev-Laikov, ...);
//	    weights sum to the domain volume by construction
//	  • Covering — deterministic near-uniform point sets with equal
//	    weights volume/n (spherical designs, SO3 group rules, Fibonacci
//	    sphere, ZCW)
//	  • Stochastic — pseudo-random samples with weight volume/n per draw
//	    (Monte Carlo on intervals, S2 and SO3); reproducible for a fixed
//	    seed, with per-construction random state
//
// ✨ Parameter policy (strict, fail-fast):
//
//   - Degree-parameterized families take exactly one of Size/Degree; a
//     degree maps to the smallest size satisfying it, monotonically.
//   - Fixed-degree and degreeless families take Size only.
//   - Seeds are accepted by stochastic families only.
//   - Nothing is substituted silently: unreachable degrees fail with
//     ErrDegreeNotAvailable, unsupported sizes with ErrParameterRange.
//
// ⚙️ Conventions:
//
//   - Points are row-major (size, dim); 1-D rules emit single-column rows.
//   - Weights carry the full domain measure: Σw = b−a for an interval
//     (before any user Jacobian), 4π on S2, 8π² on SO3.
//   - Periodic 1-D rules with endpoint nodes fold the duplicate endpoint:
//     its weight moves to the first node and the node is dropped, so the
//     resolved size is always the advertised size.
//   - Rules are immutable after Resolve and safe to share.
//
// Families never know who composes them; the compose package consumes
// Rule values uniformly.
package rules
