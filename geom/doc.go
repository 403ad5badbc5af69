// Package geom provides the geometry facades: build a quadrature on an
// n-dimensional box, the unit sphere or the rotation group from a list
// of method specs, then integrate, inspect and export through one
// uniform contract.
//
// 🚀 What is geom?
//
//	The front door of the module:
//
//	  q, err := geom.S2([]rules.Spec{{Method: "lebedev", Degree: 7}})
//	  val := q.Integrate(func(x ...float64) float64 { ... })
//
//	  • Rn — finite boxes; every axis takes user bounds a/b and an
//	    optional Jacobian, only 1-D methods apply
//	  • S2 — spherical polar angles (θ, φ); either one 2-angle method
//	    or a polar×azimuth product of 1-D methods
//	  • SO3 — z-y-z Euler angles (α, β, γ); one 3-angle method, a
//	    2-angle×1-D split, or three 1-D methods
//
// ✨ Guarantees:
//
//   - construction validates everything: unknown methods, bad
//     parameters, axis layout and weight normalization are reported as
//     wrapped sentinels before a Quadrature value exists
//   - angular axes are managed: the azimuths run periodic on [0, 2π],
//     the polar axis samples cos θ by default (WithPolarSampling(Angle)
//     switches to θ with a sin θ weight factor); user bounds on these
//     axes are rejected, never remapped
//   - views (Points, Weights, Angles, XYZ, Quaternions) and the
//     integrate family never mutate the grid; XYZ and Quaternions are
//     materialized once, on first use
//
// Method names resolve through registry.Default unless WithRegistry
// injects another registry.
package geom
