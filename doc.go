// Package gridquad is an in-memory database and composition engine for
// multi-dimensional numerical quadrature — from single interval rules to
// tensor-product grids on the unit sphere and the rotation group.
//
// 🚀 What is gridquad?
//
//	A deterministic, dependency-injected library that brings together:
//		• Rule providers: Gauss-Legendre, Newton-Cotes, Lebedev-Laikov,
//		  spherical designs, SO3 group rules, Monte Carlo sampling
//		• A method registry resolving name + parameters to concrete rules
//		• Axis compatibility checks for combined methods
//		• Fubini-style tensor-product composition of per-axis rules
//		• Geometry facades for Rn, S2 (4π) and SO3 (8π²) with coordinate
//		  views (angles, xyz, quaternions) and weighted-sum integration
//
// ✨ Why choose gridquad?
//
//   - Fail-fast guarantees – every grid is validated and weight-normalized
//     before it is observable; errors carry full method/geometry context
//   - Immutable by construction – grids and rules are never mutated and
//     may be shared freely across goroutines
//   - Pluggable data – precomputed tables and on-the-fly generators sit
//     behind one lookup interface; test registries take synthetic rules
//
// Under the hood, everything is organized under flat subpackages:
//
//	rules/    — rule provider abstraction and all method families
//	table/    — read-only store of precomputed quadrature datasets
//	registry/ — method name resolution (canonical names and aliases)
//	compose/  — axis model, compatibility checker, tensor composer
//	grid/     — coordinate conversions and text export/import
//	geom/     — Rn / S2 / SO3 facades and the integration evaluator
//
// Quick sketch:
//
//	specs → registry.Resolve → compose.Tensor → geom.Quadrature.Integrate
//
// Dive into the per-package doc.go files for contracts, conventions and
// complexity notes.
//
//	go get github.com/gridquad/gridquad
package gridquad
