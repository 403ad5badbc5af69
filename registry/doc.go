// Package registry maps user-facing method names onto rule families and
// resolves method specs into rules.
//
// 🚀 What is registry?
//
//	The lookup layer between "a string in a spec" and "a Family value":
//	  • canonical names plus short aliases (gl, gll, trapz, simps, romb,
//	    lebedev, mc1, mcs2, mcso3), matched case-insensitively
//	  • New(store) wires the complete built-in method set against a
//	    table store; NewEmpty + Add assemble synthetic registries for
//	    tests and extensions
//	  • Default() is the lazily built process-wide instance backed by
//	    the built-in tables
//
// ✨ The registry is deliberately geometry-agnostic: it answers "which
// family is called X", while geometric validity of a method combination
// is the axis checker's concern (a 2-angle family occupies two axes
// wherever it is composed).
//
// Registries are immutable after assembly and safe for concurrent use;
// Add is not synchronized and belongs in the assembly phase.
package registry
