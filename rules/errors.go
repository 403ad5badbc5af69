// SPDX-License-Identifier: MIT
// Package: gridquad/rules
//
// errors.go — sentinel errors for the rules package.
//
// Every Resolve failure wraps exactly one of these sentinels, so callers
// classify with errors.Is and never parse message text.
package rules

import "errors"

var (
	// ErrInvalidParameter is returned when a request carries a parameter
	// the family does not accept (a seed for a deterministic rule, a
	// degree for a degreeless one) or omits a required one.
	ErrInvalidParameter = errors.New("rules: invalid parameter")

	// ErrParameterRange is returned when a parameter is of the right
	// shape but outside the supported range (size too small, size not in
	// the family's discrete size set).
	ErrParameterRange = errors.New("rules: parameter out of range")

	// ErrDegreeNotAvailable is returned when no rule of the family
	// reaches the requested exactness degree.
	ErrDegreeNotAvailable = errors.New("rules: degree not available")

	// ErrBadInterval is returned for degenerate integration intervals
	// (a == b, or non-finite endpoints).
	ErrBadInterval = errors.New("rules: bad interval")
)
