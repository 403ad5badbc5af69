// SPDX-License-Identifier: MIT
// Package: gridquad/compose
//
// errors.go — sentinel errors for the compose package.
package compose

import "errors"

var (
	// ErrDimensionMismatch is returned when the rules' dimensions do not
	// sum to the domain dimension.
	ErrDimensionMismatch = errors.New("compose: dimension mismatch")

	// ErrAxisCompatibility is returned when a multi-angle rule lands on
	// axes it cannot serve.
	ErrAxisCompatibility = errors.New("compose: incompatible axis layout")

	// ErrWeightNormalization is returned when the composed weights do
	// not reproduce the domain volume within tolerance.
	ErrWeightNormalization = errors.New("compose: weights do not sum to domain volume")
)
