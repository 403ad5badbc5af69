// SPDX-License-Identifier: MIT
// Package: gridquad/grid
//
// errors.go — sentinel errors for the grid package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context via fmt.Errorf("...: %w", ErrX).

package grid

import "errors"

// ErrShapeMismatch indicates that the points and weights passed to an
// export routine disagree in length, or that a point row deviates from the
// dimension established by the first row.
// Usage: if errors.Is(err, ErrShapeMismatch) { /* fix caller arrays */ }.
var ErrShapeMismatch = errors.New("grid: points/weights shape mismatch")

// ErrBadFormat indicates that a text grid file could not be parsed: a data
// row with too few columns, a non-numeric field, or rows of uneven width.
// Usage: if errors.Is(err, ErrBadFormat) { /* inspect the input file */ }.
var ErrBadFormat = errors.New("grid: malformed grid file")

// ErrNotUnit indicates that a cartesian triple handed to AnglesFromXYZ is
// not on the unit sphere within tolerance.
var ErrNotUnit = errors.New("grid: point is not on the unit sphere")
