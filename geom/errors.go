// SPDX-License-Identifier: MIT
// Package: gridquad/geom
//
// errors.go — error surface of the geom package. Construction failures
// carry the sentinels of the layer that detected them (registry, rules,
// compose); geom adds only the sample-shape sentinel, shared with the
// grid package so one errors.Is check covers both.
package geom

import (
	"errors"

	"github.com/gridquad/gridquad/grid"
)

// ErrShapeMismatch is returned when sample data does not match the grid
// size. It is the grid package's sentinel, re-exported.
var ErrShapeMismatch = grid.ErrShapeMismatch

// ErrWrongGeometry is returned by views that exist on one geometry only
// (XYZ on S2, Quaternions on SO3).
var ErrWrongGeometry = errors.New("geom: view not defined for this geometry")
