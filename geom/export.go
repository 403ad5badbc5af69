// SPDX-License-Identifier: MIT
// Package: gridquad/geom
//
// export.go — plain-text export of the composed grid, delegating to the
// grid package's fixed-width format.
package geom

import (
	"fmt"
	"io"
	"strings"

	"github.com/gridquad/gridquad/grid"
)

// header builds the export header lines: geometry, coordinate order and
// the constituent methods.
func (q *Quadrature) header() []string {
	var coords string
	switch q.geometry {
	case geomS2:
		coords = "spherical polar angles (theta, phi)"
	case geomSO3:
		coords = "z-y-z Euler angles (alpha, beta, gamma)"
	default:
		coords = fmt.Sprintf("%d box coordinates", q.Dim())
	}

	return []string{
		fmt.Sprintf("%s quadrature grid, %d points", q.geometry, q.Size()),
		"coordinates: " + coords + ", last column: weight",
		"methods: " + strings.Join(q.methods, ", "),
	}
}

// SaveTxt writes the grid to w: one row per point with index, native
// coordinates and weight.
func (q *Quadrature) SaveTxt(w io.Writer) error {
	return grid.SaveTxt(w, q.header(), q.grid.Points, q.grid.Weights)
}

// WriteFile writes the grid to a file in SaveTxt format.
func (q *Quadrature) WriteFile(path string) error {
	return grid.WriteFile(path, q.header(), q.grid.Points, q.grid.Weights)
}
