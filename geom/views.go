// SPDX-License-Identifier: MIT
// Package: gridquad/geom
//
// views.go — read-only accessors over the composed grid. The slice
// views expose the internal storage for zero-copy iteration; callers
// must not modify them.
package geom

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/gridquad/gridquad/grid"
)

// Size returns the number of grid points.
func (q *Quadrature) Size() int { return q.grid.Size() }

// Dim returns the number of native coordinates per point.
func (q *Quadrature) Dim() int { return q.domain.Dim() }

// Shape returns the constituent rule sizes in composition order.
func (q *Quadrature) Shape() []int { return q.grid.Shape }

// Points returns the grid points in native coordinates, row-major
// (size, dim): box coordinates for Rn, (θ, φ) for S2, (α, β, γ) for SO3.
func (q *Quadrature) Points() [][]float64 { return q.grid.Points }

// Weights returns one quadrature weight per grid point.
func (q *Quadrature) Weights() []float64 { return q.grid.Weights }

// Angles is the angular alias of Points for S2 and SO3.
func (q *Quadrature) Angles() [][]float64 { return q.grid.Points }

// Methods returns the canonical names of the constituent rules.
func (q *Quadrature) Methods() []string { return q.methods }

// Degrees returns the exactness degree of each constituent rule,
// rules.DegreeNone where the family makes no guarantee.
func (q *Quadrature) Degrees() []int { return q.degrees }

// XYZ returns the grid as cartesian unit vectors. Defined on S2 only;
// materialized on first use and cached.
func (q *Quadrature) XYZ() ([][]float64, error) {
	if q.geometry != geomS2 {
		return nil, ErrWrongGeometry
	}
	q.xyzOnce.Do(func() { q.xyz = grid.XYZGrid(q.grid.Points) })

	return q.xyz, nil
}

// Quaternions returns the grid as unit quaternions. Defined on SO3
// only; materialized on first use and cached.
func (q *Quadrature) Quaternions() ([]quat.Number, error) {
	if q.geometry != geomSO3 {
		return nil, ErrWrongGeometry
	}
	q.quatOnce.Do(func() { q.quats = grid.QuatGrid(q.grid.Points) })

	return q.quats, nil
}
