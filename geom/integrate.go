// SPDX-License-Identifier: MIT
// Package: gridquad/geom
//
// integrate.go — the evaluation contract: weighted sums over the grid
// for callables, precomputed samples and sample batches.
package geom

import "fmt"

// Integrate evaluates f at every grid point in native coordinates and
// returns the weighted sum. f receives Dim() arguments per call.
func (q *Quadrature) Integrate(f func(x ...float64) float64) float64 {
	var s float64
	for i, p := range q.grid.Points {
		s += q.grid.Weights[i] * f(p...)
	}

	return s
}

// IntegrateSamples returns the weighted sum of precomputed integrand
// samples, one per grid point in grid order.
func (q *Quadrature) IntegrateSamples(samples []float64) (float64, error) {
	if len(samples) != q.Size() {
		return 0, fmt.Errorf("%w: %d samples for %d grid points", ErrShapeMismatch, len(samples), q.Size())
	}
	var s float64
	for i, v := range samples {
		s += q.grid.Weights[i] * v
	}

	return s, nil
}

// IntegrateMulti integrates a batch of integrands at once: samples is
// row-major (size, m) with one row per grid point holding the values of
// m integrands. The result has one entry per integrand.
func (q *Quadrature) IntegrateMulti(samples [][]float64) ([]float64, error) {
	if len(samples) != q.Size() {
		return nil, fmt.Errorf("%w: %d sample rows for %d grid points", ErrShapeMismatch, len(samples), q.Size())
	}
	if q.Size() == 0 {
		return nil, nil
	}
	m := len(samples[0])
	out := make([]float64, m)
	for i, row := range samples {
		if len(row) != m {
			return nil, fmt.Errorf("%w: sample row %d has %d values, want %d", ErrShapeMismatch, i, len(row), m)
		}
		w := q.grid.Weights[i]
		for k, v := range row {
			out[k] += w * v
		}
	}

	return out, nil
}
