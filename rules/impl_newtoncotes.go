// SPDX-License-Identifier: MIT
// Package: gridquad/rules
//
// impl_newtoncotes.go — equidistant interval families: composite
// trapezoid, composite Simpson and Romberg. All three place nodes on
// both endpoints, so periodic axes generate one extra node and fold it.
package rules

import (
	"fmt"
	"math"
)

// linspace returns n equidistant nodes spanning [a, b] and the step.
func linspace(a, b float64, n int) (x []float64, dx float64) {
	x = make([]float64, n)
	dx = (b - a) / float64(n-1)
	for i := range x {
		x[i] = a + float64(i)*dx
	}
	x[n-1] = b
	return x, dx
}

// CompositeTrapezoid is the equidistant trapezoid rule, exact for degree
// 1. On a periodic axis its effective degree is much higher for smooth
// integrands, which makes it the default azimuthal rule.
type CompositeTrapezoid struct{}

// Name implements Family.
func (CompositeTrapezoid) Name() string { return "composite-trapezoid" }

// Dim implements Family.
func (CompositeTrapezoid) Dim() int { return 1 }

// Kind implements Family.
func (CompositeTrapezoid) Kind() Kind { return Interpolatory }

// Resolve implements Family.
func (t CompositeTrapezoid) Resolve(req Request) (*Rule, error) {
	if err := rejectSeed(t.Name(), req); err != nil {
		return nil, err
	}
	if err := checkInterval(t.Name(), req.Interval); err != nil {
		return nil, err
	}
	n, err := sizeOnly(t.Name(), req)
	if err != nil {
		return nil, err
	}
	gen := n
	if req.Periodic {
		gen++
	}
	if gen < 2 {
		return nil, fmt.Errorf("%w: %s needs at least two nodes", ErrParameterRange, t.Name())
	}

	x, dx := linspace(req.Interval.A, req.Interval.B, gen)
	w := make([]float64, gen)
	for i := range w {
		w[i] = dx
	}
	w[0] *= 0.5
	w[gen-1] *= 0.5

	return finish1D(t.Name(), Interpolatory, 1, x, w, req, true), nil
}

// CompositeSimpson is the equidistant composite Simpson rule, exact for
// degree 3. An odd number of subintervals is handled by switching to the
// irregular-interval Simpson correction on the last three nodes.
type CompositeSimpson struct{}

// Name implements Family.
func (CompositeSimpson) Name() string { return "composite-simpson" }

// Dim implements Family.
func (CompositeSimpson) Dim() int { return 1 }

// Kind implements Family.
func (CompositeSimpson) Kind() Kind { return Interpolatory }

// Resolve implements Family.
func (s CompositeSimpson) Resolve(req Request) (*Rule, error) {
	if err := rejectSeed(s.Name(), req); err != nil {
		return nil, err
	}
	if err := checkInterval(s.Name(), req.Interval); err != nil {
		return nil, err
	}
	n, err := sizeOnly(s.Name(), req)
	if err != nil {
		return nil, err
	}
	gen := n
	if req.Periodic {
		gen++
	}
	if gen < 3 {
		return nil, fmt.Errorf("%w: %s needs at least three nodes", ErrParameterRange, s.Name())
	}

	x, dx := linspace(req.Interval.A, req.Interval.B, gen)
	w := make([]float64, gen)
	for i := range w {
		if i%2 == 0 {
			w[i] = 2
		} else {
			w[i] = 4
		}
	}
	w[0] = 1
	if gen%2 == 1 {
		// Even subinterval count: plain composite Simpson.
		w[gen-1] = 1
	} else {
		// Odd subinterval count: Simpson up to the second-to-last node,
		// then the three-node correction for the trailing interval.
		w[gen-2] = 1
		w[gen-3] -= 0.25
		w[gen-2] += 2
		w[gen-1] = 1.25
	}
	for i := range w {
		w[i] *= dx / 3
	}

	return finish1D(s.Name(), Interpolatory, 3, x, w, req, true), nil
}

// Romberg is Richardson-extrapolated trapezoid integration on 2^k + 1
// equidistant nodes. The extrapolation tableau is applied to the weight
// vectors themselves, which turns the scheme into an ordinary fixed
// weight vector. No general exactness degree is known, so the rule
// reports DegreeNone.
type Romberg struct{}

// Name implements Family.
func (Romberg) Name() string { return "romberg" }

// Dim implements Family.
func (Romberg) Dim() int { return 1 }

// Kind implements Family.
func (Romberg) Kind() Kind { return Interpolatory }

// Resolve implements Family.
func (r Romberg) Resolve(req Request) (*Rule, error) {
	if err := rejectSeed(r.Name(), req); err != nil {
		return nil, err
	}
	if err := checkInterval(r.Name(), req.Interval); err != nil {
		return nil, err
	}
	n, err := sizeOnly(r.Name(), req)
	if err != nil {
		return nil, err
	}
	gen := n
	if req.Periodic {
		gen++
	}
	k := 0
	for (1<<k)+1 < gen {
		k++
	}
	if (1<<k)+1 != gen {
		return nil, fmt.Errorf("%w: %s needs 2^k+1 nodes, got %d", ErrParameterRange, r.Name(), gen)
	}

	x, dx := linspace(req.Interval.A, req.Interval.B, gen)
	w := rombergWeights(k, dx, gen)

	return finish1D(r.Name(), Interpolatory, DegreeNone, x, w, req, true), nil
}

// rombergWeights builds the extrapolated weight vector on 2^k+1 nodes
// with base step dx. Row i of the tableau starts as the trapezoid weight
// vector with 2^i subintervals, scattered onto the full grid.
func rombergWeights(k int, dx float64, gen int) []float64 {
	rows := make([][]float64, k+1)
	for i := 0; i <= k; i++ {
		stride := 1 << (k - i)
		h := dx * float64(stride)
		row := make([]float64, gen)
		for j := 0; j < gen; j += stride {
			row[j] = h
		}
		row[0] *= 0.5
		row[gen-1] *= 0.5
		rows[i] = row
	}
	for j := 1; j <= k; j++ {
		c := math.Pow(4, float64(j))
		for i := k; i >= j; i-- {
			for idx := range rows[i] {
				rows[i][idx] = (c*rows[i][idx] - rows[i-1][idx]) / (c - 1)
			}
		}
	}
	return rows[k]
}
