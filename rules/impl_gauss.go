// SPDX-License-Identifier: MIT
// Package: gridquad/rules
//
// impl_gauss.go — Gaussian interval families: Gauss-Legendre and
// Gauss-Lobatto-Legendre.
package rules

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// GaussLegendre is the n-point Gauss-Legendre rule on a finite interval,
// exact for polynomials of degree 2n−1. Nodes are interior, so periodic
// axes need no folding.
type GaussLegendre struct{}

// Name implements Family.
func (GaussLegendre) Name() string { return "gauss-legendre" }

// Dim implements Family.
func (GaussLegendre) Dim() int { return 1 }

// Kind implements Family.
func (GaussLegendre) Kind() Kind { return Interpolatory }

// Resolve implements Family. A degree d maps to the smallest size
// ⌈(d+1)/2⌉ whose rule is exact for d.
func (g GaussLegendre) Resolve(req Request) (*Rule, error) {
	if err := rejectSeed(g.Name(), req); err != nil {
		return nil, err
	}
	if err := checkInterval(g.Name(), req.Interval); err != nil {
		return nil, err
	}
	n, err := sizeFromDegree(g.Name(), req, func(d int) int { return (d + 2) / 2 })
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %s size %d, need at least 1", ErrParameterRange, g.Name(), n)
	}

	x := make([]float64, n)
	w := make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, req.Interval.A, req.Interval.B)
	// gonum fills the nodes in descending order; all 1-D families here
	// emit ascending nodes.
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
		w[i], w[j] = w[j], w[i]
	}

	return finish1D(g.Name(), Interpolatory, 2*n-1, x, w, req, false), nil
}

// GaussLobattoLegendre is the n-point Gauss-Lobatto-Legendre rule: both
// interval endpoints are nodes, the interior nodes are the roots of
// P'_{n−1}, and the rule is exact for degree 2n−3. On a periodic axis
// the duplicate endpoint is folded away, so a resolved size n rule is
// built from n+1 Lobatto nodes and keeps exactness degree 2n−1.
type GaussLobattoLegendre struct{}

// Name implements Family.
func (GaussLobattoLegendre) Name() string { return "gauss-lobatto-legendre" }

// Dim implements Family.
func (GaussLobattoLegendre) Dim() int { return 1 }

// Kind implements Family.
func (GaussLobattoLegendre) Kind() Kind { return Interpolatory }

// Resolve implements Family.
func (g GaussLobattoLegendre) Resolve(req Request) (*Rule, error) {
	if err := rejectSeed(g.Name(), req); err != nil {
		return nil, err
	}
	if err := checkInterval(g.Name(), req.Interval); err != nil {
		return nil, err
	}
	toSize := func(d int) int {
		n := (d + 4) / 2 // ⌈(d+3)/2⌉
		if req.Periodic {
			n--
		}
		return n
	}
	n, err := sizeFromDegree(g.Name(), req, toSize)
	if err != nil {
		return nil, err
	}

	gen := n
	if req.Periodic {
		gen++
	}
	if gen < 2 {
		return nil, fmt.Errorf("%w: %s size %d, need at least 2 nodes", ErrParameterRange, g.Name(), n)
	}

	x, w := lobattoNodes(gen)
	// Map [-1, 1] onto [a, b].
	a, b := req.Interval.A, req.Interval.B
	half, mid := (b-a)/2, (a+b)/2
	for i := range x {
		x[i] = half*x[i] + mid
		w[i] *= half
	}

	return finish1D(g.Name(), Interpolatory, 2*gen-3, x, w, req, true), nil
}

// lobattoNodes returns the n Gauss-Lobatto-Legendre nodes and weights on
// [-1, 1]. Interior nodes are found by Newton iteration on P'_{n−1}
// starting from the Chebyshev-Lobatto points; the weight at node x is
// 2 / (n(n−1) P_{n−1}(x)²).
func lobattoNodes(n int) (x, w []float64) {
	x = make([]float64, n)
	w = make([]float64, n)
	m := n - 1 // Legendre order

	x[0], x[m] = -1, 1
	for i := 1; i < m; i++ {
		xi := -math.Cos(math.Pi * float64(i) / float64(m))
		for iter := 0; iter < 100; iter++ {
			p, dp := legendrePD(m, xi)
			// Newton step on f = P'_m; f' = P''_m via the Legendre ODE.
			ddp := (2*xi*dp - float64(m)*float64(m+1)*p) / (1 - xi*xi)
			step := dp / ddp
			xi -= step
			if math.Abs(step) < 1e-15 {
				break
			}
		}
		x[i] = xi
	}

	scale := 2 / (float64(n) * float64(m))
	for i := range x {
		p, _ := legendrePD(m, x[i])
		w[i] = scale / (p * p)
	}
	return x, w
}

// legendrePD evaluates the Legendre polynomial P_m and its derivative at
// x via the three-term recurrence.
func legendrePD(m int, x float64) (p, dp float64) {
	if m == 0 {
		return 1, 0
	}
	pm1, p := 1.0, x
	for k := 2; k <= m; k++ {
		pm1, p = p, ((2*float64(k)-1)*x*p-(float64(k)-1)*pm1)/float64(k)
	}
	if x == 1 || x == -1 {
		dp = math.Pow(x, float64(m+1)) * float64(m) * float64(m+1) / 2
		return p, dp
	}
	dp = float64(m) * (x*p - pm1) / (x*x - 1)
	return p, dp
}
