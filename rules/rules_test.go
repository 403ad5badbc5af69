// SPDX-License-Identifier: MIT
// Package: gridquad/rules
//
// rules_test.go — behavioral tests for the 1-D rule families: parameter
// policy, endpoint folding, weight totals and polynomial exactness.
package rules_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridquad/gridquad/rules"
)

// apply evaluates Σ w_i f(x_i) for a 1-D rule.
func apply(r *rules.Rule, f func(float64) float64) float64 {
	var s float64
	for i, p := range r.Points {
		s += r.Weights[i] * f(p[0])
	}
	return s
}

func sum(w []float64) float64 {
	var s float64
	for _, v := range w {
		s += v
	}
	return s
}

func TestGaussLegendre_DegreeToSize(t *testing.T) {
	r, err := rules.GaussLegendre{}.Resolve(rules.Request{
		Degree:   21,
		Interval: rules.Interval{A: -10, B: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, 11, r.Size(), "degree 21 wants ceil(22/2) = 11 nodes")
	assert.Equal(t, 21, r.Degree)
	assert.Equal(t, rules.Interpolatory, r.Kind)
	assert.InDelta(t, 15.0, sum(r.Weights), 1e-12, "weights must sum to b-a")
}

func TestGaussLegendre_Exactness(t *testing.T) {
	r, err := rules.GaussLegendre{}.Resolve(rules.Request{
		Size:     3,
		Interval: rules.Interval{A: 0, B: 1},
	})
	require.NoError(t, err)

	// 3 nodes are exact up to degree 5.
	got := apply(r, func(x float64) float64 { return x * x * x * x * x })
	assert.InDelta(t, 1.0/6.0, got, 1e-14)
}

// TestGaussLegendre_NodesAscending pins the node ordering contract: every
// 1-D family emits nodes in ascending order, so downstream polar grids
// (cos θ runs [-1, 1], θ ends up [0, π]) keep a monotone layout.
func TestGaussLegendre_NodesAscending(t *testing.T) {
	r, err := rules.GaussLegendre{}.Resolve(rules.Request{
		Size:     6,
		Interval: rules.Interval{A: -1, B: 1},
	})
	require.NoError(t, err)

	for i := 1; i < r.Size(); i++ {
		assert.Greater(t, r.Points[i][0], r.Points[i-1][0], "node %d", i)
	}
	assert.InDelta(t, 2.0, sum(r.Weights), 1e-12)
	// Symmetric rule: paired nodes mirror, paired weights match.
	for i := 0; i < r.Size()/2; i++ {
		j := r.Size() - 1 - i
		assert.InDelta(t, -r.Points[j][0], r.Points[i][0], 1e-14, "node pair %d/%d", i, j)
		assert.InDelta(t, r.Weights[j], r.Weights[i], 1e-14, "weight pair %d/%d", i, j)
	}
}

func TestGaussLegendre_ParameterPolicy(t *testing.T) {
	iv := rules.Interval{A: 0, B: 1}
	seed := uint64(7)

	_, err := rules.GaussLegendre{}.Resolve(rules.Request{Size: 4, Degree: 3, Interval: iv})
	assert.ErrorIs(t, err, rules.ErrInvalidParameter, "size and degree together")

	_, err = rules.GaussLegendre{}.Resolve(rules.Request{Interval: iv})
	assert.ErrorIs(t, err, rules.ErrInvalidParameter, "neither size nor degree")

	_, err = rules.GaussLegendre{}.Resolve(rules.Request{Size: 4, Interval: iv, Seed: &seed})
	assert.ErrorIs(t, err, rules.ErrInvalidParameter, "seed on a deterministic family")

	_, err = rules.GaussLegendre{}.Resolve(rules.Request{Size: 4})
	assert.ErrorIs(t, err, rules.ErrBadInterval, "degenerate interval")
}

func TestGaussLobattoLegendre_SmallSizes(t *testing.T) {
	iv := rules.Interval{A: -1, B: 1}

	r, err := rules.GaussLobattoLegendre{}.Resolve(rules.Request{Size: 3, Interval: iv})
	require.NoError(t, err)
	require.Equal(t, 3, r.Size())
	assert.InDelta(t, -1, r.Points[0][0], 1e-14)
	assert.InDelta(t, 0, r.Points[1][0], 1e-14)
	assert.InDelta(t, 1, r.Points[2][0], 1e-14)
	assert.InDelta(t, 1.0/3.0, r.Weights[0], 1e-14)
	assert.InDelta(t, 4.0/3.0, r.Weights[1], 1e-14)
	assert.InDelta(t, 1.0/3.0, r.Weights[2], 1e-14)

	r, err = rules.GaussLobattoLegendre{}.Resolve(rules.Request{Size: 4, Interval: iv})
	require.NoError(t, err)
	assert.InDelta(t, -1/math.Sqrt(5), r.Points[1][0], 1e-12)
	assert.InDelta(t, 1/math.Sqrt(5), r.Points[2][0], 1e-12)
	assert.InDelta(t, 1.0/6.0, r.Weights[0], 1e-12)
	assert.InDelta(t, 5.0/6.0, r.Weights[1], 1e-12)
}

func TestGaussLobattoLegendre_Exactness(t *testing.T) {
	// n nodes are exact up to degree 2n-3.
	for n := 2; n <= 8; n++ {
		r, err := rules.GaussLobattoLegendre{}.Resolve(rules.Request{
			Size:     n,
			Interval: rules.Interval{A: -1, B: 1},
		})
		require.NoError(t, err)
		require.Equal(t, n, r.Size())
		assert.Equal(t, 2*n-3, r.Degree)

		d := 2*n - 3
		got := apply(r, func(x float64) float64 { return math.Pow(x, float64(d)) })
		want := 0.0 // odd monomial over a symmetric interval
		if d%2 == 0 {
			want = 2 / float64(d+1)
		}
		assert.InDeltaf(t, want, got, 1e-10, "x^%d with %d nodes", d, n)
	}
}

func TestGaussLobattoLegendre_PeriodicFolding(t *testing.T) {
	r, err := rules.GaussLobattoLegendre{}.Resolve(rules.Request{
		Size:     5,
		Interval: rules.Interval{A: 0, B: 2 * math.Pi},
		Periodic: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, r.Size(), "folding keeps the advertised size")
	assert.Equal(t, 9, r.Degree, "size 5 periodic is built from 6 Lobatto nodes")
	assert.InDelta(t, 2*math.Pi, sum(r.Weights), 1e-12)
	assert.Less(t, r.Points[r.Size()-1][0], 2*math.Pi, "duplicate endpoint dropped")
}

func TestCompositeTrapezoid_Periodic(t *testing.T) {
	r, err := rules.CompositeTrapezoid{}.Resolve(rules.Request{
		Size:     6,
		Interval: rules.Interval{A: 0, B: 2 * math.Pi},
		Periodic: true,
	})
	require.NoError(t, err)
	require.Equal(t, 6, r.Size())

	// Folding leaves a flat weight vector on a periodic axis.
	for i, w := range r.Weights {
		assert.InDeltaf(t, 2*math.Pi/6, w, 1e-14, "weight %d", i)
	}
	assert.InDelta(t, 0, r.Points[0][0], 1e-14)
	assert.Equal(t, 1, r.Degree)
}

func TestCompositeTrapezoid_DegreeRejected(t *testing.T) {
	_, err := rules.CompositeTrapezoid{}.Resolve(rules.Request{
		Degree:   3,
		Interval: rules.Interval{A: 0, B: 1},
	})
	assert.ErrorIs(t, err, rules.ErrInvalidParameter)
}

func TestCompositeSimpson_Exactness(t *testing.T) {
	cube := func(x float64) float64 { return x * x * x }

	// Even subinterval count: plain Simpson.
	r, err := rules.CompositeSimpson{}.Resolve(rules.Request{
		Size:     5,
		Interval: rules.Interval{A: 0, B: 1},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, apply(r, cube), 1e-13)

	// Odd subinterval count: the trailing three-node correction is
	// quadratic-exact on the last interval.
	r, err = rules.CompositeSimpson{}.Resolve(rules.Request{
		Size:     4,
		Interval: rules.Interval{A: 0, B: 1},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sum(r.Weights), 1e-13)
	sq := func(x float64) float64 { return x * x }
	assert.InDelta(t, 1.0/3.0, apply(r, sq), 1e-13)
}

func TestRomberg_SizeRule(t *testing.T) {
	_, err := rules.Romberg{}.Resolve(rules.Request{
		Size:     6,
		Interval: rules.Interval{A: 0, B: 1},
	})
	assert.ErrorIs(t, err, rules.ErrParameterRange, "6 is not 2^k+1")

	r, err := rules.Romberg{}.Resolve(rules.Request{
		Size:     5,
		Interval: rules.Interval{A: 0, B: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, rules.DegreeNone, r.Degree)
	assert.InDelta(t, 1.0, sum(r.Weights), 1e-13)

	// Two extrapolation levels on 5 nodes reproduce Boole's rule, which
	// integrates x^4 exactly.
	got := apply(r, func(x float64) float64 { return x * x * x * x })
	assert.InDelta(t, 0.2, got, 1e-13)
}

func TestRomberg_PeriodicSizeRule(t *testing.T) {
	// Periodic size 4 generates 5 nodes, which is admissible.
	r, err := rules.Romberg{}.Resolve(rules.Request{
		Size:     4,
		Interval: rules.Interval{A: 0, B: 2 * math.Pi},
		Periodic: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, r.Size())
	assert.InDelta(t, 2*math.Pi, sum(r.Weights), 1e-12)
}

func TestJacobian_AppliedToWeights(t *testing.T) {
	// A sin(x) Jacobian on [0, pi] turns the flat rule into one that
	// integrates 1 to the spherical polar measure 2.
	r, err := rules.GaussLegendre{}.Resolve(rules.Request{
		Size:     20,
		Interval: rules.Interval{A: 0, B: math.Pi},
		Jacobian: math.Sin,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sum(r.Weights), 1e-10)
}

func TestMonteCarloR1_SeededReproducible(t *testing.T) {
	seed := uint64(42)
	req := rules.Request{
		Size:     128,
		Interval: rules.Interval{A: -2, B: 3},
		Seed:     &seed,
	}

	r1, err := rules.MonteCarloR1{}.Resolve(req)
	require.NoError(t, err)
	r2, err := rules.MonteCarloR1{}.Resolve(req)
	require.NoError(t, err)

	assert.Equal(t, r1.Points, r2.Points, "same seed, same stream")
	assert.Equal(t, rules.Stochastic, r1.Kind)
	assert.Equal(t, rules.DegreeNone, r1.Degree)
	assert.InDelta(t, 5.0, sum(r1.Weights), 1e-12, "weights sum to b-a")
	for _, p := range r1.Points {
		assert.GreaterOrEqual(t, p[0], -2.0)
		assert.Less(t, p[0], 3.0)
	}
}

func TestMonteCarloR1_DegreeRejected(t *testing.T) {
	_, err := rules.MonteCarloR1{}.Resolve(rules.Request{
		Degree:   5,
		Interval: rules.Interval{A: 0, B: 1},
	})
	assert.ErrorIs(t, err, rules.ErrInvalidParameter)
}
