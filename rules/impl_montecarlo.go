// SPDX-License-Identifier: MIT
// Package: gridquad/rules
//
// impl_montecarlo.go — stochastic families on the interval, the sphere
// and the rotation group. Every sample carries weight volume/n; a fixed
// seed makes the rule reproducible, an absent seed draws a fresh stream
// per Resolve.
package rules

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gridquad/gridquad/grid"
)

// newSource builds the random source for a request: the given seed when
// present, otherwise a time-derived one.
func newSource(seed *uint64) *rand.Rand {
	s := uint64(time.Now().UnixNano())
	if seed != nil {
		s = *seed
	}
	return rand.New(rand.NewSource(s))
}

// MonteCarloR1 draws uniform samples on a finite interval, each with
// weight (b−a)/n.
type MonteCarloR1 struct{}

// Name implements Family.
func (MonteCarloR1) Name() string { return "monte-carlo-1d" }

// Dim implements Family.
func (MonteCarloR1) Dim() int { return 1 }

// Kind implements Family.
func (MonteCarloR1) Kind() Kind { return Stochastic }

// Resolve implements Family.
func (m MonteCarloR1) Resolve(req Request) (*Rule, error) {
	if err := checkInterval(m.Name(), req.Interval); err != nil {
		return nil, err
	}
	n, err := sizeOnly(m.Name(), req)
	if err != nil {
		return nil, err
	}

	u := distuv.Uniform{Min: req.Interval.A, Max: req.Interval.B, Src: newSource(req.Seed)}
	x := make([]float64, n)
	for i := range x {
		x[i] = u.Rand()
	}
	w := equalWeights(n, req.Interval.Length())

	return finish1D(m.Name(), Stochastic, DegreeNone, x, w, req, false), nil
}

// MonteCarloS2 draws uniform samples on the unit sphere in spherical
// polar angles (θ, φ), each with weight 4π/n. The azimuth is uniform on
// [0, 2π) and cos θ uniform on [−1, 1], so no pole clustering occurs.
type MonteCarloS2 struct{}

// Name implements Family.
func (MonteCarloS2) Name() string { return "monte-carlo-s2" }

// Dim implements Family.
func (MonteCarloS2) Dim() int { return 2 }

// Kind implements Family.
func (MonteCarloS2) Kind() Kind { return Stochastic }

// Resolve implements Family.
func (m MonteCarloS2) Resolve(req Request) (*Rule, error) {
	n, err := sizeOnly(m.Name(), req)
	if err != nil {
		return nil, err
	}

	src := newSource(req.Seed)
	phi := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}
	u := distuv.Uniform{Min: -1, Max: 1, Src: src}
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = []float64{math.Acos(u.Rand()), phi.Rand()}
	}
	maybeSwap2(pts, req)

	return &Rule{
		Method:  m.Name(),
		Kind:    Stochastic,
		Dim:     2,
		Degree:  DegreeNone,
		Points:  pts,
		Weights: equalWeights(n, VolumeS2),
	}, nil
}

// MonteCarloSO3 draws uniform random rotations via Shoemake's quaternion
// method and reports them as z-y-z Euler angle triples (α, β, γ), each
// with weight 8π²/n.
type MonteCarloSO3 struct{}

// Name implements Family.
func (MonteCarloSO3) Name() string { return "monte-carlo-so3" }

// Dim implements Family.
func (MonteCarloSO3) Dim() int { return 3 }

// Kind implements Family.
func (MonteCarloSO3) Kind() Kind { return Stochastic }

// Resolve implements Family.
func (m MonteCarloSO3) Resolve(req Request) (*Rule, error) {
	n, err := sizeOnly(m.Name(), req)
	if err != nil {
		return nil, err
	}

	src := newSource(req.Seed)
	pts := make([][]float64, n)
	for i := range pts {
		q := shoemake(src.Float64(), src.Float64(), src.Float64())
		alpha, beta, gamma := grid.EulerFromQuat(q)
		pts[i] = []float64{alpha, beta, gamma}
	}

	return &Rule{
		Method:  m.Name(),
		Kind:    Stochastic,
		Dim:     3,
		Degree:  DegreeNone,
		Points:  pts,
		Weights: equalWeights(n, VolumeSO3),
	}, nil
}

// shoemake maps three independent uniform variates on [0, 1) to a unit
// quaternion distributed by the Haar measure on SO(3).
func shoemake(x0, x1, x2 float64) quat.Number {
	s1, c1 := math.Sincos(2 * math.Pi * x0)
	s2, c2 := math.Sincos(2 * math.Pi * x1)
	r1 := math.Sqrt(1 - x2)
	r2 := math.Sqrt(x2)
	return quat.Number{Real: c2 * r2, Imag: s1 * r1, Jmag: c1 * r1, Kmag: s2 * r2}
}
