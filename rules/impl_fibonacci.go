// SPDX-License-Identifier: MIT
// Package: gridquad/rules
//
// impl_fibonacci.go — deterministic equal-weight coverings of the sphere
// built from the golden ratio: the Fibonacci sphere point sets of
// Marques et al. and the ZCW sets of Eden and Levitt.
package rules

import (
	"fmt"
	"math"
)

// fibonacci returns the i-th Fibonacci number (F(0)=0, F(1)=1).
func fibonacci(i int) int {
	a, b := 0, 1
	for ; i > 0; i-- {
		a, b = b, a+b
	}
	return a
}

// FibonacciSphere is the spherical Fibonacci point set: n near-uniform
// points with weight 4π/n each, defined for every positive n.
type FibonacciSphere struct{}

// Name implements Family.
func (FibonacciSphere) Name() string { return "fibonacci-sphere" }

// Dim implements Family.
func (FibonacciSphere) Dim() int { return 2 }

// Kind implements Family.
func (FibonacciSphere) Kind() Kind { return Covering }

// Resolve implements Family.
func (f FibonacciSphere) Resolve(req Request) (*Rule, error) {
	if err := rejectSeed(f.Name(), req); err != nil {
		return nil, err
	}
	n, err := sizeOnly(f.Name(), req)
	if err != nil {
		return nil, err
	}

	pts := make([][]float64, n)
	for j := range pts {
		theta := math.Acos(1 - (2*float64(j)+1)/float64(n))
		phi := math.Mod(4*math.Pi*float64(j)/(1+math.Sqrt(5)), 2*math.Pi)
		pts[j] = []float64{theta, phi}
	}
	maybeSwap2(pts, req)

	return &Rule{
		Method:  f.Name(),
		Kind:    Covering,
		Dim:     2,
		Degree:  DegreeNone,
		Points:  pts,
		Weights: equalWeights(n, VolumeS2),
	}, nil
}

// ZCW2 is the Zaremba-Conroy-Wolfsberg covering of the sphere. Only
// sizes equal to the Fibonacci numbers F(M+8), M ≥ 0, are defined; the
// generator for size F(M+8) is g = F(M+6).
type ZCW2 struct{}

// Name implements Family.
func (ZCW2) Name() string { return "zcw2" }

// Dim implements Family.
func (ZCW2) Dim() int { return 2 }

// Kind implements Family.
func (ZCW2) Kind() Kind { return Covering }

// Resolve implements Family.
func (z ZCW2) Resolve(req Request) (*Rule, error) {
	if err := rejectSeed(z.Name(), req); err != nil {
		return nil, err
	}
	n, err := sizeOnly(z.Name(), req)
	if err != nil {
		return nil, err
	}
	g, err := zcwGenerator(n)
	if err != nil {
		return nil, err
	}

	pts := make([][]float64, n)
	for j := range pts {
		frac := float64(j) / float64(n)
		theta := math.Acos(2*math.Mod(frac, 1) - 1)
		phi := 2 * math.Pi * math.Mod(float64(j)*float64(g)/float64(n), 1)
		pts[j] = []float64{theta, phi}
	}
	maybeSwap2(pts, req)

	return &Rule{
		Method:  z.Name(),
		Kind:    Covering,
		Dim:     2,
		Degree:  DegreeNone,
		Points:  pts,
		Weights: equalWeights(n, VolumeS2),
	}, nil
}

// zcwGenerator finds M with F(M+8) == n and returns F(M+6), or reports
// that n is not an admissible ZCW size.
func zcwGenerator(n int) (int, error) {
	for m := 0; ; m++ {
		f := fibonacci(m + 8)
		if f == n {
			return fibonacci(m + 6), nil
		}
		// f <= 0 once the iteration overflows int; no larger size exists.
		if f > n || f <= 0 {
			return 0, fmt.Errorf("%w: zcw2 size %d, admissible sizes are Fibonacci numbers starting at 21", ErrParameterRange, n)
		}
	}
}
