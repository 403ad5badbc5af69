// SPDX-License-Identifier: MIT
// Package: gridquad/rules
//
// helpers.go — shared request validation and rule finishing used by the
// family implementations. All helpers return wrapped sentinel errors so
// families stay uniform in their failure surface.
package rules

import "fmt"

// sizeFromDegree resolves the exactly-one-of Size/Degree contract for
// degree-parameterized families. toSize maps a degree to the smallest
// size reaching it and must be monotone.
func sizeFromDegree(name string, req Request, toSize func(degree int) int) (int, error) {
	switch {
	case req.Size > 0 && req.Degree > 0:
		return 0, fmt.Errorf("%w: %s takes size or degree, not both", ErrInvalidParameter, name)
	case req.Size > 0:
		return req.Size, nil
	case req.Degree > 0:
		return toSize(req.Degree), nil
	default:
		return 0, fmt.Errorf("%w: %s requires size or degree", ErrInvalidParameter, name)
	}
}

// sizeOnly resolves the size for families without a degree parameter.
func sizeOnly(name string, req Request) (int, error) {
	if req.Degree > 0 {
		return 0, fmt.Errorf("%w: %s has no degree parameter", ErrInvalidParameter, name)
	}
	if req.Size <= 0 {
		return 0, fmt.Errorf("%w: %s requires size", ErrInvalidParameter, name)
	}
	return req.Size, nil
}

// rejectSeed fails deterministic families on a stray seed.
func rejectSeed(name string, req Request) error {
	if req.Seed != nil {
		return fmt.Errorf("%w: %s is deterministic, seed not accepted", ErrInvalidParameter, name)
	}
	return nil
}

// checkInterval validates the 1-D window of interval families.
func checkInterval(name string, iv Interval) error {
	if !iv.valid() {
		return fmt.Errorf("%w: %s interval [%v, %v]", ErrBadInterval, name, iv.A, iv.B)
	}
	return nil
}

// finish1D assembles a 1-D rule from raw nodes and weights: the user
// Jacobian is applied first, then the duplicate endpoint of a periodic
// rule is folded (its weight moves to the first node, the node itself is
// dropped). hasEndpoints reports whether the generator places nodes on
// both interval boundaries.
func finish1D(method string, kind Kind, degree int, x, w []float64, req Request, hasEndpoints bool) *Rule {
	if req.Jacobian != nil {
		for i := range w {
			w[i] *= req.Jacobian(x[i])
		}
	}
	if req.Periodic && hasEndpoints {
		n := len(x)
		w[0] += w[n-1]
		x, w = x[:n-1], w[:n-1]
	}
	pts := make([][]float64, len(x))
	for i, xi := range x {
		pts[i] = []float64{xi}
	}
	return &Rule{Method: method, Kind: kind, Dim: 1, Degree: degree, Points: pts, Weights: w}
}

// maybeSwap2 exchanges the two columns of a 2-angle rule in place when
// the request asks for it.
func maybeSwap2(pts [][]float64, req Request) {
	if !req.SwapAngles {
		return
	}
	for _, p := range pts {
		p[0], p[1] = p[1], p[0]
	}
}

// equalWeights returns n weights of total measure volume.
func equalWeights(n int, volume float64) []float64 {
	w := make([]float64, n)
	wi := volume / float64(n)
	for i := range w {
		w[i] = wi
	}
	return w
}
