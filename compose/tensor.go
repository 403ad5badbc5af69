// SPDX-License-Identifier: MIT
// Package: gridquad/compose
//
// tensor.go — the tensor-product composer and the composed Grid value.
package compose

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gridquad/gridquad/rules"
)

// DefaultNormTolerance bounds the accepted relative deviation of the
// composed weight sum from the domain volume.
const DefaultNormTolerance = 1e-8

// Grid is one composed quadrature grid: Size() rows of Dim() native
// coordinates with one weight per row. Shape lists the constituent rule
// sizes in composition order. Grids are immutable after Tensor.
type Grid struct {
	Points  [][]float64
	Weights []float64
	Shape   []int
}

// Size returns the number of grid points.
func (g *Grid) Size() int { return len(g.Weights) }

// Dim returns the coordinate count per point.
func (g *Grid) Dim() int {
	if len(g.Points) == 0 {
		return 0
	}
	return len(g.Points[0])
}

// Tensor composes the rules into the full Cartesian-product grid on the
// domain. Points are emitted row-major with the last rule's index
// varying fastest; each weight is the product of the constituent
// weights. After composition the weight sum is checked against the
// domain volume within DefaultNormTolerance (relative), unless the
// domain volume is NaN.
//
// Complexity: O(size · dim) for size = ∏ rule sizes.
func Tensor(d Domain, rls []*rules.Rule) (*Grid, error) {
	if err := Check(d, rls); err != nil {
		return nil, err
	}

	total := 1
	shape := make([]int, len(rls))
	for i, r := range rls {
		shape[i] = r.Size()
		total *= r.Size()
	}

	dim := d.Dim()
	pts := make([][]float64, total)
	w := make([]float64, total)
	for idx := 0; idx < total; idx++ {
		row := make([]float64, 0, dim)
		weight := 1.0
		rem := idx
		// Decompose idx with the last rule fastest.
		stride := total
		for _, r := range rls {
			stride /= r.Size()
			i := rem / stride
			rem %= stride
			row = append(row, r.Points[i]...)
			weight *= r.Weights[i]
		}
		pts[idx] = row
		w[idx] = weight
	}

	if !math.IsNaN(d.Volume) {
		sum := floats.Sum(w)
		if math.Abs(sum-d.Volume) > DefaultNormTolerance*math.Abs(d.Volume) {
			return nil, fmt.Errorf("%w: Σw = %.17g, volume(%s) = %.17g",
				ErrWeightNormalization, sum, d.Name, d.Volume)
		}
	}

	return &Grid{Points: pts, Weights: w, Shape: shape}, nil
}
