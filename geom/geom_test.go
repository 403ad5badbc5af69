// SPDX-License-Identifier: MIT
// Package: gridquad/geom
//
// geom_test.go — facade construction, axis management, views and the
// integrate contract.
package geom_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridquad/gridquad/compose"
	"github.com/gridquad/gridquad/geom"
	"github.com/gridquad/gridquad/grid"
	"github.com/gridquad/gridquad/registry"
	"github.com/gridquad/gridquad/rules"
	"github.com/gridquad/gridquad/table"
)

func fptr(v float64) *float64 { return &v }

func sum(w []float64) float64 {
	var s float64
	for _, v := range w {
		s += v
	}
	return s
}

func one(...float64) float64 { return 1 }

func TestRn_GaussLegendreByDegree(t *testing.T) {
	q, err := geom.Rn([]rules.Spec{
		{Method: "gauss-legendre", Degree: 21, A: fptr(-10), B: fptr(5)},
	})
	require.NoError(t, err)

	assert.Equal(t, 11, q.Size())
	assert.Equal(t, 1, q.Dim())
	assert.Equal(t, []int{11}, q.Shape())
	assert.Equal(t, []int{21}, q.Degrees())
	assert.InDelta(t, 15.0, sum(q.Weights()), 1e-10)
	assert.InDelta(t, 15.0, q.Integrate(one), 1e-10)
}

func TestRn_TwoAxes(t *testing.T) {
	q, err := geom.Rn([]rules.Spec{
		{Method: "gl", Size: 4, A: fptr(0), B: fptr(1)},
		{Method: "simps", Size: 5, A: fptr(-1), B: fptr(1)},
	})
	require.NoError(t, err)

	assert.Equal(t, 20, q.Size())
	assert.Equal(t, []string{"gauss-legendre", "composite-simpson"}, q.Methods())

	// x^2 * y^2 over [0,1]x[-1,1] = (1/3)(2/3).
	got := q.Integrate(func(x ...float64) float64 { return x[0] * x[0] * x[1] * x[1] })
	assert.InDelta(t, 2.0/9.0, got, 1e-12)
}

func TestRn_BoundsRequired(t *testing.T) {
	_, err := geom.Rn([]rules.Spec{{Method: "gl", Size: 4, A: fptr(0)}})
	assert.ErrorIs(t, err, rules.ErrInvalidParameter)

	_, err = geom.Rn(nil)
	assert.ErrorIs(t, err, rules.ErrInvalidParameter)
}

func TestRn_CustomJacobianSkipsVolumeCheck(t *testing.T) {
	q, err := geom.Rn(
		[]rules.Spec{{Method: "gl", Size: 8, A: fptr(0), B: fptr(1)}},
		geom.WithJacobian(0, func(x float64) float64 { return x * x }),
	)
	require.NoError(t, err)

	// The weights now carry the x^2 measure.
	assert.InDelta(t, 1.0/3.0, sum(q.Weights()), 1e-12)

	_, err = geom.Rn(
		[]rules.Spec{{Method: "gl", Size: 8, A: fptr(0), B: fptr(1)}},
		geom.WithJacobian(3, math.Sin),
	)
	assert.ErrorIs(t, err, rules.ErrInvalidParameter, "jacobian axis out of range")
}

func TestS2_TwoAngleMethod(t *testing.T) {
	q, err := geom.S2([]rules.Spec{{Method: "lebedev", Degree: 7}})
	require.NoError(t, err)

	assert.Equal(t, 26, q.Size())
	assert.Equal(t, 2, q.Dim())
	assert.InDelta(t, 1.0, sum(q.Weights())/(4*math.Pi), 1e-8)

	// Degree 7 integrates z^6 exactly.
	got := q.Integrate(func(x ...float64) float64 { return math.Pow(math.Cos(x[0]), 6) })
	assert.InDelta(t, 4*math.Pi/7, got, 1e-10)
}

func TestS2_ProductOfOneDimMethods(t *testing.T) {
	q, err := geom.S2([]rules.Spec{
		{Method: "gl", Degree: 11},
		{Method: "trapz", Size: 24},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{6, 24}, q.Shape(), "degree 11 wants 6 Gauss nodes")
	assert.InDelta(t, 4*math.Pi, sum(q.Weights()), 4*math.Pi*1e-8)

	// cos^2 θ over the sphere = 4π/3.
	got := q.Integrate(func(x ...float64) float64 {
		c := math.Cos(x[0])
		return c * c
	})
	assert.InDelta(t, 4*math.Pi/3, got, 1e-10)

	// Cos sampling reports the polar coordinate as an ascending angle.
	pts := q.Points()
	nphi := q.Shape()[1]
	assert.Greater(t, pts[nphi][0], pts[0][0])
	for _, p := range pts {
		assert.GreaterOrEqual(t, p[0], 0.0)
		assert.LessOrEqual(t, p[0], math.Pi)
	}
}

func TestS2_AngleSampling(t *testing.T) {
	q, err := geom.S2(
		[]rules.Spec{
			{Method: "gl", Size: 20},
			{Method: "trapz", Size: 16},
		},
		geom.WithPolarSampling(geom.Angle),
	)
	require.NoError(t, err)

	// The sin θ factor is folded into the polar weights.
	assert.InDelta(t, 4*math.Pi, sum(q.Weights()), 4*math.Pi*1e-8)
	got := q.Integrate(func(x ...float64) float64 {
		c := math.Cos(x[0])
		return c * c
	})
	assert.InDelta(t, 4*math.Pi/3, got, 1e-8)
}

func TestS2_ManagedBoundsRejected(t *testing.T) {
	_, err := geom.S2([]rules.Spec{
		{Method: "gl", Size: 6, A: fptr(0), B: fptr(1)},
		{Method: "trapz", Size: 6},
	})
	assert.ErrorIs(t, err, rules.ErrInvalidParameter)
}

func TestS2_DimensionMismatch(t *testing.T) {
	_, err := geom.S2([]rules.Spec{{Method: "trapz", Size: 8}})
	assert.ErrorIs(t, err, compose.ErrDimensionMismatch)
}

func TestS2_UnknownMethod(t *testing.T) {
	_, err := geom.S2([]rules.Spec{{Method: "clenshaw-curtis", Size: 8}})
	assert.ErrorIs(t, err, registry.ErrUnknownMethod)
}

func TestS2_RegisteredDesignTable(t *testing.T) {
	// A degree-7 design table of 24 points, registered under the Gräf
	// source and resolved by degree through an injected registry.
	store := table.NewBuiltin()
	pts := make([][]float64, 24)
	for i := range pts {
		theta := math.Acos(1 - (2*float64(i)+1)/24)
		phi := math.Mod(4*math.Pi*float64(i)/(1+math.Sqrt(5)), 2*math.Pi)
		pts[i] = []float64{theta, phi}
	}
	require.NoError(t, store.Register(table.GraefS2Design, table.Dataset{
		Degree: 7,
		Size:   24,
		Points: pts,
	}))

	q, err := geom.S2(
		[]rules.Spec{{Method: "s2-design-graef", Degree: 7}},
		geom.WithRegistry(registry.New(store)),
	)
	require.NoError(t, err)

	assert.Equal(t, 24, q.Size())
	assert.Equal(t, []int{7}, q.Degrees())
	assert.InDelta(t, 1.0, sum(q.Weights())/(4*math.Pi), 1e-8)
}

func TestSO3_TwoAnglePlusOneDim(t *testing.T) {
	// 2-angle rule on (α, β), trapezoid on γ.
	q, err := geom.SO3([]rules.Spec{
		{Method: "lebedev", Degree: 5},
		{Method: "trapz", Size: 6},
	})
	require.NoError(t, err)

	assert.Equal(t, 84, q.Size(), "14 x 6")
	assert.Equal(t, 3, q.Dim())
	assert.InDelta(t, 1.0, sum(q.Weights())/(8*math.Pi*math.Pi), 1e-8)

	// The swapped 2-angle rule puts the polar angle on β.
	for _, p := range q.Points() {
		assert.GreaterOrEqual(t, p[1], 0.0)
		assert.LessOrEqual(t, p[1], math.Pi)
	}
}

func TestSO3_OneDimOnEachAxis(t *testing.T) {
	q, err := geom.SO3([]rules.Spec{
		{Method: "trapz", Size: 8},
		{Method: "gl", Size: 6},
		{Method: "trapz", Size: 8},
	})
	require.NoError(t, err)

	assert.Equal(t, 8*6*8, q.Size())
	assert.InDelta(t, 8*math.Pi*math.Pi, q.Integrate(one), 8*math.Pi*math.Pi*1e-8)

	// Wigner d^1_00 = cos β integrates to zero.
	got := q.Integrate(func(x ...float64) float64 { return math.Cos(x[1]) })
	assert.InDelta(t, 0.0, got, 1e-8)
}

func TestSO3_EqualWeightGroupRule(t *testing.T) {
	q, err := geom.SO3([]rules.Spec{{Method: "so3-equalweight", Degree: 5}})
	require.NoError(t, err)

	assert.Equal(t, 60, q.Size())
	assert.InDelta(t, 1.0, sum(q.Weights())/(8*math.Pi*math.Pi), 1e-8)
}

func TestSO3_MonteCarloSeeded(t *testing.T) {
	seed := uint64(3)
	q1, err := geom.SO3([]rules.Spec{{Method: "mcso3", Size: 64, Seed: &seed}})
	require.NoError(t, err)
	q2, err := geom.SO3([]rules.Spec{{Method: "mcso3", Size: 64, Seed: &seed}})
	require.NoError(t, err)

	assert.Equal(t, q1.Points(), q2.Points())
	assert.Equal(t, 64, q1.Size())
}

func TestViews_XYZAndQuaternions(t *testing.T) {
	s2, err := geom.S2([]rules.Spec{{Method: "lebedev", Degree: 5}})
	require.NoError(t, err)

	xyz, err := s2.XYZ()
	require.NoError(t, err)
	require.Len(t, xyz, s2.Size())
	for _, v := range xyz {
		norm := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		assert.InDelta(t, 1.0, norm, 1e-12)
	}
	_, err = s2.Quaternions()
	assert.ErrorIs(t, err, geom.ErrWrongGeometry)

	so3, err := geom.SO3([]rules.Spec{{Method: "so3-equalweight", Degree: 3}})
	require.NoError(t, err)

	quats, err := so3.Quaternions()
	require.NoError(t, err)
	require.Len(t, quats, so3.Size())
	for _, q := range quats {
		norm := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
		assert.InDelta(t, 1.0, norm, 1e-12)
	}
	_, err = so3.XYZ()
	assert.ErrorIs(t, err, geom.ErrWrongGeometry)
}

func TestIntegrateSamples(t *testing.T) {
	q, err := geom.S2([]rules.Spec{{Method: "lebedev", Degree: 3}})
	require.NoError(t, err)

	samples := make([]float64, q.Size())
	for i := range samples {
		samples[i] = 1
	}
	got, err := q.IntegrateSamples(samples)
	require.NoError(t, err)
	assert.InDelta(t, 4*math.Pi, got, 1e-10)

	_, err = q.IntegrateSamples(samples[:2])
	assert.ErrorIs(t, err, geom.ErrShapeMismatch)
}

func TestIntegrateMulti(t *testing.T) {
	q, err := geom.Rn([]rules.Spec{{Method: "gl", Size: 5, A: fptr(0), B: fptr(1)}})
	require.NoError(t, err)

	// Two integrands at once: 1 and x.
	samples := make([][]float64, q.Size())
	for i, p := range q.Points() {
		samples[i] = []float64{1, p[0]}
	}
	got, err := q.IntegrateMulti(samples)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 1.0, got[0], 1e-12)
	assert.InDelta(t, 0.5, got[1], 1e-12)

	samples[1] = []float64{1}
	_, err = q.IntegrateMulti(samples)
	assert.ErrorIs(t, err, geom.ErrShapeMismatch)
}

func TestSaveTxt_RoundTrip(t *testing.T) {
	q, err := geom.S2([]rules.Spec{{Method: "lebedev", Degree: 5}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, q.SaveTxt(&buf))

	pts, w, err := grid.LoadTxt(&buf)
	require.NoError(t, err)
	assert.Equal(t, q.Points(), pts)
	assert.Equal(t, len(q.Weights()), len(w))
	for i := range w {
		assert.InDelta(t, q.Weights()[i], w[i], math.Abs(q.Weights()[i])*1e-15)
	}
}
