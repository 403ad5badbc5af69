package geom_test

import (
	"fmt"
	"math"

	"github.com/gridquad/gridquad/geom"
	"github.com/gridquad/gridquad/rules"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleS2
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Integrate cos²θ over the unit sphere with a degree-7 Lebedev-Laikov
//	rule. The exact value is 4π/3; a degree-7 rule reproduces it to
//	machine precision with 26 points.
//
// ExampleS2 demonstrates spherical integration with a table-based rule.
func ExampleS2() {
	q, err := geom.S2([]rules.Spec{{Method: "lebedev", Degree: 7}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	val := q.Integrate(func(x ...float64) float64 {
		c := math.Cos(x[0])
		return c * c
	})
	fmt.Printf("size=%d\nvalue/(4π/3)=%.12f\n", q.Size(), val/(4*math.Pi/3))
	// Output:
	// size=26
	// value/(4π/3)=1.000000000000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSO3
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Cover the rotation group with a 2-angle Lebedev rule on (α, β) and
//	a 6-point periodic trapezoid on γ, then check the Haar volume 8π².
//
// ExampleSO3 demonstrates mixed composition on the rotation group.
func ExampleSO3() {
	q, err := geom.SO3([]rules.Spec{
		{Method: "lebedev", Degree: 5},
		{Method: "trapz", Size: 6},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	var wsum float64
	for _, w := range q.Weights() {
		wsum += w
	}
	fmt.Printf("size=%d\nΣw/8π²=%.12f\n", q.Size(), wsum/(8*math.Pi*math.Pi))
	// Output:
	// size=84
	// Σw/8π²=1.000000000000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleRn
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A two-dimensional box with independent 1-D rules per axis:
//	Gauss-Legendre in x, composite Simpson in y.
//
// ExampleRn demonstrates box integration with per-axis bounds.
func ExampleRn() {
	a0, b0 := 0.0, 2.0
	a1, b1 := -1.0, 1.0
	q, err := geom.Rn([]rules.Spec{
		{Method: "gl", Size: 6, A: &a0, B: &b0},
		{Method: "simps", Size: 9, A: &a1, B: &b1},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// ∫∫ x·y² dy dx over [0,2]×[-1,1] = 2 · 2/3.
	val := q.Integrate(func(x ...float64) float64 { return x[0] * x[1] * x[1] })
	fmt.Printf("shape=%v\nvalue=%.12f\n", q.Shape(), val)
	// Output:
	// shape=[6 9]
	// value=1.333333333333
}
