// SPDX-License-Identifier: MIT
// Package: gridquad/rules
//
// types.go — core value types shared by every rule family: Kind, Spec,
// Request, Rule and the Family interface.
package rules

import "math"

// DegreeNone marks a rule without a polynomial exactness guarantee
// (coverings, stochastic samplers, Romberg).
const DegreeNone = -1

// Full-measure volumes of the curved geometries. Weights of every rule
// on these manifolds sum to the corresponding constant.
const (
	VolumeS2  = 4 * math.Pi           // surface of the unit sphere
	VolumeSO3 = 8 * math.Pi * math.Pi // Haar volume of the rotation group
)

// Kind classifies how a family's weights relate to exactness.
type Kind uint8

const (
	// Interpolatory rules carry a guaranteed polynomial exactness degree.
	Interpolatory Kind = iota
	// Covering rules are deterministic equal-weight point sets; spherical
	// designs carry an exactness degree, plain coverings report
	// DegreeNone.
	Covering
	// Stochastic rules draw pseudo-random equal-weight samples.
	Stochastic
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Interpolatory:
		return "interpolatory"
	case Covering:
		return "covering"
	case Stochastic:
		return "stochastic"
	default:
		return "unknown"
	}
}

// Interval is a finite 1-D integration window [A, B].
type Interval struct {
	A float64
	B float64
}

// Length returns B − A.
func (iv Interval) Length() float64 { return iv.B - iv.A }

// valid reports whether the interval is finite and non-degenerate.
func (iv Interval) valid() bool {
	if math.IsNaN(iv.A) || math.IsNaN(iv.B) || math.IsInf(iv.A, 0) || math.IsInf(iv.B, 0) {
		return false
	}
	return iv.A != iv.B
}

// Jacobian is a pointwise weight modifier for 1-D rules. Each quadrature
// weight is multiplied by the Jacobian evaluated at its node before any
// periodic folding takes place.
type Jacobian func(x float64) float64

// Spec is the user-facing description of one quadrature method along one
// axis, as it appears in YAML method specifications. Zero-valued fields
// mean "not given"; pointer fields distinguish absent from zero.
type Spec struct {
	Method string   `yaml:"method"`
	Size   int      `yaml:"size,omitempty"`
	Degree int      `yaml:"degree,omitempty"`
	A      *float64 `yaml:"a,omitempty"`
	B      *float64 `yaml:"b,omitempty"`
	Seed   *uint64  `yaml:"seed,omitempty"`
}

// Request is the fully resolved form of a Spec that a Family consumes.
// The registry and the geometry facades build Requests; families validate
// them strictly and reject parameters they do not understand.
type Request struct {
	// Size is the requested number of points; 0 means not given.
	Size int
	// Degree is the requested polynomial exactness degree; 0 means not
	// given (degree 0 itself is never a meaningful request).
	Degree int
	// Interval is the 1-D integration window. Ignored by families on
	// curved geometries.
	Interval Interval
	// Periodic marks a 1-D axis whose endpoints are identified; rules
	// with endpoint nodes fold the duplicate.
	Periodic bool
	// Jacobian, when non-nil, multiplies each 1-D weight in place.
	Jacobian Jacobian
	// Seed fixes the random stream of a stochastic family. Deterministic
	// families reject a non-nil seed.
	Seed *uint64
	// SwapAngles exchanges the two columns of a 2-angle rule, mapping a
	// (polar, azimuth) table onto an (azimuth, polar) axis pair.
	SwapAngles bool
}

// Rule is one resolved quadrature rule: n sample points in dim
// coordinates plus matching weights. Rules are immutable; the slices
// are owned by the rule and must not be modified by callers.
type Rule struct {
	// Method is the canonical family name that produced the rule.
	Method string
	// Kind classifies the weight semantics.
	Kind Kind
	// Dim is the number of coordinates per point.
	Dim int
	// Degree is the guaranteed polynomial exactness degree, or
	// DegreeNone when the family makes no such promise.
	Degree int
	// Points holds the samples row-major: Points[i] is the coordinate
	// tuple of sample i, of length Dim.
	Points [][]float64
	// Weights holds one quadrature weight per row of Points. The sum
	// equals the domain measure (before any user Jacobian).
	Weights []float64
}

// Size returns the number of sample points.
func (r *Rule) Size() int { return len(r.Weights) }

// Family produces rules of one method for one geometry dimension.
// Implementations are stateless or internally synchronized; Resolve is
// safe for concurrent use.
type Family interface {
	// Name returns the canonical lowercase method name.
	Name() string
	// Dim returns the coordinate count of produced rules (1 for
	// intervals, 2 for S2 angles, 3 for SO3 Euler angles).
	Dim() int
	// Kind classifies the family's weight semantics.
	Kind() Kind
	// Resolve validates the request and builds the rule, or reports why
	// it cannot (wrapping a sentinel from errors.go).
	Resolve(req Request) (*Rule, error)
}
