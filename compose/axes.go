// SPDX-License-Identifier: MIT
// Package: gridquad/compose
//
// axes.go — the axis model: axis kinds, domains and the compatibility
// checker.
package compose

import (
	"fmt"
	"math"

	"github.com/gridquad/gridquad/rules"
)

// AxisKind classifies how an axis is parameterized and who owns its
// bounds.
type AxisKind uint8

const (
	// Interval axes carry user-supplied finite bounds.
	Interval AxisKind = iota
	// Periodic axes are managed azimuthal angles on [0, 2π]; rules with
	// endpoint nodes fold the duplicate.
	Periodic
	// Polar axes are managed polar angles on [0, π], sampled either in
	// cos θ or in θ directly.
	Polar
)

// String returns the lowercase name of the kind.
func (k AxisKind) String() string {
	switch k {
	case Interval:
		return "interval"
	case Periodic:
		return "periodic"
	case Polar:
		return "polar"
	default:
		return "unknown"
	}
}

// Axis is one coordinate of a domain: a display name, a kind and the
// window the 1-D rule for this axis runs on.
type Axis struct {
	Name   string
	Kind   AxisKind
	Window rules.Interval
}

// Domain is the axis model of a geometry. Volume is the reference value
// for the composed weight sum; NaN disables the check.
type Domain struct {
	Name   string
	Volume float64
	Axes   []Axis
}

// Dim returns the number of axes.
func (d Domain) Dim() int { return len(d.Axes) }

// RnDomain builds an n-dimensional interval domain from per-axis bounds.
// The volume is the product of the side lengths.
func RnDomain(bounds []rules.Interval) Domain {
	axes := make([]Axis, len(bounds))
	volume := 1.0
	for i, b := range bounds {
		axes[i] = Axis{Name: fmt.Sprintf("x%d", i), Kind: Interval, Window: b}
		volume *= b.Length()
	}

	return Domain{Name: "rn", Volume: volume, Axes: axes}
}

// S2Domain is the unit sphere in spherical polar angles (θ, φ).
func S2Domain() Domain {
	return Domain{
		Name:   "s2",
		Volume: rules.VolumeS2,
		Axes: []Axis{
			{Name: "theta", Kind: Polar, Window: rules.Interval{A: 0, B: math.Pi}},
			{Name: "phi", Kind: Periodic, Window: rules.Interval{A: 0, B: 2 * math.Pi}},
		},
	}
}

// SO3Domain is the rotation group in z-y-z Euler angles (α, β, γ).
func SO3Domain() Domain {
	return Domain{
		Name:   "so3",
		Volume: rules.VolumeSO3,
		Axes: []Axis{
			{Name: "alpha", Kind: Periodic, Window: rules.Interval{A: 0, B: 2 * math.Pi}},
			{Name: "beta", Kind: Polar, Window: rules.Interval{A: 0, B: math.Pi}},
			{Name: "gamma", Kind: Periodic, Window: rules.Interval{A: 0, B: 2 * math.Pi}},
		},
	}
}

// WithoutVolume returns a copy of the domain with the weight-sum check
// disabled. Used when a custom Jacobian redefines the measure.
func (d Domain) WithoutVolume() Domain {
	d.Volume = math.NaN()
	return d
}

// Check validates that the rules partition the domain: their dimensions
// sum to the domain dimension, and every multi-angle rule occupies an
// admissible axis window. Single-axis rules fit any axis; the facades
// are responsible for requesting the right window and folding.
func Check(d Domain, rls []*rules.Rule) error {
	total := 0
	for _, r := range rls {
		total += r.Dim
	}
	if total != d.Dim() {
		return fmt.Errorf("%w: rules cover %d of %d dimensions on %s",
			ErrDimensionMismatch, total, d.Dim(), d.Name)
	}

	offset := 0
	for _, r := range rls {
		kinds := make([]AxisKind, r.Dim)
		for i := 0; i < r.Dim; i++ {
			kinds[i] = d.Axes[offset+i].Kind
		}
		switch r.Dim {
		case 1:
			// Any axis, the window was the family's problem.
		case 2:
			// One polar and one azimuthal axis, in either order:
			// (θ, φ) on S2, (α, β) or (β, γ) on SO3.
			ok := (kinds[0] == Polar && kinds[1] == Periodic) ||
				(kinds[0] == Periodic && kinds[1] == Polar)
			if !ok {
				return fmt.Errorf("%w: %s spans axes %s/%s on %s",
					ErrAxisCompatibility, r.Method,
					d.Axes[offset].Name, d.Axes[offset+1].Name, d.Name)
			}
		case 3:
			ok := kinds[0] == Periodic && kinds[1] == Polar && kinds[2] == Periodic
			if !ok {
				return fmt.Errorf("%w: %s needs the full rotation group, placed at axis %d of %s",
					ErrAxisCompatibility, r.Method, offset, d.Name)
			}
		default:
			return fmt.Errorf("%w: %s has unsupported dimension %d",
				ErrAxisCompatibility, r.Method, r.Dim)
		}
		offset += r.Dim
	}

	return nil
}
