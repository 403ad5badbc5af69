// SPDX-License-Identifier: MIT
// Package: gridquad/geom
//
// quadrature.go — the Quadrature facade and the Rn, S2 and SO3
// constructors. Construction is the validation barrier: a returned
// *Quadrature always holds a fully composed, normalization-checked grid.
package geom

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/num/quat"

	"github.com/gridquad/gridquad/compose"
	"github.com/gridquad/gridquad/rules"
)

type geometry uint8

const (
	geomRn geometry = iota
	geomS2
	geomSO3
)

func (g geometry) String() string {
	switch g {
	case geomRn:
		return "rn"
	case geomS2:
		return "s2"
	case geomSO3:
		return "so3"
	default:
		return "unknown"
	}
}

// Quadrature is a composed quadrature on one geometry: a read-only grid
// of native coordinates and weights plus metadata about the constituent
// rules. Values are safe for concurrent use.
type Quadrature struct {
	geometry geometry
	domain   compose.Domain
	grid     *compose.Grid
	methods  []string
	degrees  []int
	sampling PolarSampling

	xyzOnce  sync.Once
	xyz      [][]float64
	quatOnce sync.Once
	quats    []quat.Number
}

// Rn builds a quadrature on an n-dimensional box, one 1-D method spec
// per axis. Every spec must carry bounds a and b; Jacobian factors
// attach per axis via WithJacobian and disable the weight-sum check.
func Rn(specs []rules.Spec, opts ...Option) (*Quadrature, error) {
	cfg := newConfig(opts)
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: empty method specification", rules.ErrInvalidParameter)
	}
	for axis := range cfg.jacobians {
		if axis < 0 || axis >= len(specs) {
			return nil, fmt.Errorf("%w: jacobian for axis %d of %d", rules.ErrInvalidParameter, axis, len(specs))
		}
	}

	bounds := make([]rules.Interval, len(specs))
	rls := make([]*rules.Rule, len(specs))
	for i, spec := range specs {
		if spec.A == nil || spec.B == nil {
			return nil, fmt.Errorf("%w: axis %d (%s) requires bounds a and b", rules.ErrInvalidParameter, i, spec.Method)
		}
		bounds[i] = rules.Interval{A: *spec.A, B: *spec.B}

		r, err := cfg.registry.Resolve(spec, rules.Request{
			Interval: bounds[i],
			Jacobian: cfg.jacobians[i],
		})
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
		rls[i] = r
	}

	domain := compose.RnDomain(bounds)
	if len(cfg.jacobians) > 0 {
		domain = domain.WithoutVolume()
	}

	return newQuadrature(geomRn, domain, rls, cfg)
}

// S2 builds a quadrature on the unit sphere in spherical polar angles
// (θ, φ): either one 2-angle method, or a 1-D polar method followed by
// a 1-D azimuthal method.
func S2(specs []rules.Spec, opts ...Option) (*Quadrature, error) {
	return angular(geomS2, compose.S2Domain(), specs, opts)
}

// SO3 builds a quadrature on the rotation group in z-y-z Euler angles
// (α, β, γ): one 3-angle method, a 2-angle method on (α, β) or (β, γ)
// combined with a 1-D method, or three 1-D methods.
func SO3(specs []rules.Spec, opts ...Option) (*Quadrature, error) {
	return angular(geomSO3, compose.SO3Domain(), specs, opts)
}

// angular is the shared S2/SO3 construction path: axis windows are
// managed, azimuths run periodic, and the polar axis follows the
// configured sampling.
func angular(g geometry, domain compose.Domain, specs []rules.Spec, opts []Option) (*Quadrature, error) {
	cfg := newConfig(opts)
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: empty method specification", rules.ErrInvalidParameter)
	}
	if len(cfg.jacobians) > 0 {
		return nil, fmt.Errorf("%w: jacobian factors apply to rn axes only", rules.ErrInvalidParameter)
	}
	if cfg.sampling != Cos && cfg.sampling != Angle {
		return nil, fmt.Errorf("%w: polar sampling %d", rules.ErrInvalidParameter, cfg.sampling)
	}

	// The axis walk below indexes domain.Axes, so the partition must
	// add up before any rule is resolved.
	total := 0
	for _, spec := range specs {
		fam, err := cfg.registry.Lookup(spec.Method)
		if err != nil {
			return nil, err
		}
		total += fam.Dim()
	}
	if total != domain.Dim() {
		return nil, fmt.Errorf("%w: methods cover %d of %d dimensions on %s",
			compose.ErrDimensionMismatch, total, domain.Dim(), domain.Name)
	}

	var (
		rls      = make([]*rules.Rule, len(specs))
		cosAxes  []int // grid columns to map through arccos after composition
		offset   int
	)
	for i, spec := range specs {
		if spec.A != nil || spec.B != nil {
			return nil, fmt.Errorf("%w: bounds on managed axis (%s on %s)", rules.ErrInvalidParameter, spec.Method, domain.Name)
		}
		fam, err := cfg.registry.Lookup(spec.Method)
		if err != nil {
			return nil, err
		}

		req := rules.Request{}
		cosAxis := -1
		switch fam.Dim() {
		case 1:
			switch domain.Axes[offset].Kind {
			case compose.Periodic:
				req.Interval = domain.Axes[offset].Window
				req.Periodic = true
			case compose.Polar:
				if cfg.sampling == Angle {
					req.Interval = domain.Axes[offset].Window
					req.Jacobian = math.Sin
				} else {
					req.Interval = rules.Interval{A: -1, B: 1}
					cosAxis = offset
				}
			default:
				return nil, fmt.Errorf("%w: %s on axis %s", compose.ErrAxisCompatibility, spec.Method, domain.Axes[offset].Name)
			}
		case 2:
			// Tables are stored polar-first; a 2-angle method starting
			// on an azimuthal axis needs its columns swapped.
			req.SwapAngles = domain.Axes[offset].Kind == compose.Periodic
		case 3:
			// Whole rotation group, nothing to prepare.
		}

		r, err := cfg.registry.Resolve(spec, req)
		if err != nil {
			return nil, err
		}
		if cosAxis >= 0 {
			reverseRule(r)
			cosAxes = append(cosAxes, cosAxis)
		}
		rls[i] = r
		offset += fam.Dim()
	}

	q, err := newQuadrature(g, domain, rls, cfg)
	if err != nil {
		return nil, err
	}
	for _, col := range cosAxes {
		for _, p := range q.grid.Points {
			p[col] = math.Acos(math.Max(-1, math.Min(1, p[col])))
		}
	}

	return q, nil
}

// reverseRule flips the node order of a rule in place. A rule resolved
// on cos θ runs from −1 to 1; reversed before composition, the arccos
// image comes out ascending in θ.
func reverseRule(r *rules.Rule) {
	for i, j := 0, r.Size()-1; i < j; i, j = i+1, j-1 {
		r.Points[i], r.Points[j] = r.Points[j], r.Points[i]
		r.Weights[i], r.Weights[j] = r.Weights[j], r.Weights[i]
	}
}

func newQuadrature(g geometry, domain compose.Domain, rls []*rules.Rule, cfg config) (*Quadrature, error) {
	grd, err := compose.Tensor(domain, rls)
	if err != nil {
		return nil, err
	}

	methods := make([]string, len(rls))
	degrees := make([]int, len(rls))
	for i, r := range rls {
		methods[i] = r.Method
		degrees[i] = r.Degree
	}

	return &Quadrature{
		geometry: g,
		domain:   domain,
		grid:     grd,
		methods:  methods,
		degrees:  degrees,
		sampling: cfg.sampling,
	}, nil
}
