// SPDX-License-Identifier: MIT
// Package: gridquad/geom
//
// options.go — functional options for the geometry constructors.
package geom

import (
	"github.com/gridquad/gridquad/registry"
	"github.com/gridquad/gridquad/rules"
)

// PolarSampling selects the parameterization of the polar axis when it
// is served by a standalone 1-D method.
type PolarSampling uint8

const (
	// Cos runs the 1-D rule on cos θ ∈ [−1, 1]; the flat measure there
	// is the exact surface measure, no Jacobian needed. Default.
	Cos PolarSampling = iota
	// Angle runs the 1-D rule on θ ∈ [0, π] with a sin θ weight factor.
	Angle
)

// String returns the lowercase name of the sampling.
func (s PolarSampling) String() string {
	switch s {
	case Cos:
		return "cos"
	case Angle:
		return "angle"
	default:
		return "unknown"
	}
}

// DefaultPolarSampling is used when no WithPolarSampling option is given.
const DefaultPolarSampling = Cos

type config struct {
	sampling  PolarSampling
	registry  *registry.Registry
	jacobians map[int]rules.Jacobian
}

func newConfig(opts []Option) config {
	cfg := config{
		sampling:  DefaultPolarSampling,
		registry:  registry.Default(),
		jacobians: make(map[int]rules.Jacobian),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option customizes a geometry constructor.
type Option func(*config)

// WithPolarSampling selects the polar axis parameterization for S2 and
// SO3. Ignored by Rn.
func WithPolarSampling(s PolarSampling) Option {
	return func(c *config) { c.sampling = s }
}

// WithRegistry resolves method names against the given registry instead
// of the process default.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *config) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// WithJacobian attaches a Jacobian factor to one Rn axis: the weight of
// every node on that axis is multiplied by fn(node). The reference
// volume becomes undefined, so the weight-sum check is skipped for the
// whole grid. Rejected outside Rn.
func WithJacobian(axis int, fn rules.Jacobian) Option {
	return func(c *config) {
		if fn != nil {
			c.jacobians[axis] = fn
		}
	}
}
