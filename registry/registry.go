// SPDX-License-Identifier: MIT
// Package: gridquad/registry
//
// registry.go — the method registry: canonical names, aliases and spec
// resolution.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gridquad/gridquad/rules"
	"github.com/gridquad/gridquad/table"
)

// Registry resolves method names to rule families. Assemble with New or
// NewEmpty+Add; after assembly the registry is read-only.
type Registry struct {
	families map[string]rules.Family // canonical name → family
	aliases  map[string]string       // lowercase alias → canonical name
}

// NewEmpty returns a registry without any methods.
func NewEmpty() *Registry {
	return &Registry{
		families: make(map[string]rules.Family),
		aliases:  make(map[string]string),
	}
}

// New returns a registry with the complete built-in method set. Table
// families resolve against the given store; a nil store means the
// built-in one.
func New(store *table.Store) *Registry {
	r := NewEmpty()
	add := func(fam rules.Family, aliases ...string) {
		if err := r.Add(fam, aliases...); err != nil {
			panic(err) // no collisions in the built-in set
		}
	}

	// 1-D interval methods.
	add(rules.GaussLegendre{}, "gl")
	add(rules.GaussLobattoLegendre{}, "gll")
	add(rules.CompositeTrapezoid{}, "trapezoid", "trapz")
	add(rules.CompositeSimpson{}, "simpson", "simps")
	add(rules.Romberg{}, "romb")
	add(rules.MonteCarloR1{}, "mc1")

	// Two-angle methods on S2.
	add(rules.NewLebedevLaikov(store), "lebedev")
	add(rules.NewS2Design(store))
	add(rules.NewGraefS2Design(store))
	add(rules.NewWomersleyS2Design(store))
	add(rules.NewGraefS2Gauss(store))
	add(rules.FibonacciSphere{})
	add(rules.ZCW2{})
	add(rules.MonteCarloS2{}, "mcs2")

	// Three-angle methods on SO3.
	add(rules.NewSO3EqualWeight(store))
	add(rules.NewGraefSO3Gauss(store))
	add(rules.NewKarneySO3(store))
	add(rules.MonteCarloSO3{}, "mcso3")

	return r
}

// Add registers a family under its canonical name plus the given extra
// aliases. Names are matched case-insensitively.
func (r *Registry) Add(fam rules.Family, aliases ...string) error {
	name := strings.ToLower(fam.Name())
	if _, ok := r.aliases[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateMethod, name)
	}
	r.families[name] = fam
	r.aliases[name] = name
	for _, a := range aliases {
		a = strings.ToLower(a)
		if _, ok := r.aliases[a]; ok {
			return fmt.Errorf("%w: alias %q", ErrDuplicateMethod, a)
		}
		r.aliases[a] = name
	}

	return nil
}

// Lookup resolves a method name or alias to its family.
func (r *Registry) Lookup(name string) (rules.Family, error) {
	canonical, ok := r.aliases[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}

	return r.families[canonical], nil
}

// Methods lists the canonical method names in sorted order.
func (r *Registry) Methods() []string {
	out := make([]string, 0, len(r.families))
	for name := range r.families {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Resolve looks up spec.Method and resolves it with the given axis
// context: the spec's size, degree and seed are merged into req, the
// axis-level fields of req (interval, periodicity, Jacobian, angle
// order) stay as the caller prepared them.
func (r *Registry) Resolve(spec rules.Spec, req rules.Request) (*rules.Rule, error) {
	fam, err := r.Lookup(spec.Method)
	if err != nil {
		return nil, err
	}
	req.Size = spec.Size
	req.Degree = spec.Degree
	req.Seed = spec.Seed

	return fam.Resolve(req)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry backed by the built-in
// table store, built on first use.
func Default() *Registry {
	defaultOnce.Do(func() { defaultReg = New(table.Builtin()) })

	return defaultReg
}
