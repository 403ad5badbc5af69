// SPDX-License-Identifier: MIT
// Package: gridquad/rules
//
// impl_tabular.go — the store-backed family. One implementation serves
// every precomputed source (Lebedev-Laikov, polyhedral and published
// spherical designs, SO3 group rules, Karney coverings); the differences
// are carried as data: store key, kind, volume and degree policy.
package rules

import (
	"fmt"

	"github.com/gridquad/gridquad/table"
)

// Tabular resolves rules by looking up precomputed datasets in a table
// store and scaling the normalized weights to the geometry volume.
// Construct via the New* functions; a nil store means the built-in one.
type Tabular struct {
	name     string
	dim      int
	kind     Kind
	key      table.Key
	volume   float64
	byDegree bool
	store    *table.Store
}

// Name implements Family.
func (t *Tabular) Name() string { return t.name }

// Dim implements Family.
func (t *Tabular) Dim() int { return t.dim }

// Kind implements Family.
func (t *Tabular) Kind() Kind { return t.kind }

// Sizes lists the sizes available in the backing store.
func (t *Tabular) Sizes() []int { return t.store.Sizes(t.key) }

// Resolve implements Family. A size must match a stored dataset exactly;
// a degree resolves to the smallest stored dataset satisfying it. The
// resolved rule reports the dataset's actual degree, which may exceed
// the requested one.
func (t *Tabular) Resolve(req Request) (*Rule, error) {
	if err := rejectSeed(t.name, req); err != nil {
		return nil, err
	}

	var (
		ds  table.Dataset
		err error
	)
	if t.byDegree {
		var n int
		n, err = sizeFromDegree(t.name, req, func(int) int { return 0 })
		switch {
		case err != nil:
			return nil, err
		case n > 0:
			ds, err = t.store.BySize(t.key, n)
			if err != nil {
				return nil, fmt.Errorf("%w: %s size %d not tabulated (%v)", ErrParameterRange, t.name, n, err)
			}
		default:
			ds, err = t.store.ByDegree(t.key, req.Degree)
			if err != nil {
				return nil, fmt.Errorf("%w: %s degree %d (%v)", ErrDegreeNotAvailable, t.name, req.Degree, err)
			}
		}
	} else {
		var n int
		n, err = sizeOnly(t.name, req)
		if err != nil {
			return nil, err
		}
		ds, err = t.store.BySize(t.key, n)
		if err != nil {
			return nil, fmt.Errorf("%w: %s size %d not tabulated (%v)", ErrParameterRange, t.name, n, err)
		}
	}

	pts := make([][]float64, ds.Size)
	for i, row := range ds.Points {
		pts[i] = append([]float64(nil), row...)
	}
	if t.dim == 2 {
		maybeSwap2(pts, req)
	}

	w := ds.EqualWeights()
	for i := range w {
		w[i] *= t.volume
	}

	return &Rule{
		Method:  t.name,
		Kind:    t.kind,
		Dim:     t.dim,
		Degree:  ds.Degree,
		Points:  pts,
		Weights: w,
	}, nil
}

// orBuiltin substitutes the built-in store for a nil one.
func orBuiltin(s *table.Store) *table.Store {
	if s == nil {
		return table.Builtin()
	}
	return s
}

// NewLebedevLaikov returns the Lebedev-Laikov family on S2: octahedrally
// symmetric Gauss-type rules with guaranteed odd exactness degrees.
func NewLebedevLaikov(s *table.Store) *Tabular {
	return &Tabular{
		name: "lebedev-laikov", dim: 2, kind: Interpolatory,
		key: table.LebedevLaikov, volume: VolumeS2, byDegree: true,
		store: orBuiltin(s),
	}
}

// NewS2Design returns the polyhedral spherical-design family on S2:
// equal-weight vertex sets exact up to degrees 1, 2, 3 and 5.
func NewS2Design(s *table.Store) *Tabular {
	return &Tabular{
		name: "s2-design", dim: 2, kind: Covering,
		key: table.PolyhedralS2Design, volume: VolumeS2, byDegree: true,
		store: orBuiltin(s),
	}
}

// NewGraefS2Design returns Gräf's spherical-design family on S2. The
// built-in store carries no Gräf data; datasets attach via Register.
func NewGraefS2Design(s *table.Store) *Tabular {
	return &Tabular{
		name: "s2-design-graef", dim: 2, kind: Covering,
		key: table.GraefS2Design, volume: VolumeS2, byDegree: true,
		store: orBuiltin(s),
	}
}

// NewWomersleyS2Design returns Womersley's spherical-design family on
// S2, store-registered like the Gräf tables.
func NewWomersleyS2Design(s *table.Store) *Tabular {
	return &Tabular{
		name: "s2-design-womersley", dim: 2, kind: Covering,
		key: table.WomersleyS2Design, volume: VolumeS2, byDegree: true,
		store: orBuiltin(s),
	}
}

// NewGraefS2Gauss returns Gräf's Gauss-type rules on S2 with explicit
// weights, store-registered.
func NewGraefS2Gauss(s *table.Store) *Tabular {
	return &Tabular{
		name: "s2-gauss-graef", dim: 2, kind: Interpolatory,
		key: table.GraefS2Gauss, volume: VolumeS2, byDegree: true,
		store: orBuiltin(s),
	}
}

// NewSO3EqualWeight returns the polyhedral-group family on SO3:
// equal-weight rotation sets from the binary polyhedral groups, exact up
// to degrees 1, 2, 3 and 5 at sizes 4, 12, 24 and 60.
func NewSO3EqualWeight(s *table.Store) *Tabular {
	return &Tabular{
		name: "so3-equalweight", dim: 3, kind: Covering,
		key: table.PolyhedralSO3, volume: VolumeSO3, byDegree: true,
		store: orBuiltin(s),
	}
}

// NewGraefSO3Gauss returns Gräf's Gauss-type rules on SO3, store-registered.
func NewGraefSO3Gauss(s *table.Store) *Tabular {
	return &Tabular{
		name: "so3-gauss-graef", dim: 3, kind: Interpolatory,
		key: table.GraefSO3Gauss, volume: VolumeSO3, byDegree: true,
		store: orBuiltin(s),
	}
}

// NewKarneySO3 returns Karney's SO3 coverings: near-optimal equal-weight
// rotation sets without an exactness degree, store-registered and
// addressed by size only.
func NewKarneySO3(s *table.Store) *Tabular {
	return &Tabular{
		name: "so3-covering-karney", dim: 3, kind: Covering,
		key: table.KarneySO3Covering, volume: VolumeSO3, byDegree: false,
		store: orBuiltin(s),
	}
}
