// SPDX-License-Identifier: MIT
// Package: gridquad/table
//
// store.go — the write-once dataset store and its lookup contract.

package table

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DegreeNone marks a dataset without a polynomial exactness degree
// (coverings, stochastic sources).
const DegreeNone = -1

// normTol bounds the accepted relative deviation of Σw from 1 on Register.
const normTol = 1e-8

// Key addresses one dataset family inside the store: the publishing
// source, the geometry it lives on and the rule class within that source.
type Key struct {
	Source   string // e.g. "lebedev", "graef", "karney", "polyhedral"
	Geometry string // "s2" or "so3"
	Class    string // e.g. "gauss", "design", "covering", "equalweight"
}

// String renders the key in source/geometry/class form for error context.
func (k Key) String() string {
	return k.Source + "/" + k.Geometry + "/" + k.Class
}

// Well-known keys. The built-in store populates the polyhedral and
// Lebedev entries; the remaining sources are distributed separately and
// attach via Register.
var (
	LebedevLaikov      = Key{Source: "lebedev", Geometry: "s2", Class: "gauss"}
	PolyhedralS2Design = Key{Source: "polyhedral", Geometry: "s2", Class: "design"}
	PolyhedralSO3      = Key{Source: "polyhedral", Geometry: "so3", Class: "equalweight"}
	GraefS2Gauss       = Key{Source: "graef", Geometry: "s2", Class: "gauss"}
	GraefS2Design      = Key{Source: "graef", Geometry: "s2", Class: "design"}
	GraefSO3Gauss      = Key{Source: "graef", Geometry: "so3", Class: "gauss"}
	WomersleyS2Design  = Key{Source: "womersley", Geometry: "s2", Class: "design"}
	KarneySO3Covering  = Key{Source: "karney", Geometry: "so3", Class: "covering"}
)

// Dataset is one precomputed rule: points in native coordinates
// (row-major, one sample per row) and normalized weights (Σw = 1).
// A nil Weights slice denotes equal weights 1/Size. Degree is DegreeNone
// for sources without an exactness guarantee. Datasets are immutable
// once registered.
type Dataset struct {
	Degree  int
	Size    int
	Points  [][]float64
	Weights []float64
}

// Store holds registered datasets, sorted by size per key. The zero
// value is not usable; construct via NewStore or Builtin.
type Store struct {
	sets map[Key][]Dataset
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{sets: make(map[Key][]Dataset)}
}

// Register adds a dataset under key. The dataset is validated for
// structural consistency (ErrDatasetShape), normalized weights
// (ErrDatasetWeights) and uniqueness of its size under the key
// (ErrDuplicateDataset).
//
// Registration is part of initialization: it must complete before any
// lookup runs concurrently. The store itself takes no locks.
//
// Complexity: O(n·d) validation + O(m) sorted insert for m datasets
// under the key.
func (s *Store) Register(key Key, ds Dataset) error {
	if err := validateDataset(ds); err != nil {
		return fmt.Errorf("Register(%s): %w", key, err)
	}
	for _, have := range s.sets[key] {
		if have.Size == ds.Size {
			return fmt.Errorf("Register(%s): size %d: %w", key, ds.Size, ErrDuplicateDataset)
		}
	}

	list := append(s.sets[key], ds)
	sort.Slice(list, func(i, j int) bool { return list[i].Size < list[j].Size })
	s.sets[key] = list

	return nil
}

// Has reports whether any dataset is registered under key.
func (s *Store) Has(key Key) bool { return len(s.sets[key]) > 0 }

// Sizes returns the registered sizes under key in ascending order.
func (s *Store) Sizes(key Key) []int {
	list := s.sets[key]
	sizes := make([]int, len(list))
	for i, ds := range list {
		sizes[i] = ds.Size
	}

	return sizes
}

// BySize returns the dataset with exactly the given size, or ErrNoDataset.
//
// Complexity: O(log m) over the m datasets under the key.
func (s *Store) BySize(key Key, size int) (Dataset, error) {
	list := s.sets[key]
	i := sort.Search(len(list), func(i int) bool { return list[i].Size >= size })
	if i < len(list) && list[i].Size == size {
		return list[i], nil
	}

	return Dataset{}, fmt.Errorf("BySize(%s, %d): available sizes %v: %w",
		key, size, s.Sizes(key), ErrNoDataset)
}

// ByDegree returns the smallest dataset whose exactness degree satisfies
// (is at least) the requested degree, or ErrNoDataset when no registered
// dataset reaches it. Datasets without a degree never satisfy a degree
// request.
//
// Complexity: O(m) over the m datasets under the key.
func (s *Store) ByDegree(key Key, degree int) (Dataset, error) {
	for _, ds := range s.sets[key] { // sorted by size ascending
		if ds.Degree != DegreeNone && ds.Degree >= degree {
			return ds, nil
		}
	}

	return Dataset{}, fmt.Errorf("ByDegree(%s, %d): available sizes %v: %w",
		key, degree, s.Sizes(key), ErrNoDataset)
}

// validateDataset enforces the structural dataset contract.
func validateDataset(ds Dataset) error {
	if ds.Size < 1 {
		return fmt.Errorf("size %d: %w", ds.Size, ErrDatasetShape)
	}
	if len(ds.Points) != ds.Size {
		return fmt.Errorf("%d point rows for size %d: %w", len(ds.Points), ds.Size, ErrDatasetShape)
	}
	dim := len(ds.Points[0])
	if dim < 1 {
		return fmt.Errorf("empty point row: %w", ErrDatasetShape)
	}
	for i, row := range ds.Points {
		if len(row) != dim {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), dim, ErrDatasetShape)
		}
	}
	if ds.Weights != nil {
		if len(ds.Weights) != ds.Size {
			return fmt.Errorf("%d weights for size %d: %w", len(ds.Weights), ds.Size, ErrDatasetShape)
		}
		if sum := floats.Sum(ds.Weights); math.Abs(sum-1) > normTol {
			return fmt.Errorf("Σw = %.17g: %w", sum, ErrDatasetWeights)
		}
	}
	if ds.Degree < DegreeNone {
		return fmt.Errorf("degree %d: %w", ds.Degree, ErrDatasetShape)
	}

	return nil
}

// EqualWeights materializes the weight vector of a dataset: the explicit
// normalized weights when present, otherwise 1/Size per sample.
func (ds Dataset) EqualWeights() []float64 {
	w := make([]float64, ds.Size)
	if ds.Weights != nil {
		copy(w, ds.Weights)

		return w
	}
	for i := range w {
		w[i] = 1 / float64(ds.Size)
	}

	return w
}
