// SPDX-License-Identifier: MIT
// Package: gridquad/table
//
// errors.go — sentinel errors for the table package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context via fmt.Errorf("...: %w", ErrX).

package table

import "errors"

// ErrNoDataset indicates that no registered dataset matches the requested
// (key, degree-or-size) combination. The store never substitutes a nearby
// dataset; resolution layers translate this into their own degree/size
// availability errors.
// Usage: if errors.Is(err, ErrNoDataset) { /* pick an available size */ }.
var ErrNoDataset = errors.New("table: no matching dataset")

// ErrDatasetShape indicates that a dataset handed to Register is
// internally inconsistent: size/points/weights lengths disagree, rows are
// ragged, or the size is non-positive.
// Usage: if errors.Is(err, ErrDatasetShape) { /* fix the dataset */ }.
var ErrDatasetShape = errors.New("table: inconsistent dataset shape")

// ErrDatasetWeights indicates that explicit dataset weights do not sum to
// unit measure within tolerance. Weights are stored normalized; scaling
// by the domain volume is the rule family's job.
var ErrDatasetWeights = errors.New("table: weights not normalized")

// ErrDuplicateDataset indicates that a dataset with the same size is
// already registered under the key. Datasets are immutable once stored.
var ErrDuplicateDataset = errors.New("table: dataset already registered")
