// SPDX-License-Identifier: MIT
// Package: gridquad/table
//
// builtin.go — the process-wide built-in store.
//
// The built-in store is assembled exactly once behind a sync.Once
// barrier and is read-only afterwards; callers needing additional
// datasets construct their own store (NewStore + Register) or register
// on a fresh copy before any resolution starts.

package table

import "sync"

var (
	builtinOnce  sync.Once
	builtinStore *Store
)

// Builtin returns the shared store with the bundled datasets: Lebedev
// degrees 3/5/7, polyhedral spherical designs and polyhedral-group SO3
// rules. The returned store must be treated as read-only.
func Builtin() *Store {
	builtinOnce.Do(func() {
		builtinStore = NewBuiltin()
	})

	return builtinStore
}

// NewBuiltin assembles a fresh store with the bundled datasets. Unlike
// Builtin, the result is private to the caller and may take additional
// Register calls (external Gräf/Womersley/Karney tables, synthetic test
// data) before being handed to a resolver.
func NewBuiltin() *Store {
	s := NewStore()
	registerLebedev(s)
	registerS2Designs(s)
	registerSO3Groups(s)

	return s
}
