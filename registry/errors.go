// SPDX-License-Identifier: MIT
// Package: gridquad/registry
//
// errors.go — sentinel errors for the registry package.
package registry

import "errors"

var (
	// ErrUnknownMethod is returned when a method name matches neither a
	// canonical name nor an alias.
	ErrUnknownMethod = errors.New("registry: unknown method")

	// ErrDuplicateMethod is returned by Add when the name or one of its
	// aliases is already taken.
	ErrDuplicateMethod = errors.New("registry: duplicate method")
)
