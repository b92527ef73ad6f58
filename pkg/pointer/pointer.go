// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer provides generic helpers for optional (nullable) values.
//
// Catalog entities use pointers for nullable columns (an author's dates, a
// book's genre, an instance's due date). These helpers keep call sites short.
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer.
// If the pointer is nil, it returns the zero value of the underlying type.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Equal reports whether two optional values are both unset or both set to
// the same value.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
