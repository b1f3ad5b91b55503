// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer holds generic helpers for optional values.

Profile patches model "field absent" as a nil pointer, so handlers and
services lean on these instead of hand-written nil checks.
*/
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value if it is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Fallback dereferences p, returning fallback if it is nil.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// Apply calls set with the dereferenced value when p is non-nil and reports
// whether it did.
func Apply[T any](p *T, set func(T)) bool {
	if p == nil {
		return false
	}
	set(*p)
	return true
}
