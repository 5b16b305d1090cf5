// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"lexis/internal/platform/store"
)

// Keyed is the minimal read and write surface for keyed repos
type Keyed = store.Keyed

// Binder is a tiny factory that binds a domain repo to a specific Keyed seam
type Binder[T any] interface {
	Bind(Keyed) T
}

// BindFunc lets you create a Binder from a function
type BindFunc[T any] func(Keyed) T

// Bind calls the underlying function
func (f BindFunc[T]) Bind(k Keyed) T { return f(k) }

// RequireKeyed panics early on programmer error (nil seam)
func RequireKeyed(k Keyed) Keyed {
	if k == nil {
		panic("repokit: nil Keyed")
	}
	return k
}

// MustBind is a convenience that validates the seam then binds
func MustBind[T any](b Binder[T], k Keyed) T {
	return b.Bind(RequireKeyed(k))
}
