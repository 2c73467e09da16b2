package vector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b hold equal elements in the same order.
// Two empty vectors are equal regardless of capacity.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.live(), b.live())
}

// EqualFunc reports whether a and b hold pairwise equal elements under
// eq. The element types may differ.
func EqualFunc[A, B any](a *Vector[A], b *Vector[B], eq func(A, B) bool) bool {
	return slices.EqualFunc(a.live(), b.live(), eq)
}

// Compare compares a and b lexicographically: the first unequal element
// pair decides, and a prefix orders before its extension. Returns -1, 0
// or 1.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.live(), b.live())
}

// CompareFunc is Compare with a custom three-way element comparison.
// The element types may differ.
func CompareFunc[A, B any](a *Vector[A], b *Vector[B], cmp func(A, B) int) int {
	return slices.CompareFunc(a.live(), b.live(), cmp)
}

// Less reports whether a orders before b lexicographically.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
