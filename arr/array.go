package arr

import (
	"github.com/treelab/optree/box"
)

// Array owns a heap-allocated contiguous sequence of T.
//
// The zero value
//
//	arr.Array[T]{}
//
// is a valid empty array of length 0 with a nil backing store.
//
// Methods use pointer receivers and tolerate a nil receiver, which behaves
// like an empty array.
type Array[T any] struct {
	store []T
}

// New allocates an array of n zero-valued slots. A length of 0 or less
// yields an empty array with no backing store.
func New[T any](n int) Array[T] {
	if n <= 0 {
		return Array[T]{}
	}
	return Array[T]{store: make([]T, n)}
}

// Size returns the array length.
func (a *Array[T]) Size() int {
	if a == nil {
		return 0
	}
	return len(a.store)
}

// At returns a pointer to slot i without a bounds check of its own.
//
// The caller must guarantee 0 <= i < Size(); a violation panics the runtime.
// This is the performance path; use Get for modeled out-of-range behavior.
func (a *Array[T]) At(i int) *T {
	return &a.store[i]
}

// Get returns a box holding a copy of slot i, or an absent box when i is
// out of range.
func (a *Array[T]) Get(i int) box.Box[T] {
	if a == nil || i < 0 || i >= len(a.store) {
		return box.Nothing[T]()
	}
	return box.Some(a.store[i])
}

// Foreach applies f to every element in index order and returns the
// receiver for chaining.
func (a *Array[T]) Foreach(f func(*T)) *Array[T] {
	if a == nil {
		return a
	}
	for i := range a.store {
		f(&a.store[i])
	}
	return a
}

// Reduce left-folds f over the elements in index order.
//
// The fold is seeded with the first element, not with id; id is returned
// only when the array is empty. The array is not mutated.
func (a *Array[T]) Reduce(f func(T, T) T, id T) T {
	if a.Size() == 0 {
		return id
	}
	ax := a.store[0]
	for i := 1; i < len(a.store); i++ {
		ax = f(ax, a.store[i])
	}
	return ax
}

// Reverse swaps elements from both ends inward, in place, and returns the
// receiver for chaining.
func (a *Array[T]) Reverse() *Array[T] {
	if a == nil {
		return a
	}
	for i, j := 0, len(a.store)-1; i < j; i, j = i+1, j-1 {
		a.store[i], a.store[j] = a.store[j], a.store[i]
	}
	return a
}

// Swap exchanges slots i and k. It returns false when either index is out
// of range, leaving the array untouched.
func (a *Array[T]) Swap(i, k int) bool {
	if a == nil || i < 0 || k < 0 || i >= len(a.store) || k >= len(a.store) {
		return false
	}
	a.store[i], a.store[k] = a.store[k], a.store[i]
	return true
}

// Set moves v into slot i. It returns false when i is out of range.
func (a *Array[T]) Set(i int, v T) bool {
	if a == nil || i < 0 || i >= len(a.store) {
		return false
	}
	a.store[i] = v
	return true
}

// Join consumes both a and other and returns a newly allocated array
// holding a's elements followed by other's. Both sources end up empty with
// released stores. Joining two empty arrays yields an empty array.
func (a *Array[T]) Join(other *Array[T]) Array[T] {
	n := a.Size() + other.Size()
	if n == 0 {
		return Array[T]{}
	}
	j := Array[T]{store: make([]T, 0, n)}
	if a != nil {
		j.store = append(j.store, a.store...)
		a.store = nil
	}
	if other != nil {
		j.store = append(j.store, other.store...)
		other.store = nil
	}
	return j
}

// MoveFrom transfers other's backing store and length to a. The source
// becomes an empty array; a's previous store is released.
func (a *Array[T]) MoveFrom(other *Array[T]) {
	if a == nil || other == nil || a == other {
		return
	}
	a.store = other.store
	other.store = nil
}

// Find returns the index of the first element equal to x, or a.Size() as
// the not-found sentinel.
func Find[T comparable](a *Array[T], x T) int {
	for i := 0; i < a.Size(); i++ {
		if a.store[i] == x {
			return i
		}
	}
	return a.Size()
}

// Map produces a new array of the same length with f applied element-wise.
// Elements are handed to f by reference; the source stays untouched.
func Map[T, U any](a *Array[T], f func(*T) U) Array[U] {
	if a.Size() == 0 {
		return Array[U]{}
	}
	r := Array[U]{store: make([]U, len(a.store))}
	for i := range a.store {
		r.store[i] = f(&a.store[i])
	}
	return r
}

// MapConsuming produces a new array of the same length, moving each element
// into f. The source store is released afterwards and the source length
// becomes 0.
func MapConsuming[T, U any](a *Array[T], f func(T) U) Array[U] {
	if a.Size() == 0 {
		return Array[U]{}
	}
	r := Array[U]{store: make([]U, len(a.store))}
	for i := range a.store {
		r.store[i] = f(a.store[i])
	}
	a.store = nil
	return r
}
