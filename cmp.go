package optree

import (
	"cmp"
	"math"
)

// Cmp is a three-way comparator over T.
//
// cmp(a, b) returns a negative value iff a orders before b, zero iff the two
// are equal keys, and a positive value iff a orders after b. The comparator
// must define a strict total order. The tree does not detect violations of
// this contract at runtime; feeding a non-total order yields an unspecified
// (but memory-safe) tree shape.
type Cmp[T any] func(a, b T) int

// Ordered returns the natural ascending comparator for ordered types.
func Ordered[T cmp.Ordered]() Cmp[T] {
	return func(a, b T) int { return cmp.Compare(a, b) }
}

// Reversed returns a comparator with the opposite ordering of c.
func Reversed[T any](c Cmp[T]) Cmp[T] {
	return func(a, b T) int { return c(b, a) }
}

// RoundedFloats compares float64 keys after rounding to a fixed number of
// decimal digits, so keys closer than the rounding granularity compare
// equal.
//
// Direction is a field of the comparator value. A tree that should sort
// descending is constructed with its own RoundedFloats{Decreasing: true};
// the decision is per tree, never shared process state.
type RoundedFloats struct {
	// Digits is the number of decimal digits kept. The zero value selects
	// the default of 7; a negative value rounds to whole numbers.
	Digits     int
	Decreasing bool
}

// Compare implements the three-way contract of Cmp[float64].
func (r RoundedFloats) Compare(a, b float64) int {
	digits := r.Digits
	if digits == 0 {
		digits = 7
	} else if digits < 0 {
		digits = 0
	}
	scale := math.Pow(10, float64(digits))
	ar := int64(a*scale + 0.5)
	br := int64(b*scale + 0.5)
	if r.Decreasing {
		ar, br = br, ar
	}
	return cmp.Compare(ar, br)
}
