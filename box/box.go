package box

import (
	"fmt"
)

// Box owns at most one heap value of type T.
//
// A box created by
//
//	box.Box[T]{}
//
// is a valid object in the absent state and behaves like Nothing[T]().
//
// All methods use pointer receivers and tolerate a nil receiver, which is
// treated as absent. The payload pointer is unexported; the only sanctioned
// reads go through the combinators below. Unchecked is the opt-in escape
// hatch and sits outside the safety contract.
type Box[T any] struct {
	ptr *T
}

// Some creates a present box owning a fresh heap copy of v.
func Some[T any](v T) Box[T] {
	return Box[T]{ptr: &v}
}

// Nothing creates an absent box.
func Nothing[T any]() Box[T] {
	return Box[T]{}
}

// IsPresent reports whether the box owns a payload.
func (b *Box[T]) IsPresent() bool {
	return b != nil && b.ptr != nil
}

// Drop releases the payload, if any. The box becomes absent.
func (b *Box[T]) Drop() {
	if b != nil {
		b.ptr = nil
	}
}

// MoveFrom transfers ownership of other's payload to b.
//
// A payload already owned by b is released first, so no box ever owns two
// values. After the call other is absent. Moving a box onto itself is a
// no-op.
func (b *Box[T]) MoveFrom(other *Box[T]) {
	if b == nil || other == nil || b == other {
		return
	}
	b.ptr = other.ptr
	other.ptr = nil
}

// ForEach invokes f on the payload if present. Absent is a silent no-op.
func (b *Box[T]) ForEach(f func(*T)) {
	if b.IsPresent() {
		f(b.ptr)
	}
}

// MatchDo executes exactly one of the two branches: some with the payload
// when present, none otherwise.
func (b *Box[T]) MatchDo(some func(*T), none func()) {
	assert(some != nil && none != nil, "box: match requires both branches")
	if b.IsPresent() {
		some(b.ptr)
	} else {
		none()
	}
}

// Mutate replaces the payload in place with f(payload) and returns the
// receiver for chaining. Absent is a no-op.
func (b *Box[T]) Mutate(f func(T) T) *Box[T] {
	if b.IsPresent() {
		*b.ptr = f(*b.ptr)
	}
	return b
}

// GetOr returns a pointer to the payload if present, else def. It never
// moves the payload.
func (b *Box[T]) GetOr(def *T) *T {
	if b.IsPresent() {
		return b.ptr
	}
	return def
}

// TakeOr moves the payload out of the box and returns it; the box becomes
// absent. An absent box yields def.
func (b *Box[T]) TakeOr(def T) T {
	if !b.IsPresent() {
		return def
	}
	x := *b.ptr
	b.ptr = nil
	return x
}

// Unchecked returns the raw payload pointer, nil when absent.
//
// This is an interop escape hatch. Holding the pointer across a transfer or
// Drop re-creates exactly the stale-reference hazard the box exists to
// prevent; callers are on their own.
func (b *Box[T]) Unchecked() *T {
	if b == nil {
		return nil
	}
	return b.ptr
}

// String renders the box as Some(payload) or None.
func (b *Box[T]) String() string {
	if b.IsPresent() {
		return fmt.Sprintf("Some(%v)", *b.ptr)
	}
	return "None"
}

// --- Combinators that change the payload type ------------------------------
//
// Go methods cannot introduce type parameters, so the combinators whose
// result type differs from T are free functions.

// Bind returns f(payload) when b is present, else an absent Box[U]. The
// payload is handed to f by reference and stays owned by b.
func Bind[T, U any](b *Box[T], f func(*T) Box[U]) Box[U] {
	if b.IsPresent() {
		return f(b.ptr)
	}
	return Nothing[U]()
}

// Map returns a new present box holding f(payload) when b is present, else
// an absent Box[U]. Non-consuming: b keeps its payload.
func Map[T, U any](b *Box[T], f func(*T) U) Box[U] {
	if b.IsPresent() {
		return Some(f(b.ptr))
	}
	return Nothing[U]()
}

// MapConsuming moves the payload out of b, which becomes absent, and
// returns a present box holding f(payload). An absent b yields an absent
// Box[U].
func MapConsuming[T, U any](b *Box[T], f func(T) U) Box[U] {
	if !b.IsPresent() {
		return Nothing[U]()
	}
	x := *b.ptr
	b.ptr = nil
	return Some(f(x))
}

// Match reduces the box to a value of type R. Exactly one branch executes:
// some with the payload when present, none otherwise. This is the sanctioned
// way to read a possibly-absent value productively.
func Match[T, R any](b *Box[T], some func(*T) R, none func() R) R {
	assert(some != nil && none != nil, "box: match requires both branches")
	if b.IsPresent() {
		return some(b.ptr)
	}
	return none()
}
