/*
Package box provides a move-only owning pointer for heap values.

A Box[T] holds zero or one value of type T and never shares it: at most one
box owns a given payload at any time. Payloads are not reachable through a
default dereference. Clients access them through combinators (Bind, Map,
Match, Mutate, …) which branch on the present/absent state, making the empty
case an explicit, checkable alternative instead of a dangling reference.

Ownership is transferable. MoveFrom hands the payload over to the receiving
box and leaves the source absent; combinators on an absent box are silent
no-ops or take the none branch. Go has no compile-time move tracking, so the
exclusivity contract is enforced by convention: boxes must not be duplicated
by plain struct assignment, and transfers must go through MoveFrom (or the
consuming combinators). The package nils out the source handle on every
transfer, so a stale box is always observably absent rather than an alias.

Box is not a replacement for (value, ok) return idioms. It is intended for
recursive, heap-owning structures where the owner of a payload must be
unambiguous, such as the search tree in the parent package.
*/
package box

// assert panics when an internal invariant does not hold.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
