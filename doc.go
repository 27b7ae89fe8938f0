/*
Package optree implements an ordered binary search tree whose nodes are
linked exclusively through move-only owning boxes.

The tree is the reference consumer of package box: every child link is a
box.Box holding a node, and every descent step dispatches through the box's
match combinator instead of a nil check. The present/absent split of the box
is the only branching mechanism in insert and search, which makes
use-after-transfer and double-release errors structurally impossible in the
tree code.

Ordering is injected as a comparator value at construction time:

	tree := optree.New(optree.Ordered[int]())
	tree.Insert(5)
	tree.Contains(5)

A comparator is a three-way function establishing a strict total order; see
Cmp for the contract. Comparators which need runtime-selectable behavior,
such as sort direction, hold that state as a field of a comparator value
(see RoundedFloats) — never as a process-wide flag.

The tree is deliberately unbalanced. Insertion order determines its shape,
and adversarial (sorted) input degrades the height to the key count.
Recursion depth during insert, search and traversal is bounded by that
height. This is an accepted limitation, not a defect; callers needing
logarithmic worst-case bounds should layer a balancing scheme on top.

The tree is single-threaded. Every owning box has exactly one owner and all
mutation flows through that owner, so there is no locking and no support for
concurrent access.
*/
package optree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
