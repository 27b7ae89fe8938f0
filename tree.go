package optree

import (
	"github.com/npillmayer/schuko/gtrace"

	"github.com/treelab/optree/box"
)

// Tree is an ordered binary search tree over keys of type T.
//
// The root is an owning box, so an empty tree and a moved-from tree are the
// same thing: a tree whose root box is absent. Count is maintained
// incrementally and always equals the number of keys reachable from the
// root.
//
// Trees are created with New; the comparator is captured once and reused
// for every operation.
type Tree[T any] struct {
	root  box.Box[node[T]]
	count int
	cmp   Cmp[T]
}

// New creates an empty tree bound to cmp. The comparator must not be nil
// and must define a strict total order over T.
func New[T any](cmp Cmp[T]) *Tree[T] {
	assert(cmp != nil, "optree: tree requires a comparator")
	return &Tree[T]{cmp: cmp}
}

// Size returns the number of distinct keys in the tree.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Insert adds x to the tree and reports whether it was added. A key equal
// to an existing one under the tree's comparator is rejected and the tree
// is left unchanged.
func (t *Tree[T]) Insert(x T) bool {
	inserted := false
	t.root.MatchDo(
		func(n *node[T]) { inserted = n.insert(x, t.cmp) },
		func() {
			t.root = leaf(x)
			inserted = true
		})
	if inserted {
		t.count++
	}
	return inserted
}

// Contains reports whether a key equal to x under the tree's comparator is
// stored in the tree.
func (t *Tree[T]) Contains(x T) bool {
	if t == nil {
		return false
	}
	return box.Match(&t.root,
		func(n *node[T]) bool { return n.search(x, t.cmp) },
		func() bool { return false })
}

// EachInorder visits every key in ascending order under the tree's
// comparator. An empty tree visits nothing.
//
// The callback receives a pointer to the stored key for reference-style
// access; rewriting the key through it changes the search order behind the
// tree's back and voids the search-tree invariant.
func (t *Tree[T]) EachInorder(f func(*T)) {
	if t == nil {
		return
	}
	t.root.ForEach(func(n *node[T]) { n.eachInorder(f) })
}

// EachPreorder visits every key in preorder together with its node depth,
// root first. This is the structural walk used by display renderings.
func (t *Tree[T]) EachPreorder(f func(item *T, depth int)) {
	if t == nil {
		return
	}
	t.root.ForEach(func(n *node[T]) { n.eachPreorder(0, f) })
}

// MoveFrom transfers other's root and count to t. Keys previously held by t
// are released.
//
// Afterwards other is indistinguishable from a freshly constructed empty
// tree: its size is 0, inserts succeed and grow from zero, lookups find
// nothing. Both trees keep their own comparator; transferring between trees
// with different orderings is a contract violation on par with a non-total
// comparator.
func (t *Tree[T]) MoveFrom(other *Tree[T]) {
	if t == nil || other == nil || t == other {
		return
	}
	// inside this method the type parameter shadows the T() helper
	gtrace.CoreTracer.Debugf("tree takes over %d keys from moved-from tree", other.count)
	t.root.MoveFrom(&other.root)
	t.count = other.count
	other.count = 0
}
