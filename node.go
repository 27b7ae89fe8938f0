package optree

import (
	"github.com/treelab/optree/box"
)

// node is one element of the search chain. A node owns its two subtrees
// exclusively through boxes; an absent box is a missing child. There are no
// parent links and no sharing, the structure is a strict out-tree.
type node[T any] struct {
	item  T
	left  box.Box[node[T]]
	right box.Box[node[T]]
}

// leaf creates a present box owning a fresh childless node.
func leaf[T any](x T) box.Box[node[T]] {
	return box.Some(node[T]{item: x})
}

// insert places x in the subtree rooted at n, keeping the search order
// defined by cmp. It reports whether x was inserted; a key equal to an
// existing one under cmp is rejected, never replaced.
func (n *node[T]) insert(x T, cmp Cmp[T]) bool {
	c := cmp(x, n.item)
	switch {
	case c < 0:
		return box.Match(&n.left,
			func(child *node[T]) bool { return child.insert(x, cmp) },
			func() bool { n.left = leaf(x); return true })
	case c > 0:
		return box.Match(&n.right,
			func(child *node[T]) bool { return child.insert(x, cmp) },
			func() bool { n.right = leaf(x); return true })
	default:
		return false
	}
}

// search reports whether a key equal to x under cmp is stored in the
// subtree rooted at n.
func (n *node[T]) search(x T, cmp Cmp[T]) bool {
	c := cmp(x, n.item)
	switch {
	case c < 0:
		return box.Match(&n.left,
			func(child *node[T]) bool { return child.search(x, cmp) },
			func() bool { return false })
	case c > 0:
		return box.Match(&n.right,
			func(child *node[T]) bool { return child.search(x, cmp) },
			func() bool { return false })
	default:
		return true
	}
}

// eachInorder visits left subtree, own item, right subtree, which yields
// ascending key order under the tree's comparator.
func (n *node[T]) eachInorder(f func(*T)) {
	n.left.ForEach(func(child *node[T]) { child.eachInorder(f) })
	f(&n.item)
	n.right.ForEach(func(child *node[T]) { child.eachInorder(f) })
}

// eachPreorder visits own item first, then the subtrees, handing the node
// depth to the callback. Used by structural renderings.
func (n *node[T]) eachPreorder(depth int, f func(item *T, depth int)) {
	f(&n.item, depth)
	n.left.ForEach(func(child *node[T]) { child.eachPreorder(depth+1, f) })
	n.right.ForEach(func(child *node[T]) { child.eachPreorder(depth+1, f) })
}
