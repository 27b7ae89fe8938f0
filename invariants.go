package optree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and should be used in tests. It
// verifies that the inorder key sequence is strictly ascending under the
// tree's comparator (which subsumes the search-tree property and the
// no-duplicates rule) and that the incrementally maintained count matches
// the number of reachable nodes.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	if t.cmp == nil {
		return fmt.Errorf("%w: nil comparator", ErrInvalidTree)
	}
	var err error
	var prev *T
	reachable := 0
	t.EachInorder(func(x *T) {
		reachable++
		if err != nil {
			return
		}
		if prev != nil && t.cmp(*prev, *x) >= 0 {
			err = fmt.Errorf("%w: adjacent keys %v, %v", ErrOrderViolated, *prev, *x)
		}
		prev = x
	})
	if err != nil {
		return err
	}
	if reachable != t.count {
		return fmt.Errorf("%w: count=%d, reachable=%d", ErrCountMismatch, t.count, reachable)
	}
	return nil
}
