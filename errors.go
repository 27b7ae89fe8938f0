package optree

import "errors"

var (
	// ErrInvalidTree signals a structurally broken tree (nil comparator or
	// corrupted root bookkeeping).
	ErrInvalidTree = errors.New("optree: invalid tree")
	// ErrOrderViolated signals that the stored keys do not form a strict
	// ascending sequence under the tree's comparator.
	ErrOrderViolated = errors.New("optree: search order violated")
	// ErrCountMismatch signals that the incremental key count disagrees with
	// the number of reachable nodes.
	ErrCountMismatch = errors.New("optree: key count out of sync")
)
