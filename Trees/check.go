package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Check [Map.Check]. Validates the ordering of every key against the bounds
// set by its ancestors and the cached size of every node. Recursive.
// Time: O(n)
func (u *PointerTree[K, V]) Check() error {
	if _, err := check(u.root, nil, nil); err != nil {
		tracer().Debugf("bst: check failed: %v", err)
		return err
	}
	return nil
}

// check the subtree rooted at n, whose keys must lie strictly between lo and
// hi where those are set. Returns the actual number of nodes.
func check[K constraints.Ordered, V any](n *node[K, V], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && n.key <= *lo {
		return 0, fmt.Errorf("%w: key %v in right subtree of %v", ErrCorrupt, n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		return 0, fmt.Errorf("%w: key %v in left subtree of %v", ErrCorrupt, n.key, *hi)
	}
	l, err := check(n.l, lo, &n.key)
	if err != nil {
		return 0, err
	}
	r, err := check(n.r, &n.key, hi)
	if err != nil {
		return 0, err
	}
	if n.sz != l+r+1 {
		return 0, fmt.Errorf("%w: node %v caches size %d, has %d", ErrCorrupt, n.key, n.sz, l+r+1)
	}
	return n.sz, nil
}
