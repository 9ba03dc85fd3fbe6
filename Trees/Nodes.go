package Trees

import "golang.org/x/exp/constraints"

// A node in the PointerTree.
// sz is the number of nodes in the subtree rooted here. It is derived from
// the children and must be refreshed with fix after any child link changes.
type node[K constraints.Ordered, V any] struct {
	key   K
	value V
	l, r  *node[K, V]
	sz    int
}

// size of the subtree rooted at n; 0 for nil.
func size[K constraints.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.sz
}

// fix recomputes n.sz from its children and returns n.
// Time: O(1); Space: O(1)
func (n *node[K, V]) fix() *node[K, V] {
	n.sz = size(n.l) + size(n.r) + 1
	return n
}

// unlinkMin removes the smallest node of the subtree *link points to and
// returns it. *link must not be nil. The returned node keeps stale child
// pointers; callers relink it before reuse. Recursive.
// Time: O(D)
func unlinkMin[K constraints.Ordered, V any](link **node[K, V]) *node[K, V] {
	cur := *link
	if cur.l == nil {
		*link = cur.r
		return cur
	}
	m := unlinkMin(&cur.l)
	cur.fix()
	return m
}

// unlinkMax is the mirror of unlinkMin.
func unlinkMax[K constraints.Ordered, V any](link **node[K, V]) *node[K, V] {
	cur := *link
	if cur.r == nil {
		*link = cur.l
		return cur
	}
	m := unlinkMax(&cur.r)
	cur.fix()
	return m
}
