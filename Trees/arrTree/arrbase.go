package arrTree

import (
	"golang.org/x/exp/constraints"
)

// NONE is the child index of a missing child.
const NONE = -1

// base is the arena: entry i is (keys[i], values[i]) with children left[i]
// and right[i], both NONE or an index into the same slices. Entry 0 is the
// root iff the arena is non-empty. The four slices always have the same
// length and only ever grow.
type base[K constraints.Ordered, V any] struct {
	keys   []K
	values []V
	left   []int
	right  []int
}

func makeBase[K constraints.Ordered, V any](hint int) base[K, V] {
	return base[K, V]{make([]K, 0, hint), make([]V, 0, hint), make([]int, 0, hint), make([]int, 0, hint)}
}

// appendNode adds a childless entry at the tail and returns its index.
func (u *base[K, V]) appendNode(k K, v V) int {
	u.keys = append(u.keys, k)
	u.values = append(u.values, v)
	u.left = append(u.left, NONE)
	u.right = append(u.right, NONE)
	return len(u.keys) - 1
}

// Len returns the number of entries in the arena.
func (u *base[K, V]) Len() int {
	return len(u.keys)
}

// inOrder visits the subtree rooted at curI in ascending key order. Returns
// false once f did. Recursive.
func (u *base[K, V]) inOrder(curI int, f func(int) bool) bool {
	if curI == NONE {
		return true
	}
	return u.inOrder(u.left[curI], f) && f(curI) && u.inOrder(u.right[curI], f)
}
