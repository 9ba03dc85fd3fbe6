package arrTree

import (
	"golang.org/x/exp/constraints"
)

// ArenaTree is an unbalanced binary search tree mapping unique keys of type
// K to values of type V, stored in an append-only arena. Children are
// indices into the arena instead of pointers, so the whole tree is four flat
// slices. There is no deletion; the arena never shrinks.
// D below is the depth of the tree.
type ArenaTree[K constraints.Ordered, V any] struct {
	base[K, V]
}

// New returns an empty ArenaTree whose arena has room for hint entries
// before it grows.
func New[K constraints.Ordered, V any](hint int) *ArenaTree[K, V] {
	return &ArenaTree[K, V]{makeBase[K, V](hint)}
}

// Put k with v. Returns true if a new entry was appended, false if k was
// present and only its value was overwritten. A new entry always lands at
// index Len()-1 and is linked from the NONE slot where the search ended.
// Time: O(D); Space: amortized O(1)
func (u *ArenaTree[K, V]) Put(k K, v V) bool {
	if len(u.keys) == 0 {
		u.appendNode(k, v)
		return true
	}
	for curI := 0; ; {
		if k < u.keys[curI] {
			if next := u.left[curI]; next != NONE {
				curI = next
			} else {
				i := u.appendNode(k, v) //may move u.left
				u.left[curI] = i
				return true
			}
		} else if k > u.keys[curI] {
			if next := u.right[curI]; next != NONE {
				curI = next
			} else {
				i := u.appendNode(k, v)
				u.right[curI] = i
				return true
			}
		} else {
			u.values[curI] = v
			return false
		}
	}
}

// index of k in the arena, NONE if absent.
func (u *ArenaTree[K, V]) index(k K) int {
	if len(u.keys) == 0 {
		return NONE
	}
	curI := 0
	for curI != NONE {
		if k < u.keys[curI] {
			curI = u.left[curI]
		} else if k > u.keys[curI] {
			curI = u.right[curI]
		} else {
			break
		}
	}
	return curI
}

// Get the value stored under k.
// Time: O(D); Space: O(1)
func (u *ArenaTree[K, V]) Get(k K) (V, bool) {
	if i := u.index(k); i != NONE {
		return u.values[i], true
	}
	return *new(V), false
}

// Contains k.
// Time: O(D); Space: O(1)
func (u *ArenaTree[K, V]) Contains(k K) bool {
	return u.index(k) != NONE
}

// IsEmpty is true iff the arena has no entry.
func (u *ArenaTree[K, V]) IsEmpty() bool {
	return len(u.keys) == 0
}

// InOrder calls f on every pair in ascending key order until f returns
// false. The tree must not be modified from f. Recursive.
// Time: O(n)
func (u *ArenaTree[K, V]) InOrder(f func(K, V) bool) {
	if len(u.keys) == 0 {
		return
	}
	u.inOrder(0, func(i int) bool {
		return f(u.keys[i], u.values[i])
	})
}

// Keys in ascending order.
// Time: O(n)
func (u *ArenaTree[K, V]) Keys() []K {
	ks := make([]K, 0, len(u.keys))
	u.InOrder(func(k K, _ V) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}
