package Trees

import (
	"github.com/g-m-twostay/go-bst/Queues"
	"github.com/golang-collections/collections/stack"
	"golang.org/x/exp/constraints"
)

// PointerTree is an unbalanced binary search tree mapping unique keys of
// type K to values of type V. Each node owns its two children and caches
// the size of its subtree, so the additional memory cost is size(int)*n.
// The zero value is an empty tree ready to use.
// D below is the depth of the tree: O(log n) on average for random
// insertion orders, O(n) in the worst case.
type PointerTree[K constraints.Ordered, V any] struct {
	root *node[K, V] //nil for the empty tree.
}

// New returns an empty PointerTree.
func New[K constraints.Ordered, V any]() *PointerTree[K, V] {
	return &PointerTree[K, V]{}
}

// Size returns the number of keys.
// Time: O(1); Space: O(1)
func (u *PointerTree[K, V]) Size() int {
	return size(u.root)
}

// IsEmpty [Map.IsEmpty]
func (u *PointerTree[K, V]) IsEmpty() bool {
	return u.root == nil
}

// Get [Map.Get]
// Time: O(D); Space: O(1)
func (u *PointerTree[K, V]) Get(k K) (V, bool) {
	for cur := u.root; cur != nil; {
		if k < cur.key {
			cur = cur.l
		} else if k > cur.key {
			cur = cur.r
		} else {
			return cur.value, true
		}
	}
	return *new(V), false
}

// Contains [Map.Contains]
// Time: O(D); Space: O(1)
func (u *PointerTree[K, V]) Contains(k K) bool {
	_, ok := u.Get(k)
	return ok
}

// put k,v into the subtree *link points to. A missing key becomes a new
// leaf hung on the nil link where the search ended; every node on the way
// back up has its size refreshed.
func (u *PointerTree[K, V]) put(link **node[K, V], k K, v V) {
	cur := *link
	if cur == nil {
		*link = &node[K, V]{key: k, value: v, sz: 1}
		return
	}
	if k < cur.key {
		u.put(&cur.l, k, v)
	} else if k > cur.key {
		u.put(&cur.r, k, v)
	} else {
		cur.value = v
		return
	}
	cur.fix()
}

// Put [OrderedMap.Put]. Recursive.
// Time: O(D)
func (u *PointerTree[K, V]) Put(k K, v V) {
	u.put(&u.root, k, v)
}

// DeleteMin [OrderedMap.DeleteMin]. Returns *EmptyTreeError if u is empty. Recursive.
// Time: O(D)
func (u *PointerTree[K, V]) DeleteMin() error {
	if u.root == nil {
		return &EmptyTreeError{"DeleteMin"}
	}
	m := unlinkMin(&u.root)
	m.r = nil
	return nil
}

// DeleteMax [OrderedMap.DeleteMax]. Returns *EmptyTreeError if u is empty. Recursive.
// Time: O(D)
func (u *PointerTree[K, V]) DeleteMax() error {
	if u.root == nil {
		return &EmptyTreeError{"DeleteMax"}
	}
	m := unlinkMax(&u.root)
	m.l = nil
	return nil
}

// remove k from the subtree *link points to. Returns false if k isn't there.
// A node with two children is replaced by its successor node, which is
// unlinked from the right subtree and takes over both children; keys and
// values never move between nodes.
func (u *PointerTree[K, V]) remove(link **node[K, V], k K) bool {
	cur := *link
	if cur == nil {
		return false
	}
	removed := false
	if k < cur.key {
		removed = u.remove(&cur.l, k)
	} else if k > cur.key {
		removed = u.remove(&cur.r, k)
	} else {
		if cur.l == nil {
			*link = cur.r
		} else if cur.r == nil {
			*link = cur.l
		} else {
			s := unlinkMin(&cur.r)
			s.l, s.r = cur.l, cur.r
			*link = s.fix()
		}
		cur.l, cur.r = nil, nil
		return true
	}
	if removed {
		cur.fix()
	}
	return removed
}

// Delete [OrderedMap.Delete]. Recursive.
// Time: O(D)
func (u *PointerTree[K, V]) Delete(k K) {
	if !u.remove(&u.root, k) {
		tracer().Debugf("bst: delete of absent key %v", k)
	}
}

// Min [OrderedMap.Min]. Returns *EmptyTreeError if u is empty.
// Time: O(D); Space: O(1)
func (u *PointerTree[K, V]) Min() (K, error) {
	cur := u.root
	if cur == nil {
		return *new(K), &EmptyTreeError{"Min"}
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.key, nil
}

// Max [OrderedMap.Max]. Returns *EmptyTreeError if u is empty.
// Time: O(D); Space: O(1)
func (u *PointerTree[K, V]) Max() (K, error) {
	cur := u.root
	if cur == nil {
		return *new(K), &EmptyTreeError{"Max"}
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.key, nil
}

// floor of k in the subtree rooted at cur, nil if every key there is > k.
func floor[K constraints.Ordered, V any](cur *node[K, V], k K) *node[K, V] {
	if cur == nil {
		return nil
	}
	if k == cur.key {
		return cur
	}
	if k < cur.key {
		return floor(cur.l, k)
	}
	if t := floor(cur.r, k); t != nil {
		return t
	}
	return cur
}

// ceil of k in the subtree rooted at cur, nil if every key there is < k.
func ceil[K constraints.Ordered, V any](cur *node[K, V], k K) *node[K, V] {
	if cur == nil {
		return nil
	}
	if k == cur.key {
		return cur
	}
	if k > cur.key {
		return ceil(cur.r, k)
	}
	if t := ceil(cur.l, k); t != nil {
		return t
	}
	return cur
}

// Floor [OrderedMap.Floor]. Recursive.
// Time: O(D)
func (u *PointerTree[K, V]) Floor(k K) (K, bool) {
	if n := floor(u.root, k); n != nil {
		return n.key, true
	}
	return *new(K), false
}

// Ceil [OrderedMap.Ceil]. Recursive.
// Time: O(D)
func (u *PointerTree[K, V]) Ceil(k K) (K, bool) {
	if n := ceil(u.root, k); n != nil {
		return n.key, true
	}
	return *new(K), false
}

// Select [OrderedMap.Select]. Ranks start from 0. Returns
// *InvalidArgumentError unless 0<=k<Size(), which includes every k on an
// empty tree.
// Time: O(D); Space: O(1)
func (u *PointerTree[K, V]) Select(k int) (K, error) {
	if k < 0 || k >= u.Size() {
		return *new(K), &InvalidArgumentError{"Select", k, u.Size()}
	}
	cur := u.root
	for {
		if ls := size(cur.l); k < ls {
			cur = cur.l
		} else if k > ls {
			k -= ls + 1
			cur = cur.r
		} else {
			return cur.key, nil
		}
	}
}

// Rank [OrderedMap.Rank]. For a present k, Select(Rank(k)) yields k.
// Time: O(D); Space: O(1)
func (u *PointerTree[K, V]) Rank(k K) int {
	ra := 0
	for cur := u.root; cur != nil; {
		if k < cur.key {
			cur = cur.l
		} else if k > cur.key {
			ra += size(cur.l) + 1
			cur = cur.r
		} else {
			return ra + size(cur.l)
		}
	}
	return ra
}

// SizeBetween counts the keys in [lo, hi]; 0 if lo>hi.
// Time: O(D)
func (u *PointerTree[K, V]) SizeBetween(lo, hi K) int {
	if lo > hi {
		return 0
	}
	if u.Contains(hi) {
		return u.Rank(hi) - u.Rank(lo) + 1
	}
	return u.Rank(hi) - u.Rank(lo)
}

func (u *PointerTree[K, V]) height(c *node[K, V]) int {
	if c == nil {
		return -1
	}
	return 1 + max(u.height(c.l), u.height(c.r))
}

// Height is the number of edges on the longest path from the root to a
// leaf, -1 for the empty tree. Recursive.
// Time: O(n)
func (u *PointerTree[K, V]) Height() int {
	return u.height(u.root)
}

// InOrder [Map.InOrder]. Uses an explicit stack instead of recursion.
// Time: O(n); Space: O(D)
func (u *PointerTree[K, V]) InOrder(f func(K, V) bool) {
	st := stack.New()
	for cur := u.root; cur != nil || st.Len() > 0; {
		for ; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		n := st.Pop().(*node[K, V])
		if !f(n.key, n.value) {
			return
		}
		cur = n.r
	}
}

// Keys [Map.Keys]
// Time: O(n)
func (u *PointerTree[K, V]) Keys() []K {
	ks := make([]K, 0, u.Size())
	u.InOrder(func(k K, _ V) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

func (u *PointerTree[K, V]) keysBetween(c *node[K, V], lo, hi K, ks []K) []K {
	if c == nil {
		return ks
	}
	if lo < c.key {
		ks = u.keysBetween(c.l, lo, hi, ks)
	}
	if lo <= c.key && c.key <= hi {
		ks = append(ks, c.key)
	}
	if hi > c.key {
		ks = u.keysBetween(c.r, lo, hi, ks)
	}
	return ks
}

// Range returns the keys in [lo, hi] in ascending order. Subtrees outside
// the bounds aren't visited. Recursive.
// Time: O(D+m) for m returned keys.
func (u *PointerTree[K, V]) Range(lo, hi K) []K {
	if lo > hi {
		return nil
	}
	return u.keysBetween(u.root, lo, hi, make([]K, 0, u.SizeBetween(lo, hi)))
}

// levelOrder visits nodes breadth first, left to right, until f returns false.
func (u *PointerTree[K, V]) levelOrder(f func(*node[K, V]) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*node[K, V]](16)
	q.Push(u.root)
	for !q.Empty() {
		n, _ := q.Pop()
		if !f(n) {
			return
		}
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
	}
}

// LevelOrder calls f on every pair breadth first, level by level from the
// root, until f returns false. The tree must not be modified from f.
// Time: O(n); Space: O(width of the tree)
func (u *PointerTree[K, V]) LevelOrder(f func(K, V) bool) {
	u.levelOrder(func(n *node[K, V]) bool {
		return f(n.key, n.value)
	})
}
