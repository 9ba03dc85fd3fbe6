package arrTree

import (
	"fmt"

	"github.com/g-m-twostay/go-bst/Queues"
)

// span is an entry together with the entries whose keys bound it from
// below (lo) and above (hi); NONE means unbounded.
type span struct {
	i, lo, hi int
}

// Check returns an error wrapping ErrCorrupt if the arena breaks an
// invariant: the four slices differ in length, a child index is out of
// range or not after its parent (entries are appended after their parent),
// an entry is linked twice or not at all, or a key is out of order with
// respect to its ancestors. Walks breadth first from the root.
// Time: O(n); Space: O(n)
func (u *ArenaTree[K, V]) Check() error {
	if err := u.check(); err != nil {
		tracer().Debugf("arrTree: check failed: %v", err)
		return err
	}
	return nil
}

func (u *ArenaTree[K, V]) check() error {
	n := len(u.keys)
	if len(u.values) != n || len(u.left) != n || len(u.right) != n {
		return fmt.Errorf("%w: slice lengths %d/%d/%d/%d", ErrCorrupt, n, len(u.values), len(u.left), len(u.right))
	}
	if n == 0 {
		return nil
	}
	linked := make([]bool, n)
	linked[0] = true
	visited := 0
	q := Queues.MakeArrayQueue[span](16)
	q.Push(span{0, NONE, NONE})
	for !q.Empty() {
		s, _ := q.Pop()
		visited++
		k := u.keys[s.i]
		if s.lo != NONE && k <= u.keys[s.lo] {
			return fmt.Errorf("%w: key %v at %d in right subtree of %v", ErrCorrupt, k, s.i, u.keys[s.lo])
		}
		if s.hi != NONE && k >= u.keys[s.hi] {
			return fmt.Errorf("%w: key %v at %d in left subtree of %v", ErrCorrupt, k, s.i, u.keys[s.hi])
		}
		for _, c := range [2]span{{u.left[s.i], s.lo, s.i}, {u.right[s.i], s.i, s.hi}} {
			if c.i == NONE {
				continue
			}
			if c.i <= s.i || c.i >= n {
				return fmt.Errorf("%w: entry %d links child %d", ErrCorrupt, s.i, c.i)
			}
			if linked[c.i] {
				return fmt.Errorf("%w: entry %d linked twice", ErrCorrupt, c.i)
			}
			linked[c.i] = true
			q.Push(c)
		}
	}
	if visited != n {
		return fmt.Errorf("%w: %d of %d entries unreachable from the root", ErrCorrupt, n-visited, n)
	}
	return nil
}
