package Trees

import "golang.org/x/exp/constraints"

// Map is the read side shared by every ordered map of this module.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, Get on an absent key
// returns (zero V, false); the zero value should not be used.
// Methods implemented recursively are noted, otherwise they are iterative.
type Map[K constraints.Ordered, V any] interface {
	//Get the value stored under k.
	Get(k K) (V, bool)
	//Contains k. Same as the second return value of Get.
	Contains(k K) bool
	//IsEmpty is true iff no key is stored.
	IsEmpty() bool
	//InOrder calls f on every pair in ascending key order until f returns
	//false. The map must not be modified from f.
	InOrder(f func(K, V) bool)
	//Keys in ascending order.
	Keys() []K
	//Check returns an error wrapping ErrCorrupt if a structural invariant
	//of the implementation is broken. This is meant for tests and debugging.
	Check() error
}

// OrderedMap is a Map that can remove keys and answer rank queries.
type OrderedMap[K constraints.Ordered, V any] interface {
	Map[K, V]
	//Put k with v, overwriting the value if k is already present.
	Put(k K, v V)
	//Delete k. Deleting an absent key is a no-op.
	Delete(k K)
	//DeleteMin removes the smallest key.
	DeleteMin() error
	//DeleteMax removes the greatest key.
	DeleteMax() error
	//Min is the smallest key.
	Min() (K, error)
	//Max is the greatest key.
	Max() (K, error)
	//Floor is the greatest key <= k.
	Floor(k K) (K, bool)
	//Ceil is the smallest key >= k.
	Ceil(k K) (K, bool)
	//Select the key of rank k, 0<=k<Size().
	Select(k int) (K, error)
	//Rank is the number of keys less than k.
	Rank(k K) int
	//Size is the number of keys.
	Size() int
}

var _ OrderedMap[int, string] = (*PointerTree[int, string])(nil)
