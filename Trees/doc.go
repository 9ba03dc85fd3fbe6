/*
Package Trees implements an ordered key-value map on an unbalanced binary
search tree whose nodes own their children through pointers.

Every node caches the size of its subtree, which gives the order statistics
(Select, Rank, SizeBetween) in O(D), D being the depth of the tree. No
rebalancing is done, so D is O(log n) on random input and O(n) on sorted
input.

A PointerTree must not be used from more than one goroutine at a time.

The sibling package arrTree holds the same map laid out in parallel arrays.
*/
package Trees

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'bst'
func tracer() tracing.Trace {
	return tracing.Select("bst")
}
