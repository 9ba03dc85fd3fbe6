/*
Package arrTree implements an ordered key-value map on an unbalanced binary
search tree laid out in an arena: four parallel slices holding the keys, the
values and the left and right child indices of every entry.

The arena is append-only. Entries are never moved or removed, so an index
stays valid for the life of the tree and the whole structure can be copied
or serialised as plain slices (see MarshalBinary). The price is that memory
is never reclaimed and there is no Delete.

An ArenaTree must not be used from more than one goroutine at a time.
*/
package arrTree

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// ErrCorrupt signals an arena that breaks a structural invariant.
var ErrCorrupt = errors.New("arrTree: corrupt arena")

// tracer writes to trace with key 'bst'
func tracer() tracing.Trace {
	return tracing.Select("bst")
}
