package arrTree

import (
	"testing"

	"github.com/golang/snappy"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestArenaTree_SnapshotRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()

	tree := New[int, int](0)
	for i := range 2000 {
		tree.Put(_R.Intn(5000), i)
	}
	data, err := tree.MarshalBinary()
	require.NoError(t, err)

	restored := New[int, int](0)
	require.NoError(t, restored.UnmarshalBinary(data))
	assert.Equal(t, tree.keys, restored.keys)
	assert.Equal(t, tree.values, restored.values)
	assert.Equal(t, tree.left, restored.left)
	assert.Equal(t, tree.right, restored.right)

	// the restored arena keeps growing from where the original stopped
	k := 5001
	assert.True(t, restored.Put(k, -1))
	assert.Equal(t, tree.Len(), restored.Len()-1)
	v, ok := restored.Get(k)
	assert.True(t, ok)
	assert.Equal(t, -1, v)
}

func TestArenaTree_SnapshotStrings(t *testing.T) {
	tree := New[string, []byte](3)
	tree.Put("m", []byte("mid"))
	tree.Put("a", nil)
	tree.Put("z", []byte{0, 1})
	data, err := tree.MarshalBinary()
	require.NoError(t, err)

	var restored ArenaTree[string, []byte]
	require.NoError(t, restored.UnmarshalBinary(data))
	assert.Equal(t, []string{"a", "m", "z"}, restored.Keys())
	v, ok := restored.Get("m")
	require.True(t, ok)
	assert.Equal(t, []byte("mid"), v)
}

func TestArenaTree_SnapshotEmpty(t *testing.T) {
	data, err := New[int, int](0).MarshalBinary()
	require.NoError(t, err)
	restored := exampleTree(t)
	require.NoError(t, restored.UnmarshalBinary(data))
	assert.True(t, restored.IsEmpty())
	assert.NoError(t, restored.Check())
}

func TestArenaTree_SnapshotRejectsCorrupt(t *testing.T) {
	target := exampleTree(t)
	keep := append([]int(nil), target.keys...)

	err := target.UnmarshalBinary([]byte("definitely not snappy"))
	assert.ErrorIs(t, err, ErrCorrupt)

	// well-formed encoding of an arena whose root links itself
	b, err := msgpack.Marshal([]any{[]int{1}, []string{"x"}, []int{0}, []int{NONE}})
	require.NoError(t, err)
	err = target.UnmarshalBinary(snappy.Encode(nil, b))
	assert.ErrorIs(t, err, ErrCorrupt)

	b, err = msgpack.Marshal([]any{[]int{1}, []string{"x"}})
	require.NoError(t, err)
	err = target.UnmarshalBinary(snappy.Encode(nil, b))
	assert.ErrorIs(t, err, ErrCorrupt)

	b, err = msgpack.Marshal("a string, not an arena")
	require.NoError(t, err)
	err = target.UnmarshalBinary(snappy.Encode(nil, b))
	assert.ErrorIs(t, err, ErrCorrupt)

	assert.Equal(t, keep, target.keys)
	assert.NoError(t, target.Check())
}
