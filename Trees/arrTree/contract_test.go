package arrTree_test

import (
	"math/rand"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/g-m-twostay/go-bst/Trees/arrTree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Trees.Map[int, string] = (*arrTree.ArenaTree[int, string])(nil)

// checkContract drives both representations with the same puts through
// their shared read side.
func checkContract(t *testing.T, m Trees.Map[int, string], put func(int, string)) {
	t.Helper()
	assert.True(t, m.IsEmpty())
	for i, k := range []int{12, 15, 5, 8, 1} {
		put(k, string(rune('A'+i)))
	}
	for k, want := range map[int]string{12: "A", 15: "B", 5: "C", 8: "D", 1: "E"} {
		v, ok := m.Get(k)
		assert.True(t, ok, "key %d", k)
		assert.Equal(t, want, v, "key %d", k)
	}
	_, ok := m.Get(100)
	assert.False(t, ok)
	assert.False(t, m.Contains(100))

	rg := rand.New(rand.NewSource(1))
	content := map[int]string{12: "A", 15: "B", 5: "C", 8: "D", 1: "E"}
	for range 1000 {
		k := rg.Intn(2000)
		put(k, "r")
		put(k, "s")
		content[k] = "s"
	}
	require.NoError(t, m.Check())
	keys := m.Keys()
	assert.Len(t, keys, len(content))
	for i := 1; i < len(keys); i++ {
		require.Less(t, keys[i-1], keys[i])
	}
	for k, want := range content {
		v, ok := m.Get(k)
		require.True(t, ok)
		require.Equal(t, want, v)
	}
}

func TestContract_PointerTree(t *testing.T) {
	tree := Trees.New[int, string]()
	checkContract(t, tree, tree.Put)
	assert.Equal(t, len(tree.Keys()), tree.Size())
}

func TestContract_ArenaTree(t *testing.T) {
	tree := arrTree.New[int, string](0)
	checkContract(t, tree, func(k int, v string) { tree.Put(k, v) })
	assert.Equal(t, len(tree.Keys()), tree.Len())
}
