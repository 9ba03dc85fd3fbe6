package Trees

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree2Dot(t *testing.T) {
	tree := exampleTree(t)
	var b strings.Builder
	require.NoError(t, Tree2Dot(tree, &b))
	out := b.String()
	assert.True(t, strings.HasPrefix(out, "strict digraph {"))
	assert.Contains(t, out, `"1" [label="12\n5"];`)
	assert.Contains(t, out, `"1" -> "2";`)
	assert.Contains(t, out, `"1" -> "3";`)
	// 15 is a leaf, 12 and 5 have both children: no nil points at all.
	assert.NotContains(t, out, "shape=point")

	tree.Put(13, "F")
	b.Reset()
	require.NoError(t, Tree2Dot(tree, &b))
	assert.Equal(t, 1, strings.Count(b.String(), "shape=point"))

	b.Reset()
	require.NoError(t, Tree2Dot(New[int, int](), &b))
	assert.Equal(t, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n}\n", b.String())
}
