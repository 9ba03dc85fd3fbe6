package Trees

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Tree2Dot outputs the internal structure of a PointerTree in Graphviz DOT
// format (for debugging purposes). Each node is labelled with its key and
// cached subtree size; missing children are drawn as small points so left
// and right stay distinguishable.
func Tree2Dot[K constraints.Ordered, V any](t *PointerTree[K, V], w io.Writer) error {
	ids := make(map[*node[K, V]]int)
	alloc := func(n *node[K, V]) int {
		if id, ok := ids[n]; ok {
			return id
		}
		ids[n] = len(ids) + 1
		return len(ids)
	}
	var nodelist, edgelist strings.Builder
	nilid := 0
	edge := func(from int, to *node[K, V]) {
		if to == nil {
			nilid--
			fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"\",shape=point];\n", nilid)
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", from, nilid)
		} else {
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", from, alloc(to))
		}
	}
	t.levelOrder(func(n *node[K, V]) bool {
		id := alloc(n)
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%v\\n%d\"];\n", id, n.key, n.sz)
		if n.l != nil || n.r != nil {
			edge(id, n.l)
			edge(id, n.r)
		}
		return true
	})
	_, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+edgelist.String()+"}\n")
	return err
}
