package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers/list"
)

// ListDot outputs the ring of l in Graphviz DOT format. Nodes are named by
// their arena slot; the sentinel is drawn as an empty circle. Solid edges
// follow successor links, dashed edges predecessor links.
func ListDot[T any](w io.Writer, l *list.List[T]) error {
	var nodelist, edgelist strings.Builder
	end := l.End()
	fmt.Fprintf(&nodelist, "\"%d\" %s;\n", end.Index(), sentinelNode)
	e := end
	for {
		next := e.Next()
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", e.Index(), next.Index())
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [style=dashed];\n", next.Index(), e.Index())
		if next.Equal(end) {
			break
		}
		label := fmt.Sprintf("%v", next.Get())
		fmt.Fprintf(&nodelist, "\"%d\" [label=%q %s];\n", next.Index(), label, elemStyles)
		e = next
	}
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "list DOT")
}

const sentinelNode = "[label=\"\",style=filled,color=black,shape=circle,fixedsize=true,width=.4]"

const elemStyles = ",style=filled,fillcolor=\"#a3d7e4\",shape=box"
