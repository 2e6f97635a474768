package dump

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers/vector"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes the slots of v as an HTML table. Live slots have class "live",
// spare slots class "spare".
func HTML[T any](w io.Writer, v *vector.Vector[T]) error {
	table := element(atom.Table, "class", "vector")
	caption := element(atom.Caption)
	caption.AppendChild(text(fmt.Sprintf("len=%d cap=%d", v.Len(), v.Cap())))
	table.AppendChild(caption)
	tr := element(atom.Tr)
	for _, x := range v.All() {
		td := element(atom.Td, "class", "live")
		td.AppendChild(text(fmt.Sprint(x)))
		tr.AppendChild(td)
	}
	for i := v.Len(); i < v.Cap(); i++ {
		td := element(atom.Td, "class", "spare")
		td.AppendChild(text(spareMark))
		tr.AppendChild(td)
	}
	table.AppendChild(tr)
	return errors.Wrap(html.Render(w, table), "dump HTML")
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
