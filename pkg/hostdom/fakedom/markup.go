package fakedom

import (
	"fmt"
	"sort"
	"strings"
)

// Markup serializes a Node subtree to an HTML-like string for test
// assertions, e.g. "<ul><li>Item 1</li><li>Item 2</li></ul>". Attributes
// are emitted in sorted key order for deterministic output.
func Markup(n *Node) string {
	var b strings.Builder
	writeMarkup(&b, n)
	return b.String()
}

func writeMarkup(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindText:
		b.WriteString(n.Text)
	case KindDocument:
		for _, c := range n.Children {
			writeMarkup(b, c)
		}
	case KindElement:
		b.WriteString("<")
		b.WriteString(n.Tag)
		for _, k := range sortedKeys(n.Attrs) {
			fmt.Fprintf(b, " %s=%q", k, n.Attrs[k])
		}
		b.WriteString(">")
		for _, c := range n.Children {
			writeMarkup(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteString(">")
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
