package blocks

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tag returns the tag name of an element node and "" for every other node.
func Tag(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}

	return n.Data
}

func NewElement(a atom.Atom) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
}

// AppendElement creates a new element and appends it to parent.
func AppendElement(parent *html.Node, a atom.Atom) *html.Node {
	n := NewElement(a)
	parent.AppendChild(n)

	return n
}

// AppendText appends a text node. The text is escaped when rendered.
func AppendText(parent *html.Node, text string) {
	parent.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: text,
	})
}

func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}

	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
