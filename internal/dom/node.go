// Package dom defines the document tree the conversion passes operate on:
// a closed tagged union of Root, Element, Text and Opaque nodes built from
// the generic parser's XHTML fragment output.
package dom

import "strings"

// Kind discriminates the closed set of node variants.
type Kind int

const (
	KindRoot Kind = iota
	KindElement
	KindText
	KindOpaque
)

// Node is a tagged union over the four variants. Root and Element own their
// children exclusively; the tree is acyclic and carries no parent references.
// An Opaque node is terminal: its Value is emitted verbatim by the serializer
// and never re-entered by any pass.
type Node struct {
	Kind     Kind
	Tag      string               // Element only
	Attrs    map[string]AttrValue // Element only
	Value    string               // Text and Opaque
	Children []*Node              // Root and Element
}

// Root builds a root node over children.
func Root(children ...*Node) *Node {
	return &Node{Kind: KindRoot, Children: children}
}

// Element builds an element node.
func Element(tag string, attrs map[string]AttrValue, children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: tag, Attrs: attrs, Children: children}
}

// Text builds a text node.
func Text(value string) *Node {
	return &Node{Kind: KindText, Value: value}
}

// Opaque builds a terminal node whose value is emitted verbatim.
func Opaque(value string) *Node {
	return &Node{Kind: KindOpaque, Value: value}
}

// IsElement reports whether n is an element with the given tag.
func (n *Node) IsElement(tag string) bool {
	return n != nil && n.Kind == KindElement && n.Tag == tag
}

// Attr returns the named attribute value.
func (n *Node) Attr(name string) (AttrValue, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// StringAttr returns the named attribute when it carries a string value.
func (n *Node) StringAttr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	if !ok || v.Kind != AttrString {
		return "", false
	}
	return v.Str, true
}

// HasClass reports whether a class-list attribute contains name.
func (n *Node) HasClass(name string) bool {
	v, ok := n.Attrs["class"]
	if !ok {
		return false
	}
	switch v.Kind {
	case AttrList:
		for _, c := range v.List {
			if c == name {
				return true
			}
		}
	case AttrString:
		for _, c := range strings.Fields(v.Str) {
			if c == name {
				return true
			}
		}
	}
	return false
}

// InnerText concatenates the text content of the subtree rooted at n.
// Opaque values are skipped: they are dialect output, not document text.
func (n *Node) InnerText() string {
	var b strings.Builder
	n.appendText(&b)
	return b.String()
}

func (n *Node) appendText(b *strings.Builder) {
	switch n.Kind {
	case KindText:
		b.WriteString(n.Value)
	case KindRoot, KindElement:
		for _, c := range n.Children {
			c.appendText(b)
		}
	}
}

// CopyAttrs returns a shallow copy of the element's attribute map, so a pass
// can rewrite attributes without aliasing the original node.
func (n *Node) CopyAttrs() map[string]AttrValue {
	if n.Attrs == nil {
		return nil
	}
	attrs := make(map[string]AttrValue, len(n.Attrs))
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	return attrs
}
