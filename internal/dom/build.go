package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// booleanAttrs are HTML attributes that are meaningful by presence alone;
// the parser reports them with an empty value.
var booleanAttrs = map[string]bool{
	"checked":  true,
	"disabled": true,
	"hidden":   true,
	"open":     true,
	"readonly": true,
	"required": true,
	"selected": true,
}

// FromHTML parses an XHTML fragment into a fresh Node tree rooted at a
// KindRoot node. Comments and doctypes are dropped; everything else maps
// onto the closed union.
func FromHTML(fragment string) (*Node, error) {
	// Parse with body context so the fragment is not wrapped in html/head.
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, err
	}

	root := Root()
	for _, n := range nodes {
		if child := fromHTMLNode(n); child != nil {
			root.Children = append(root.Children, child)
		}
	}
	return root, nil
}

func fromHTMLNode(n *html.Node) *Node {
	switch n.Type {
	case html.TextNode:
		return Text(n.Data)
	case html.ElementNode:
		el := Element(n.Data, attrsFrom(n))
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := fromHTMLNode(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	default:
		// Comments, doctypes and raw nodes carry nothing the dialect needs.
		return nil
	}
}

func attrsFrom(n *html.Node) map[string]AttrValue {
	if len(n.Attr) == 0 {
		return nil
	}
	attrs := make(map[string]AttrValue, len(n.Attr))
	for _, a := range n.Attr {
		switch {
		case a.Key == "class":
			attrs[a.Key] = List(strings.Fields(a.Val)...)
		case a.Val == "" && booleanAttrs[a.Key]:
			attrs[a.Key] = Flag()
		default:
			attrs[a.Key] = String(a.Val)
		}
	}
	return attrs
}
