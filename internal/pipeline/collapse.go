package pipeline

import (
	"strings"

	"github.com/alnah/go-md2conf/internal/directive"
	"github.com/alnah/go-md2conf/internal/dom"
)

// CollapseRegions pairs open and close directive markers and replaces each
// open-to-close span, everything between included, with one opaque node
// holding the serialized body framed by the original directive tokens.
//
// Pairing respects document order and exact, case-sensitive name equality:
// an open named X pairs with the first subsequent close named X at any
// depth. Unmatched opens stay in place as literal text.
func CollapseRegions(root *dom.Node, maxDepth int) (*dom.Node, error) {
	c := collapser{maxDepth: maxDepth}
	children, err := c.level(root.Children, 0)
	if err != nil {
		return nil, err
	}
	root.Children = children
	return root, nil
}

type collapser struct {
	maxDepth int
}

// level resolves regions among nodes, innermost first: each node's own
// children are collapsed before the sibling scan, so a region wholly
// contained in one subtree is already opaque when an outer span captures it.
func (c collapser) level(nodes []*dom.Node, depth int) ([]*dom.Node, error) {
	if depth > c.maxDepth {
		return nil, ErrTooDeeplyNested
	}

	for _, n := range nodes {
		if n.Kind == dom.KindOpaque || len(n.Children) == 0 || n.IsElement(markerTag) {
			continue
		}
		children, err := c.level(n.Children, depth+1)
		if err != nil {
			return nil, err
		}
		n.Children = children
	}

	out := make([]*dom.Node, 0, len(nodes))
	for i := 0; i < len(nodes); {
		n := nodes[i]
		if token, ok := markerToken(n); ok {
			if _, isOpen := directive.OpenName(token); isOpen {
				region, consumed, matched, err := c.region(nodes, i, depth)
				if err != nil {
					return nil, err
				}
				if matched {
					out = append(out, region)
					i += consumed
					continue
				}
				// No close anywhere ahead: the open stays literal.
			}
		}
		out = append(out, n)
		i++
	}
	return out, nil
}

// region collapses the span opened by nodes[start]. It walks forward through
// siblings, resolving nested sibling regions first, and searches each
// ordinary sibling depth-first for the matching close token, which may sit
// arbitrarily deep (e.g. inside a list item). First match wins; there is no
// tie-break between equally named closes at different depths. A differently
// named close never terminates the search and is accumulated as content.
func (c collapser) region(nodes []*dom.Node, start, depth int) (*dom.Node, int, bool, error) {
	if depth > c.maxDepth {
		return nil, 0, false, ErrTooDeeplyNested
	}

	head, _ := markerToken(nodes[start])
	name, _ := directive.OpenName(head)

	var span []*dom.Node
	for j := start + 1; j < len(nodes); {
		n := nodes[j]
		if token, ok := markerToken(n); ok {
			if directive.IsClose(token, name) {
				sealed, err := c.seal(head, name, span)
				return sealed, j - start + 1, true, err
			}
			if _, isOpen := directive.OpenName(token); isOpen {
				inner, consumed, matched, err := c.region(nodes, j, depth+1)
				if err != nil {
					return nil, 0, false, err
				}
				if matched {
					span = append(span, inner)
					j += consumed
					continue
				}
			}
			// Foreign close or unmatched nested open: ordinary content.
			span = append(span, n)
			j++
			continue
		}
		if stripped, found := removeClose(n, name); found {
			span = append(span, stripped)
			sealed, err := c.seal(head, name, span)
			return sealed, j - start + 1, true, err
		}
		span = append(span, n)
		j++
	}
	return nil, 0, false, nil
}

// seal serializes the captured span and wraps it in the original open token
// and a close token, producing the final opaque region node.
func (c collapser) seal(head, name string, span []*dom.Node) (*dom.Node, error) {
	serialized, err := Serialize(dom.Root(span...), c.maxDepth)
	if err != nil {
		return nil, err
	}
	value := head + "\n" + strings.Trim(serialized, "\n") + "\n{{/" + name + "}}"
	return dom.Opaque(value), nil
}

// removeClose searches n depth-first for the close marker of name. On a hit
// it returns a rebuilt copy of n with that marker removed; the rest of the
// subtree, content after the close included, stays in the span.
func removeClose(n *dom.Node, name string) (*dom.Node, bool) {
	if n.Kind == dom.KindText || n.Kind == dom.KindOpaque {
		return n, false
	}
	for i, child := range n.Children {
		if token, ok := markerToken(child); ok && directive.IsClose(token, name) {
			children := make([]*dom.Node, 0, len(n.Children)-1)
			children = append(children, n.Children[:i]...)
			children = append(children, n.Children[i+1:]...)
			rebuilt := *n
			rebuilt.Children = children
			return &rebuilt, true
		}
		if stripped, found := removeClose(child, name); found {
			children := make([]*dom.Node, len(n.Children))
			copy(children, n.Children)
			children[i] = stripped
			rebuilt := *n
			rebuilt.Children = children
			return &rebuilt, true
		}
	}
	return n, false
}
