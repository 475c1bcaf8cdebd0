package pipeline

import (
	"strings"

	"github.com/alnah/go-md2conf/internal/directive"
	"github.com/alnah/go-md2conf/internal/dom"
)

// markerTag is the reserved element name for isolated directive tokens.
// The generic parser never produces it, so markers are unambiguous.
const markerTag = "x-directive-marker"

// newMarker wraps an isolated directive token in a block-level marker node.
func newMarker(token string) *dom.Node {
	return dom.Element(markerTag, nil, dom.Text(token))
}

// markerToken returns the directive token carried by a marker node.
func markerToken(n *dom.Node) (string, bool) {
	if !n.IsElement(markerTag) {
		return "", false
	}
	return n.InnerText(), true
}

// IsolateDirectives forces any paragraph whose sole content is one block
// directive token to become a block-level marker node, so list and paragraph
// containers cannot absorb directive boundaries. Tokens always land on
// sibling boundaries at the block level, never mid-paragraph.
func IsolateDirectives(n *dom.Node) *dom.Node {
	if n.IsElement("p") {
		if token, ok := soleDirectiveText(n); ok {
			return newMarker(token)
		}
	}
	if len(n.Children) > 0 {
		children := make([]*dom.Node, 0, len(n.Children))
		for _, c := range n.Children {
			children = append(children, IsolateDirectives(c))
		}
		n.Children = children
	}
	return n
}

// soleDirectiveText returns the trimmed directive token when the paragraph
// holds exactly one text child and nothing else.
func soleDirectiveText(p *dom.Node) (string, bool) {
	if len(p.Children) != 1 || p.Children[0].Kind != dom.KindText {
		return "", false
	}
	token := strings.TrimSpace(p.Children[0].Value)
	if !directive.IsBlockToken(token) {
		return "", false
	}
	return token, true
}

// ProtectDirectives replaces directive substrings in every text node with
// vault placeholders, shielding them from escaping. Marker nodes are left
// alone so the collapser can still pair them by name.
func ProtectDirectives(n *dom.Node, vault *directive.Vault) {
	if n.IsElement(markerTag) {
		return
	}
	if n.Kind == dom.KindText {
		if directive.ContainsToken(n.Value) {
			n.Value = vault.Protect(n.Value)
		}
		return
	}
	for _, c := range n.Children {
		ProtectDirectives(c, vault)
	}
}
