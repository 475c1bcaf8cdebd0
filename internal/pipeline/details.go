package pipeline

import (
	"strings"

	"github.com/alnah/go-md2conf/internal/dom"
)

// DefaultSectionTitle labels a collapsible section without a summary.
const DefaultSectionTitle = "Details"

// ResolveCollapsibles rewrites details/summary elements into expand-macro
// opaque nodes. Children are rewritten before their parent, so the deepest
// sections are already opaque when an ancestor's body is serialized.
func ResolveCollapsibles(n *dom.Node, maxDepth int) (*dom.Node, error) {
	if len(n.Children) > 0 {
		children := make([]*dom.Node, 0, len(n.Children))
		for _, c := range n.Children {
			resolved, err := ResolveCollapsibles(c, maxDepth)
			if err != nil {
				return nil, err
			}
			children = append(children, resolved)
		}
		n.Children = children
	}
	if n.IsElement("details") {
		return collapseSection(n, maxDepth)
	}
	return n, nil
}

func collapseSection(details *dom.Node, maxDepth int) (*dom.Node, error) {
	title := DefaultSectionTitle
	titled := false
	var body []*dom.Node
	for _, c := range details.Children {
		if c.IsElement("summary") {
			if !titled {
				if t := strings.TrimSpace(c.InnerText()); t != "" {
					title = t
				}
				titled = true
			}
			continue
		}
		body = append(body, c)
	}

	serialized, err := Serialize(dom.Root(body...), maxDepth)
	if err != nil {
		return nil, err
	}
	return dom.Opaque(expandMacro(title, strings.Trim(serialized, "\n"))), nil
}
