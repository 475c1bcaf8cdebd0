package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-md2conf/internal/dom"
)

// backrefGlyph labels back-reference links from a footnote body to its
// reference site.
const backrefGlyph = "↩"

// Footnote anchor conventions. The generic parser emits colon-separated ids
// under the configured prefix; NormalizeFootnoteAnchors rewrites them to the
// dash form these patterns expect.
var (
	colonAnchor   = regexp.MustCompile(`^(#?user-content-fn(?:ref)?)[:](.+)$`)
	definitionID  = regexp.MustCompile(`^user-content-fn-([A-Za-z0-9_-]+)$`)
	referenceHref = regexp.MustCompile(`^#user-content-fn-([A-Za-z0-9_-]+)$`)
	backrefHref   = regexp.MustCompile(`^#user-content-fnref-([A-Za-z0-9_-]+)$`)
)

// NormalizeFootnoteAnchors rewrites the parser's colon-form footnote ids and
// hrefs (user-content-fn:1) into the dash convention (user-content-fn-1) so
// the resolver matches a single form.
func NormalizeFootnoteAnchors(n *dom.Node) {
	if n.Kind == dom.KindElement {
		for _, name := range []string{"id", "href"} {
			if v, ok := n.StringAttr(name); ok {
				if m := colonAnchor.FindStringSubmatch(v); m != nil {
					n.Attrs[name] = dom.String(m[1] + "-" + m[2])
				}
			}
		}
	}
	for _, c := range n.Children {
		NormalizeFootnoteAnchors(c)
	}
}

// ResolveFootnotes rewrites footnote reference/definition pairs into anchor
// and cross-reference macros with back-links. Only ids carrying both a
// definition and at least one reference are rewritten; anything unresolvable
// is passed through untouched.
func ResolveFootnotes(root *dom.Node) *dom.Node {
	ids := resolvableIDs(root)
	if len(ids) == 0 {
		return root
	}
	rewriteFootnotes(root, ids, false)
	return root
}

// resolvableIDs intersects definition ids with referenced ids.
func resolvableIDs(root *dom.Node) map[string]bool {
	defs := make(map[string]bool)
	refs := make(map[string]bool)
	collectFootnoteIDs(root, false, defs, refs)

	ids := make(map[string]bool)
	for id := range defs {
		if refs[id] {
			ids[id] = true
		}
	}
	return ids
}

func collectFootnoteIDs(n *dom.Node, inDefinitions bool, defs, refs map[string]bool) {
	if n.Kind == dom.KindElement {
		if isDefinitionContainer(n) {
			inDefinitions = true
		}
		if inDefinitions && n.Tag == "li" {
			if id, ok := n.StringAttr("id"); ok {
				if m := definitionID.FindStringSubmatch(id); m != nil {
					defs[m[1]] = true
				}
			}
		}
		if !inDefinitions && n.Tag == "a" {
			if href, ok := n.StringAttr("href"); ok {
				if m := referenceHref.FindStringSubmatch(href); m != nil {
					refs[m[1]] = true
				}
			}
		}
	}
	for _, c := range n.Children {
		collectFootnoteIDs(c, inDefinitions, defs, refs)
	}
}

// isDefinitionContainer detects the footnote definition block by its
// reserved class.
func isDefinitionContainer(n *dom.Node) bool {
	return n.Kind == dom.KindElement && n.HasClass("footnotes")
}

// rewriteFootnotes rebuilds children lists, replacing reference links with
// anchor + cross-reference macro pairs and, inside the definitions
// container, prepending item anchors and rewriting back-reference links.
func rewriteFootnotes(n *dom.Node, ids map[string]bool, inDefinitions bool) {
	if n.Kind != dom.KindRoot && n.Kind != dom.KindElement {
		return
	}
	if isDefinitionContainer(n) {
		inDefinitions = true
	}
	if inDefinitions && n.IsElement("li") {
		if id, ok := n.StringAttr("id"); ok {
			if m := definitionID.FindStringSubmatch(id); m != nil && ids[m[1]] {
				anchor := dom.Opaque(anchorMacro("footnote-" + m[1]))
				n.Children = append([]*dom.Node{anchor}, n.Children...)
			}
		}
	}

	children := make([]*dom.Node, 0, len(n.Children))
	for _, c := range n.Children {
		if replacement, ok := rewriteLink(c, ids, inDefinitions); ok {
			children = append(children, replacement...)
			continue
		}
		rewriteFootnotes(c, ids, inDefinitions)
		children = append(children, c)
	}
	n.Children = children
}

// rewriteLink maps a single footnote-convention link onto its macro
// replacement nodes. Links with unknown ids are left alone.
func rewriteLink(n *dom.Node, ids map[string]bool, inDefinitions bool) ([]*dom.Node, bool) {
	if !n.IsElement("a") {
		return nil, false
	}
	href, ok := n.StringAttr("href")
	if !ok {
		return nil, false
	}

	if inDefinitions {
		// Back-reference from a footnote body to its reference site.
		if m := backrefHref.FindStringSubmatch(href); m != nil && ids[m[1]] {
			return []*dom.Node{
				dom.Opaque(anchorLink("footnote-ref-"+m[1], backrefGlyph)),
			}, true
		}
		return nil, false
	}

	// In-text reference: anchor at the reference site, then a
	// cross-reference to the definition labeled with the link text.
	if m := referenceHref.FindStringSubmatch(href); m != nil && ids[m[1]] {
		label := strings.TrimSpace(n.InnerText())
		return []*dom.Node{
			dom.Opaque(anchorMacro("footnote-ref-" + m[1])),
			dom.Opaque(anchorLink("footnote-"+m[1], label)),
		}, true
	}
	return nil, false
}
