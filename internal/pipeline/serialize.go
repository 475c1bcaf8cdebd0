package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2conf/internal/dom"
)

// Blank-line patterns.
var (
	// textBlankRun collapses blank-line runs inside one text node.
	textBlankRun = regexp.MustCompile(`\n{2,}`)

	// multipleBlankLines limits consecutive blank lines in the final output
	// to one (two newlines).
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// Serialize linearizes a tree into the storage dialect, depth-first. Opaque
// nodes and directive markers emit their stored text verbatim; text nodes are
// escaped; elements follow the per-tag dialect rules.
func Serialize(n *dom.Node, maxDepth int) (string, error) {
	s := serializer{maxDepth: maxDepth}
	var b strings.Builder
	if err := s.node(&b, n, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

// NormalizeBlankLines collapses three or more consecutive newlines to exactly
// two. Idempotent: applying it twice equals applying it once.
func NormalizeBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

type serializer struct {
	maxDepth int
}

func (s serializer) node(b *strings.Builder, n *dom.Node, depth int) error {
	if depth > s.maxDepth {
		return ErrTooDeeplyNested
	}
	switch n.Kind {
	case dom.KindOpaque:
		b.WriteString(n.Value)
	case dom.KindText:
		b.WriteString(html.EscapeString(textBlankRun.ReplaceAllString(n.Value, "\n")))
	case dom.KindRoot:
		return s.children(b, n, depth)
	case dom.KindElement:
		return s.element(b, n, depth)
	}
	return nil
}

func (s serializer) children(b *strings.Builder, n *dom.Node, depth int) error {
	for _, c := range n.Children {
		if err := s.node(b, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (s serializer) element(b *strings.Builder, n *dom.Node, depth int) error {
	switch n.Tag {
	case markerTag:
		// An unpaired directive token: literal text, never escaped.
		if token, ok := markerToken(n); ok {
			b.WriteString(token)
		}
		return nil
	case "img":
		s.image(b, n)
		return nil
	case "pre":
		if code, ok := soleCodeChild(n); ok {
			b.WriteString(codeMacro(canonicalLanguage(languageToken(code)), code.InnerText()))
			return nil
		}
	case "th", "td":
		return s.emit(b, n.Tag, convertCellAlignment(n), n, depth)
	}
	return s.emit(b, n.Tag, n.Attrs, n, depth)
}

// image renders an inline image directive carrying the cleaned source and
// the alt text.
func (s serializer) image(b *strings.Builder, n *dom.Node) {
	b.WriteString(`<ac:image`)
	if alt, ok := n.StringAttr("alt"); ok && alt != "" {
		b.WriteString(` ac:alt="`)
		b.WriteString(html.EscapeString(alt))
		b.WriteString(`"`)
	}
	b.WriteString(`>`)
	if src, ok := n.StringAttr("src"); ok {
		b.WriteString(`<ri:url ri:value="`)
		b.WriteString(html.EscapeString(cleanImageSrc(src)))
		b.WriteString(`" />`)
	}
	b.WriteString(`</ac:image>`)
}

// emit writes a standard open/children/close triple; void tags self-close.
func (s serializer) emit(b *strings.Builder, tag string, attrs map[string]dom.AttrValue, n *dom.Node, depth int) error {
	b.WriteByte('<')
	b.WriteString(tag)
	writeAttrs(b, attrs)
	if voidTags[tag] {
		b.WriteString(" />")
		return nil
	}
	b.WriteByte('>')
	if err := s.children(b, n, depth); err != nil {
		return err
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return nil
}

func writeAttrs(b *strings.Builder, attrs map[string]dom.AttrValue) {
	for _, name := range sortedAttrNames(attrs) {
		switch v := attrs[name]; v.Kind {
		case dom.AttrBool:
			b.WriteByte(' ')
			b.WriteString(name)
		case dom.AttrString:
			writeAttr(b, name, v.Str)
		case dom.AttrList:
			writeAttr(b, name, strings.Join(v.List, " "))
		default:
			// Malformed value: omit rather than emit garbage.
		}
	}
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}
