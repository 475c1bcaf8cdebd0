package pipeline

import (
	"strings"

	"golang.org/x/net/html"
)

// Storage-dialect builders for Confluence structured macros. Every returned
// string is final dialect output and is wrapped in an Opaque node or written
// straight to the serializer, never re-escaped.

// macroParam is one <ac:parameter> of a structured macro. Anchors use an
// empty name.
type macroParam struct {
	name  string
	value string
}

// structuredMacro renders an <ac:structured-macro> element. body is already
// rendered dialect output; plainBody selects a CDATA plain-text body over a
// rich-text one. An empty body emits a bodiless macro.
func structuredMacro(name string, params []macroParam, body string, plainBody bool) string {
	var b strings.Builder
	b.WriteString(`<ac:structured-macro ac:name="`)
	b.WriteString(html.EscapeString(name))
	b.WriteString(`">`)
	for _, p := range params {
		b.WriteString(`<ac:parameter ac:name="`)
		b.WriteString(html.EscapeString(p.name))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(p.value))
		b.WriteString(`</ac:parameter>`)
	}
	switch {
	case body == "":
	case plainBody:
		b.WriteString(`<ac:plain-text-body>`)
		b.WriteString(cdata(body))
		b.WriteString(`</ac:plain-text-body>`)
	default:
		b.WriteString(`<ac:rich-text-body>`)
		b.WriteString(body)
		b.WriteString(`</ac:rich-text-body>`)
	}
	b.WriteString(`</ac:structured-macro>`)
	return b.String()
}

// expandMacro renders a collapsible section.
func expandMacro(title, body string) string {
	return structuredMacro("expand", []macroParam{{name: "title", value: title}}, body, false)
}

// codeMacro renders a code block with line numbering enabled.
func codeMacro(language, body string) string {
	params := []macroParam{
		{name: "language", value: language},
		{name: "linenumbers", value: "true"},
	}
	return structuredMacro("code", params, body, true)
}

// anchorMacro renders a named anchor.
func anchorMacro(name string) string {
	return structuredMacro("anchor", []macroParam{{name: "", value: name}}, "", false)
}

// anchorLink renders a cross-reference to a named anchor with a plain-text
// label.
func anchorLink(anchor, label string) string {
	var b strings.Builder
	b.WriteString(`<ac:link ac:anchor="`)
	b.WriteString(html.EscapeString(anchor))
	b.WriteString(`"><ac:plain-text-link-body>`)
	b.WriteString(cdata(label))
	b.WriteString(`</ac:plain-text-link-body></ac:link>`)
	return b.String()
}

// cdata wraps text in a CDATA section, splitting any embedded "]]>"
// terminator so the section cannot end early.
func cdata(text string) string {
	return "<![CDATA[" + strings.ReplaceAll(text, "]]>", "]]]]><![CDATA[>") + "]]>"
}
