package pipeline

import (
	"bytes"
	"context"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// FootnoteIDPrefix namespaces goldmark's generated footnote ids so they
// follow the user-content anchor convention the footnote resolver expects.
const FootnoteIDPrefix = "user-content-"

// MarkdownRenderer is the generic tree-builder collaborator: it turns
// markdown into an XHTML fragment with tables, footnotes and raw-HTML
// passthrough enabled.
type MarkdownRenderer struct {
	md goldmark.Markdown
}

// NewMarkdownRenderer creates a renderer with GFM extensions.
func NewMarkdownRenderer() *MarkdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			// GFM unbundled so the table extension can be pinned to align
			// attributes, which the cell-alignment rules consume.
			extension.NewTable(
				extension.WithTableCellAlignMethod(extension.TableCellAlignAttribute),
			),
			extension.Strikethrough,
			extension.Linkify,
			extension.TaskList,
			extension.NewFootnote(
				extension.WithFootnoteIDPrefix([]byte(FootnoteIDPrefix)),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),  // Self-closing tags
			html.WithUnsafe(), // Raw HTML fragments pass through to the dialect rules
		),
	)
	return &MarkdownRenderer{md: md}
}

// Render converts markdown content to an XHTML fragment. Goldmark has no
// native context support, so cancellation uses a goroutine + select.
func (r *MarkdownRenderer) Render(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		fragment string
		err      error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: err}
			return
		}
		done <- result{fragment: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.fragment, res.err
	}
}
