package md2conf

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2conf/internal/directive"
	"github.com/alnah/go-md2conf/internal/dom"
	"github.com/alnah/go-md2conf/internal/pipeline"
)

// serviceConfig holds tunable Service behavior.
type serviceConfig struct {
	maxNestingDepth int
}

// Option customizes a Service.
type Option func(*Service)

// WithMaxNestingDepth bounds how deep directive regions and elements may
// nest before the transform fails with ErrTooDeeplyNested. Values below
// MinNestingDepth are clamped.
func WithMaxNestingDepth(n int) Option {
	return func(s *Service) {
		if n < MinNestingDepth {
			n = MinNestingDepth
		}
		s.cfg.maxNestingDepth = n
	}
}

// Service orchestrates the markdown-to-storage-dialect pipeline. A Service
// is safe for sequential reuse and for concurrent use from multiple
// goroutines: all per-document state (tree, placeholder vault, token
// counter) is allocated inside Convert.
type Service struct {
	cfg      serviceConfig
	renderer *pipeline.MarkdownRenderer
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:      serviceConfig{maxNestingDepth: DefaultNestingDepth},
		renderer: pipeline.NewMarkdownRenderer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert runs the full pipeline and returns the storage-dialect string.
// Directive tokens in the input reach the output byte-for-byte. The
// transform is atomic: on any error, including context cancellation, no
// partial output is returned.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	if input.Markdown == "" {
		return "", ErrEmptyMarkdown
	}

	// Generic tree builder: markdown to XHTML fragment.
	fragment, err := s.renderer.Render(ctx, input.Markdown)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	tree, err := dom.FromHTML(fragment)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTreeParse, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pipeline.NormalizeFootnoteAnchors(tree)
	tree = pipeline.IsolateDirectives(tree)

	// The vault and its counter live for exactly one transform.
	vault := directive.NewVault()
	pipeline.ProtectDirectives(tree, vault)

	tree, err = pipeline.ResolveCollapsibles(tree, s.cfg.maxNestingDepth)
	if err != nil {
		return "", fmt.Errorf("resolving collapsible sections: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tree, err = pipeline.CollapseRegions(tree, s.cfg.maxNestingDepth)
	if err != nil {
		return "", fmt.Errorf("collapsing directive regions: %w", err)
	}

	tree = pipeline.ResolveFootnotes(tree)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := pipeline.Serialize(tree, s.cfg.maxNestingDepth)
	if err != nil {
		return "", fmt.Errorf("serializing document: %w", err)
	}

	out = vault.Restore(out)
	out = pipeline.NormalizeBlankLines(out)
	return strings.TrimSpace(out), nil
}
