// Package md2conf converts markdown documents into the Confluence storage
// dialect, a restricted XHTML variant, while preserving embedded template
// directives ({{#name ...}} ... {{/name}} blocks and {{name ...}} inline
// tokens) byte-for-byte through parsing, restructuring and escaping.
//
// # Quick Start
//
//	svc := md2conf.New()
//	storage, err := svc.Convert(ctx, md2conf.Input{Markdown: src})
//
// The transform is a pure function of its input: callers needing resilience
// treat it as atomic and re-invoke on corrected input. Use a ServicePool to
// transform many documents in parallel.
package md2conf
