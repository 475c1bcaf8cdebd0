// Package pipeline implements the tree-rewrite passes that turn parsed
// markdown into the Confluence storage dialect: directive isolation,
// collapsible-section resolution, macro region collapsing, footnote
// resolution and the final serializer.
//
// Passes rebuild children slices instead of mutating node identity, and each
// pass fully completes before the next begins. Directive tokens reach the
// output byte-for-byte: whole-line tokens travel as marker nodes, embedded
// tokens as vault placeholders.
package pipeline
