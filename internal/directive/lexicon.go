// Package directive recognizes the name-delimited template tokens that must
// survive conversion byte-for-byte: block pairs {{#name ...}} ... {{/name}}
// and inline tokens {{name ...}}. It also provides the placeholder vault that
// shields directive text from the escaping passes of the pipeline.
package directive

import (
	"regexp"
	"strings"
)

// Precompiled token patterns.
var (
	// anyToken matches any directive token, block or inline.
	anyToken = regexp.MustCompile(`\{\{[^{}]+\}\}`)

	// blockToken matches text that is exactly one block open or close token.
	blockToken = regexp.MustCompile(`^\{\{[#/][^}]+\}\}$`)

	// openToken captures the name of {{#name ...}}; trailing attribute text
	// inside the head is preserved by callers, never parsed here.
	openToken = regexp.MustCompile(`^\{\{#([^\s}]+)[^}]*\}\}$`)

	// closeToken captures the name of {{/name}}.
	closeToken = regexp.MustCompile(`^\{\{/([^\s}]+)\s*\}\}$`)
)

// IsBlockToken reports whether the trimmed text is exactly one block
// open or close directive token.
func IsBlockToken(text string) bool {
	return blockToken.MatchString(strings.TrimSpace(text))
}

// OpenName returns the name of an open token {{#name ...}}.
func OpenName(text string) (string, bool) {
	m := openToken.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// CloseName returns the name of a close token {{/name}}.
func CloseName(text string) (string, bool) {
	m := closeToken.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsClose reports whether text is the close token for name.
// Names are case-sensitive exact matches.
func IsClose(text, name string) bool {
	n, ok := CloseName(text)
	return ok && n == name
}

// ContainsToken reports whether text holds at least one directive token.
func ContainsToken(text string) bool {
	return anyToken.MatchString(text)
}
