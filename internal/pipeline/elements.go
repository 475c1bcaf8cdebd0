package pipeline

import (
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/alnah/go-md2conf/internal/dom"
)

// voidTags are elements serialized self-closed, without an end tag.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// DefaultCodeLanguage is emitted when a code fence declares no language.
const DefaultCodeLanguage = "text"

// languageClassPrefix is how the generic parser marks fence languages on
// code elements.
const languageClassPrefix = "language-"

// soleCodeChild returns the code element when pre wraps exactly one.
func soleCodeChild(pre *dom.Node) (*dom.Node, bool) {
	if len(pre.Children) != 1 || !pre.Children[0].IsElement("code") {
		return nil, false
	}
	return pre.Children[0], true
}

// languageToken extracts the fence language from a code element's class
// list, or "" when absent.
func languageToken(code *dom.Node) string {
	v, ok := code.Attr("class")
	if !ok {
		return ""
	}
	classes := v.List
	if v.Kind == dom.AttrString {
		classes = strings.Fields(v.Str)
	}
	for _, c := range classes {
		if lang, ok := strings.CutPrefix(c, languageClassPrefix); ok {
			return lang
		}
	}
	return ""
}

// canonicalLanguage resolves fence language aliases ("golang" becomes "go")
// through chroma's lexer registry. Unknown tokens pass through lowercased;
// an absent token falls back to DefaultCodeLanguage.
func canonicalLanguage(token string) string {
	if token == "" {
		return DefaultCodeLanguage
	}
	if lexer := lexers.Get(token); lexer != nil {
		return strings.ToLower(lexer.Config().Name)
	}
	return strings.ToLower(token)
}

// cleanImageSrc strips accidental quote characters, raw or URL-encoded, that
// sneak into image destinations.
func cleanImageSrc(src string) string {
	src = strings.ReplaceAll(src, "%22", "")
	return strings.ReplaceAll(src, `"`, "")
}

// convertCellAlignment rewrites a table cell's align attribute into an
// inline text-align style and gives header cells a column scope. Returns a
// rewritten attribute copy, or the original map when nothing applies.
func convertCellAlignment(cell *dom.Node) map[string]dom.AttrValue {
	align, hasAlign := cell.StringAttr("align")
	isHeader := cell.Tag == "th"
	if !hasAlign && !isHeader {
		return cell.Attrs
	}

	attrs := cell.CopyAttrs()
	if attrs == nil {
		attrs = make(map[string]dom.AttrValue, 2)
	}
	if hasAlign {
		delete(attrs, "align")
		style := "text-align: " + align + ";"
		if prev, ok := cell.StringAttr("style"); ok && prev != "" {
			style = strings.TrimRight(prev, "; ") + "; " + style
		}
		attrs["style"] = dom.String(style)
	}
	if isHeader {
		attrs["scope"] = dom.String("col")
	}
	return attrs
}

// sortedAttrNames returns attribute names in stable order for deterministic
// serialization; the dialect does not care about attribute order.
func sortedAttrNames(attrs map[string]dom.AttrValue) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
