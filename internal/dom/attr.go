package dom

// AttrKind discriminates attribute value variants.
type AttrKind int

const (
	// AttrInvalid is the zero value; the serializer omits such attributes
	// rather than emitting malformed output.
	AttrInvalid AttrKind = iota
	// AttrBool marks a bare attribute with no value.
	AttrBool
	// AttrString carries a single string value.
	AttrString
	// AttrList carries an ordered list of strings, space-joined on emit.
	AttrList
)

// AttrValue is a closed union over bare, string and list attribute values.
// An absent attribute is expressed by leaving it out of the map.
type AttrValue struct {
	Kind AttrKind
	Str  string
	List []string
}

// Flag returns a bare attribute value.
func Flag() AttrValue {
	return AttrValue{Kind: AttrBool}
}

// String returns a string attribute value.
func String(s string) AttrValue {
	return AttrValue{Kind: AttrString, Str: s}
}

// List returns an ordered-list attribute value.
func List(items ...string) AttrValue {
	return AttrValue{Kind: AttrList, List: items}
}
