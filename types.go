package md2conf

// Nesting depth bounds for directive regions and element depth combined.
// The budget guards against pathological inputs (thousands of nested
// regions) instead of growing the stack without bound.
const (
	MinNestingDepth     = 8
	DefaultNestingDepth = 200
)

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
}
