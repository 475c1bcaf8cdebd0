package md2conf

import (
	"errors"

	"github.com/alnah/go-md2conf/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrTreeParse      = errors.New("document tree parsing failed")

	// Option validation errors.
	ErrInvalidNestingDepth = errors.New("invalid max nesting depth")

	// ErrTooDeeplyNested is the pipeline's depth-budget failure, re-exported
	// so callers can match it without importing internal packages.
	ErrTooDeeplyNested = pipeline.ErrTooDeeplyNested
)
