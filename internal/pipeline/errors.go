package pipeline

import "errors"

// ErrTooDeeplyNested aborts a transform whose region or element nesting
// exceeds the configured depth budget. The whole transform fails; no partial
// output is returned.
var ErrTooDeeplyNested = errors.New("document nesting exceeds depth budget")
