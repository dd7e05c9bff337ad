package writer

import "errors"

// ErrOpenFile indicates an output file could not be created or truncated.
// Fatal (spec.md §7 IOError).
var ErrOpenFile = errors.New("writer: could not open file")
