// SPDX-License-Identifier: MIT
package graphmodel

import (
	"errors"
	"fmt"
)

// ErrNotPreprocessed indicates NewGraphModel was handed an InputModel that
// has not had Preprocess called on it yet. Fatal (spec §7): sampler
// construction never proceeds on partial state.
var ErrNotPreprocessed = errors.New("graphmodel: InputModel has not been preprocessed")

// ErrNoOutgoingTypes indicates a color has zero positive-count SBM
// transitions — EdgeDistribution has nothing to build a table over.
// Classification: InvalidDistribution (spec §7).
var ErrNoOutgoingTypes = errors.New("graphmodel: no node type has an outgoing edge of this color")

// ErrEmptyNodeType indicates NewNodeType was asked to build a type with
// zero target size; spec.md requires size > 0 for a NodeType to be
// constructible (a scaled-down population of zero is a degenerate input).
var ErrEmptyNodeType = errors.New("graphmodel: NodeType size must be positive")

// ErrInvalidScale indicates GraphModel was constructed with a
// non-positive scaling factor.
var ErrInvalidScale = errors.New("graphmodel: scale must be positive")

// graphmodelErrorf wraps an inner error with method context, mirroring the
// sentinel-plus-%w wrapping convention used throughout this module.
func graphmodelErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
