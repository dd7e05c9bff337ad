// SPDX-License-Identifier: MIT
package graphmodel

import "github.com/katalvlaran/graphgen/ingestmodel"

// Writer is the boundary contract generation delegates persistence to
// (spec.md §4.F). Both methods must be safe to call concurrently from any
// number of goroutines; implementations are responsible for serializing
// writes to their underlying sink.
type Writer interface {
	EmitNode(t ingestmodel.NodeType, id int64) error
	EmitEdge(color ingestmodel.EdgeColor, src, dst int64) error
}
