package graphmodel

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphgen/ingestmodel"
)

// fakeWriter records every emitted node/edge, safe for concurrent use.
type fakeWriter struct {
	mu    sync.Mutex
	nodes []nodeRecord
	edges []edgeRecord
}

type nodeRecord struct {
	Type ingestmodel.NodeType
	ID   int64
}

type edgeRecord struct {
	Color    ingestmodel.EdgeColor
	Src, Dst int64
}

func (w *fakeWriter) EmitNode(t ingestmodel.NodeType, id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nodes = append(w.nodes, nodeRecord{Type: t, ID: id})
	return nil
}

func (w *fakeWriter) EmitEdge(color ingestmodel.EdgeColor, src, dst int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.edges = append(w.edges, edgeRecord{Color: color, Src: src, Dst: dst})
	return nil
}

func buildMinimalInput(t *testing.T) *ingestmodel.InputModel {
	t.Helper()
	m := ingestmodel.New()
	m.ReadNode("n1", "A")
	m.ReadNode("n2", "B")
	m.ReadEdge("n1", "n2", "r")
	require.NoError(t, m.Preprocess())
	return m
}

// TestGenerate_S5EndToEnd reproduces spec.md §8 scenario S5: 2 nodes
// (n1:A, n2:B), 1 edge n1->n2:r, scale 10. Expected: 20 nodes (10 of each
// type), 10 edges all colored r with source type A and target type B.
func TestGenerate_S5EndToEnd(t *testing.T) {
	model := buildMinimalInput(t)

	gm, err := NewGraphModel(model, 10, WithSeed(42), WithWorkers(4))
	require.NoError(t, err)

	w := &fakeWriter{}
	require.NoError(t, gm.Generate(context.Background(), w))

	require.Len(t, w.nodes, 20)
	require.Len(t, w.edges, 10)

	var typeA, typeB int
	for _, n := range w.nodes {
		switch n.Type {
		case ingestmodel.NodeType("A"):
			typeA++
		case ingestmodel.NodeType("B"):
			typeB++
		}
	}
	require.Equal(t, 10, typeA)
	require.Equal(t, 10, typeB)

	for _, e := range w.edges {
		require.Equal(t, ingestmodel.EdgeColor("r"), e.Color)
		require.GreaterOrEqual(t, e.Src, int64(0))
		require.Less(t, e.Src, int64(10))
		require.GreaterOrEqual(t, e.Dst, int64(10))
		require.Less(t, e.Dst, int64(20))
	}
}

// TestGenerate_S6ScaleBelowOne reproduces spec.md §8 scenario S6: a scale
// below 1 emits fewer edges than the original while generation still
// completes without error.
func TestGenerate_S6ScaleBelowOne(t *testing.T) {
	model := ingestmodel.New()
	for i := 0; i < 20; i++ {
		model.ReadNode(nodeID(i), "A")
	}
	for i := 0; i < 10; i++ {
		model.ReadEdge(nodeID(i), nodeID(i+1), "r")
	}
	require.NoError(t, model.Preprocess())

	gm, err := NewGraphModel(model, 0.5, WithSeed(1))
	require.NoError(t, err)

	require.Less(t, gm.TargetEdges("r"), int64(10))
	require.Less(t, gm.NodeCount(), int64(20))

	w := &fakeWriter{}
	require.NoError(t, gm.Generate(context.Background(), w))
	require.Len(t, w.edges, int(gm.TargetEdges("r")))
	require.Len(t, w.nodes, int(gm.NodeCount()))
}

func TestNewGraphModel_RejectsUnprocessedModel(t *testing.T) {
	model := ingestmodel.New()
	_, err := NewGraphModel(model, 2)
	require.ErrorIs(t, err, ErrNotPreprocessed)
}

func TestNewGraphModel_RejectsNonPositiveScale(t *testing.T) {
	model := buildMinimalInput(t)
	_, err := NewGraphModel(model, 0)
	require.ErrorIs(t, err, ErrInvalidScale)
}

func nodeID(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	return string(letters[i%len(letters)]) + string(rune('0'+i/len(letters)))
}
