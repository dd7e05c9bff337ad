package ingestmodel_test

import (
	"testing"

	"github.com/katalvlaran/graphgen/ingestmodel"
	"github.com/stretchr/testify/require"
)

// TestReadEdge_UnknownEndpoint exercises spec.md §9 open question 3: an
// edge referencing a node id never seen via ReadNode resolves to the empty
// NodeType rather than failing ingest.
func TestReadEdge_UnknownEndpoint(t *testing.T) {
	var warnings []string
	logger := loggerFunc(func(msg string, kv ...any) { warnings = append(warnings, msg) })

	m := ingestmodel.New(ingestmodel.WithLogger(logger))
	m.ReadNode("n1", "A")
	m.ReadEdge("n1", "ghost", "r")

	require.NotEmpty(t, warnings)

	pairs := m.SBMMatrix("r")
	require.Equal(t, ingestmodel.Count(1), pairs[ingestmodel.TypePair{From: "A", To: ""}])
}

func TestPreprocess_Idempotent(t *testing.T) {
	m := buildMinimalModel(t)

	require.NoError(t, m.Preprocess())
	first, ok := m.OutDistribution("A", "r")
	require.True(t, ok)

	require.NoError(t, m.Preprocess())
	second, ok := m.OutDistribution("A", "r")
	require.True(t, ok)

	require.Equal(t, first, second)
}

// TestPreprocess_ZeroPadding is scenario-adjacent to S5/S4: B's in-degree
// histogram for "r" is padded with a zero-degree bucket for the B node that
// never receives an edge, while no B node sends an edge of color "r", so
// B has no out-degree histogram for "r" at all.
func TestPreprocess_ZeroPadding(t *testing.T) {
	m := ingestmodel.New()
	m.ReadNode("a1", "A")
	m.ReadNode("b1", "B")
	m.ReadNode("b2", "B")
	m.ReadEdge("a1", "b1", "r")

	require.NoError(t, m.Preprocess())

	outB, ok := m.OutDistribution("B", "r")
	require.False(t, ok)
	require.Nil(t, outB)

	inB, ok := m.InDistribution("B", "r")
	require.True(t, ok)
	require.Equal(t, ingestmodel.Count(1), inB[1])
	require.Equal(t, ingestmodel.Count(1), inB[0])
}

func TestNodeTypePopulations(t *testing.T) {
	m := buildMinimalModel(t)
	pops := m.NodeTypePopulations()
	require.Equal(t, ingestmodel.Count(1), pops["A"])
	require.Equal(t, ingestmodel.Count(1), pops["B"])
}

func buildMinimalModel(t *testing.T) *ingestmodel.InputModel {
	t.Helper()
	m := ingestmodel.New()
	m.ReadNode("n1", "A")
	m.ReadNode("n2", "B")
	m.ReadEdge("n1", "n2", "r")
	return m
}

type loggerFunc func(msg string, kv ...any)

func (f loggerFunc) Warn(msg string, kv ...any) { f(msg, kv...) }
