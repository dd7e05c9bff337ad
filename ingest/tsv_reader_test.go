package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphgen/ingest"
	"github.com/katalvlaran/graphgen/ingestmodel"
)

type capturingLogger struct {
	warnings []string
}

func (l *capturingLogger) Warn(msg string, _ ...any) { l.warnings = append(l.warnings, msg) }

func writeFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTSVReader_ReadNodes_SkipsHeaderAndMalformed(t *testing.T) {
	path := writeFile(t, "id\ttype\nn1\tA\nn2\tB\nmalformed-line\nn3\tC\textra\tcolumns\n")

	logger := &capturingLogger{}
	reader := ingest.NewTSVReader(logger)
	model := ingestmodel.New()

	read, skipped, err := reader.ReadNodes(path, model)
	require.NoError(t, err)
	require.Equal(t, 3, read)
	require.Equal(t, 1, skipped)
	require.Len(t, logger.warnings, 1)

	pops := model.NodeTypePopulations()
	require.EqualValues(t, 1, pops[ingestmodel.NodeType("A")])
	require.EqualValues(t, 1, pops[ingestmodel.NodeType("B")])
	require.EqualValues(t, 1, pops[ingestmodel.NodeType("C")])
}

func TestTSVReader_ReadEdges(t *testing.T) {
	nodePath := writeFile(t, "id\ttype\nn1\tA\nn2\tB\n")
	edgePath := writeFile(t, "src\tdst\tcolor\nn1\tn2\tr\n")

	logger := &capturingLogger{}
	reader := ingest.NewTSVReader(logger)
	model := ingestmodel.New()

	_, _, err := reader.ReadNodes(nodePath, model)
	require.NoError(t, err)
	read, skipped, err := reader.ReadEdges(edgePath, model)
	require.NoError(t, err)
	require.Equal(t, 1, read)
	require.Equal(t, 0, skipped)

	require.EqualValues(t, 1, model.EdgeCount("r"))
}

func TestTSVReader_ReadNodes_OpenFailure(t *testing.T) {
	reader := ingest.NewTSVReader(nil)
	model := ingestmodel.New()
	_, _, err := reader.ReadNodes("/nonexistent/path.tsv", model)
	require.ErrorIs(t, err, ingest.ErrOpenFile)
}
