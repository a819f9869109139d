// SPDX-License-Identifier: MIT
package tableio_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/katalvlaran/sssp/internal/tableio"
)

func TestReadInput_Triangle(t *testing.T) {
	in, err := tableio.ReadInput(strings.NewReader("3 3 0\n0 1 4\n0 2 1\n2 1 1\n"))
	require.NoError(t, err)

	assert.Equal(t, tableio.Header{Vertices: 3, Edges: 3, Source: 0}, in.Header)
	assert.Equal(t, 3, in.Graph.VertexCount())
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 1, Weight: 1},
	}, in.Graph.Edges())
}

func TestReadInput_FreeLayoutAndTrailingTokens(t *testing.T) {
	in, err := tableio.ReadInput(strings.NewReader("  2\t1 1 1 0\n 7   trailing junk"))
	require.NoError(t, err)

	assert.Equal(t, 1, in.Header.Source)
	assert.Equal(t, []core.Edge{{From: 1, To: 0, Weight: 7}}, in.Graph.Edges())
}

func TestReadInput_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		msg   string
	}{
		{"empty", "", tableio.ErrUnexpectedEOF, "vertex count"},
		{"short header", "3 1", tableio.ErrUnexpectedEOF, "source vertex"},
		{"truncated edges", "3 2 0\n0 1 1\n1 2", tableio.ErrUnexpectedEOF, "weight of edge 1"},
		{"bad token", "3 x 0", tableio.ErrBadToken, `"x"`},
		{"zero vertices", "0 0 0", tableio.ErrInvalidHeader, "Vertices"},
		{"negative edges", "2 -1 0", tableio.ErrInvalidHeader, "Edges"},
		{"source too large", "2 0 2", tableio.ErrInvalidHeader, "Source"},
		{"negative source", "2 0 -1", tableio.ErrInvalidHeader, "Source"},
		{"edge out of range", "2 1 0\n0 5 1", core.ErrVertexOutOfRange, "edge 0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, err := tableio.ReadInput(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Nil(t, in)
			assert.Truef(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestReadInput_OnEdge(t *testing.T) {
	var calls [][2]int
	_, err := tableio.ReadInput(strings.NewReader("2 2 0 0 1 1 1 0 1"),
		tableio.WithOnEdge(func(done, total int) { calls = append(calls, [2]int{done, total}) }))
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, calls)
}

func runTable(t *testing.T, input string, opts ...tableio.WriteOption) string {
	t.Helper()
	in, err := tableio.ReadInput(strings.NewReader(input))
	require.NoError(t, err)
	res, err := dijkstra.Dijkstra(in.Graph, dijkstra.Source(in.Header.Source))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tableio.WriteTable(&buf, res, opts...))

	return buf.String()
}

func TestWriteTable_SingleVertex(t *testing.T) {
	assert.Equal(t, "0\t0\t-1\n", runTable(t, "1 0 0"))
}

func TestWriteTable_Unreachable(t *testing.T) {
	const input = "4 3 0\n0 1 4\n0 2 1\n2 1 1\n"

	assert.Equal(t, "0\t0\t-1\n1\t2\t2\n2\t1\t0\n3\t9223372036854775807\t-1\n", runTable(t, input))
	assert.Equal(t, "0\t0\t-1\n1\t2\t2\n2\t1\t0\n3\t2147483647\t-1\n",
		runTable(t, input, tableio.WithInfinity(tableio.Int32Infinity)))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTable_WriterError(t *testing.T) {
	res := &dijkstra.Result{Dist: []int64{0}, Pred: []int{-1}}
	err := tableio.WriteTable(failWriter{}, res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
