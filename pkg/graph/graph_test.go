package graph

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGraph() Graph {
	return Graph{
		Nodes: []Node{
			{ID: "a", X: 100, Y: 100, Label: "Router A", Category: "router"},
			{ID: "b", X: 200.5, Y: 100},
			{ID: "c", X: 150, Y: 250},
		},
		Edges: []Edge{
			{ID: "e1", Source: "a", Target: "b", Kind: EdgeKindSeries},
			{ID: "e2", Source: "b", Target: "c"},
			{ID: "e3", Source: "c", Target: "a", Bridge: true},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{".JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{".yaml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{".csv", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	g := sampleGraph()

	for _, name := range []string{"net.json", "net.yaml", "net.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteFile(g, path))

			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, g, got)
		})
	}
}

func TestReadJSONFieldNames(t *testing.T) {
	in := `{
	  "nodes": [{"id": "n1", "x": 50, "y": 60, "label": "Gate", "category": "building"}],
	  "edges": [{"id": "e1", "source": "n1", "target": "n2", "type": "parallel"}]
	}`
	g, err := Read(bytes.NewBufferString(in), FormatJSON)
	require.NoError(t, err)

	require.Len(t, g.Nodes, 1)
	assert.Equal(t, Node{ID: "n1", X: 50, Y: 60, Label: "Gate", Category: "building"}, g.Nodes[0])
	require.Len(t, g.Edges, 1)
	assert.Equal(t, EdgeKindParallel, g.Edges[0].Kind)
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(bytes.NewBufferString("{nodes: ["), FormatJSON)
	assert.Error(t, err)

	_, err = Read(bytes.NewBufferString(""), Format("xml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalEmptyGraph(t *testing.T) {
	data, err := Marshal(Graph{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes": [], "edges": []}`, string(data))
}

func TestMarshalDeterministic(t *testing.T) {
	a, err := Marshal(sampleGraph())
	require.NoError(t, err)
	b, err := Marshal(sampleGraph())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, sampleGraph().Validate())

	g := Graph{
		Nodes: []Node{{ID: "a"}, {ID: "a"}, {ID: ""}},
		Edges: []Edge{
			{ID: "e1", Source: "a", Target: "zz"},
			{ID: "e1", Source: "a", Target: "a"},
		},
	}
	err := g.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateNodeID)
	assert.ErrorIs(t, err, ErrEmptyID)
	assert.ErrorIs(t, err, ErrDuplicateEdgeID)
	assert.ErrorIs(t, err, ErrUnknownEndpoint)
}

func TestCloneIsIndependent(t *testing.T) {
	g := sampleGraph()
	c := g.Clone()
	c.Nodes[0].X = -1
	c.Edges[0].Bridge = true

	assert.Equal(t, 100.0, g.Nodes[0].X)
	assert.False(t, g.Edges[0].Bridge)
}

func TestEdgeHelpers(t *testing.T) {
	e := Edge{ID: "x", Source: "a", Target: "b"}
	assert.True(t, e.SamePair(Edge{Source: "b", Target: "a"}))
	assert.False(t, e.SamePair(Edge{Source: "a", Target: "c"}))
	assert.True(t, e.SharesEndpoint(Edge{Source: "c", Target: "b"}))
	assert.False(t, e.SharesEndpoint(Edge{Source: "c", Target: "d"}))
	assert.Equal(t, e.PairKey(), Edge{Source: "b", Target: "a"}.PairKey())
	assert.True(t, e.Touches("a"))
	assert.Equal(t, "a", Node{ID: "a"}.DisplayLabel())
	assert.Equal(t, "Gate", Node{ID: "a", Label: "Gate"}.DisplayLabel())
}

func TestEdgeSet(t *testing.T) {
	var nilSet EdgeSet
	assert.False(t, nilSet.Has("e1"))

	s := NewEdgeSet("e2", "e1")
	assert.True(t, s.Has("e1"))
	assert.Equal(t, []string{"e1", "e2"}, s.IDs())

	u := s.Union(NewEdgeSet("e3"))
	assert.Equal(t, []string{"e1", "e2", "e3"}, u.IDs())
	assert.Len(t, s, 2, "Union must not modify its receiver")

	g := sampleGraph()
	active := ActiveEdges(g, NewEdgeSet("e2"))
	require.Len(t, active, 2)
	assert.Equal(t, "e1", active[0].ID)
	assert.Equal(t, "e3", active[1].ID)
}
