package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "n1", false},
		{"valid with dash", "substation-north", false},
		{"valid unicode", "Zürich", false},
		{"valid with spaces", "main street", false},

		{"empty", "", true},
		{"too long", strings.Repeat("x", 300), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID("node", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateGraph(t *testing.T) {
	ok := graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}},
		Edges: []graph.Edge{{ID: "ab", Source: "a", Target: "b"}},
	}
	if err := ValidateGraph(ok); err != nil {
		t.Fatalf("ValidateGraph(valid) = %v", err)
	}

	dangling := ok.Clone()
	dangling.Edges = append(dangling.Edges, graph.Edge{ID: "bx", Source: "b", Target: "x"})
	if err := ValidateGraph(dangling); !Is(err, ErrCodeInvalidGraph) {
		t.Errorf("ValidateGraph(dangling) = %v, want INVALID_GRAPH", err)
	}

	var big graph.Graph
	for i := range MaxGraphNodes + 1 {
		big.Nodes = append(big.Nodes, graph.Node{ID: fmt.Sprint(i)})
	}
	if err := ValidateGraph(big); !Is(err, ErrCodeInvalidGraph) {
		t.Errorf("ValidateGraph(big) = %v, want INVALID_GRAPH", err)
	}
}

func TestRequireNode(t *testing.T) {
	g := graph.Graph{Nodes: []graph.Node{{ID: "a"}}}

	if err := RequireNode(g, "a"); err != nil {
		t.Errorf("RequireNode(a) = %v", err)
	}
	if err := RequireNode(g, "b"); !Is(err, ErrCodeNodeNotFound) {
		t.Errorf("RequireNode(b) = %v, want NODE_NOT_FOUND", err)
	}
	if err := RequireNode(g, ""); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("RequireNode(\"\") = %v, want INVALID_INPUT", err)
	}
}

func TestParseIDList(t *testing.T) {
	tests := []struct {
		input   string
		want    []string
		wantErr bool
	}{
		{"", nil, false},
		{"e1", []string{"e1"}, false},
		{" e1 , e2,,e3 ", []string{"e1", "e2", "e3"}, false},
		{"e1,bad\x01", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIDList(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIDList(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("ParseIDList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
