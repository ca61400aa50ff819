package network

import (
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestNewTorus(t *testing.T) {
	net, err := NewTorus(4, 3)
	if err != nil {
		t.Fatal(err)
	}

	if net.NumVertices() != 12 || net.NumEdges() != 24 {
		t.Errorf("unexpected torus: %v", net)
	}

	for v := 0; v < net.NumVertices(); v++ {
		if net.Degree(v) != 4 {
			t.Errorf("vertex %d has degree %d, expected 4", v, net.Degree(v))
		}
	}

	// Vertex 0 sits at (0, 0): right (1, 0), down (0, 1), left (3, 0), up (0, 2).
	neighbors := append([]int(nil), net.Neighbors(0)...)
	sort.Ints(neighbors)
	if !reflect.DeepEqual(neighbors, []int{1, 3, 4, 8}) {
		t.Errorf("unexpected neighbors of 0: %v", neighbors)
	}
}

func TestNewTorus_InvalidSize(t *testing.T) {
	if _, err := NewTorus(0, 4); errors.Cause(err) != ErrInvalidSize {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestBuild(t *testing.T) {
	net, err := Build("torus", Params{NumVertices: 16})
	if err != nil {
		t.Fatal(err)
	}
	if net.NumEdges() != 32 {
		t.Errorf("expected 4x4 torus, got %v", net)
	}

	if _, err := Build("torus", Params{NumVertices: 15}); err == nil {
		t.Error("expected error for non-square torus without dimensions")
	}

	if _, err := Build("torus", Params{NumVertices: 15, Width: 4, Height: 4}); err == nil {
		t.Error("expected error for mismatched torus dimensions")
	}

	if _, err := Build("hypercube", Params{NumVertices: 8}); err == nil {
		t.Error("expected error for unknown topology")
	}

	if !reflect.DeepEqual(Topologies(), []string{"ring", "torus"}) {
		t.Errorf("unexpected topologies: %v", Topologies())
	}
}

func TestLoadTopology_Edges(t *testing.T) {
	input := `
kind: edges
vertices: 3
capacity: 5
edges:
  - [0, 1]
  - [1, 2]
  - [2, 0]
`
	net, err := LoadTopology(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	if net.NumVertices() != 3 || net.NumEdges() != 3 || net.Capacity() != 5 {
		t.Errorf("unexpected network: %v", net)
	}

	if !reflect.DeepEqual(net.Edges(), []Edge{{0, 1}, {1, 2}, {2, 0}}) {
		t.Errorf("unexpected edges: %v", net.Edges())
	}
}

func TestLoadTopology_RingWithExtraEdges(t *testing.T) {
	input := `
kind: ring
vertices: 4
edges:
  - [0, 2]
`
	net, err := LoadTopology(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	if net.NumEdges() != 5 {
		t.Errorf("expected ring plus one chord, got %v", net)
	}

	if !reflect.DeepEqual(net.Neighbors(0), []int{1, 3, 2}) {
		t.Errorf("unexpected neighbors of 0: %v", net.Neighbors(0))
	}
}

func TestLoadTopology_Errors(t *testing.T) {
	testCases := []string{
		"kind: edges\nvertices: 2\nedges:\n  - [0, 2]\n",
		"kind: edges\nvertices: 2\nedges:\n  - [0, 1, 1]\n",
		"kind: ring\nvertices: 0\n",
		"kind: moebius\nvertices: 4\n",
		"kind: ring\nvertices: 4\ncolour: blue\n",
	}

	for _, input := range testCases {
		if _, err := LoadTopology(strings.NewReader(input)); err == nil {
			t.Errorf("expected error loading %q", input)
		}
	}
}

func TestLoadTopology_OutOfRangeCause(t *testing.T) {
	input := "kind: edges\nvertices: 2\nedges:\n  - [0, 2]\n"
	_, err := LoadTopology(strings.NewReader(input))
	if errors.Cause(err) != ErrVertexOutOfRange {
		t.Errorf("expected ErrVertexOutOfRange cause, got %v", err)
	}
}
