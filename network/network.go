// Package network models the fixed graph on which agents play.
package network

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrVertexOutOfRange is returned when an edge endpoint is not a vertex.
	ErrVertexOutOfRange = errors.New("vertex out of range")
	// ErrEdgeCapacity is returned when adding an edge to a full network.
	ErrEdgeCapacity = errors.New("edge capacity exhausted")
	// ErrInvalidSize is returned for networks without any vertices.
	ErrInvalidSize = errors.New("invalid network size")
)

// Edge is an undirected pairing of two vertices. Edges have no identity:
// the same pair may appear more than once, and I may equal J.
type Edge struct {
	I, J int
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.I, e.J)
}

// Network holds a bounded list of edges between a fixed number of vertices,
// along with the neighbors of each vertex derived from it.
type Network struct {
	edges     []Edge
	neighbors [][]int
}

// New creates a ring network of n vertices, with each vertex connected to
// its successor. The ring fills the network's edge capacity of n.
func New(n int) (*Network, error) {
	return NewRing(n)
}

// NewEmpty creates a network of n vertices with room for capacity edges.
func NewEmpty(n, capacity int) (*Network, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%d vertices", n)
	}

	if capacity < 0 {
		return nil, errors.Errorf("invalid edge capacity: %d", capacity)
	}

	return &Network{
		edges:     make([]Edge, 0, capacity),
		neighbors: make([][]int, n),
	}, nil
}

// AddEdge connects vertices i and j. Adding the same pair twice doubles
// its weight in later passes. A self-loop lists i twice among its own neighbors.
func (n *Network) AddEdge(i, j int) error {
	if i < 0 || i >= len(n.neighbors) || j < 0 || j >= len(n.neighbors) {
		return errors.Wrapf(ErrVertexOutOfRange, "edge (%d, %d) in network of %d vertices",
			i, j, len(n.neighbors))
	}

	if len(n.edges) == cap(n.edges) {
		return errors.Wrapf(ErrEdgeCapacity, "cannot add edge (%d, %d) beyond %d edges",
			i, j, cap(n.edges))
	}

	n.edges = append(n.edges, Edge{i, j})
	n.neighbors[i] = append(n.neighbors[i], j)
	n.neighbors[j] = append(n.neighbors[j], i)
	return nil
}

// NumVertices returns the number of vertices in the Network.
func (n *Network) NumVertices() int {
	return len(n.neighbors)
}

// NumEdges returns the number of edges added so far.
func (n *Network) NumEdges() int {
	return len(n.edges)
}

// Capacity returns the maximum number of edges the Network can hold.
func (n *Network) Capacity() int {
	return cap(n.edges)
}

// Edges returns the edge list in insertion order.
// The returned slice must not be modified.
func (n *Network) Edges() []Edge {
	return n.edges
}

// Neighbors returns the vertices connected to i in insertion order,
// repeated once per connecting edge. The returned slice must not be modified.
func (n *Network) Neighbors(i int) []int {
	return n.neighbors[i]
}

// Degree returns the number of edge endpoints incident to i.
func (n *Network) Degree(i int) int {
	return len(n.neighbors[i])
}

func (n *Network) String() string {
	return fmt.Sprintf("Network{%d vertices, %d/%d edges}",
		n.NumVertices(), n.NumEdges(), n.Capacity())
}
