package network

import (
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// TopologyFile is the YAML description of a Network.
//
//	kind: edges
//	vertices: 4
//	capacity: 8
//	edges:
//	  - [0, 1]
//	  - [1, 2]
//
// Kinds "ring" and "torus" build the named topology from vertices
// (and width/height), then append any listed edges.
type TopologyFile struct {
	Kind     string   `yaml:"kind"`
	Vertices int      `yaml:"vertices"`
	Width    int      `yaml:"width,omitempty"`
	Height   int      `yaml:"height,omitempty"`
	Capacity int      `yaml:"capacity,omitempty"`
	Edges    [][]int `yaml:"edges,omitempty"`
}

// LoadTopology reads a TopologyFile and builds the Network it describes.
func LoadTopology(r io.Reader) (*Network, error) {
	var tf TopologyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil {
		return nil, errors.Wrap(err, "decoding topology")
	}

	net, err := tf.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "building %q topology", tf.Kind)
	}

	glog.V(1).Infof("Loaded topology: %v", net)
	return net, nil
}

// Build constructs the Network described by the TopologyFile.
func (tf *TopologyFile) Build() (*Network, error) {
	if tf.Kind == "" || tf.Kind == "edges" {
		capacity := tf.Capacity
		if capacity == 0 {
			capacity = len(tf.Edges)
		}

		net, err := NewEmpty(tf.Vertices, capacity)
		if err != nil {
			return nil, err
		}

		if err := addEdges(net, tf.Edges); err != nil {
			return nil, err
		}

		return net, nil
	}

	base, err := Build(tf.Kind, Params{
		NumVertices: tf.Vertices,
		Width:       tf.Width,
		Height:      tf.Height,
	})
	if err != nil {
		return nil, err
	}

	if len(tf.Edges) == 0 && tf.Capacity == 0 {
		return base, nil
	}

	// Copy into a larger network so extra edges fit.
	capacity := tf.Capacity
	if capacity == 0 {
		capacity = base.NumEdges() + len(tf.Edges)
	}

	net, err := NewEmpty(base.NumVertices(), capacity)
	if err != nil {
		return nil, err
	}

	for _, e := range base.Edges() {
		if err := net.AddEdge(e.I, e.J); err != nil {
			return nil, err
		}
	}

	if err := addEdges(net, tf.Edges); err != nil {
		return nil, err
	}

	return net, nil
}

func addEdges(net *Network, edges [][]int) error {
	for _, e := range edges {
		if len(e) != 2 {
			return errors.Errorf("edge %v must list exactly two vertices", e)
		}

		if err := net.AddEdge(e[0], e[1]); err != nil {
			return err
		}
	}

	return nil
}
