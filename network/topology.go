package network

import (
	"sort"

	"github.com/pkg/errors"
)

// Builder constructs a Network with a particular topology.
type Builder func(params Params) (*Network, error)

// Params describes the size of a Network to build.
// Width and Height are only used by lattice topologies.
type Params struct {
	NumVertices int
	Width       int
	Height      int
}

var builders = map[string]Builder{
	"ring": func(p Params) (*Network, error) {
		return NewRing(p.NumVertices)
	},
	"torus": func(p Params) (*Network, error) {
		if p.Width == 0 && p.Height == 0 {
			side := isqrt(p.NumVertices)
			if side*side != p.NumVertices {
				return nil, errors.Errorf("torus of %d vertices requires width and height", p.NumVertices)
			}
			p.Width, p.Height = side, side
		}

		if p.NumVertices != 0 && p.Width*p.Height != p.NumVertices {
			return nil, errors.Errorf("torus %dx%d does not have %d vertices",
				p.Width, p.Height, p.NumVertices)
		}

		return NewTorus(p.Width, p.Height)
	},
}

// Build constructs a Network with the named topology.
func Build(topology string, params Params) (*Network, error) {
	builder, ok := builders[topology]
	if !ok {
		return nil, errors.Errorf("unknown topology %q (available: %v)", topology, Topologies())
	}

	return builder(params)
}

// Topologies returns the names of the available topologies.
func Topologies() []string {
	result := make([]string, 0, len(builders))
	for name := range builders {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// NewRing connects each of n vertices to its successor, wrapping around.
func NewRing(n int) (*Network, error) {
	net, err := NewEmpty(n, n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		if err := net.AddEdge(i, (i+1)%n); err != nil {
			return nil, err
		}
	}

	return net, nil
}

// NewTorus lays width*height vertices out row-major on a 2-D lattice with
// wraparound, connecting each vertex to its right and lower neighbor so
// that every vertex has four neighbors.
func NewTorus(width, height int) (*Network, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d torus", width, height)
	}

	net, err := NewEmpty(width*height, 2*width*height)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := y*width + x
			right := y*width + (x+1)%width
			down := ((y+1)%height)*width + x
			if err := net.AddEdge(v, right); err != nil {
				return nil, err
			}
			if err := net.AddEdge(v, down); err != nil {
				return nil, err
			}
		}
	}

	return net, nil
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}

	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
