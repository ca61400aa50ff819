// Package history tracks the trailing strategies played by each vertex,
// for smoothing the visualization of a simulation.
package history

import (
	"github.com/emirpasic/gods/queues/circularbuffer"
	"github.com/pkg/errors"

	"github.com/timpalpant/rpsnet/strategy"
)

// DefaultLength is the number of generations remembered by default.
const DefaultLength = 40

// Window remembers the last few strategies of every vertex.
type Window struct {
	length  int
	buffers []*circularbuffer.Queue
	// Running tally of each vertex's buffer.
	counts []strategy.Counts
}

// New creates a Window remembering length generations of numVertices vertices.
func New(numVertices, length int) (*Window, error) {
	if numVertices < 0 || length <= 0 {
		return nil, errors.Errorf("invalid history window: %d vertices x %d generations",
			numVertices, length)
	}

	buffers := make([]*circularbuffer.Queue, numVertices)
	for i := range buffers {
		buffers[i] = circularbuffer.New(length)
	}

	return &Window{
		length:  length,
		buffers: buffers,
		counts:  make([]strategy.Counts, numVertices),
	}, nil
}

// Record appends one generation of strategies, forgetting the oldest
// generation once the window is full.
func (w *Window) Record(strategies []strategy.Strategy) {
	if len(strategies) != len(w.buffers) {
		panic(errors.Errorf("recording %d strategies in history of %d vertices",
			len(strategies), len(w.buffers)))
	}

	for v, s := range strategies {
		buf := w.buffers[v]
		if buf.Full() {
			oldest, _ := buf.Dequeue()
			w.counts[v][oldest.(strategy.Strategy).Index()]--
		}

		buf.Enqueue(s)
		w.counts[v].Add(s)
	}
}

// NumVertices returns the number of vertices tracked.
func (w *Window) NumVertices() int {
	return len(w.buffers)
}

// Length returns the maximum number of generations remembered.
func (w *Window) Length() int {
	return w.length
}

// Counts tallies the strategies vertex v played within the window.
func (w *Window) Counts(v int) strategy.Counts {
	return w.counts[v]
}

// Recent returns the strategies of vertex v within the window, oldest first.
func (w *Window) Recent(v int) []strategy.Strategy {
	values := w.buffers[v].Values()
	result := make([]strategy.Strategy, len(values))
	for i, value := range values {
		result[i] = value.(strategy.Strategy)
	}
	return result
}

// Colors blends the window of each vertex into a color, see Color.
// dst is reused if it has sufficient capacity.
func (w *Window) Colors(dst []uint32) []uint32 {
	if cap(dst) < len(w.counts) {
		dst = make([]uint32, len(w.counts))
	}
	dst = dst[:len(w.counts)]
	for v, c := range w.counts {
		dst[v] = Color(c)
	}
	return dst
}
