package rpsnet

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/rpsnet/boltzmann"
	"github.com/timpalpant/rpsnet/network"
	"github.com/timpalpant/rpsnet/strategy"
)

// Number of vertex ranges handed out to each worker per pass.
const chunksPerWorker = 4

// Updater performs the synchronous strategy update of each generation.
// An Updater owns its random stream and must not be used concurrently.
type Updater struct {
	rng        *rand.Rand
	numWorkers int
}

// NewUpdater creates an Updater drawing from rng with the given number of
// parallel workers. If numWorkers <= 0, runtime.NumCPU() workers are used.
func NewUpdater(rng *rand.Rand, numWorkers int) *Updater {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &Updater{
		rng:        rng,
		numWorkers: numWorkers,
	}
}

// NumWorkers returns the number of parallel workers used per pass.
func (u *Updater) NumWorkers() int {
	return u.numWorkers
}

// UpdateStrategies replaces every vertex's strategy with a Boltzmann
// selection over its local scores. All selections are made from the
// strategies as they were before the call. Scores are only read.
// Returns the number of vertices whose strategy changed.
func (u *Updater) UpdateStrategies(strategies []strategy.Strategy, scores []int64, net *network.Network) int {
	mustMatchNetwork(strategies, scores, net)
	draws := allocFloatSlice(len(strategies))
	defer freeFloatSlice(draws)
	// Drawn up front so workers never share the random stream.
	for i := range draws {
		draws[i] = u.rng.Float64()
	}

	return UpdateStrategiesWithDraws(strategies, scores, net, draws, u.numWorkers)
}

// UpdateStrategiesWithDraws is UpdateStrategies with the uniform draw for
// each vertex supplied by the caller. The result does not depend on numWorkers.
func UpdateStrategiesWithDraws(strategies []strategy.Strategy, scores []int64,
	net *network.Network, draws []float64, numWorkers int) int {
	mustMatchNetwork(strategies, scores, net)
	if len(draws) != len(strategies) {
		panic(errors.Errorf("%d draws for %d vertices", len(draws), len(strategies)))
	}

	next := allocStrategySlice(len(strategies))
	defer freeStrategySlice(next)

	var nChanged int64
	parallelFor(len(strategies), numWorkers, func(start, end int) {
		changed := 0
		for v := start; v < end; v++ {
			local := LocalScore(strategies, scores, net, v)
			next[v] = boltzmann.Select(draws[v], local)
			if next[v] != strategies[v] {
				changed++
			}
		}

		atomic.AddInt64(&nChanged, int64(changed))
	})

	copy(strategies, next)
	glog.V(3).Infof("Updated %d strategies (%d changed)", len(strategies), nChanged)
	return int(nChanged)
}

// parallelFor calls fn over disjoint ranges covering [0, n), using at most
// numWorkers goroutines. Idle workers claim the next unprocessed range.
func parallelFor(n, numWorkers int, fn func(start, end int)) {
	if numWorkers <= 1 || n <= 1 {
		fn(0, n)
		return
	}

	chunkSize := n / (numWorkers * chunksPerWorker)
	if chunkSize < 1 {
		chunkSize = 1
	}

	var claimed int64
	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				end := int(atomic.AddInt64(&claimed, int64(chunkSize)))
				start := end - chunkSize
				if start >= n {
					return
				}
				if end > n {
					end = n
				}

				fn(start, end)
			}
		}()
	}

	wg.Wait()
}
