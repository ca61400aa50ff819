package rpsnet

import (
	"sync"

	"github.com/timpalpant/rpsnet/strategy"
)

var (
	strategySlicePool = sync.Pool{
		New: func() interface{} {
			return make([]strategy.Strategy, 0)
		},
	}

	floatSlicePool = sync.Pool{
		New: func() interface{} {
			return make([]float64, 0)
		},
	}
)

// allocStrategySlice returns a slice of length n with unspecified contents.
func allocStrategySlice(n int) []strategy.Strategy {
	s := strategySlicePool.Get().([]strategy.Strategy)
	if cap(s) < n {
		return make([]strategy.Strategy, n)
	}
	return s[:n]
}

func freeStrategySlice(s []strategy.Strategy) {
	if cap(s) > 0 {
		strategySlicePool.Put(s[:0])
	}
}

// allocFloatSlice returns a slice of length n with unspecified contents.
func allocFloatSlice(n int) []float64 {
	s := floatSlicePool.Get().([]float64)
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}

func freeFloatSlice(s []float64) {
	if cap(s) > 0 {
		floatSlicePool.Put(s[:0])
	}
}
