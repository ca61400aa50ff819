// Package boltzmann implements Boltzmann (softmax) selection of a Strategy
// from a vector of locally accrued scores.
package boltzmann

import (
	"math"
	"sync"

	"github.com/golang/glog"
)

// Beta is the inverse temperature of the selection rule.
const Beta = 1.0

// Range of exponents whose values are cached.
const (
	TableMin = -1000
	TableMax = 1000
)

var (
	tableOnce sync.Once
	table     []float64
)

func buildTable() {
	table = make([]float64, TableMax-TableMin+1)
	nOverflow := 0
	for i := range table {
		table[i] = ExpDirect(int64(i + TableMin))
		if math.IsInf(table[i], 1) {
			nOverflow++
		}
	}

	glog.V(2).Infof("Built exponential table for [%d, %d] (beta = %v, %d entries overflow)",
		TableMin, TableMax, Beta, nOverflow)
}

// Exp returns e^(Beta * n). Values in [TableMin, TableMax] are served from a
// table built once per process, everything else is computed directly.
// The result is +Inf when the exponential overflows.
func Exp(n int64) float64 {
	if n >= TableMin && n <= TableMax {
		tableOnce.Do(buildTable)
		return table[n-TableMin]
	}

	return ExpDirect(n)
}

// ExpDirect computes e^(Beta * n) without consulting the table.
func ExpDirect(n int64) float64 {
	return math.Exp(Beta * float64(n))
}
