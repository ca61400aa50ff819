package rpsnet

import (
	"github.com/timpalpant/rpsnet/network"
	"github.com/timpalpant/rpsnet/strategy"
)

// LocalScores is the view each vertex has of how well each Strategy is doing:
// LocalScores[v][s] is the total score of v and its neighbors that currently play s.
type LocalScores [][strategy.NumStrategies]int64

// ComputeLocalScores builds the LocalScores of every vertex with a single
// pass over the edge list, crediting both endpoints of each edge.
func ComputeLocalScores(strategies []strategy.Strategy, scores []int64, net *network.Network) LocalScores {
	mustMatchNetwork(strategies, scores, net)
	result := make(LocalScores, net.NumVertices())
	for _, e := range net.Edges() {
		result[e.J][strategies[e.I].Index()] += scores[e.I]
		result[e.I][strategies[e.J].Index()] += scores[e.J]
	}

	for v, s := range strategies {
		result[v][s.Index()] += scores[v]
	}

	return result
}

// LocalScore computes the local score vector of a single vertex from its
// neighbor list. It agrees with ComputeLocalScores(...)[v] and only reads
// its inputs, so it may be called for many vertices concurrently.
func LocalScore(strategies []strategy.Strategy, scores []int64, net *network.Network, v int) [strategy.NumStrategies]int64 {
	var result [strategy.NumStrategies]int64
	for _, u := range net.Neighbors(v) {
		result[strategies[u].Index()] += scores[u]
	}

	result[strategies[v].Index()] += scores[v]
	return result
}
