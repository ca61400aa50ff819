package rpsnet

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/rpsnet/network"
	"github.com/timpalpant/rpsnet/strategy"
)

// PlayTournament plays one game along every edge of the network, in edge
// list order, and adds each agent's payoff to its running score.
// Scores are never reset.
//
// The pass runs on a single goroutine: edges sharing a vertex would
// otherwise race on that vertex's score.
func PlayTournament(strategies []strategy.Strategy, scores []int64, net *network.Network) {
	mustMatchNetwork(strategies, scores, net)
	for _, e := range net.Edges() {
		payoffI, payoffJ := strategy.Play(strategies[e.I], strategies[e.J])
		scores[e.I] += payoffI
		scores[e.J] += payoffJ
	}
}

func mustMatchNetwork(strategies []strategy.Strategy, scores []int64, net *network.Network) {
	n := net.NumVertices()
	if len(strategies) != n || len(scores) != n {
		panic(errors.Errorf("%d strategies and %d scores do not match network with %d vertices",
			len(strategies), len(scores), n))
	}
}
