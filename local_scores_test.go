package rpsnet

import (
	"math/rand"
	"testing"

	"github.com/timpalpant/rpsnet/network"
	"github.com/timpalpant/rpsnet/strategy"
)

func TestComputeLocalScores_Triangle(t *testing.T) {
	net := mustNetwork(t, 3,
		network.Edge{I: 0, J: 1}, network.Edge{I: 1, J: 2}, network.Edge{I: 2, J: 0})
	strategies := []strategy.Strategy{strategy.Rock, strategy.Paper, strategy.Scissors}
	scores := []int64{10, 20, 30}

	result := ComputeLocalScores(strategies, scores, net)
	expected := [strategy.NumStrategies]int64{10, 20, 30}
	for v := range result {
		if result[v] != expected {
			t.Errorf("vertex %d has local scores %v, expected %v", v, result[v], expected)
		}
	}

	if scores[0] != 10 || scores[1] != 20 || scores[2] != 30 {
		t.Errorf("local scores modified inputs: %v", scores)
	}
}

func TestComputeLocalScores_Isolated(t *testing.T) {
	net := mustNetwork(t, 2)
	strategies := []strategy.Strategy{strategy.Paper, strategy.Scissors}
	scores := []int64{5, 7}
	result := ComputeLocalScores(strategies, scores, net)
	if result[0] != [strategy.NumStrategies]int64{0, 5, 0} {
		t.Errorf("isolated vertex 0 has local scores %v", result[0])
	}
	if result[1] != [strategy.NumStrategies]int64{0, 0, 7} {
		t.Errorf("isolated vertex 1 has local scores %v", result[1])
	}
}

func TestLocalScore_MatchesEdgePass(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	net, err := network.NewEmpty(20, 60)
	if err != nil {
		t.Fatal(err)
	}

	// Includes duplicates and self-loops.
	for i := 0; i < 60; i++ {
		if err := net.AddEdge(rng.Intn(20), rng.Intn(20)); err != nil {
			t.Fatal(err)
		}
	}

	pop := NewRandomPopulation(20, rng, 0)
	for i := range pop.scores {
		pop.scores[i] = int64(rng.Intn(100)) - 50
	}

	all := ComputeLocalScores(pop.strategies, pop.scores, net)
	for v := 0; v < net.NumVertices(); v++ {
		if local := LocalScore(pop.strategies, pop.scores, net, v); local != all[v] {
			t.Errorf("vertex %d: LocalScore = %v, ComputeLocalScores = %v", v, local, all[v])
		}
	}
}
