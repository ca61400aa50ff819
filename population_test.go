package rpsnet

import (
	"math/rand"
	"testing"

	"github.com/timpalpant/rpsnet/strategy"
)

func TestNewRandomPopulation(t *testing.T) {
	pop := NewRandomPopulation(300, rand.New(rand.NewSource(1)), 10)
	if pop.Len() != 300 {
		t.Errorf("population has %d agents, expected 300", pop.Len())
	}

	counts := pop.Counts()
	for _, s := range strategy.All {
		if counts.CountOf(s) == 0 {
			t.Errorf("no agents playing %v: %v", s, counts)
		}
	}

	for v := 0; v < pop.Len(); v++ {
		if pop.Score(v) != 10 {
			t.Errorf("agent %d has score %d, expected baseline 10", v, pop.Score(v))
		}
	}

	if pop.TotalScore() != 3000 {
		t.Errorf("total score %d, expected 3000", pop.TotalScore())
	}
}

func TestNewPopulationFromStrategies(t *testing.T) {
	strategies := []strategy.Strategy{strategy.Scissors, strategy.Paper}
	pop, err := NewPopulationFromStrategies(strategies, []int64{3, 4})
	if err != nil {
		t.Fatal(err)
	}

	if pop.Strategy(0) != strategy.Scissors || pop.Score(1) != 4 {
		t.Errorf("unexpected population: %v %v", pop.Strategies(), pop.Scores())
	}

	// Accessors return copies.
	pop.Strategies()[0] = strategy.Rock
	pop.Scores()[0] = 100
	if pop.Strategy(0) != strategy.Scissors || pop.Score(0) != 3 {
		t.Errorf("accessor copies alias population state")
	}

	if _, err := NewPopulationFromStrategies(strategies, []int64{1}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestResetScores(t *testing.T) {
	pop := NewRandomPopulation(5, rand.New(rand.NewSource(1)), 7)
	pop.ResetScores(0)
	if pop.TotalScore() != 0 {
		t.Errorf("scores not reset: %v", pop.Scores())
	}
}
