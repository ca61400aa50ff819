package rpsnet

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/timpalpant/rpsnet/strategy"
)

// Population owns the strategy and score of every agent.
type Population struct {
	strategies []strategy.Strategy
	scores     []int64
}

// NewPopulation creates n agents all playing Rock with a score of zero.
func NewPopulation(n int) *Population {
	return &Population{
		strategies: make([]strategy.Strategy, n),
		scores:     make([]int64, n),
	}
}

// NewRandomPopulation creates n agents with uniformly random strategies,
// each starting with the given baseline score.
func NewRandomPopulation(n int, rng *rand.Rand, baseline int64) *Population {
	p := NewPopulation(n)
	for i := range p.strategies {
		p.strategies[i] = strategy.Random(rng)
	}
	p.ResetScores(baseline)
	return p
}

// NewPopulationFromStrategies creates agents playing the given strategies
// with the given scores.
func NewPopulationFromStrategies(strategies []strategy.Strategy, scores []int64) (*Population, error) {
	if len(strategies) != len(scores) {
		return nil, errors.Errorf("%d strategies but %d scores", len(strategies), len(scores))
	}

	p := NewPopulation(len(strategies))
	copy(p.strategies, strategies)
	copy(p.scores, scores)
	return p, nil
}

// Len returns the number of agents.
func (p *Population) Len() int {
	return len(p.strategies)
}

// Strategy returns the current strategy of agent v.
func (p *Population) Strategy(v int) strategy.Strategy {
	return p.strategies[v]
}

// Score returns the accumulated score of agent v.
func (p *Population) Score(v int) int64 {
	return p.scores[v]
}

// Strategies returns a copy of every agent's current strategy.
func (p *Population) Strategies() []strategy.Strategy {
	return append([]strategy.Strategy(nil), p.strategies...)
}

// Scores returns a copy of every agent's accumulated score.
func (p *Population) Scores() []int64 {
	return append([]int64(nil), p.scores...)
}

// Counts tallies the number of agents playing each strategy.
func (p *Population) Counts() strategy.Counts {
	return strategy.CountStrategies(p.strategies)
}

// TotalScore sums the scores of all agents.
func (p *Population) TotalScore() int64 {
	var total int64
	for _, s := range p.scores {
		total += s
	}
	return total
}

// ResetScores sets every agent's score to baseline.
func (p *Population) ResetScores(baseline int64) {
	for i := range p.scores {
		p.scores[i] = baseline
	}
}
