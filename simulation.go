// Package rpsnet simulates evolutionary Rock-Paper-Scissors between agents
// on the vertices of a graph. Each generation every edge plays a game, then
// every agent resamples its strategy in proportion to the exponential of
// how well each strategy has scored in its neighborhood.
package rpsnet

import (
	"expvar"
	"math/rand"

	"github.com/golang/glog"

	"github.com/timpalpant/rpsnet/network"
	"github.com/timpalpant/rpsnet/strategy"
)

var (
	generationsRun  = expvar.NewInt("simulation/generations")
	gamesPlayed     = expvar.NewInt("simulation/games_played")
	strategyChanges = expvar.NewInt("simulation/strategy_changes")
	strategyShares  = expvar.NewMap("simulation/strategy_share")
)

// Params configures a Simulation.
type Params struct {
	// Seed for the initial strategies and for every update pass.
	Seed int64
	// Number of parallel workers in the update pass; <= 0 uses all CPUs.
	NumWorkers int
	// Score every agent starts with.
	ScoreBaseline int64
}

// Simulation couples a Network with the Population living on it.
type Simulation struct {
	net        *network.Network
	pop        *Population
	updater    *Updater
	generation int
}

// NewSimulation seeds a random Population on the given Network.
func NewSimulation(net *network.Network, params Params) *Simulation {
	rng := rand.New(rand.NewSource(params.Seed))
	pop := NewRandomPopulation(net.NumVertices(), rng, params.ScoreBaseline)
	glog.V(1).Infof("Initialized %d agents on %v: %v", pop.Len(), net, pop.Counts())
	return &Simulation{
		net:     net,
		pop:     pop,
		updater: NewUpdater(rng, params.NumWorkers),
	}
}

// Step runs one generation: a tournament followed by a strategy update.
// Returns the number of agents that changed strategy.
func (s *Simulation) Step() int {
	PlayTournament(s.pop.strategies, s.pop.scores, s.net)
	nChanged := s.updater.UpdateStrategies(s.pop.strategies, s.pop.scores, s.net)
	s.generation++

	generationsRun.Add(1)
	gamesPlayed.Add(int64(s.net.NumEdges()))
	strategyChanges.Add(int64(nChanged))
	shares := s.pop.Counts().Shares()
	for i, st := range strategy.All {
		v := new(expvar.Float)
		v.Set(shares[i])
		strategyShares.Set(st.String(), v)
	}

	return nChanged
}

// Generation returns the number of generations run so far.
func (s *Simulation) Generation() int {
	return s.generation
}

// Population returns the agents being simulated.
func (s *Simulation) Population() *Population {
	return s.pop
}

// Network returns the graph the agents play on.
func (s *Simulation) Network() *network.Network {
	return s.net
}
