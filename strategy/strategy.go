package strategy

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Strategy is the pure strategy an agent plays in Rock-Paper-Scissors.
// The ordinal of each Strategy indexes payoff matrices and local score vectors.
type Strategy uint8

const (
	Rock Strategy = iota
	Paper
	Scissors
)

var strategyStr = [...]string{
	"Rock",
	"Paper",
	"Scissors",
}

// All lists the strategies in ordinal order.
var All = [...]Strategy{Rock, Paper, Scissors}

// The number of distinct Strategies.
const NumStrategies = len(strategyStr)

// ErrInvalidIndex is returned when converting an out of range ordinal.
var ErrInvalidIndex = errors.New("invalid strategy index")

// String implements Stringer.
func (s Strategy) String() string {
	if int(s) >= NumStrategies {
		return "Invalid"
	}

	return strategyStr[s]
}

// Index returns the ordinal of the Strategy.
func (s Strategy) Index() int {
	switch s {
	case Rock:
		return 0
	case Paper:
		return 1
	case Scissors:
		return 2
	}

	panic(errors.Errorf("invalid strategy: %d", uint8(s)))
}

// FromIndex returns the Strategy with the given ordinal.
func FromIndex(i int) (Strategy, error) {
	switch i {
	case 0:
		return Rock, nil
	case 1:
		return Paper, nil
	case 2:
		return Scissors, nil
	}

	return Rock, errors.Wrapf(ErrInvalidIndex, "%d", i)
}

// Beats returns whether s wins against other.
func (s Strategy) Beats(other Strategy) bool {
	return (s.Index()+NumStrategies-other.Index())%NumStrategies == 1
}

// Random selects a Strategy uniformly at random.
func Random(rng *rand.Rand) Strategy {
	s, _ := FromIndex(rng.Intn(NumStrategies))
	return s
}
