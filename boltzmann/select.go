package boltzmann

import (
	"github.com/timpalpant/rpsnet/strategy"
)

// Select chooses a Strategy with probability proportional to
// Exp(localScores[s]), using a single uniform draw in [0, 1).
//
// The draw is scaled by the total weight rather than normalizing the
// weights. Slots are visited in ordinal order and the first slot whose
// cumulative weight exceeds the threshold wins.
func Select(draw float64, localScores [strategy.NumStrategies]int64) strategy.Strategy {
	pRock := Exp(localScores[0])
	pPaper := Exp(localScores[1])
	pScissors := Exp(localScores[2])
	threshold := draw * (pRock + pPaper + pScissors)

	cumulative := pRock
	if threshold < cumulative {
		return strategy.Rock
	}

	cumulative += pPaper
	if threshold < cumulative {
		return strategy.Paper
	}

	return strategy.Scissors
}

// Probabilities returns the selection probability of each Strategy.
func Probabilities(localScores [strategy.NumStrategies]int64) [strategy.NumStrategies]float64 {
	var result [strategy.NumStrategies]float64
	total := 0.0
	for i, score := range localScores {
		result[i] = Exp(score)
		total += result[i]
	}

	for i := range result {
		result[i] /= total
	}
	return result
}
