package strategy

// PayoffMatrix holds the payoff to the row player: m[a][b] is the gain
// of an agent playing a against an agent playing b.
type PayoffMatrix [NumStrategies][NumStrategies]int64

// Payoffs for each outcome of a single game.
const (
	WinPayoff  = 2
	TiePayoff  = 1
	LossPayoff = 0
)

// Standard is the payoff matrix used by the simulation.
var Standard = newPayoffMatrix(WinPayoff, TiePayoff, LossPayoff)

func newPayoffMatrix(win, tie, loss int64) PayoffMatrix {
	var m PayoffMatrix
	for _, a := range All {
		for _, b := range All {
			switch {
			case a == b:
				m[a.Index()][b.Index()] = tie
			case a.Beats(b):
				m[a.Index()][b.Index()] = win
			default:
				m[a.Index()][b.Index()] = loss
			}
		}
	}

	return m
}

// Play returns the payoffs to each agent when a plays against b.
// The two payoffs are looked up independently, the game is not zero-sum.
func (m *PayoffMatrix) Play(a, b Strategy) (int64, int64) {
	return m[a.Index()][b.Index()], m[b.Index()][a.Index()]
}

// Play evaluates a single game with the Standard payoff matrix.
func Play(a, b Strategy) (int64, int64) {
	return Standard.Play(a, b)
}
