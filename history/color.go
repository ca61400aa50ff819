package history

import (
	"github.com/timpalpant/rpsnet/strategy"
)

// Color blends a tally of strategies into a 0x00RRGGBB pixel, with Rock
// in the red channel, Paper in green and Scissors in blue. Each channel
// is proportional to the share of that strategy. An empty tally is black.
func Color(c strategy.Counts) uint32 {
	total := c.Len()
	if total == 0 {
		return 0
	}

	channel := func(s strategy.Strategy) uint32 {
		return uint32(c.CountOf(s) * 255 / total)
	}

	return channel(strategy.Rock)<<16 | channel(strategy.Paper)<<8 | channel(strategy.Scissors)
}

// StrategyColor is the color of a single strategy.
func StrategyColor(s strategy.Strategy) uint32 {
	var c strategy.Counts
	c.Add(s)
	return Color(c)
}
