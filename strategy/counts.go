package strategy

import (
	"fmt"
)

// Counts tallies the number of agents playing each Strategy.
type Counts [NumStrategies]int

// CountOf returns the number of agents playing the given Strategy.
func (c Counts) CountOf(s Strategy) int {
	return c[s.Index()]
}

// Add tallies one more agent playing s.
func (c *Counts) Add(s Strategy) {
	c[s.Index()]++
}

// Len returns the total number of agents tallied.
func (c Counts) Len() int {
	n := 0
	for _, count := range c {
		n += count
	}
	return n
}

// Shares returns the fraction of agents playing each Strategy.
// All shares are zero if nothing has been tallied.
func (c Counts) Shares() [NumStrategies]float64 {
	var result [NumStrategies]float64
	total := c.Len()
	if total == 0 {
		return result
	}

	for i, count := range c {
		result[i] = float64(count) / float64(total)
	}
	return result
}

// CountStrategies tallies the given assignment.
func CountStrategies(strategies []Strategy) Counts {
	var c Counts
	for _, s := range strategies {
		c.Add(s)
	}
	return c
}

// String implements Stringer.
func (c Counts) String() string {
	return fmt.Sprintf("{%d %v, %d %v, %d %v}",
		c[0], Rock, c[1], Paper, c[2], Scissors)
}
