// Package game implements the rules of the guessing game: every round each
// bot picks a number, duplicated picks are disqualified, and the smallest
// remaining pick wins.
package game

import "sort"

// RoundOutcome lists the player positions that survived the round, ordered
// by their pick ascending. Winners[0] is the round winner. Empty when every
// pick was duplicated.
type RoundOutcome struct {
	Winners []int
}

// ResolveRound applies the rules to one round of picks. The slice index is
// the player position; picks appearing more than once disqualify everyone
// who chose them.
func ResolveRound(picks []uint32) RoundOutcome {
	seen := map[uint32]int{}
	for _, p := range picks {
		seen[p]++
	}

	var winners []int
	for pos, p := range picks {
		if seen[p] == 1 {
			winners = append(winners, pos)
		}
	}
	sort.Slice(winners, func(i, j int) bool {
		return picks[winners[i]] < picks[winners[j]]
	})

	return RoundOutcome{Winners: winners}
}
