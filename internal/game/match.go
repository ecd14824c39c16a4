package game

import (
	"context"

	"github.com/MikailBag/simple-game/internal/logs"
)

// Player is one participant in a match. Implementations are expected to be
// fail-soft: a broken player keeps satisfying the interface and reports
// ErrPick from Pick instead of blocking the match.
type Player interface {
	Name() string

	// Ready blocks until the player has announced readiness or failed.
	Ready(ctx context.Context)

	// Pick asks the player for this round's number. Failed players return
	// ErrPick.
	Pick(ctx context.Context) uint32

	// Reveal shares every player's pick for the finished round.
	Reveal(ctx context.Context, picks []uint32)

	// End tells the player the match is over.
	End(ctx context.Context)
}

// ErrPick is the pick reported on behalf of a failed player. It still takes
// part in round resolution: two failed players produce a duplicate and both
// lose, same as any other collision.
const ErrPick = ^uint32(0)

// Result holds per-player points, index-aligned with the players slice.
type Result struct {
	Points []int
}

// Play runs a full match: waits for readiness, plays the configured number
// of rounds, and closes every player down. It always returns a result, even
// when every player failed.
func Play(ctx context.Context, players []Player, rounds uint32) Result {
	logs.Debugf("waiting for %d players to become ready", len(players))
	for _, p := range players {
		p.Ready(ctx)
	}

	points := make([]int, len(players))
	for round := uint32(0); round < rounds; round++ {
		logs.Infof("round #%d", round)

		picks := make([]uint32, len(players))
		for i, p := range players {
			picks[i] = p.Pick(ctx)
		}
		for _, p := range players {
			p.Reveal(ctx, picks)
		}

		outcome := ResolveRound(picks)
		if len(outcome.Winners) > 0 {
			winner := outcome.Winners[0]
			logs.Infof("round #%d winner: %s", round, players[winner].Name())
			points[winner]++
		} else {
			logs.Infof("round #%d has no winner", round)
		}
	}

	for _, p := range players {
		p.End(ctx)
	}

	return Result{Points: points}
}
