package scoring

import (
	"context"
	"errors"

	"github.com/espocity/league/internal/domain/match"
)

// ErrMatchNotFound signals a settlement request for an unknown match.
var ErrMatchNotFound = errors.New("match not found")

// Settlement describes one completed settlement pass over a match.
type Settlement struct {
	Match match.Match
	// FirstTime is true when the match had no recorded result before this
	// settlement.
	FirstTime bool
	// Rescored is true when bets were (re)scored: on the first settlement,
	// or when an already-recorded result was corrected to different values.
	Rescored bool
	// PointsByUser holds, per user with a bet on the match, the points their
	// bet was awarded in this pass. Empty when Rescored is false.
	PointsByUser map[string]int
}

// SettlementRepository applies a final result to a match atomically: it
// records the score, awards points to every bet on the match, and re-derives
// each affected user's total score, all inside one store transaction with the
// match row locked. Submitting the same result again is a no-op for bets and
// totals; submitting a corrected result re-scores and re-derives.
type SettlementRepository interface {
	SettleMatch(ctx context.Context, matchID string, homeScore, awayScore int) (Settlement, error)
}
