package bet

import "time"

// Bet is one user's predicted final score for one match. PointsAwarded is
// written by the settlement workflow; it defaults to zero until the match
// result is recorded.
type Bet struct {
	ID            string
	UserID        string
	MatchID       string
	PredictedHome int
	PredictedAway int
	PointsAwarded int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ScoredBet pairs a bet with the final score of its match. Only bets whose
// match has a recorded result appear as ScoredBet values.
type ScoredBet struct {
	Bet
	ActualHome int
	ActualAway int
}
