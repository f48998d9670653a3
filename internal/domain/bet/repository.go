package bet

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicate signals that a bet already exists for the (user, match) pair.
// The store-level unique index is the authority; concurrent submissions that
// pass the admission lookup still surface this error.
var ErrDuplicate = errors.New("bet already exists for this user and match")

// Repository exposes bet persistence operations.
type Repository interface {
	Create(ctx context.Context, b Bet) (Bet, error)
	GetByID(ctx context.Context, id string) (Bet, bool, error)
	GetByUserAndMatch(ctx context.Context, userID, matchID string) (Bet, bool, error)
	ListByUser(ctx context.Context, userID string) ([]Bet, error)
	ListByMatch(ctx context.Context, matchID string) ([]Bet, error)
	// UpdatePrediction overwrites only the predicted scores of an existing bet.
	UpdatePrediction(ctx context.Context, id string, predictedHome, predictedAway int, updatedAt time.Time) (Bet, error)
	// ListScoredByUser returns the user's bets on matches that have a
	// recorded result, together with those results.
	ListScoredByUser(ctx context.Context, userID string) ([]ScoredBet, error)
	// CountExactPredictions counts bets on the match predicting exactly
	// home-away. Used for lone wolf detection.
	CountExactPredictions(ctx context.Context, matchID string, home, away int) (int, error)
}
