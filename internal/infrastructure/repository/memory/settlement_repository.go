package memory

import (
	"context"

	"github.com/espocity/league/internal/domain/scoring"
)

// SettlementRepository applies final results against the shared store. The
// store mutex stands in for the transaction: matches, bets and user totals
// change as one step.
type SettlementRepository struct {
	store *Store
}

func NewSettlementRepository(store *Store) *SettlementRepository {
	return &SettlementRepository{store: store}
}

func (r *SettlementRepository) SettleMatch(_ context.Context, matchID string, homeScore, awayScore int) (scoring.Settlement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.matches[matchID]
	if !ok {
		return scoring.Settlement{}, scoring.ErrMatchNotFound
	}

	firstTime := !m.HasResult()
	changed := firstTime || *m.HomeScore != homeScore || *m.AwayScore != awayScore
	if !changed {
		return scoring.Settlement{Match: m, FirstTime: false, Rescored: false}, nil
	}

	now := r.store.now().UTC()
	m.HomeScore = &homeScore
	m.AwayScore = &awayScore
	m.UpdatedAt = now
	r.store.matches[matchID] = m

	pointsByUser := make(map[string]int)
	for id, b := range r.store.bets {
		if b.MatchID != matchID {
			continue
		}
		b.PointsAwarded = scoring.Points(b.PredictedHome, b.PredictedAway, homeScore, awayScore)
		b.UpdatedAt = now
		r.store.bets[id] = b
		pointsByUser[b.UserID] = b.PointsAwarded
	}

	// Totals are re-derived from scratch so a corrected result cannot leave
	// stale points behind.
	for userID := range pointsByUser {
		u, ok := r.store.users[userID]
		if !ok {
			continue
		}
		total := 0
		for _, b := range r.store.bets {
			if b.UserID == userID {
				total += b.PointsAwarded
			}
		}
		u.Score = total
		u.UpdatedAt = now
		r.store.users[userID] = u
	}

	return scoring.Settlement{
		Match:        m,
		FirstTime:    firstTime,
		Rescored:     true,
		PointsByUser: pointsByUser,
	}, nil
}
