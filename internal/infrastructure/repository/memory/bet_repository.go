package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/espocity/league/internal/domain/bet"
)

type BetRepository struct {
	store *Store
}

func NewBetRepository(store *Store) *BetRepository {
	return &BetRepository{store: store}
}

func (r *BetRepository) Create(_ context.Context, b bet.Bet) (bet.Bet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.bets {
		if existing.UserID == b.UserID && existing.MatchID == b.MatchID {
			return bet.Bet{}, bet.ErrDuplicate
		}
	}

	r.store.bets[b.ID] = b
	return b, nil
}

func (r *BetRepository) GetByID(_ context.Context, id string) (bet.Bet, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.bets[id]
	return item, ok, nil
}

func (r *BetRepository) GetByUserAndMatch(_ context.Context, userID, matchID string) (bet.Bet, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.bets {
		if item.UserID == userID && item.MatchID == matchID {
			return item, true, nil
		}
	}
	return bet.Bet{}, false, nil
}

func (r *BetRepository) ListByUser(_ context.Context, userID string) ([]bet.Bet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.sortedBets(func(b bet.Bet) bool { return b.UserID == userID }), nil
}

func (r *BetRepository) ListByMatch(_ context.Context, matchID string) ([]bet.Bet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.sortedBets(func(b bet.Bet) bool { return b.MatchID == matchID }), nil
}

func (r *BetRepository) UpdatePrediction(_ context.Context, id string, predictedHome, predictedAway int, updatedAt time.Time) (bet.Bet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.bets[id]
	if !ok {
		return bet.Bet{}, fmt.Errorf("bet %s not found", id)
	}
	item.PredictedHome = predictedHome
	item.PredictedAway = predictedAway
	item.UpdatedAt = updatedAt
	r.store.bets[id] = item
	return item, nil
}

func (r *BetRepository) ListScoredByUser(_ context.Context, userID string) ([]bet.ScoredBet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]bet.ScoredBet, 0)
	for _, item := range r.store.bets {
		if item.UserID != userID {
			continue
		}
		m, ok := r.store.matches[item.MatchID]
		if !ok || !m.HasResult() {
			continue
		}
		out = append(out, bet.ScoredBet{
			Bet:        item,
			ActualHome: *m.HomeScore,
			ActualAway: *m.AwayScore,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *BetRepository) CountExactPredictions(_ context.Context, matchID string, home, away int) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, item := range r.store.bets {
		if item.MatchID == matchID && item.PredictedHome == home && item.PredictedAway == away {
			count++
		}
	}
	return count, nil
}

// sortedBets must be called with the store lock held.
func (r *BetRepository) sortedBets(keep func(bet.Bet) bool) []bet.Bet {
	out := make([]bet.Bet, 0)
	for _, item := range r.store.bets {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
