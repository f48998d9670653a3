package memory

import (
	"context"
	"sort"
	"time"

	"github.com/espocity/league/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.matches[m.ID] = m
	return m, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.matches[id]
	return item, ok, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.sortedMatches(func(match.Match) bool { return true }), nil
}

func (r *MatchRepository) ListByDay(_ context.Context, day time.Time) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	start := day.UTC()
	end := start.Add(24 * time.Hour)
	return r.sortedMatches(func(m match.Match) bool {
		kickoff := m.KickoffAt.UTC()
		return !kickoff.Before(start) && kickoff.Before(end)
	}), nil
}

func (r *MatchRepository) ListByStage(_ context.Context, stageID string) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.sortedMatches(func(m match.Match) bool { return m.StageID == stageID }), nil
}

func (r *MatchRepository) UpsertScheduled(_ context.Context, m match.Match) (match.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, existing := range r.store.matches {
		if existing.HomeTeamID == m.HomeTeamID &&
			existing.AwayTeamID == m.AwayTeamID &&
			existing.KickoffAt.Equal(m.KickoffAt) {
			existing.StageID = m.StageID
			if m.Place != "" {
				existing.Place = m.Place
			}
			existing.UpdatedAt = r.store.now().UTC()
			r.store.matches[id] = existing
			return existing, nil
		}
	}

	r.store.matches[m.ID] = m
	return m, nil
}

// sortedMatches must be called with the store lock held.
func (r *MatchRepository) sortedMatches(keep func(match.Match) bool) []match.Match {
	out := make([]match.Match, 0, len(r.store.matches))
	for _, item := range r.store.matches {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
