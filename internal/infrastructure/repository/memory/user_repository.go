package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/espocity/league/internal/domain/user"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return user.User{}, user.ErrDuplicate
		}
		if u.Phone != "" && existing.Phone == u.Phone {
			return user.User{}, user.ErrDuplicate
		}
	}

	r.store.users[u.ID] = u
	return u, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.users[id]
	return item, ok, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.users {
		if strings.EqualFold(item.Username, username) {
			return item, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]user.User, 0, len(r.store.users))
	for _, item := range r.store.users {
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepository) ListRanked(_ context.Context) ([]user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]user.User, 0, len(r.store.users))
	for _, item := range r.store.users {
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.CorrectResults != b.CorrectResults {
			return a.CorrectResults > b.CorrectResults
		}
		if a.LoneWolfVictories != b.LoneWolfVictories {
			return a.LoneWolfVictories > b.LoneWolfVictories
		}
		if a.Defeats != b.Defeats {
			return a.Defeats < b.Defeats
		}
		return a.ID < b.ID
	})
	return out, nil
}

func (r *UserRepository) UpdateTieBreakStats(_ context.Context, userID string, stats user.TieBreakStats) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.users[userID]
	if !ok {
		return nil
	}
	item.CorrectResults = stats.CorrectResults
	item.LoneWolfVictories = stats.LoneWolfVictories
	item.Defeats = stats.Defeats
	item.UpdatedAt = r.store.now().UTC()
	r.store.users[userID] = item
	return nil
}
