package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/espocity/league/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) (team.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.teams {
		if strings.EqualFold(existing.Name, t.Name) {
			return team.Team{}, team.ErrDuplicateName
		}
	}

	r.store.teams[t.ID] = t
	return t, nil
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[id]
	return item, ok, nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.teams {
		if strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.Team, 0, len(r.store.teams))
	for _, item := range r.store.teams {
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *TeamRepository) Upsert(_ context.Context, t team.Team) (team.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, existing := range r.store.teams {
		if strings.EqualFold(existing.Name, t.Name) {
			if t.LogoURL != "" {
				existing.LogoURL = t.LogoURL
			}
			if t.StadiumName != "" {
				existing.StadiumName = t.StadiumName
			}
			existing.UpdatedAt = r.store.now().UTC()
			r.store.teams[id] = existing
			return existing, nil
		}
	}

	r.store.teams[t.ID] = t
	return t, nil
}
