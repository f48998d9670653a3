package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/espocity/league/internal/domain/stage"
)

type StageRepository struct {
	store *Store
}

func NewStageRepository(store *Store) *StageRepository {
	return &StageRepository{store: store}
}

func (r *StageRepository) Create(_ context.Context, s stage.Stage) (stage.Stage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.stages[s.ID] = s
	return s, nil
}

func (r *StageRepository) GetByID(_ context.Context, id string) (stage.Stage, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.stages[id]
	return item, ok, nil
}

func (r *StageRepository) GetByName(_ context.Context, name string) (stage.Stage, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.stages {
		if strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}
	return stage.Stage{}, false, nil
}

func (r *StageRepository) List(_ context.Context) ([]stage.Stage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]stage.Stage, 0, len(r.store.stages))
	for _, item := range r.store.stages {
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *StageRepository) Update(_ context.Context, s stage.Stage) (stage.Stage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.stages[s.ID] = s
	return s, nil
}

func (r *StageRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.stages, id)
	return nil
}
