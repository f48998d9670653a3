package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/espocity/league/internal/infrastructure/repository/memory"
)

func newStageServiceFixture(t *testing.T) (*StageService, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	store.Seed()
	service := NewStageService(
		memory.NewStageRepository(store),
		memory.NewMatchRepository(store),
		&seqIDGenerator{prefix: "stage"},
	)
	return service, store
}

func TestStageService_CreateAndUpdate(t *testing.T) {
	service, _ := newStageServiceFixture(t)

	created, err := service.Create(t.Context(), adminPrincipal(), "Round of 16", time.Date(2026, 6, 28, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("create stage: %v", err)
	}

	newDate := time.Date(2026, 6, 29, 0, 0, 0, 0, time.UTC)
	updated, err := service.Update(t.Context(), adminPrincipal(), created.ID, "Knockout Round", &newDate)
	if err != nil {
		t.Fatalf("update stage: %v", err)
	}
	if updated.Name != "Knockout Round" || !updated.Date.Equal(newDate) {
		t.Fatalf("unexpected updated stage: %+v", updated)
	}
}

func TestStageService_CreateGuards(t *testing.T) {
	service, _ := newStageServiceFixture(t)

	if _, err := service.Create(t.Context(), memberPrincipal("u1"), "Round", time.Now()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := service.Create(t.Context(), adminPrincipal(), "  ", time.Now()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := service.Create(t.Context(), adminPrincipal(), "Round", time.Time{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero date, got %v", err)
	}
}

func TestStageService_DeleteBlockedByMatches(t *testing.T) {
	service, _ := newStageServiceFixture(t)

	// Seeded stages carry matches and must refuse deletion.
	err := service.Delete(t.Context(), adminPrincipal(), memory.StageIDGroupRound1)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for stage with matches, got %v", err)
	}

	empty, err := service.Create(t.Context(), adminPrincipal(), "Final", time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("create stage: %v", err)
	}
	if err := service.Delete(t.Context(), adminPrincipal(), empty.ID); err != nil {
		t.Fatalf("delete empty stage: %v", err)
	}
	if _, err := service.Get(t.Context(), empty.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStageService_ListMatches(t *testing.T) {
	service, _ := newStageServiceFixture(t)

	matches, err := service.ListMatches(t.Context(), memory.StageIDGroupRound1)
	if err != nil {
		t.Fatalf("list stage matches: %v", err)
	}
	if len(matches) != 4 {
		t.Fatalf("expected 4 round 1 matches, got %d", len(matches))
	}

	if _, err := service.ListMatches(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown stage, got %v", err)
	}
}
