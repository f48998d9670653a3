package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/espocity/league/internal/domain/match"
	"github.com/espocity/league/internal/infrastructure/repository/memory"
	"github.com/espocity/league/internal/platform/cache"
	"github.com/espocity/league/internal/platform/logging"
)

func newMatchServiceFixture(t *testing.T) (*MatchService, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	store.Seed()
	service := NewMatchService(
		memory.NewMatchRepository(store),
		memory.NewTeamRepository(store),
		memory.NewStageRepository(store),
		memory.NewSettlementRepository(store),
		&seqIDGenerator{prefix: "match"},
		cache.NewStore(time.Minute),
		logging.NewNop(),
	)
	return service, store
}

func TestMatchService_Create(t *testing.T) {
	service, _ := newMatchServiceFixture(t)

	created, err := service.Create(t.Context(), adminPrincipal(), match.Match{
		HomeTeamID: "team-spain",
		AwayTeamID: "team-italy",
		StageID:    memory.StageIDGroupRound2,
		KickoffAt:  time.Date(2026, 6, 18, 19, 0, 0, 0, time.UTC),
		Place:      "Leipzig",
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if created.HasResult() {
		t.Fatalf("new match must not carry a result")
	}

	fetched, err := service.Get(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if fetched.Place != "Leipzig" {
		t.Fatalf("unexpected place: %s", fetched.Place)
	}
}

func TestMatchService_CreateGuards(t *testing.T) {
	service, _ := newMatchServiceFixture(t)

	valid := match.Match{
		HomeTeamID: "team-spain",
		AwayTeamID: "team-italy",
		KickoffAt:  time.Date(2026, 6, 18, 19, 0, 0, 0, time.UTC),
	}

	if _, err := service.Create(t.Context(), memberPrincipal("u1"), valid); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}

	sameTeams := valid
	sameTeams.AwayTeamID = sameTeams.HomeTeamID
	if _, err := service.Create(t.Context(), adminPrincipal(), sameTeams); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for identical teams, got %v", err)
	}

	noKickoff := valid
	noKickoff.KickoffAt = time.Time{}
	if _, err := service.Create(t.Context(), adminPrincipal(), noKickoff); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing kickoff, got %v", err)
	}

	unknownTeam := valid
	unknownTeam.AwayTeamID = "team-unknown"
	if _, err := service.Create(t.Context(), adminPrincipal(), unknownTeam); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team, got %v", err)
	}
}

func TestMatchService_ListByDay(t *testing.T) {
	service, _ := newMatchServiceFixture(t)

	matches, err := service.ListByDay(t.Context(), "2026-06-13")
	if err != nil {
		t.Fatalf("list by day: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches on 2026-06-13, got %d", len(matches))
	}
	for _, m := range matches {
		if m.KickoffAt.UTC().Format("2006-01-02") != "2026-06-13" {
			t.Fatalf("match %s outside requested day: %s", m.ID, m.KickoffAt)
		}
	}

	if _, err := service.ListByDay(t.Context(), "13-06-2026"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for malformed date, got %v", err)
	}
}

func TestMatchService_FinalizeAwardsPointsOnce(t *testing.T) {
	service, store := newMatchServiceFixture(t)

	betSvc := NewBetService(
		memory.NewBetRepository(store),
		memory.NewMatchRepository(store),
		&seqIDGenerator{prefix: "bet"},
	)
	betSvc.now = fixedClock(beforeKickoff)
	userRepo := memory.NewUserRepository(store)
	if _, err := userRepo.Create(t.Context(), testUser("u1", "alice")); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := betSvc.Place(t.Context(), memberPrincipal("u1"), "match-ger-sco", 2, 1); err != nil {
		t.Fatalf("place bet: %v", err)
	}

	settled, err := service.Finalize(t.Context(), adminPrincipal(), "match-ger-sco", 2, 1)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !settled.HasResult() || *settled.HomeScore != 2 || *settled.AwayScore != 1 {
		t.Fatalf("unexpected recorded result: %+v", settled)
	}

	u, _, err := userRepo.GetByID(t.Context(), "u1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.Score != 3 {
		t.Fatalf("expected 3 points after exact hit, got %d", u.Score)
	}

	// Re-submitting the identical result must not accrue points again.
	if _, err := service.Finalize(t.Context(), adminPrincipal(), "match-ger-sco", 2, 1); err != nil {
		t.Fatalf("re-finalize: %v", err)
	}
	u, _, _ = userRepo.GetByID(t.Context(), "u1")
	if u.Score != 3 {
		t.Fatalf("expected total to stay 3 after re-finalize, got %d", u.Score)
	}
}

func TestMatchService_FinalizeCorrectionRescores(t *testing.T) {
	service, store := newMatchServiceFixture(t)

	betSvc := NewBetService(
		memory.NewBetRepository(store),
		memory.NewMatchRepository(store),
		&seqIDGenerator{prefix: "bet"},
	)
	betSvc.now = fixedClock(beforeKickoff)
	userRepo := memory.NewUserRepository(store)
	if _, err := userRepo.Create(t.Context(), testUser("u1", "alice")); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := betSvc.Place(t.Context(), memberPrincipal("u1"), "match-ger-sco", 2, 1); err != nil {
		t.Fatalf("place bet: %v", err)
	}

	if _, err := service.Finalize(t.Context(), adminPrincipal(), "match-ger-sco", 2, 1); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	u, _, _ := userRepo.GetByID(t.Context(), "u1")
	if u.Score != 3 {
		t.Fatalf("expected 3 points, got %d", u.Score)
	}

	// Correcting the result to a different outcome replaces the old points
	// instead of stacking on top of them.
	if _, err := service.Finalize(t.Context(), adminPrincipal(), "match-ger-sco", 0, 1); err != nil {
		t.Fatalf("correct result: %v", err)
	}
	u, _, _ = userRepo.GetByID(t.Context(), "u1")
	if u.Score != 0 {
		t.Fatalf("expected 0 points after correction, got %d", u.Score)
	}
}

func TestMatchService_FinalizeGuards(t *testing.T) {
	service, _ := newMatchServiceFixture(t)

	if _, err := service.Finalize(t.Context(), memberPrincipal("u1"), "match-ger-sco", 1, 0); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}
	if _, err := service.Finalize(t.Context(), adminPrincipal(), "match-ger-sco", -1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative score, got %v", err)
	}
	if _, err := service.Finalize(t.Context(), adminPrincipal(), "missing", 1, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown match, got %v", err)
	}
}
