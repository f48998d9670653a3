package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/espocity/league/external/fixturefeed"
	"github.com/espocity/league/internal/infrastructure/repository/memory"
	"github.com/espocity/league/internal/platform/logging"
)

type staticFixtureSource struct {
	fixtures []fixturefeed.Fixture
	err      error
}

func (s *staticFixtureSource) Fixtures(context.Context) ([]fixturefeed.Fixture, error) {
	return s.fixtures, s.err
}

func newIngestionFixture(feed FixtureSource) (*IngestionService, *memory.Store) {
	store := memory.NewStore()
	service := NewIngestionService(
		feed,
		memory.NewTeamRepository(store),
		memory.NewStageRepository(store),
		memory.NewMatchRepository(store),
		&seqIDGenerator{prefix: "imp"},
		logging.NewNop(),
	)
	return service, store
}

func TestIngestionService_Import(t *testing.T) {
	kickoff := time.Date(2026, 6, 20, 19, 0, 0, 0, time.UTC)
	feed := &staticFixtureSource{fixtures: []fixturefeed.Fixture{
		{HomeTeam: "France", AwayTeam: "Poland", Stage: "Group Stage Round 3", KickoffAt: kickoff, Place: "Hamburg"},
		{HomeTeam: "Austria", AwayTeam: "France", Stage: "Group Stage Round 3", KickoffAt: kickoff.Add(3 * time.Hour), Place: "Frankfurt"},
	}}
	service, store := newIngestionFixture(feed)

	report, err := service.Import(t.Context(), adminPrincipal())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Fixtures != 2 || report.TeamsUpserted != 3 || report.StagesCreated != 1 || report.MatchesUpserted != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}

	teams, err := memory.NewTeamRepository(store).List(t.Context())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 3 {
		t.Fatalf("expected 3 imported teams, got %d", len(teams))
	}

	matches, err := memory.NewMatchRepository(store).List(t.Context())
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 imported matches, got %d", len(matches))
	}
	for _, m := range matches {
		if m.HasResult() {
			t.Fatalf("imported match %s must not carry a result", m.ID)
		}
	}
}

func TestIngestionService_ImportIsIdempotent(t *testing.T) {
	kickoff := time.Date(2026, 6, 20, 19, 0, 0, 0, time.UTC)
	feed := &staticFixtureSource{fixtures: []fixturefeed.Fixture{
		{HomeTeam: "France", AwayTeam: "Poland", Stage: "Group Stage Round 3", KickoffAt: kickoff, Place: "Hamburg"},
	}}
	service, store := newIngestionFixture(feed)

	if _, err := service.Import(t.Context(), adminPrincipal()); err != nil {
		t.Fatalf("first import: %v", err)
	}

	// A second run with a changed venue must refresh the row, not add one.
	feed.fixtures[0].Place = "Berlin"
	report, err := service.Import(t.Context(), adminPrincipal())
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if report.StagesCreated != 0 {
		t.Fatalf("expected no new stages on re-import, got %d", report.StagesCreated)
	}

	matches, err := memory.NewMatchRepository(store).List(t.Context())
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match after re-import, got %d", len(matches))
	}
	if matches[0].Place != "Berlin" {
		t.Fatalf("expected refreshed venue, got %s", matches[0].Place)
	}
}

func TestIngestionService_ImportGuards(t *testing.T) {
	service, _ := newIngestionFixture(&staticFixtureSource{})

	if _, err := service.Import(t.Context(), memberPrincipal("u1")); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}

	failing, _ := newIngestionFixture(&staticFixtureSource{err: errors.New("feed down")})
	if _, err := failing.Import(t.Context(), adminPrincipal()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
