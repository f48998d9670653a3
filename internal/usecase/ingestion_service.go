package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/espocity/league/external/fixturefeed"
	"github.com/espocity/league/internal/domain/match"
	"github.com/espocity/league/internal/domain/stage"
	"github.com/espocity/league/internal/domain/team"
	"github.com/espocity/league/internal/domain/user"
	idgen "github.com/espocity/league/internal/platform/id"
	"github.com/espocity/league/internal/platform/logging"
)

const defaultIngestWorkers = 4

// FixtureSource fetches upcoming fixtures from the upstream provider.
type FixtureSource interface {
	Fixtures(ctx context.Context) ([]fixturefeed.Fixture, error)
}

// ImportReport summarizes a fixture feed import run.
type ImportReport struct {
	Fixtures        int `json:"fixtures"`
	TeamsUpserted   int `json:"teamsUpserted"`
	StagesCreated   int `json:"stagesCreated"`
	MatchesUpserted int `json:"matchesUpserted"`
}

// IngestionService imports the upstream fixture list into the local catalog.
// Teams and stages are created on first sight; scheduled matches are upserted
// by (home, away, kickoff) so a re-import refreshes venues without touching
// recorded scores.
type IngestionService struct {
	feed      FixtureSource
	teamRepo  team.Repository
	stageRepo stage.Repository
	matchRepo match.Repository
	ids       idgen.Generator
	logger    *logging.Logger
	workers   int
	now       func() time.Time
}

func NewIngestionService(
	feed FixtureSource,
	teamRepo team.Repository,
	stageRepo stage.Repository,
	matchRepo match.Repository,
	ids idgen.Generator,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &IngestionService{
		feed:      feed,
		teamRepo:  teamRepo,
		stageRepo: stageRepo,
		matchRepo: matchRepo,
		ids:       ids,
		logger:    logger,
		workers:   defaultIngestWorkers,
		now:       time.Now,
	}
}

// Import fetches the current fixture list and reconciles it into local
// storage. Admin only.
func (s *IngestionService) Import(ctx context.Context, principal user.Principal) (ImportReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.Import")
	defer span.End()

	if !principal.Admin {
		return ImportReport{}, fmt.Errorf("%w: only admins may import fixtures", ErrForbidden)
	}

	started := s.now()

	fixtures, err := s.feed.Fixtures(ctx)
	if err != nil {
		return ImportReport{}, fmt.Errorf("%w: fetch fixtures: %v", ErrDependencyUnavailable, err)
	}

	report := ImportReport{Fixtures: len(fixtures)}
	if len(fixtures) == 0 {
		return report, nil
	}

	teams, err := s.upsertTeams(ctx, fixtures)
	if err != nil {
		return ImportReport{}, err
	}
	report.TeamsUpserted = len(teams)

	stages, created, err := s.ensureStages(ctx, fixtures)
	if err != nil {
		return ImportReport{}, err
	}
	report.StagesCreated = created

	for _, f := range fixtures {
		home, ok := teams[normalizeName(f.HomeTeam)]
		if !ok {
			continue
		}
		away, ok := teams[normalizeName(f.AwayTeam)]
		if !ok {
			continue
		}
		st, ok := stages[normalizeName(f.Stage)]
		if !ok {
			continue
		}

		id, err := s.ids.NewID()
		if err != nil {
			return ImportReport{}, fmt.Errorf("generate match id: %w", err)
		}
		now := s.now().UTC()
		if _, err := s.matchRepo.UpsertScheduled(ctx, match.Match{
			ID:         id,
			HomeTeamID: home.ID,
			AwayTeamID: away.ID,
			StageID:    st.ID,
			KickoffAt:  f.KickoffAt.UTC(),
			Place:      f.Place,
			CreatedAt:  now,
			UpdatedAt:  now,
		}); err != nil {
			return ImportReport{}, fmt.Errorf("upsert match %s vs %s: %w", f.HomeTeam, f.AwayTeam, err)
		}
		report.MatchesUpserted++
	}

	s.logger.InfoContext(ctx, "fixture feed import finished",
		"fixtures", report.Fixtures,
		"teams", report.TeamsUpserted,
		"stagesCreated", report.StagesCreated,
		"matches", report.MatchesUpserted,
		"durationMs", s.now().Sub(started).Milliseconds(),
	)
	return report, nil
}

// upsertTeams pushes every distinct team name through the team repository in
// parallel. Upserts for different names are independent.
func (s *IngestionService) upsertTeams(ctx context.Context, fixtures []fixturefeed.Fixture) (map[string]team.Team, error) {
	names := make(map[string]string)
	for _, f := range fixtures {
		for _, raw := range []string{f.HomeTeam, f.AwayTeam} {
			name := strings.TrimSpace(raw)
			if name == "" {
				continue
			}
			names[normalizeName(name)] = name
		}
	}

	var (
		mu    sync.Mutex
		teams = make(map[string]team.Team, len(names))
	)

	p := pool.New().WithContext(ctx).WithMaxGoroutines(s.workers).WithCancelOnError()
	for key, name := range names {
		p.Go(func(ctx context.Context) error {
			id, err := s.ids.NewID()
			if err != nil {
				return fmt.Errorf("generate team id: %w", err)
			}
			now := s.now().UTC()
			upserted, err := s.teamRepo.Upsert(ctx, team.Team{
				ID:        id,
				Name:      name,
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("upsert team %s: %w", name, err)
			}
			mu.Lock()
			teams[key] = upserted
			mu.Unlock()
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *IngestionService) ensureStages(ctx context.Context, fixtures []fixturefeed.Fixture) (map[string]stage.Stage, int, error) {
	stages := make(map[string]stage.Stage)
	created := 0

	for _, f := range fixtures {
		name := strings.TrimSpace(f.Stage)
		if name == "" {
			continue
		}
		key := normalizeName(name)
		if _, ok := stages[key]; ok {
			continue
		}

		existing, found, err := s.stageRepo.GetByName(ctx, name)
		if err != nil {
			return nil, 0, fmt.Errorf("get stage %s: %w", name, err)
		}
		if found {
			stages[key] = existing
			continue
		}

		id, err := s.ids.NewID()
		if err != nil {
			return nil, 0, fmt.Errorf("generate stage id: %w", err)
		}
		now := s.now().UTC()
		st, err := s.stageRepo.Create(ctx, stage.Stage{
			ID:        id,
			Name:      name,
			Date:      f.KickoffAt.UTC(),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, 0, fmt.Errorf("create stage %s: %w", name, err)
		}
		stages[key] = st
		created++
	}
	return stages, created, nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
