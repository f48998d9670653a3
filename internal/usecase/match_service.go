package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/espocity/league/internal/domain/match"
	"github.com/espocity/league/internal/domain/scoring"
	"github.com/espocity/league/internal/domain/stage"
	"github.com/espocity/league/internal/domain/team"
	"github.com/espocity/league/internal/domain/user"
	"github.com/espocity/league/internal/platform/cache"
	idgen "github.com/espocity/league/internal/platform/id"
	"github.com/espocity/league/internal/platform/logging"
)

// MatchService manages fixtures and performs result finalization.
type MatchService struct {
	matchRepo      match.Repository
	teamRepo       team.Repository
	stageRepo      stage.Repository
	settlementRepo scoring.SettlementRepository
	ids            idgen.Generator
	cacheStore     *cache.Store
	logger         *logging.Logger
	now            func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	stageRepo stage.Repository,
	settlementRepo scoring.SettlementRepository,
	ids idgen.Generator,
	cacheStore *cache.Store,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		stageRepo:      stageRepo,
		settlementRepo: settlementRepo,
		ids:            ids,
		cacheStore:     cacheStore,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *MatchService) Create(ctx context.Context, principal user.Principal, m match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	if !principal.Admin {
		return match.Match{}, fmt.Errorf("%w: only admins may create matches", ErrForbidden)
	}
	if m.HomeTeamID == m.AwayTeamID {
		return match.Match{}, fmt.Errorf("%w: home and away team must differ", ErrInvalidInput)
	}
	if m.KickoffAt.IsZero() {
		return match.Match{}, fmt.Errorf("%w: kickoff time is required", ErrInvalidInput)
	}

	for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
		if _, found, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return match.Match{}, fmt.Errorf("get team %s: %w", teamID, err)
		} else if !found {
			return match.Match{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
		}
	}
	if m.StageID != "" {
		if _, found, err := s.stageRepo.GetByID(ctx, m.StageID); err != nil {
			return match.Match{}, fmt.Errorf("get stage %s: %w", m.StageID, err)
		} else if !found {
			return match.Match{}, fmt.Errorf("%w: stage %s", ErrNotFound, m.StageID)
		}
	}

	id, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	m.ID = id
	m.HomeScore = nil
	m.AwayScore = nil
	m.CreatedAt = now
	m.UpdatedAt = now

	created, err := s.matchRepo.Create(ctx, m)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return created, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}
	return m, nil
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// ListByDay returns matches kicking off on the given UTC calendar day,
// parsed from YYYY-MM-DD.
func (s *MatchService) ListByDay(ctx context.Context, dateStr string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByDay")
	defer span.End()

	day, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, dateStr)
	}

	matches, err := s.matchRepo.ListByDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list matches by day: %w", err)
	}
	return matches, nil
}

// Finalize records the final score of a match and settles every bet on it.
// The settlement runs in one store transaction with the match row locked, so
// concurrent finalize requests cannot award points twice. Re-submitting the
// same score is a no-op for bets and user totals; submitting a corrected
// score re-scores the match's bets and re-derives affected user totals.
func (s *MatchService) Finalize(ctx context.Context, principal user.Principal, matchID string, homeScore, awayScore int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Finalize")
	defer span.End()

	if !principal.Admin {
		return match.Match{}, fmt.Errorf("%w: only admins may record results", ErrForbidden)
	}
	if homeScore < 0 || awayScore < 0 {
		return match.Match{}, fmt.Errorf("%w: final scores must be non-negative", ErrInvalidInput)
	}

	settlement, err := s.settlementRepo.SettleMatch(ctx, matchID, homeScore, awayScore)
	if err != nil {
		if errors.Is(err, scoring.ErrMatchNotFound) {
			return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
		}
		return match.Match{}, fmt.Errorf("settle match %s: %w", matchID, err)
	}

	if settlement.Rescored {
		if s.cacheStore != nil {
			s.cacheStore.Delete(ctx, LeaderboardCacheKey)
		}
		s.logger.InfoContext(ctx, "match settled",
			"match_id", matchID,
			"home_score", homeScore,
			"away_score", awayScore,
			"first_time", settlement.FirstTime,
			"bettors", len(settlement.PointsByUser),
		)
	}

	return settlement.Match, nil
}
