package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/espocity/league/internal/domain/bet"
	"github.com/espocity/league/internal/domain/user"
	"github.com/espocity/league/internal/platform/cache"
	"github.com/espocity/league/internal/platform/logging"
	"github.com/espocity/league/internal/platform/resilience"
)

// LeaderboardCacheKey is the cache key for the ranked user list.
const LeaderboardCacheKey = "leaderboard:v1"

const defaultRecomputeWorkers = 8

// StandingsService recomputes tie-break statistics and serves the ranked
// leaderboard. Recomputation is a full overwrite from the scored bet history,
// never an incremental adjustment, and runs only when explicitly invoked.
type StandingsService struct {
	userRepo         user.Repository
	betRepo          bet.Repository
	cacheStore       *cache.Store
	logger           *logging.Logger
	recomputeFlight  resilience.SingleFlight
	recomputeWorkers int
}

// RecomputeResult summarizes one bulk recomputation pass.
type RecomputeResult struct {
	Users  int
	Failed int
}

func NewStandingsService(userRepo user.Repository, betRepo bet.Repository, cacheStore *cache.Store, logger *logging.Logger) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingsService{
		userRepo:         userRepo,
		betRepo:          betRepo,
		cacheStore:       cacheStore,
		logger:           logger,
		recomputeWorkers: defaultRecomputeWorkers,
	}
}

// Leaderboard returns all users in ranking order: score desc, correct results
// desc, lone wolf victories desc, defeats asc. The secondary keys reflect the
// last recomputation, not necessarily the latest settlements.
func (s *StandingsService) Leaderboard(ctx context.Context) ([]user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Leaderboard")
	defer span.End()

	if s.cacheStore == nil {
		return s.loadLeaderboard(ctx)
	}

	value, err := s.cacheStore.GetOrLoad(ctx, LeaderboardCacheKey, func() (any, error) {
		return s.loadLeaderboard(ctx)
	})
	if err != nil {
		return nil, err
	}

	users, ok := value.([]user.User)
	if !ok {
		return s.loadLeaderboard(ctx)
	}
	return users, nil
}

func (s *StandingsService) loadLeaderboard(ctx context.Context) ([]user.User, error) {
	users, err := s.userRepo.ListRanked(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ranked users: %w", err)
	}
	return users, nil
}

// RecomputeUser rebuilds the three tie-break counters for one user from that
// user's bets on settled matches and overwrites the stored values.
func (s *StandingsService) RecomputeUser(ctx context.Context, userID string) (user.TieBreakStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.RecomputeUser")
	defer span.End()

	stats, err := s.computeStats(ctx, userID)
	if err != nil {
		return user.TieBreakStats{}, err
	}

	if err := s.userRepo.UpdateTieBreakStats(ctx, userID, stats); err != nil {
		return user.TieBreakStats{}, fmt.Errorf("update tie-break stats user=%s: %w", userID, err)
	}
	return stats, nil
}

// RecomputeAll rebuilds tie-break counters for every user. Only admins may
// trigger it; concurrent triggers share one pass.
func (s *StandingsService) RecomputeAll(ctx context.Context, principal user.Principal) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.RecomputeAll")
	defer span.End()

	if !principal.Admin {
		return RecomputeResult{}, fmt.Errorf("%w: only admins may recompute statistics", ErrForbidden)
	}

	value, err, shared := s.recomputeFlight.Do("standings:recompute-all", func() (any, error) {
		return s.recomputeAllOnce(ctx)
	})
	if err != nil {
		return RecomputeResult{}, err
	}
	result := value.(RecomputeResult)
	if shared {
		s.logger.InfoContext(ctx, "joined in-flight stats recomputation")
	}
	return result, nil
}

func (s *StandingsService) recomputeAllOnce(ctx context.Context) (RecomputeResult, error) {
	started := time.Now()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("list users for recomputation: %w", err)
	}
	if len(users) == 0 {
		return RecomputeResult{}, nil
	}

	workers := s.recomputeWorkers
	if workers > len(users) {
		workers = len(users)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("create recompute worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0
	var firstErr error

	for _, u := range users {
		userID := u.ID
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if _, err := s.RecomputeUser(ctx, userID); err != nil {
				mu.Lock()
				failed++
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				s.logger.WarnContext(ctx, "recompute tie-break stats failed", "user_id", userID, "error", err)
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			failed++
			if firstErr == nil {
				firstErr = fmt.Errorf("submit recompute task: %w", submitErr)
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if s.cacheStore != nil {
		s.cacheStore.Delete(ctx, LeaderboardCacheKey)
	}

	s.logger.InfoContext(ctx, "tie-break stats recomputed",
		"users", len(users),
		"failed", failed,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	if firstErr != nil {
		return RecomputeResult{Users: len(users), Failed: failed}, firstErr
	}
	return RecomputeResult{Users: len(users), Failed: failed}, nil
}

func (s *StandingsService) computeStats(ctx context.Context, userID string) (user.TieBreakStats, error) {
	scored, err := s.betRepo.ListScoredByUser(ctx, userID)
	if err != nil {
		return user.TieBreakStats{}, fmt.Errorf("list scored bets user=%s: %w", userID, err)
	}

	var stats user.TieBreakStats
	for _, sb := range scored {
		exact := sb.PredictedHome == sb.ActualHome && sb.PredictedAway == sb.ActualAway
		if exact {
			stats.CorrectResults++

			count, err := s.betRepo.CountExactPredictions(ctx, sb.MatchID, sb.ActualHome, sb.ActualAway)
			if err != nil {
				return user.TieBreakStats{}, fmt.Errorf("count exact predictions match=%s: %w", sb.MatchID, err)
			}
			if count == 1 {
				stats.LoneWolfVictories++
			}
		}
		if sb.PointsAwarded == 0 {
			stats.Defeats++
		}
	}

	return stats, nil
}
