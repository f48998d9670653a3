package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/espocity/league/internal/domain/bet"
	"github.com/espocity/league/internal/domain/match"
	"github.com/espocity/league/internal/domain/user"
	idgen "github.com/espocity/league/internal/platform/id"
)

// BetService admits and amends predictions. Kickoff is the single cutover
// instant: at or after kickoff both submission and amendment are rejected.
type BetService struct {
	betRepo   bet.Repository
	matchRepo match.Repository
	ids       idgen.Generator
	now       func() time.Time
}

func NewBetService(betRepo bet.Repository, matchRepo match.Repository, ids idgen.Generator) *BetService {
	return &BetService{
		betRepo:   betRepo,
		matchRepo: matchRepo,
		ids:       ids,
		now:       time.Now,
	}
}

func (s *BetService) Place(ctx context.Context, principal user.Principal, matchID string, predictedHome, predictedAway int) (bet.Bet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.Place")
	defer span.End()

	if err := validatePrediction(predictedHome, predictedAway); err != nil {
		return bet.Bet{}, err
	}

	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return bet.Bet{}, fmt.Errorf("get match for bet: %w", err)
	}
	if !found {
		return bet.Bet{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}
	if !m.BettingOpen(s.now().UTC()) {
		return bet.Bet{}, fmt.Errorf("%w: betting closed at kickoff", ErrConflict)
	}

	if _, exists, err := s.betRepo.GetByUserAndMatch(ctx, principal.UserID, matchID); err != nil {
		return bet.Bet{}, fmt.Errorf("check existing bet: %w", err)
	} else if exists {
		return bet.Bet{}, fmt.Errorf("%w: %v", ErrConflict, bet.ErrDuplicate)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return bet.Bet{}, fmt.Errorf("generate bet id: %w", err)
	}

	now := s.now().UTC()
	created, err := s.betRepo.Create(ctx, bet.Bet{
		ID:            id,
		UserID:        principal.UserID,
		MatchID:       matchID,
		PredictedHome: predictedHome,
		PredictedAway: predictedAway,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		// The unique index is the authority on duplicates: a concurrent
		// submission that passed the lookup above still lands here.
		if isDuplicateBet(err) {
			return bet.Bet{}, fmt.Errorf("%w: %v", ErrConflict, bet.ErrDuplicate)
		}
		return bet.Bet{}, fmt.Errorf("create bet: %w", err)
	}

	return created, nil
}

func (s *BetService) Amend(ctx context.Context, principal user.Principal, betID string, predictedHome, predictedAway int) (bet.Bet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.Amend")
	defer span.End()

	if err := validatePrediction(predictedHome, predictedAway); err != nil {
		return bet.Bet{}, err
	}

	existing, found, err := s.betRepo.GetByID(ctx, betID)
	if err != nil {
		return bet.Bet{}, fmt.Errorf("get bet: %w", err)
	}
	if !found {
		return bet.Bet{}, fmt.Errorf("%w: bet %s", ErrNotFound, betID)
	}
	if existing.UserID != principal.UserID && !principal.Admin {
		return bet.Bet{}, fmt.Errorf("%w: bet belongs to another user", ErrForbidden)
	}

	m, found, err := s.matchRepo.GetByID(ctx, existing.MatchID)
	if err != nil {
		return bet.Bet{}, fmt.Errorf("get match for bet amendment: %w", err)
	}
	if !found {
		return bet.Bet{}, fmt.Errorf("%w: match %s", ErrNotFound, existing.MatchID)
	}
	if !m.BettingOpen(s.now().UTC()) {
		return bet.Bet{}, fmt.Errorf("%w: betting closed at kickoff", ErrConflict)
	}

	updated, err := s.betRepo.UpdatePrediction(ctx, betID, predictedHome, predictedAway, s.now().UTC())
	if err != nil {
		return bet.Bet{}, fmt.Errorf("update bet prediction: %w", err)
	}

	return updated, nil
}

func (s *BetService) Get(ctx context.Context, betID string) (bet.Bet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.Get")
	defer span.End()

	b, found, err := s.betRepo.GetByID(ctx, betID)
	if err != nil {
		return bet.Bet{}, fmt.Errorf("get bet: %w", err)
	}
	if !found {
		return bet.Bet{}, fmt.Errorf("%w: bet %s", ErrNotFound, betID)
	}
	return b, nil
}

func (s *BetService) ListByUser(ctx context.Context, userID string) ([]bet.Bet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.ListByUser")
	defer span.End()

	bets, err := s.betRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bets by user: %w", err)
	}
	return bets, nil
}

func validatePrediction(home, away int) error {
	if home < 0 || away < 0 {
		return fmt.Errorf("%w: predicted scores must be non-negative", ErrInvalidInput)
	}
	return nil
}

func isDuplicateBet(err error) bool {
	return errors.Is(err, bet.ErrDuplicate)
}
