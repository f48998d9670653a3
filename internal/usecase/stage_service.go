package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/espocity/league/internal/domain/match"
	"github.com/espocity/league/internal/domain/stage"
	"github.com/espocity/league/internal/domain/user"
	idgen "github.com/espocity/league/internal/platform/id"
)

// StageService manages rounds. Stages group matches for scheduling and
// display; they carry no scoring semantics.
type StageService struct {
	stageRepo stage.Repository
	matchRepo match.Repository
	ids       idgen.Generator
	now       func() time.Time
}

func NewStageService(stageRepo stage.Repository, matchRepo match.Repository, ids idgen.Generator) *StageService {
	return &StageService{
		stageRepo: stageRepo,
		matchRepo: matchRepo,
		ids:       ids,
		now:       time.Now,
	}
}

func (s *StageService) Create(ctx context.Context, principal user.Principal, name string, date time.Time) (stage.Stage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StageService.Create")
	defer span.End()

	if !principal.Admin {
		return stage.Stage{}, fmt.Errorf("%w: only admins may create stages", ErrForbidden)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return stage.Stage{}, fmt.Errorf("%w: stage name is required", ErrInvalidInput)
	}
	if date.IsZero() {
		return stage.Stage{}, fmt.Errorf("%w: stage date is required", ErrInvalidInput)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return stage.Stage{}, fmt.Errorf("generate stage id: %w", err)
	}

	now := s.now().UTC()
	created, err := s.stageRepo.Create(ctx, stage.Stage{
		ID:        id,
		Name:      name,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return stage.Stage{}, fmt.Errorf("create stage: %w", err)
	}
	return created, nil
}

func (s *StageService) Update(ctx context.Context, principal user.Principal, stageID, name string, date *time.Time) (stage.Stage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StageService.Update")
	defer span.End()

	if !principal.Admin {
		return stage.Stage{}, fmt.Errorf("%w: only admins may update stages", ErrForbidden)
	}

	existing, found, err := s.stageRepo.GetByID(ctx, stageID)
	if err != nil {
		return stage.Stage{}, fmt.Errorf("get stage: %w", err)
	}
	if !found {
		return stage.Stage{}, fmt.Errorf("%w: stage %s", ErrNotFound, stageID)
	}

	if name = strings.TrimSpace(name); name != "" {
		existing.Name = name
	}
	if date != nil && !date.IsZero() {
		existing.Date = *date
	}
	existing.UpdatedAt = s.now().UTC()

	updated, err := s.stageRepo.Update(ctx, existing)
	if err != nil {
		return stage.Stage{}, fmt.Errorf("update stage: %w", err)
	}
	return updated, nil
}

func (s *StageService) Get(ctx context.Context, stageID string) (stage.Stage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StageService.Get")
	defer span.End()

	st, found, err := s.stageRepo.GetByID(ctx, stageID)
	if err != nil {
		return stage.Stage{}, fmt.Errorf("get stage: %w", err)
	}
	if !found {
		return stage.Stage{}, fmt.Errorf("%w: stage %s", ErrNotFound, stageID)
	}
	return st, nil
}

func (s *StageService) List(ctx context.Context) ([]stage.Stage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StageService.List")
	defer span.End()

	stages, err := s.stageRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	return stages, nil
}

// Delete removes a stage, refusing while matches still reference it.
func (s *StageService) Delete(ctx context.Context, principal user.Principal, stageID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StageService.Delete")
	defer span.End()

	if !principal.Admin {
		return fmt.Errorf("%w: only admins may delete stages", ErrForbidden)
	}

	if _, found, err := s.stageRepo.GetByID(ctx, stageID); err != nil {
		return fmt.Errorf("get stage: %w", err)
	} else if !found {
		return fmt.Errorf("%w: stage %s", ErrNotFound, stageID)
	}

	matches, err := s.matchRepo.ListByStage(ctx, stageID)
	if err != nil {
		return fmt.Errorf("list matches by stage: %w", err)
	}
	if len(matches) > 0 {
		return fmt.Errorf("%w: stage has %d associated matches", ErrConflict, len(matches))
	}

	if err := s.stageRepo.Delete(ctx, stageID); err != nil {
		return fmt.Errorf("delete stage: %w", err)
	}
	return nil
}

func (s *StageService) ListMatches(ctx context.Context, stageID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StageService.ListMatches")
	defer span.End()

	if _, found, err := s.stageRepo.GetByID(ctx, stageID); err != nil {
		return nil, fmt.Errorf("get stage: %w", err)
	} else if !found {
		return nil, fmt.Errorf("%w: stage %s", ErrNotFound, stageID)
	}

	matches, err := s.matchRepo.ListByStage(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("list matches by stage: %w", err)
	}
	return matches, nil
}
