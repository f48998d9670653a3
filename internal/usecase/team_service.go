package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/espocity/league/internal/domain/team"
	"github.com/espocity/league/internal/domain/user"
	idgen "github.com/espocity/league/internal/platform/id"
)

// TeamService manages the static team catalog.
type TeamService struct {
	teamRepo team.Repository
	ids      idgen.Generator
	now      func() time.Time
}

func NewTeamService(teamRepo team.Repository, ids idgen.Generator) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		ids:      ids,
		now:      time.Now,
	}
}

func (s *TeamService) Create(ctx context.Context, principal user.Principal, t team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	if !principal.Admin {
		return team.Team{}, fmt.Errorf("%w: only admins may create teams", ErrForbidden)
	}

	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now().UTC()
	t.ID = id
	t.CreatedAt = now
	t.UpdatedAt = now

	created, err := s.teamRepo.Create(ctx, t)
	if err != nil {
		if errors.Is(err, team.ErrDuplicateName) {
			return team.Team{}, fmt.Errorf("%w: team name %q already exists", ErrConflict, t.Name)
		}
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	return created, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	t, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	return t, nil
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}
