package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/espocity/league/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

const teamColumns = `public_id, name, logo_url, stadium_name, created_at, updated_at`

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	const query = `INSERT INTO teams (public_id, name, logo_url, stadium_name, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Name, t.LogoURL, t.StadiumName, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return team.Team{}, team.ErrDuplicateName
		}
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}
	return t, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE public_id = $1`

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE lower(name) = lower($1)`

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, name); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by name: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY name`

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, t team.Team) (team.Team, error) {
	const query = `INSERT INTO teams (public_id, name, logo_url, stadium_name, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (name) DO UPDATE SET
    logo_url = CASE WHEN EXCLUDED.logo_url <> '' THEN EXCLUDED.logo_url ELSE teams.logo_url END,
    stadium_name = CASE WHEN EXCLUDED.stadium_name <> '' THEN EXCLUDED.stadium_name ELSE teams.stadium_name END,
    updated_at = now()
RETURNING ` + teamColumns

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query,
		t.ID, t.Name, t.LogoURL, t.StadiumName, t.CreatedAt, t.UpdatedAt); err != nil {
		return team.Team{}, fmt.Errorf("upsert team: %w", err)
	}
	return row.toDomain(), nil
}
