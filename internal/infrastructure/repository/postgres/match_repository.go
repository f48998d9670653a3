package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/espocity/league/internal/domain/match"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

const matchColumns = `public_id, home_team_public_id, away_team_public_id, stage_public_id,
kickoff_at, place, home_score, away_score, created_at, updated_at`

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	const query = `INSERT INTO matches
(public_id, home_team_public_id, away_team_public_id, stage_public_id, kickoff_at, place, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := r.db.ExecContext(ctx, query,
		m.ID, m.HomeTeamID, m.AwayTeamID, nullableString(m.StageID),
		m.KickoffAt, m.Place, m.CreatedAt, m.UpdatedAt); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}
	return m, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE public_id = $1`

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches ORDER BY kickoff_at, public_id`

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matchesToDomain(rows), nil
}

func (r *MatchRepository) ListByDay(ctx context.Context, day time.Time) ([]match.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches
WHERE kickoff_at >= $1 AND kickoff_at < $2
ORDER BY kickoff_at, public_id`

	start := day.UTC()
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, start, start.Add(24*time.Hour)); err != nil {
		return nil, fmt.Errorf("list matches by day: %w", err)
	}
	return matchesToDomain(rows), nil
}

func (r *MatchRepository) ListByStage(ctx context.Context, stageID string) ([]match.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches
WHERE stage_public_id = $1
ORDER BY kickoff_at, public_id`

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, stageID); err != nil {
		return nil, fmt.Errorf("list matches by stage: %w", err)
	}
	return matchesToDomain(rows), nil
}

func (r *MatchRepository) UpsertScheduled(ctx context.Context, m match.Match) (match.Match, error) {
	const query = `INSERT INTO matches
(public_id, home_team_public_id, away_team_public_id, stage_public_id, kickoff_at, place, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (home_team_public_id, away_team_public_id, kickoff_at) DO UPDATE SET
    stage_public_id = EXCLUDED.stage_public_id,
    place = CASE WHEN EXCLUDED.place <> '' THEN EXCLUDED.place ELSE matches.place END,
    updated_at = now()
RETURNING ` + matchColumns

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query,
		m.ID, m.HomeTeamID, m.AwayTeamID, nullableString(m.StageID),
		m.KickoffAt, m.Place, m.CreatedAt, m.UpdatedAt); err != nil {
		return match.Match{}, fmt.Errorf("upsert scheduled match: %w", err)
	}
	return row.toDomain(), nil
}

func matchesToDomain(rows []matchTableModel) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
