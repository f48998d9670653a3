package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/espocity/league/internal/domain/stage"
)

type StageRepository struct {
	db *sqlx.DB
}

func NewStageRepository(db *sqlx.DB) *StageRepository {
	return &StageRepository{db: db}
}

const stageColumns = `public_id, name, date, created_at, updated_at`

func (r *StageRepository) Create(ctx context.Context, s stage.Stage) (stage.Stage, error) {
	const query = `INSERT INTO stages (public_id, name, date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Date, s.CreatedAt, s.UpdatedAt); err != nil {
		return stage.Stage{}, fmt.Errorf("insert stage: %w", err)
	}
	return s, nil
}

func (r *StageRepository) GetByID(ctx context.Context, id string) (stage.Stage, bool, error) {
	query := `SELECT ` + stageColumns + ` FROM stages WHERE public_id = $1`

	var row stageTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return stage.Stage{}, false, nil
		}
		return stage.Stage{}, false, fmt.Errorf("get stage: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *StageRepository) GetByName(ctx context.Context, name string) (stage.Stage, bool, error) {
	query := `SELECT ` + stageColumns + ` FROM stages WHERE lower(name) = lower($1)`

	var row stageTableModel
	if err := r.db.GetContext(ctx, &row, query, name); err != nil {
		if isNotFound(err) {
			return stage.Stage{}, false, nil
		}
		return stage.Stage{}, false, fmt.Errorf("get stage by name: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *StageRepository) List(ctx context.Context) ([]stage.Stage, error) {
	query := `SELECT ` + stageColumns + ` FROM stages ORDER BY date, public_id`

	var rows []stageTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}

	out := make([]stage.Stage, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *StageRepository) Update(ctx context.Context, s stage.Stage) (stage.Stage, error) {
	const query = `UPDATE stages SET name = $2, date = $3, updated_at = $4 WHERE public_id = $1`

	if _, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Date, s.UpdatedAt); err != nil {
		return stage.Stage{}, fmt.Errorf("update stage: %w", err)
	}
	return s, nil
}

func (r *StageRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM stages WHERE public_id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete stage: %w", err)
	}
	return nil
}
