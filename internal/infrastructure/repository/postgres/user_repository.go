package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/espocity/league/internal/domain/user"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `public_id, username, phone, password_hash, is_active, is_admin,
score, correct_results, lone_wolf_victories, defeats, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	const query = `INSERT INTO users (public_id, username, phone, password_hash, is_active, is_admin, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Username, u.Phone, u.PasswordHash, u.IsActive, u.IsAdmin, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrDuplicate
		}
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, bool, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE public_id = $1`

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(username) = lower($1)`

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, username); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by username: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY public_id`

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return usersToDomain(rows), nil
}

func (r *UserRepository) ListRanked(ctx context.Context) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
ORDER BY score DESC, correct_results DESC, lone_wolf_victories DESC, defeats ASC, public_id ASC`

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list ranked users: %w", err)
	}
	return usersToDomain(rows), nil
}

func (r *UserRepository) UpdateTieBreakStats(ctx context.Context, userID string, stats user.TieBreakStats) error {
	const query = `UPDATE users
SET correct_results = $2, lone_wolf_victories = $3, defeats = $4, updated_at = now()
WHERE public_id = $1`

	if _, err := r.db.ExecContext(ctx, query,
		userID, stats.CorrectResults, stats.LoneWolfVictories, stats.Defeats); err != nil {
		return fmt.Errorf("update tie-break stats: %w", err)
	}
	return nil
}

func usersToDomain(rows []userTableModel) []user.User {
	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
