package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/espocity/league/internal/domain/bet"
)

type BetRepository struct {
	db *sqlx.DB
}

func NewBetRepository(db *sqlx.DB) *BetRepository {
	return &BetRepository{db: db}
}

const betColumns = `public_id, user_public_id, match_public_id,
predicted_home, predicted_away, points_awarded, created_at, updated_at`

func (r *BetRepository) Create(ctx context.Context, b bet.Bet) (bet.Bet, error) {
	const query = `INSERT INTO bets
(public_id, user_public_id, match_public_id, predicted_home, predicted_away, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.UserID, b.MatchID, b.PredictedHome, b.PredictedAway, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return bet.Bet{}, bet.ErrDuplicate
		}
		return bet.Bet{}, fmt.Errorf("insert bet: %w", err)
	}
	return b, nil
}

func (r *BetRepository) GetByID(ctx context.Context, id string) (bet.Bet, bool, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE public_id = $1`

	var row betTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return bet.Bet{}, false, nil
		}
		return bet.Bet{}, false, fmt.Errorf("get bet: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *BetRepository) GetByUserAndMatch(ctx context.Context, userID, matchID string) (bet.Bet, bool, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE user_public_id = $1 AND match_public_id = $2`

	var row betTableModel
	if err := r.db.GetContext(ctx, &row, query, userID, matchID); err != nil {
		if isNotFound(err) {
			return bet.Bet{}, false, nil
		}
		return bet.Bet{}, false, fmt.Errorf("get bet by user and match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *BetRepository) ListByUser(ctx context.Context, userID string) ([]bet.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE user_public_id = $1 ORDER BY created_at, public_id`

	var rows []betTableModel
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list bets by user: %w", err)
	}
	return betsToDomain(rows), nil
}

func (r *BetRepository) ListByMatch(ctx context.Context, matchID string) ([]bet.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE match_public_id = $1 ORDER BY created_at, public_id`

	var rows []betTableModel
	if err := r.db.SelectContext(ctx, &rows, query, matchID); err != nil {
		return nil, fmt.Errorf("list bets by match: %w", err)
	}
	return betsToDomain(rows), nil
}

func (r *BetRepository) UpdatePrediction(ctx context.Context, id string, predictedHome, predictedAway int, updatedAt time.Time) (bet.Bet, error) {
	const query = `UPDATE bets
SET predicted_home = $2, predicted_away = $3, updated_at = $4
WHERE public_id = $1
RETURNING ` + betColumns

	var row betTableModel
	if err := r.db.GetContext(ctx, &row, query, id, predictedHome, predictedAway, updatedAt); err != nil {
		return bet.Bet{}, fmt.Errorf("update bet prediction: %w", err)
	}
	return row.toDomain(), nil
}

func (r *BetRepository) ListScoredByUser(ctx context.Context, userID string) ([]bet.ScoredBet, error) {
	const query = `SELECT b.public_id, b.user_public_id, b.match_public_id,
b.predicted_home, b.predicted_away, b.points_awarded, b.created_at, b.updated_at,
m.home_score AS actual_home, m.away_score AS actual_away
FROM bets b
JOIN matches m ON m.public_id = b.match_public_id
WHERE b.user_public_id = $1 AND m.home_score IS NOT NULL AND m.away_score IS NOT NULL
ORDER BY b.public_id`

	var rows []scoredBetRowModel
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list scored bets by user: %w", err)
	}

	out := make([]bet.ScoredBet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *BetRepository) CountExactPredictions(ctx context.Context, matchID string, home, away int) (int, error) {
	const query = `SELECT count(*) FROM bets
WHERE match_public_id = $1 AND predicted_home = $2 AND predicted_away = $3`

	var count int
	if err := r.db.GetContext(ctx, &count, query, matchID, home, away); err != nil {
		return 0, fmt.Errorf("count exact predictions: %w", err)
	}
	return count, nil
}

func betsToDomain(rows []betTableModel) []bet.Bet {
	out := make([]bet.Bet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
