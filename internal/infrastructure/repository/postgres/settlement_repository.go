package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/espocity/league/internal/domain/scoring"
)

// SettlementRepository records final results inside one transaction. The
// match row is locked FOR UPDATE, which serializes concurrent settlements of
// the same match: the loser of the race re-reads the recorded score and
// becomes a no-op.
type SettlementRepository struct {
	db *sqlx.DB
}

func NewSettlementRepository(db *sqlx.DB) *SettlementRepository {
	return &SettlementRepository{db: db}
}

func (r *SettlementRepository) SettleMatch(ctx context.Context, matchID string, homeScore, awayScore int) (scoring.Settlement, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return scoring.Settlement{}, fmt.Errorf("begin settlement tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	settlement, err := r.settleInTx(ctx, tx, matchID, homeScore, awayScore)
	if err != nil {
		return scoring.Settlement{}, err
	}

	if err := tx.Commit(); err != nil {
		return scoring.Settlement{}, fmt.Errorf("commit settlement tx: %w", err)
	}
	return settlement, nil
}

func (r *SettlementRepository) settleInTx(ctx context.Context, tx *sqlx.Tx, matchID string, homeScore, awayScore int) (scoring.Settlement, error) {
	lockQuery := `SELECT ` + matchColumns + ` FROM matches WHERE public_id = $1 FOR UPDATE`

	var matchRow matchTableModel
	if err := tx.GetContext(ctx, &matchRow, lockQuery, matchID); err != nil {
		if isNotFound(err) {
			return scoring.Settlement{}, scoring.ErrMatchNotFound
		}
		return scoring.Settlement{}, fmt.Errorf("lock match for settlement: %w", err)
	}

	m := matchRow.toDomain()
	firstTime := !m.HasResult()
	changed := firstTime || *m.HomeScore != homeScore || *m.AwayScore != awayScore
	if !changed {
		return scoring.Settlement{Match: m, FirstTime: false, Rescored: false}, nil
	}

	const updateMatch = `UPDATE matches
SET home_score = $2, away_score = $3, updated_at = now()
WHERE public_id = $1`
	if _, err := tx.ExecContext(ctx, updateMatch, matchID, homeScore, awayScore); err != nil {
		return scoring.Settlement{}, fmt.Errorf("record match result: %w", err)
	}
	m.HomeScore = &homeScore
	m.AwayScore = &awayScore

	betsQuery := `SELECT ` + betColumns + ` FROM bets WHERE match_public_id = $1 ORDER BY public_id`
	var betRows []betTableModel
	if err := tx.SelectContext(ctx, &betRows, betsQuery, matchID); err != nil {
		return scoring.Settlement{}, fmt.Errorf("list bets for settlement: %w", err)
	}

	const updateBet = `UPDATE bets SET points_awarded = $2, updated_at = now() WHERE public_id = $1`
	pointsByUser := make(map[string]int, len(betRows))
	for _, row := range betRows {
		points := scoring.Points(row.PredictedHome, row.PredictedAway, homeScore, awayScore)
		if _, err := tx.ExecContext(ctx, updateBet, row.PublicID, points); err != nil {
			return scoring.Settlement{}, fmt.Errorf("award points bet=%s: %w", row.PublicID, err)
		}
		pointsByUser[row.UserID] = points
	}

	// Totals are re-derived from the full bet history of each affected user
	// so a corrected result cannot leave stale points behind.
	const rederive = `UPDATE users
SET score = COALESCE((SELECT SUM(points_awarded) FROM bets WHERE user_public_id = users.public_id), 0),
    updated_at = now()
WHERE public_id = ANY($1)`
	userIDs := make([]string, 0, len(pointsByUser))
	for userID := range pointsByUser {
		userIDs = append(userIDs, userID)
	}
	if len(userIDs) > 0 {
		if _, err := tx.ExecContext(ctx, rederive, pq.Array(userIDs)); err != nil {
			return scoring.Settlement{}, fmt.Errorf("re-derive user totals: %w", err)
		}
	}

	return scoring.Settlement{
		Match:        m,
		FirstTime:    firstTime,
		Rescored:     true,
		PointsByUser: pointsByUser,
	}, nil
}
