package postgres

import (
	"time"

	"github.com/espocity/league/internal/domain/bet"
)

type betTableModel struct {
	ID            int64     `db:"id"`
	PublicID      string    `db:"public_id"`
	UserID        string    `db:"user_public_id"`
	MatchID       string    `db:"match_public_id"`
	PredictedHome int       `db:"predicted_home"`
	PredictedAway int       `db:"predicted_away"`
	PointsAwarded int       `db:"points_awarded"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (m betTableModel) toDomain() bet.Bet {
	return bet.Bet{
		ID:            m.PublicID,
		UserID:        m.UserID,
		MatchID:       m.MatchID,
		PredictedHome: m.PredictedHome,
		PredictedAway: m.PredictedAway,
		PointsAwarded: m.PointsAwarded,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type scoredBetRowModel struct {
	betTableModel
	ActualHome int `db:"actual_home"`
	ActualAway int `db:"actual_away"`
}

func (m scoredBetRowModel) toDomain() bet.ScoredBet {
	return bet.ScoredBet{
		Bet:        m.betTableModel.toDomain(),
		ActualHome: m.ActualHome,
		ActualAway: m.ActualAway,
	}
}
