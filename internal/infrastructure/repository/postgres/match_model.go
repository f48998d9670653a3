package postgres

import (
	"database/sql"
	"time"

	"github.com/espocity/league/internal/domain/match"
)

type matchTableModel struct {
	ID         int64          `db:"id"`
	PublicID   string         `db:"public_id"`
	HomeTeamID string         `db:"home_team_public_id"`
	AwayTeamID string         `db:"away_team_public_id"`
	StageID    sql.NullString `db:"stage_public_id"`
	KickoffAt  time.Time      `db:"kickoff_at"`
	Place      string         `db:"place"`
	HomeScore  sql.NullInt64  `db:"home_score"`
	AwayScore  sql.NullInt64  `db:"away_score"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:         m.PublicID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		StageID:    m.StageID.String,
		KickoffAt:  m.KickoffAt,
		Place:      m.Place,
		HomeScore:  nullInt64ToIntPtr(m.HomeScore),
		AwayScore:  nullInt64ToIntPtr(m.AwayScore),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func nullInt64ToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	value := int(v.Int64)
	return &value
}

func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
