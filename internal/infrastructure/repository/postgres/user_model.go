package postgres

import (
	"time"

	"github.com/espocity/league/internal/domain/user"
)

type userTableModel struct {
	ID                int64     `db:"id"`
	PublicID          string    `db:"public_id"`
	Username          string    `db:"username"`
	Phone             string    `db:"phone"`
	PasswordHash      string    `db:"password_hash"`
	IsActive          bool      `db:"is_active"`
	IsAdmin           bool      `db:"is_admin"`
	Score             int       `db:"score"`
	CorrectResults    int       `db:"correct_results"`
	LoneWolfVictories int       `db:"lone_wolf_victories"`
	Defeats           int       `db:"defeats"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (m userTableModel) toDomain() user.User {
	return user.User{
		ID:                m.PublicID,
		Username:          m.Username,
		Phone:             m.Phone,
		PasswordHash:      m.PasswordHash,
		IsActive:          m.IsActive,
		IsAdmin:           m.IsAdmin,
		Score:             m.Score,
		CorrectResults:    m.CorrectResults,
		LoneWolfVictories: m.LoneWolfVictories,
		Defeats:           m.Defeats,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
