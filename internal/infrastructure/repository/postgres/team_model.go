package postgres

import (
	"time"

	"github.com/espocity/league/internal/domain/team"
)

type teamTableModel struct {
	ID          int64     `db:"id"`
	PublicID    string    `db:"public_id"`
	Name        string    `db:"name"`
	LogoURL     string    `db:"logo_url"`
	StadiumName string    `db:"stadium_name"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:          m.PublicID,
		Name:        m.Name,
		LogoURL:     m.LogoURL,
		StadiumName: m.StadiumName,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
