package postgres

import (
	"time"

	"github.com/espocity/league/internal/domain/stage"
)

type stageTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	Name      string    `db:"name"`
	Date      time.Time `db:"date"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m stageTableModel) toDomain() stage.Stage {
	return stage.Stage{
		ID:        m.PublicID,
		Name:      m.Name,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
