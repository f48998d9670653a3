package match

import (
	"context"
	"time"
)

// Repository exposes match persistence operations.
type Repository interface {
	Create(ctx context.Context, m Match) (Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	List(ctx context.Context) ([]Match, error)
	// ListByDay returns matches whose kickoff falls inside the UTC calendar
	// day starting at day (which must be midnight).
	ListByDay(ctx context.Context, day time.Time) ([]Match, error)
	ListByStage(ctx context.Context, stageID string) ([]Match, error)
	// UpsertScheduled inserts a fixture keyed by (home, away, kickoff) or
	// refreshes its stage and venue. It never touches recorded scores. Used
	// by the fixture feed importer.
	UpsertScheduled(ctx context.Context, m Match) (Match, error)
}
