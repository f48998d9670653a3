package team

import (
	"context"
	"errors"
)

// ErrDuplicateName signals a team name collision.
var ErrDuplicateName = errors.New("team name already exists")

// Repository exposes team persistence operations.
type Repository interface {
	Create(ctx context.Context, t Team) (Team, error)
	GetByID(ctx context.Context, id string) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
	// Upsert matches by name and creates or refreshes metadata. Used by the
	// fixture feed importer.
	Upsert(ctx context.Context, t Team) (Team, error)
}
