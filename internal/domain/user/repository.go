package user

import (
	"context"
	"errors"
)

// ErrDuplicate signals a username or phone collision on create.
var ErrDuplicate = errors.New("user already exists")

// Repository exposes user persistence operations.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, bool, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	List(ctx context.Context) ([]User, error)
	// ListRanked returns every user ordered by score desc, correct results
	// desc, lone wolf victories desc, defeats asc, then id asc as a stable
	// final key.
	ListRanked(ctx context.Context) ([]User, error)
	// UpdateTieBreakStats overwrites the three tie-break counters for one user.
	UpdateTieBreakStats(ctx context.Context, userID string, stats TieBreakStats) error
}
