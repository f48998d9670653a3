package stage

import "context"

// Repository exposes stage persistence operations.
type Repository interface {
	Create(ctx context.Context, s Stage) (Stage, error)
	GetByID(ctx context.Context, id string) (Stage, bool, error)
	GetByName(ctx context.Context, name string) (Stage, bool, error)
	List(ctx context.Context) ([]Stage, error)
	Update(ctx context.Context, s Stage) (Stage, error)
	Delete(ctx context.Context, id string) error
}
