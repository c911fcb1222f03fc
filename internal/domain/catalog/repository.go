package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ComponentRepository provides access to catalog components.
type ComponentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Component, error)
	// FindByIDs loads the given components keyed by ID, price tiers
	// preloaded. IDs without a component are simply absent from the map.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Component, error)
	FindAll(ctx context.Context, offset, limit int) ([]*Component, int64, error)
	Save(ctx context.Context, component *Component) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository provides access to component categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ComponentCategory, error)
	FindAll(ctx context.Context) ([]*ComponentCategory, error)
	Save(ctx context.Context, category *ComponentCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}
