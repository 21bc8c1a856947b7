package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu aggregates.
type MenuRepository interface {
	Add(ctx context.Context, aggregate *menu.Menu) error
	Update(ctx context.Context, aggregate *menu.Menu) error
	Delete(ctx context.Context, id kernel.ID) error
	Get(ctx context.Context, id kernel.ID) (*menu.Menu, error)

	// Scan returns up to limit menus in id order. Search reads a bounded
	// window of the catalogue through it.
	Scan(ctx context.Context, limit int) ([]*menu.Menu, error)

	// ListByStore returns up to limit menus of a store, newest first.
	ListByStore(ctx context.Context, storeID kernel.ID, limit int) ([]*menu.Menu, error)
}
