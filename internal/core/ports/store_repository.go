package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates.
// Stores are never deleted.
type StoreRepository interface {
	Add(ctx context.Context, aggregate *store.Store) error
	Update(ctx context.Context, aggregate *store.Store) error
	Get(ctx context.Context, id kernel.ID) (*store.Store, error)

	// GetMany loads the stores with the given ids. Ids without a store are
	// absent from the result; this is not an error.
	GetMany(ctx context.Context, ids []kernel.ID) (map[kernel.ID]*store.Store, error)

	// FindByOwner returns the first store registered by ownerID.
	FindByOwner(ctx context.Context, ownerID string) (*store.Store, error)
}
