// Package ports defines the contracts between the marketplace core and its
// infrastructure: repositories for the document store, the order event
// publisher, the idempotency store and the progression scheduler.
//
// Repositories report a missing document with *errs.ObjectNotFoundError and
// any other storage failure with an *errs.AppError of code "storage/error"
// whose message names the collection path.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the mutable part of an existing order: status, timeline
	// and updated_at.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks it until the surrounding
	// transaction ends. Two progression steps of the same order serialize on
	// this lock.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)

	// ListNonTerminal returns up to limit orders that are neither completed
	// nor cancelled, oldest first.
	ListNonTerminal(ctx context.Context, limit int) ([]*order.Order, error)

	// ListByStore returns up to limit orders of a store, newest first.
	ListByStore(ctx context.Context, storeID kernel.ID, limit int) ([]*order.Order, error)
}
