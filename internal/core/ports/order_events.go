package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderEventPublisher announces order lifecycle events to other services.
// Publishing is best effort: callers log failures and carry on.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
