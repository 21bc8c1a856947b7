// Package events holds the order event publishers. The broker is chosen by
// configuration: kafkapub, rabbitpub, or Noop when no broker is set up.
package events

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"github.com/rs/zerolog"
)

// Noop drops every event. It logs them at debug level so local runs still
// show the lifecycle.
type Noop struct {
	logger zerolog.Logger
}

func NewNoop(logger zerolog.Logger) *Noop {
	return &Noop{logger: logger.With().Str("component", "order-events").Logger()}
}

func (n *Noop) Publish(_ context.Context, event order.Event) error {
	n.logger.Debug().
		Str("kind", string(event.Kind)).
		Str("order_id", event.OrderID).
		Str("status", event.Status.String()).
		Msg("order event dropped")
	return nil
}
