package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// AdvanceOrderStatusCommandHandler applies one progression step.
//
// The step is a single transaction on the locked order row. It does nothing
// when the order no longer exists, is cancelled, or already reached the
// target or a later status; otherwise it appends the target to the timeline
// and writes status and updated_at.
//
// Example:
//
//	handler := NewAdvanceOrderStatusCommandHandler(uowFactory, publisher, logger)
//	cmd, _ := NewAdvanceOrderStatusCommand(orderID, order.Preparing)
//
//	advanced, err := handler.Handle(ctx, cmd)
//	// advanced is false for a no-op step
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     zerolog.Logger
	now        func() time.Time
}

// NewAdvanceOrderStatusCommandHandler creates a handler for progression steps.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger zerolog.Logger,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With().Str("component", "order-progression").Logger(),
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler reading the time from now.
func (h AdvanceOrderStatusCommandHandler) WithClock(now func() time.Time) AdvanceOrderStatusCommandHandler {
	h.now = now
	return h
}

// Handle applies the step and reports whether the order moved.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if !aggregate.Advance(cmd.Target(), h.now()) {
		return false, nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	if err = h.publisher.Publish(ctx, order.NewEvent(order.EventStatusChanged, aggregate)); err != nil {
		h.logger.Warn().Err(err).Str("order_id", aggregate.ID().String()).Msg("failed to publish status change")
	}

	h.logger.Debug().
		Str("order_id", aggregate.ID().String()).
		Str("status", aggregate.Status().String()).
		Msg("order advanced")

	return true, nil
}
