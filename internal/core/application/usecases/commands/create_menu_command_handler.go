package commands

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/access"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"

	"github.com/rs/zerolog"
)

// CreateMenuCommandHandler creates menus with their title already derived,
// so a new menu starts at title version 1.
type CreateMenuCommandHandler struct {
	uowFactory CatalogUoWFactory
	logger     zerolog.Logger
	now        func() time.Time
}

func NewCreateMenuCommandHandler(uowFactory CatalogUoWFactory, logger zerolog.Logger) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With().Str("component", "dashboard-menu").Logger(),
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler reading the time from now.
func (h CreateMenuCommandHandler) WithClock(now func() time.Time) CreateMenuCommandHandler {
	h.now = now
	return h
}

func (h CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) (*menu.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := access.NewOwnership(uow.StoreRepository()).Store(ctx, cmd.OwnerID(), cmd.StoreID())
	if err != nil {
		return nil, err
	}

	now := h.now()
	aggregate, err := menu.NewMenu(kernel.NewID(), s.ID(), cmd.Payload().Details, now)
	if err != nil {
		return nil, errInvalidMenu().WithCause(err)
	}
	aggregate.SyncTitle(s, now)

	if err = uow.MenuRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info().
		Str("menu_id", aggregate.ID().String()).
		Str("store_id", s.ID().String()).
		Msg("menu created")

	return aggregate, nil
}
