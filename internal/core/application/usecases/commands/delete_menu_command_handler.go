package commands

import (
	"context"

	"marketplace/internal/core/application/usecases/access"

	"github.com/rs/zerolog"
)

// DeleteMenuCommandHandler deletes menus after checking ownership.
type DeleteMenuCommandHandler struct {
	uowFactory CatalogUoWFactory
	logger     zerolog.Logger
}

func NewDeleteMenuCommandHandler(uowFactory CatalogUoWFactory, logger zerolog.Logger) DeleteMenuCommandHandler {
	return DeleteMenuCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With().Str("component", "dashboard-menu").Logger(),
	}
}

func (h DeleteMenuCommandHandler) Handle(ctx context.Context, cmd DeleteMenuCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menus := uow.MenuRepository()
	aggregate, _, err := access.NewOwnership(uow.StoreRepository()).Menu(ctx, menus, cmd.OwnerID(), cmd.MenuID())
	if err != nil {
		return err
	}

	if err = menus.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info().Str("menu_id", aggregate.ID().String()).Msg("menu deleted")
	return nil
}
