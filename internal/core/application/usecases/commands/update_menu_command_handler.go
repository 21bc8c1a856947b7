package commands

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/access"
	"marketplace/internal/core/domain/model/menu"

	"github.com/rs/zerolog"
)

// UpdateMenuCommandHandler revises a menu and re-derives its title. The
// rating is not editable and survives every update; the description
// survives when the payload omits it.
type UpdateMenuCommandHandler struct {
	uowFactory CatalogUoWFactory
	logger     zerolog.Logger
	now        func() time.Time
}

func NewUpdateMenuCommandHandler(uowFactory CatalogUoWFactory, logger zerolog.Logger) UpdateMenuCommandHandler {
	return UpdateMenuCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With().Str("component", "dashboard-menu").Logger(),
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler reading the time from now.
func (h UpdateMenuCommandHandler) WithClock(now func() time.Time) UpdateMenuCommandHandler {
	h.now = now
	return h
}

func (h UpdateMenuCommandHandler) Handle(ctx context.Context, cmd UpdateMenuCommand) (*menu.Menu, error) {
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

	menus := uow.MenuRepository()
	aggregate, s, err := access.NewOwnership(uow.StoreRepository()).Menu(ctx, menus, cmd.OwnerID(), cmd.MenuID())
	if err != nil {
		return nil, err
	}

	payload := cmd.Payload()
	details := payload.Details
	if rating, ok := aggregate.Rating(); ok {
		details.Rating = &rating
	}
	if !payload.HasDescription {
		details.Description = aggregate.Description()
	}

	now := h.now()
	if err = aggregate.Revise(details, now); err != nil {
		return nil, errInvalidMenu().WithCause(err)
	}
	aggregate.SyncTitle(s, now)

	if err = menus.Update(ctx, aggregate); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info().
		Str("menu_id", aggregate.ID().String()).
		Int("title_version", aggregate.TitleVersion()).
		Msg("menu updated")

	return aggregate, nil
}
