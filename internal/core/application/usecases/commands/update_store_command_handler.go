package commands

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/access"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// StoreMenusSyncLimit bounds how many menus a store update re-titles.
const StoreMenusSyncLimit = 1000

// UpdateStoreResult is the stored profile and the title of the store's
// newest menu after re-titling; TitlePreview is empty for a store without
// menus.
type UpdateStoreResult struct {
	Store        *store.Store
	TitlePreview string
}

// UpdateStoreCommandHandler updates the owner's primary store and re-derives
// the titles of its menus in the same transaction, since every title embeds
// store fields.
type UpdateStoreCommandHandler struct {
	uowFactory CatalogUoWFactory
	logger     zerolog.Logger
	now        func() time.Time
}

func NewUpdateStoreCommandHandler(uowFactory CatalogUoWFactory, logger zerolog.Logger) UpdateStoreCommandHandler {
	return UpdateStoreCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With().Str("component", "dashboard-store").Logger(),
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler reading the time from now.
func (h UpdateStoreCommandHandler) WithClock(now func() time.Time) UpdateStoreCommandHandler {
	h.now = now
	return h
}

func (h UpdateStoreCommandHandler) Handle(ctx context.Context, cmd UpdateStoreCommand) (UpdateStoreResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateStoreResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateStoreResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stores, menus := uow.StoreRepository(), uow.MenuRepository()
	aggregate, err := access.NewOwnership(stores).PrimaryStore(ctx, cmd.OwnerID())
	if err != nil {
		return UpdateStoreResult{}, err
	}

	now := h.now()
	if err = aggregate.UpdateProfile(cmd.Profile(), now); err != nil {
		return UpdateStoreResult{}, errs.NewAppError(errs.CodeStoreInvalidPayload,
			"스토어 이름과 지역은 필수입니다.", "name, region 값을 확인해주세요.").WithCause(err)
	}
	if err = stores.Update(ctx, aggregate); err != nil {
		return UpdateStoreResult{}, err
	}

	owned, err := menus.ListByStore(ctx, aggregate.ID(), StoreMenusSyncLimit)
	if err != nil {
		return UpdateStoreResult{}, err
	}

	retitled := 0
	for _, m := range owned {
		if !m.SyncTitle(aggregate, now) {
			continue
		}
		if err = menus.Update(ctx, m); err != nil {
			return UpdateStoreResult{}, err
		}
		retitled++
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateStoreResult{}, err
	}

	h.logger.Info().
		Str("store_id", aggregate.ID().String()).
		Int("menus_retitled", retitled).
		Msg("store updated")

	result := UpdateStoreResult{Store: aggregate}
	if len(owned) > 0 {
		result.TitlePreview = owned[0].Title()
	}
	return result, nil
}
