package seed

import (
	"context"
	"errors"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// Seeder writes a DataSet. Existing stores and menus with the same ids are
// overwritten, so seeding twice converges to the same state.
type Seeder struct {
	uowFactory ports.UnitOfWorkFactory
	settings   ports.SettingsRepository
	logger     zerolog.Logger
}

func NewSeeder(uowFactory ports.UnitOfWorkFactory, settings ports.SettingsRepository, logger zerolog.Logger) Seeder {
	return Seeder{
		uowFactory: uowFactory,
		settings:   settings,
		logger:     logger.With().Str("component", "seeder").Logger(),
	}
}

// Apply stores the catalog in one transaction, then the ranking weights.
func (s Seeder) Apply(ctx context.Context, data DataSet) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	stores := uow.StoreRepository()
	for _, st := range data.Stores {
		err := stores.Update(ctx, st)
		if errors.Is(err, errs.ErrObjectNotFound) {
			err = stores.Add(ctx, st)
		}
		if err != nil {
			return err
		}
	}

	menus := uow.MenuRepository()
	for _, m := range data.Menus {
		err := menus.Update(ctx, m)
		if errors.Is(err, errs.ErrObjectNotFound) {
			err = menus.Add(ctx, m)
		}
		if err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if data.Weights != nil {
		if err := s.settings.SaveRuntimeWeights(ctx, *data.Weights); err != nil {
			return err
		}
	}

	s.logger.Info().
		Int("stores", len(data.Stores)).
		Int("menus", len(data.Menus)).
		Bool("weights", data.Weights != nil).
		Msg("seed applied")
	return nil
}
