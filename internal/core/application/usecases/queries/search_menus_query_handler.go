package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

const searchPath = "menus/search"

// SearchMenusQueryHandler reads a bounded window of the catalogue, resolves
// the stores of the scanned menus and ranks the matches with the runtime
// weights.
type SearchMenusQueryHandler struct {
	menus    ports.MenuRepository
	stores   ports.StoreRepository
	settings ports.SettingsRepository
	ranker   services.MenuRanker
}

func NewSearchMenusQueryHandler(
	menus ports.MenuRepository,
	stores ports.StoreRepository,
	settings ports.SettingsRepository,
) SearchMenusQueryHandler {
	return SearchMenusQueryHandler{
		menus:    menus,
		stores:   stores,
		settings: settings,
		ranker:   services.NewMenuRanker(),
	}
}

func (h SearchMenusQueryHandler) Handle(ctx context.Context, query SearchMenusQuery) (SearchMenusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchMenusQueryResponse{}, err
	}

	candidates, err := h.Search(ctx, query.Criteria(), nil)
	if err != nil {
		return SearchMenusQueryResponse{}, err
	}

	titles := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if title := c.Title(); title != "" {
			titles = append(titles, title)
		}
	}
	return SearchMenusQueryResponse{Titles: titles}, nil
}

// Search returns the ranked candidates for criteria. A nil weights reads
// the stored runtime weights.
func (h SearchMenusQueryHandler) Search(
	ctx context.Context,
	criteria services.SearchCriteria,
	weights *kernel.RuntimeWeights,
) ([]services.Candidate, error) {
	limit := services.ClampSearchLimit(criteria.Limit)

	menus, err := h.menus.Scan(ctx, limit*services.ScanFactor)
	if err != nil {
		return nil, searchError(err)
	}

	seen := make(map[kernel.ID]struct{}, len(menus))
	storeIDs := make([]kernel.ID, 0, len(menus))
	for _, m := range menus {
		if !m.HasStore() {
			continue
		}
		if _, ok := seen[m.StoreID()]; ok {
			continue
		}
		seen[m.StoreID()] = struct{}{}
		storeIDs = append(storeIDs, m.StoreID())
	}

	stores, err := h.stores.GetMany(ctx, storeIDs)
	if err != nil {
		return nil, searchError(err)
	}

	if weights == nil {
		stored, settingsErr := h.settings.RuntimeWeights(ctx)
		if settingsErr != nil {
			return nil, searchError(settingsErr)
		}
		weights = &stored
	}

	criteria.Limit = limit
	return h.ranker.Search(menus, stores, criteria, *weights), nil
}

func searchError(err error) error {
	return wrapStorage(searchPath, err)
}
