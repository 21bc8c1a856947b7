package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// GetMenuDetailQueryHandler loads a menu with its store. Its
// LoadMenuWithStore is also how order placement and orchestration resolve
// a menu.
type GetMenuDetailQueryHandler struct {
	menus  ports.MenuRepository
	stores ports.StoreRepository
}

func NewGetMenuDetailQueryHandler(menus ports.MenuRepository, stores ports.StoreRepository) GetMenuDetailQueryHandler {
	return GetMenuDetailQueryHandler{menus: menus, stores: stores}
}

func (h GetMenuDetailQueryHandler) Handle(ctx context.Context, query GetMenuDetailQuery) (GetMenuDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuDetailQueryResponse{}, err
	}

	loaded, err := h.LoadMenuWithStore(ctx, query.MenuID())
	if err != nil {
		return GetMenuDetailQueryResponse{}, err
	}
	m, s := loaded.Menu, loaded.Store

	title := m.Title()
	if title == "" {
		title = m.Name()
	}

	groups := m.OptionGroups()
	if groups == nil {
		groups = []menu.OptionGroup{}
	}

	rules := s.Delivery().Rules
	if rules == nil {
		rules = []any{}
	}

	rating := s.Rating()
	if own, ok := m.Rating(); ok {
		rating = own
	}

	return GetMenuDetailQueryResponse{
		Title:         title,
		OptionGroups:  groups,
		Description:   m.Description(),
		DeliveryRules: rules,
		Rating:        &rating,
	}, nil
}

// LoadMenuWithStore returns menu/not-found for an unknown menu,
// menu/missing-store for a menu without a store link and store/not-found
// when the linked store does not exist.
func (h GetMenuDetailQueryHandler) LoadMenuWithStore(ctx context.Context, menuID kernel.ID) (services.MenuContext, error) {
	path := "menus/" + menuID.String()

	m, err := h.menus.Get(ctx, menuID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return services.MenuContext{}, menuNotFound()
		}
		return services.MenuContext{}, wrapStorage(path, err)
	}

	if !m.HasStore() {
		return services.MenuContext{}, errs.NewAppError(errs.CodeMenuMissingStore,
			"메뉴에 연결된 매장 정보가 없습니다.", "시드 데이터 혹은 메뉴 문서를 확인해주세요.")
	}

	s, err := h.stores.Get(ctx, m.StoreID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return services.MenuContext{}, errs.NewAppError(errs.CodeStoreNotFound,
				"연결된 매장 정보를 찾을 수 없습니다.", "store 문서가 존재하는지 확인해주세요.")
		}
		return services.MenuContext{}, wrapStorage(path, err)
	}

	return services.MenuContext{Menu: m, Store: s}, nil
}

// wrapStorage keeps API errors and turns anything else into storage/error
// at path.
func wrapStorage(path string, err error) error {
	if _, ok := errs.AsAppError(err); ok {
		return err
	}
	return errs.NewStorageError(path, err)
}
