package queries

import (
	"context"

	"marketplace/internal/core/application/usecases/access"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/ports"
)

// OwnerQueriesHandler serves the read side of the owner dashboard. Every
// read is checked against the owner's stores first.
type OwnerQueriesHandler struct {
	stores    ports.StoreRepository
	menus     ports.MenuRepository
	orders    ports.OrderRepository
	ownership access.Ownership
}

func NewOwnerQueriesHandler(
	stores ports.StoreRepository,
	menus ports.MenuRepository,
	orders ports.OrderRepository,
) OwnerQueriesHandler {
	return OwnerQueriesHandler{
		stores:    stores,
		menus:     menus,
		orders:    orders,
		ownership: access.NewOwnership(stores),
	}
}

// PrimaryStore returns the owner's first store; the query target is ignored.
func (h OwnerQueriesHandler) PrimaryStore(ctx context.Context, query OwnerQuery) (*store.Store, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.ownership.PrimaryStore(ctx, query.OwnerID())
}

// ListMenus returns the newest menus of the target store, or of the primary
// store when no store is named.
func (h OwnerQueriesHandler) ListMenus(ctx context.Context, query OwnerQuery) ([]*menu.Menu, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s, err := h.ownership.Store(ctx, query.OwnerID(), query.Target())
	if err != nil {
		return nil, err
	}

	menus, err := h.menus.ListByStore(ctx, s.ID(), OwnerMenusLimit)
	if err != nil {
		return nil, wrapStorage("menus", err)
	}
	return menus, nil
}

// ListOrders returns the newest orders of the target store, or of the
// primary store when no store is named.
func (h OwnerQueriesHandler) ListOrders(ctx context.Context, query OwnerQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s, err := h.ownership.Store(ctx, query.OwnerID(), query.Target())
	if err != nil {
		return nil, err
	}

	orders, err := h.orders.ListByStore(ctx, s.ID(), OwnerOrdersLimit)
	if err != nil {
		return nil, wrapStorage("orders", err)
	}
	return orders, nil
}

// Order returns the target order when it belongs to one of the owner's
// stores.
func (h OwnerQueriesHandler) Order(ctx context.Context, query OwnerQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.ownership.Order(ctx, h.orders, query.OwnerID(), query.Target())
}
