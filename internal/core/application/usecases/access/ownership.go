// Package access resolves which store, menu or order a store owner may
// manage. Every dashboard operation goes through it before touching data.
package access

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// Ownership answers ownership questions against the given repositories,
// which may belong to a running transaction.
type Ownership struct {
	stores ports.StoreRepository
}

func NewOwnership(stores ports.StoreRepository) Ownership {
	return Ownership{stores: stores}
}

// PrimaryStore returns the first store registered by ownerID.
func (o Ownership) PrimaryStore(ctx context.Context, ownerID string) (*store.Store, error) {
	s, err := o.stores.FindByOwner(ctx, ownerID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewAppError(errs.CodeStoreNotFound, "스토어 정보를 찾을 수 없습니다.", "스토어를 먼저 생성해주세요.")
	}
	if err != nil {
		return nil, storageError("stores/by-owner", err)
	}
	return s, nil
}

// Store returns the store identified by storeID when ownerID owns it. A blank
// storeID selects the owner's primary store.
func (o Ownership) Store(ctx context.Context, ownerID, storeID string) (*store.Store, error) {
	id, err := kernel.IDFromString(storeID)
	if err != nil {
		return o.PrimaryStore(ctx, ownerID)
	}

	s, err := o.stores.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewAppError(errs.CodeStoreNotFound, "스토어 정보를 찾을 수 없습니다.", "storeId 값을 다시 확인해주세요.")
	}
	if err != nil {
		return nil, storageError("stores/"+id.String(), err)
	}

	if !s.IsOwnedBy(ownerID) {
		return nil, errs.NewAppError(errs.CodeStoreUnauthorized, "스토어에 대한 권한이 없습니다.", "")
	}
	return s, nil
}

// Menu loads a menu and checks that ownerID owns its store.
func (o Ownership) Menu(ctx context.Context, menus ports.MenuRepository, ownerID, menuID string) (*menu.Menu, *store.Store, error) {
	id, err := kernel.IDFromString(menuID)
	if err != nil {
		return nil, nil, menuNotFound()
	}

	m, err := menus.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil, menuNotFound()
	}
	if err != nil {
		return nil, nil, storageError("menus/"+id.String(), err)
	}

	s, err := o.ownedParent(ctx, ownerID, m.StoreID())
	if err != nil {
		return nil, nil, err
	}
	return m, s, nil
}

// Order loads an order and checks that ownerID owns its store.
func (o Ownership) Order(ctx context.Context, orders ports.OrderRepository, ownerID, orderID string) (*order.Order, error) {
	id, err := kernel.IDFromString(orderID)
	if err != nil {
		return nil, orderNotFound()
	}

	placed, err := orders.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, orderNotFound()
	}
	if err != nil {
		return nil, storageError("orders/"+id.String(), err)
	}

	if _, err = o.ownedParent(ctx, ownerID, placed.StoreID()); err != nil {
		return nil, err
	}
	return placed, nil
}

// ownedParent resolves the store a menu or order belongs to. A document
// without a store id cannot be owned by anyone.
func (o Ownership) ownedParent(ctx context.Context, ownerID string, storeID kernel.ID) (*store.Store, error) {
	if storeID.IsZero() {
		return nil, errs.NewAppError(errs.CodeStoreNotFound, "스토어 정보를 찾을 수 없습니다.", "storeId 값을 다시 확인해주세요.")
	}
	return o.Store(ctx, ownerID, storeID.String())
}

func menuNotFound() error {
	return errs.NewAppError(errs.CodeMenuNotFound, "메뉴를 찾을 수 없습니다.", "menuId 값을 다시 확인해주세요.")
}

func orderNotFound() error {
	return errs.NewAppError(errs.CodeOrderNotFound, "주문을 찾을 수 없습니다.", "orderId 값을 다시 확인해주세요.")
}

func storageError(path string, err error) error {
	if _, ok := errs.AsAppError(err); ok {
		return err
	}
	return errs.NewStorageError(path, err)
}
