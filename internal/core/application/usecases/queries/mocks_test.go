package queries_test

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"

	"github.com/stretchr/testify/mock"
)

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, aggregate *store.Store) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockStoreRepository) Get(ctx context.Context, id kernel.ID) (*store.Store, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*store.Store)
	return s, args.Error(1)
}

func (m *MockStoreRepository) GetMany(ctx context.Context, ids []kernel.ID) (map[kernel.ID]*store.Store, error) {
	args := m.Called(ctx, ids)
	s, _ := args.Get(0).(map[kernel.ID]*store.Store)
	return s, args.Error(1)
}

func (m *MockStoreRepository) FindByOwner(ctx context.Context, ownerID string) (*store.Store, error) {
	args := m.Called(ctx, ownerID)
	s, _ := args.Get(0).(*store.Store)
	return s, args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, aggregate *menu.Menu) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.ID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*menu.Menu)
	return v, args.Error(1)
}

func (m *MockMenuRepository) Scan(ctx context.Context, limit int) ([]*menu.Menu, error) {
	args := m.Called(ctx, limit)
	v, _ := args.Get(0).([]*menu.Menu)
	return v, args.Error(1)
}

func (m *MockMenuRepository) ListByStore(ctx context.Context, storeID kernel.ID, limit int) ([]*menu.Menu, error) {
	args := m.Called(ctx, storeID, limit)
	v, _ := args.Get(0).([]*menu.Menu)
	return v, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*order.Order)
	return v, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*order.Order)
	return v, args.Error(1)
}

func (m *MockOrderRepository) ListNonTerminal(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	v, _ := args.Get(0).([]*order.Order)
	return v, args.Error(1)
}

func (m *MockOrderRepository) ListByStore(ctx context.Context, storeID kernel.ID, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, storeID, limit)
	v, _ := args.Get(0).([]*order.Order)
	return v, args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) RuntimeWeights(ctx context.Context) (kernel.RuntimeWeights, error) {
	args := m.Called(ctx)
	w, _ := args.Get(0).(kernel.RuntimeWeights)
	return w, args.Error(1)
}

func (m *MockSettingsRepository) SaveRuntimeWeights(ctx context.Context, weights kernel.RuntimeWeights) error {
	return m.Called(ctx, weights).Error(0)
}
