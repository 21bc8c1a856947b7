package seed_test

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockStoreRepository struct {
	ports.StoreRepository
	mock.Mock
}

func (m *MockStoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, aggregate *store.Store) error {
	return m.Called(ctx, aggregate).Error(0)
}

type MockMenuRepository struct {
	ports.MenuRepository
	mock.Mock
}

func (m *MockMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, aggregate *menu.Menu) error {
	return m.Called(ctx, aggregate).Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) StoreRepository() ports.StoreRepository {
	return m.Called().Get(0).(ports.StoreRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	return m.Called().Get(0).(ports.MenuRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	return m.Called().Get(0).(ports.UnitOfWork)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) RuntimeWeights(ctx context.Context) (kernel.RuntimeWeights, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.RuntimeWeights), args.Error(1)
}

func (m *MockSettingsRepository) SaveRuntimeWeights(ctx context.Context, weights kernel.RuntimeWeights) error {
	return m.Called(ctx, weights).Error(0)
}

