package commands_test

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListNonTerminal(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListByStore(ctx context.Context, storeID kernel.ID, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, storeID, limit)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, aggregate *menu.Menu) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.ID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	result, _ := args.Get(0).(*menu.Menu)
	return result, args.Error(1)
}

func (m *MockMenuRepository) Scan(ctx context.Context, limit int) ([]*menu.Menu, error) {
	args := m.Called(ctx, limit)
	result, _ := args.Get(0).([]*menu.Menu)
	return result, args.Error(1)
}

func (m *MockMenuRepository) ListByStore(ctx context.Context, storeID kernel.ID, limit int) ([]*menu.Menu, error) {
	args := m.Called(ctx, storeID, limit)
	result, _ := args.Get(0).([]*menu.Menu)
	return result, args.Error(1)
}

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, aggregate *store.Store) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockStoreRepository) Get(ctx context.Context, id kernel.ID) (*store.Store, error) {
	args := m.Called(ctx, id)
	result, _ := args.Get(0).(*store.Store)
	return result, args.Error(1)
}

func (m *MockStoreRepository) GetMany(ctx context.Context, ids []kernel.ID) (map[kernel.ID]*store.Store, error) {
	args := m.Called(ctx, ids)
	result, _ := args.Get(0).(map[kernel.ID]*store.Store)
	return result, args.Error(1)
}

func (m *MockStoreRepository) FindByOwner(ctx context.Context, ownerID string) (*store.Store, error) {
	args := m.Called(ctx, ownerID)
	result, _ := args.Get(0).(*store.Store)
	return result, args.Error(1)
}

// MockUoW implements every unit of work flavour of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

// catalogReader hands out fixed repositories without expectations.
type catalogReader struct {
	menus  ports.MenuRepository
	stores ports.StoreRepository
}

func (c catalogReader) MenuRepository() ports.MenuRepository {
	return c.menus
}

func (c catalogReader) StoreRepository() ports.StoreRepository {
	return c.stores
}

type MockMenuSearcher struct{ mock.Mock }

func (m *MockMenuSearcher) Search(
	ctx context.Context,
	criteria services.SearchCriteria,
	weights *kernel.RuntimeWeights,
) ([]services.Candidate, error) {
	args := m.Called(ctx, criteria, weights)
	result, _ := args.Get(0).([]services.Candidate)
	return result, args.Error(1)
}

type MockScheduler struct{ mock.Mock }

func (m *MockScheduler) Schedule(orderID kernel.ID, createdAt time.Time) {
	m.Called(orderID, createdAt)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event order.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) RuntimeWeights(ctx context.Context) (kernel.RuntimeWeights, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.RuntimeWeights), args.Error(1)
}

func (m *MockSettingsRepository) SaveRuntimeWeights(ctx context.Context, weights kernel.RuntimeWeights) error {
	args := m.Called(ctx, weights)
	return args.Error(0)
}

type MockMenuLoader struct{ mock.Mock }

func (m *MockMenuLoader) LoadMenuWithStore(ctx context.Context, menuID kernel.ID) (services.MenuContext, error) {
	args := m.Called(ctx, menuID)
	return args.Get(0).(services.MenuContext), args.Error(1)
}

type MockOrderPlacer struct{ mock.Mock }

func (m *MockOrderPlacer) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}
