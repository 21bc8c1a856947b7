package http_test

import (
	"context"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"

	"github.com/stretchr/testify/mock"
)

type MockOrderPlacer struct {
	mock.Mock
}

func (m *MockOrderPlacer) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}

type MockOrderStatusReader struct {
	mock.Mock
}

func (m *MockOrderStatusReader) Handle(ctx context.Context, query queries.GetOrderStatusQuery) (queries.GetOrderStatusQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderStatusQueryResponse), args.Error(1)
}

type MockMenuSearcher struct {
	mock.Mock
}

func (m *MockMenuSearcher) Handle(ctx context.Context, query queries.SearchMenusQuery) (queries.SearchMenusQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.SearchMenusQueryResponse), args.Error(1)
}

type MockMenuDetailReader struct {
	mock.Mock
}

func (m *MockMenuDetailReader) Handle(ctx context.Context, query queries.GetMenuDetailQuery) (queries.GetMenuDetailQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetMenuDetailQueryResponse), args.Error(1)
}

type MockOrchestrator struct {
	mock.Mock
}

func (m *MockOrchestrator) Handle(ctx context.Context, cmd commands.OrchestrateCommand) (commands.OrchestrateResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.OrchestrateResult), args.Error(1)
}

type MockOwnerReader struct {
	mock.Mock
}

func (m *MockOwnerReader) PrimaryStore(ctx context.Context, query queries.OwnerQuery) (*store.Store, error) {
	args := m.Called(ctx, query)
	if s := args.Get(0); s != nil {
		return s.(*store.Store), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOwnerReader) ListMenus(ctx context.Context, query queries.OwnerQuery) ([]*menu.Menu, error) {
	args := m.Called(ctx, query)
	if menus := args.Get(0); menus != nil {
		return menus.([]*menu.Menu), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOwnerReader) ListOrders(ctx context.Context, query queries.OwnerQuery) ([]*order.Order, error) {
	args := m.Called(ctx, query)
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOwnerReader) Order(ctx context.Context, query queries.OwnerQuery) (*order.Order, error) {
	args := m.Called(ctx, query)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStoreUpdater struct {
	mock.Mock
}

func (m *MockStoreUpdater) Handle(ctx context.Context, cmd commands.UpdateStoreCommand) (commands.UpdateStoreResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.UpdateStoreResult), args.Error(1)
}

type MockMenuCreator struct {
	mock.Mock
}

func (m *MockMenuCreator) Handle(ctx context.Context, cmd commands.CreateMenuCommand) (*menu.Menu, error) {
	args := m.Called(ctx, cmd)
	if created := args.Get(0); created != nil {
		return created.(*menu.Menu), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMenuUpdater struct {
	mock.Mock
}

func (m *MockMenuUpdater) Handle(ctx context.Context, cmd commands.UpdateMenuCommand) (*menu.Menu, error) {
	args := m.Called(ctx, cmd)
	if updated := args.Get(0); updated != nil {
		return updated.(*menu.Menu), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMenuDeleter struct {
	mock.Mock
}

func (m *MockMenuDeleter) Handle(ctx context.Context, cmd commands.DeleteMenuCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

// ownerTarget matches an owner query by its owner and target.
func ownerTarget(ownerID, target string) any {
	return mock.MatchedBy(func(q queries.OwnerQuery) bool {
		return q.OwnerID() == ownerID && q.Target() == target
	})
}
