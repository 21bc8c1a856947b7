package jobs_test

import (
	"context"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockAdvancer struct{ mock.Mock }

func (m *MockAdvancer) Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (bool, error) {
	args := m.Called(ctx, cmd)
	return args.Bool(0), args.Error(1)
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

// forStep matches the command advancing orderID to target.
func forStep(orderID kernel.ID, target order.Status) any {
	return mock.MatchedBy(func(cmd commands.AdvanceOrderStatusCommand) bool {
		return cmd.OrderID() == orderID && cmd.Target() == target
	})
}
