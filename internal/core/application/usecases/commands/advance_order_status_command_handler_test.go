package commands_test

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	created := fixedNow.Add(-time.Minute)
	o, err := order.RestoreOrder(
		kernel.NewID(), "u1", kernel.MustIDFromString("s1"),
		status, order.PaymentStatusPaid, order.DemoReceiptID, 1,
		[]order.Item{{MenuID: "m1", Name: "a", Quantity: 1, Price: 1000, Currency: "KRW", LineTotal: 1000}},
		order.Totals{Base: 1000, Total: 1000},
		[]order.TimelineEntry{{Status: order.Pending, At: created}},
		created, created,
	)
	require.NoError(t, err)
	return o
}

func advanceHandler(factory *MockOrderUoWFactory, publisher *MockPublisher) commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(factory, publisher, nop).WithClock(clock)
}

func TestAdvanceOrderStatusCommandHandler_Handle_Advances(t *testing.T) {
	ctx := t.Context()
	o := restoredOrder(t, order.Pending)
	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), order.Confirmed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	publisher := new(MockPublisher)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, mock.MatchedBy(func(e order.Event) bool {
		return e.Kind == order.EventStatusChanged && e.Status == order.Confirmed && e.At.Equal(fixedNow)
	})).Return(errors.New("broker down")).Once()

	advanced, err := advanceHandler(factory, publisher).Handle(ctx, cmd)

	require.NoError(t, err, "publish failures are logged only")
	assert.True(t, advanced)
	assert.Equal(t, order.Confirmed, o.Status())
	require.Len(t, o.Timeline(), 2)
	assert.Equal(t, order.TimelineEntry{Status: order.Confirmed, At: fixedNow}, o.Timeline()[1])
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_NoOps(t *testing.T) {
	testCases := []struct {
		name    string
		current order.Status
		target  order.Status
	}{
		{"cancelled is never overwritten", order.Cancelled, order.Completed},
		{"same status", order.Preparing, order.Preparing},
		{"late earlier step", order.Completed, order.Confirmed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			o := restoredOrder(t, tc.current)
			cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), tc.target)
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			factory := new(MockOrderUoWFactory)
			mock.InOrder(
				factory.On("Create").Return(uow).Once(),
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			advanced, err := advanceHandler(factory, new(MockPublisher)).Handle(ctx, cmd)

			require.NoError(t, err)
			assert.False(t, advanced)
			assert.Equal(t, tc.current, o.Status())
			assert.Len(t, o.Timeline(), 1)
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestAdvanceOrderStatusCommandHandler_Handle_MissingOrder(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewID()
	cmd, err := commands.NewAdvanceOrderStatusCommand(id, order.Confirmed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	advanced, err := advanceHandler(factory, new(MockPublisher)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, advanced)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_Errors(t *testing.T) {
	t.Run("begin", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewAdvanceOrderStatusCommand(kernel.NewID(), order.Confirmed)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
		)

		_, err := advanceHandler(factory, new(MockPublisher)).Handle(ctx, cmd)

		require.Error(t, err)
		uow.AssertExpectations(t)
	})

	t.Run("update", func(t *testing.T) {
		ctx := t.Context()
		o := restoredOrder(t, order.Confirmed)
		cmd, _ := commands.NewAdvanceOrderStatusCommand(o.ID(), order.Preparing)
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			repo.On("Update", ctx, o).Return(errs.NewStorageError("orders/"+o.ID().String(), errors.New("io"))).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		advanced, err := advanceHandler(factory, new(MockPublisher)).Handle(ctx, cmd)

		require.Error(t, err)
		assert.False(t, advanced)
		assert.True(t, errs.HasCode(err, errs.CodeStorage))
		uow.AssertExpectations(t)
	})
}
