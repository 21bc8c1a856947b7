package jobs_test

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/jobs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sweepNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func openOrder(t *testing.T, status order.Status, age time.Duration) *order.Order {
	t.Helper()
	created := sweepNow.Add(-age)
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

func TestProgressionSweepJob_Sweep(t *testing.T) {
	t.Run("applies only due steps above the current status", func(t *testing.T) {
		ctx := t.Context()
		orders, advancer := new(MockOrderRepository), new(MockAdvancer)
		fresh := openOrder(t, order.Pending, 5*time.Second)
		late := openOrder(t, order.Pending, 25*time.Second)
		confirmedLong := openOrder(t, order.Confirmed, time.Minute)

		orders.On("ListNonTerminal", ctx, jobs.SweepBatchSize).
			Return([]*order.Order{fresh, late, confirmedLong}, nil).Once()
		mock.InOrder(
			advancer.On("Handle", ctx, forStep(late.ID(), order.Confirmed)).Return(true, nil).Once(),
			advancer.On("Handle", ctx, forStep(late.ID(), order.Preparing)).Return(true, nil).Once(),
			advancer.On("Handle", ctx, forStep(confirmedLong.ID(), order.Preparing)).Return(true, nil).Once(),
			advancer.On("Handle", ctx, forStep(confirmedLong.ID(), order.Completed)).Return(false, nil).Once(),
		)

		job := jobs.NewProgressionSweepJob(orders, advancer, zerolog.Nop()).WithClock(func() time.Time { return sweepNow })
		advanced, err := job.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, advanced)
		orders.AssertExpectations(t)
		advancer.AssertExpectations(t)
	})

	t.Run("failed step skips the rest of that order", func(t *testing.T) {
		ctx := t.Context()
		orders, advancer := new(MockOrderRepository), new(MockAdvancer)
		broken := openOrder(t, order.Pending, time.Minute)
		healthy := openOrder(t, order.Preparing, time.Minute)

		orders.On("ListNonTerminal", ctx, jobs.SweepBatchSize).Return([]*order.Order{broken, healthy}, nil).Once()
		advancer.On("Handle", ctx, forStep(broken.ID(), order.Confirmed)).Return(false, errors.New("lock timeout")).Once()
		advancer.On("Handle", ctx, forStep(healthy.ID(), order.Completed)).Return(true, nil).Once()

		job := jobs.NewProgressionSweepJob(orders, advancer, zerolog.Nop()).WithClock(func() time.Time { return sweepNow })
		advanced, err := job.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, advanced)
		advancer.AssertExpectations(t)
	})

	t.Run("listing failure", func(t *testing.T) {
		ctx := t.Context()
		orders, advancer := new(MockOrderRepository), new(MockAdvancer)
		boom := errors.New("conn refused")
		orders.On("ListNonTerminal", ctx, jobs.SweepBatchSize).Return(nil, boom).Once()

		_, err := jobs.NewProgressionSweepJob(orders, advancer, zerolog.Nop()).Sweep(ctx)

		require.ErrorIs(t, err, boom)
		advancer.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestJobManager_StartAndStop(t *testing.T) {
	orders, advancer := new(MockOrderRepository), new(MockAdvancer)
	orders.On("ListNonTerminal", mock.Anything, jobs.SweepBatchSize).Return([]*order.Order{}, nil).Maybe()

	scheduler := jobs.NewProgressionScheduler(advancer, zerolog.Nop())
	manager := jobs.NewJobManager(scheduler, jobs.NewProgressionSweepJob(orders, advancer, zerolog.Nop()), zerolog.Nop())

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	disabled := jobs.NewJobManager(scheduler, nil, zerolog.Nop())
	require.NoError(t, disabled.StartAll())
	disabled.StopAll()
}
