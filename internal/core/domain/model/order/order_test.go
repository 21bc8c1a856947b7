package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewID(),
		"user-1",
		kernel.MustIDFromString("store-1"),
		[]order.Item{{MenuID: "menu-1", Name: "후라이드 치킨", Quantity: 1, Price: 18000, Currency: "KRW", LineTotal: 18000}},
		order.Totals{Base: 18000, Total: 18000},
		placedAt,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("records_creation_defaults", func(t *testing.T) {
		o := newPendingOrder(t)

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "paid", o.PaymentStatus())
		assert.Equal(t, "demo123", o.ReceiptID())
		assert.Equal(t, 1, o.ETAMinutes())
		assert.Equal(t, []order.TimelineEntry{{Status: order.Pending, At: placedAt}}, o.Timeline())
		assert.Equal(t, placedAt, o.CreatedAt())
		assert.Equal(t, placedAt, o.UpdatedAt())
	})

	t.Run("requires_user_store_and_items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewID(), " ", kernel.ID{}, nil, order.Totals{}, placedAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "user id")
		assert.Contains(t, err.Error(), "store id")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("moves_forward_and_appends_timeline", func(t *testing.T) {
		o := newPendingOrder(t)
		at := placedAt.Add(10 * time.Second)

		changed := o.Advance(order.Confirmed, at)

		assert.True(t, changed)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, at, o.UpdatedAt())
		require.Len(t, o.Timeline(), 2)
		assert.Equal(t, order.TimelineEntry{Status: order.Confirmed, At: at}, o.Timeline()[1])
	})

	t.Run("repeating_a_step_is_a_noop", func(t *testing.T) {
		o := newPendingOrder(t)
		require.True(t, o.Advance(order.Confirmed, placedAt))

		assert.False(t, o.Advance(order.Confirmed, placedAt.Add(time.Second)))
		assert.Len(t, o.Timeline(), 2)
	})

	t.Run("overtaken_step_is_a_noop", func(t *testing.T) {
		o := newPendingOrder(t)
		require.True(t, o.Advance(order.Preparing, placedAt))

		assert.False(t, o.Advance(order.Confirmed, placedAt.Add(time.Second)))
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("cancelled_never_changes", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewID(), "user-1", kernel.MustIDFromString("store-1"), order.Cancelled,
			"paid", "demo123", 1, nil, order.Totals{}, nil, placedAt, placedAt)
		require.NoError(t, err)

		assert.False(t, o.Advance(order.Completed, placedAt))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Empty(t, o.Timeline())
	})

	t.Run("full_sequence_yields_ordered_timeline", func(t *testing.T) {
		o := newPendingOrder(t)
		for _, step := range order.Progression {
			require.True(t, o.Advance(step.Target, placedAt.Add(step.Delay)))
		}

		statuses := make([]order.Status, 0, len(o.Timeline()))
		for _, entry := range o.Timeline() {
			statuses = append(statuses, entry.Status)
		}
		assert.Equal(t, []order.Status{order.Pending, order.Confirmed, order.Preparing, order.Completed}, statuses)
	})
}

func TestRestoreOrder_BlankStatusIsKept(t *testing.T) {
	o, err := order.RestoreOrder(kernel.NewID(), "user-1", kernel.MustIDFromString("store-1"), "",
		"paid", "demo123", 1, nil, order.Totals{}, nil, placedAt, placedAt)

	require.NoError(t, err)
	assert.Equal(t, order.Status(""), o.Status())
	assert.Equal(t, -1, o.Status().Rank())
}

func TestStoredStatus(t *testing.T) {
	blank, onHold := "", "on_hold"

	assert.Equal(t, order.Pending, order.StoredStatus(nil))
	assert.Equal(t, order.Status(""), order.StoredStatus(&blank))
	assert.Equal(t, order.Status("on_hold"), order.StoredStatus(&onHold))
}
