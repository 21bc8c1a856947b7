package queries_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func openStore(t *testing.T, id, owner, region string, baseFee float64) *store.Store {
	t.Helper()
	s, err := store.RestoreStore(kernel.MustIDFromString(id), owner, store.Profile{
		Name:     "호건치킨 " + id,
		Region:   region,
		Status:   store.StatusOpen,
		Delivery: store.Delivery{Available: true, BaseFee: baseFee, Rules: []any{"최소주문 15000원"}},
		Rating:   kernel.Rating{Score: 4.2, Count: 80},
	}, at, at)
	require.NoError(t, err)
	return s
}

func stockedMenu(t *testing.T, id, storeID, name string, price float64, rating *kernel.Rating) *menu.Menu {
	t.Helper()
	stock, err := menu.StockOf(10)
	require.NoError(t, err)

	var sid kernel.ID
	if storeID != "" {
		sid = kernel.MustIDFromString(storeID)
	}
	m, err := menu.RestoreMenu(kernel.MustIDFromString(id), sid, menu.Details{
		Name:     name,
		Price:    price,
		Currency: menu.DefaultCurrency,
		Stock:    stock,
		Rating:   rating,
		OptionGroups: []menu.OptionGroup{{
			ID:      "size",
			Name:    "사이즈",
			Options: []menu.Option{{ID: "regular", Label: "레귤러", Price: 0}},
		}},
		Description: name + " 설명",
	}, "", 0, at, at)
	require.NoError(t, err)
	return m
}

func placedOrder(t *testing.T, storeID string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewID(), "user-1", kernel.MustIDFromString(storeID),
		[]order.Item{{MenuID: "m1", Quantity: 1}}, order.Totals{}, at)
	require.NoError(t, err)
	return o
}

func requireCode(t *testing.T, err error, code string) *errs.AppError {
	t.Helper()
	appErr, ok := errs.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}
