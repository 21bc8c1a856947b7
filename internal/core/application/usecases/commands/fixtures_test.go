package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	nop      = zerolog.Nop()
)

func clock() time.Time {
	return fixedNow
}

func testStore(t *testing.T, id, status string, available bool) *store.Store {
	t.Helper()
	s, err := store.RestoreStore(kernel.MustIDFromString(id), "owner-1", store.Profile{
		Name:     "호건치킨",
		Region:   "seoul_gangnam",
		Status:   status,
		Delivery: store.Delivery{Available: available, BaseFee: 3000, Rules: []any{}},
		Rating:   kernel.Rating{Score: 4.2, Count: 10},
	}, fixedNow, fixedNow)
	require.NoError(t, err)
	return s
}

func testMenu(t *testing.T, id, storeID string, price, stock float64) *menu.Menu {
	t.Helper()
	quantity, err := menu.StockOf(stock)
	require.NoError(t, err)

	var sid kernel.ID
	if storeID != "" {
		sid = kernel.MustIDFromString(storeID)
	}
	m, err := menu.RestoreMenu(kernel.MustIDFromString(id), sid, menu.Details{
		Name:     "menu " + id,
		Price:    price,
		Currency: "KRW",
		Stock:    quantity,
	}, "", 0, fixedNow, fixedNow)
	require.NoError(t, err)
	return m
}
