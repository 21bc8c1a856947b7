package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/store"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newStore(t *testing.T, id, region, status string, available bool, baseFee float64) *store.Store {
	t.Helper()
	s, err := store.RestoreStore(kernel.MustIDFromString(id), "owner-"+id, store.Profile{
		Name:     "store " + id,
		Region:   region,
		Status:   status,
		Delivery: store.Delivery{Available: available, BaseFee: baseFee, Rules: []any{}},
	}, now, now)
	require.NoError(t, err)
	return s
}

func openStore(t *testing.T, id string) *store.Store {
	t.Helper()
	return newStore(t, id, "seoul_gangnam", "open", true, 3000)
}

type menuSpec struct {
	id, storeID, name, title string
	price                    float64
	stock                    menu.Stock
	rating                   float64
	groups                   []menu.OptionGroup
}

func newMenu(t *testing.T, spec menuSpec) *menu.Menu {
	t.Helper()
	var storeID kernel.ID
	if spec.storeID != "" {
		storeID = kernel.MustIDFromString(spec.storeID)
	}
	m, err := menu.RestoreMenu(kernel.MustIDFromString(spec.id), storeID, menu.Details{
		Name:         spec.name,
		Price:        spec.price,
		Stock:        spec.stock,
		OptionGroups: spec.groups,
		Rating:       &kernel.Rating{Score: spec.rating, Count: 1},
	}, spec.title, 1, now, now)
	require.NoError(t, err)
	return m
}

func stockOf(t *testing.T, q float64) menu.Stock {
	t.Helper()
	s, err := menu.StockOf(q)
	require.NoError(t, err)
	return s
}
