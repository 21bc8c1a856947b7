package store_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openProfile() store.Profile {
	return store.Profile{
		Name:     "호건치킨",
		Region:   "seoul_gangnam",
		Status:   "open",
		Delivery: store.Delivery{Available: true, BaseFee: 3000},
		Rating:   kernel.Rating{Score: 4.7, Count: 12},
	}
}

func TestNewStore(t *testing.T) {
	t.Run("valid_profile", func(t *testing.T) {
		s, err := store.NewStore(kernel.NewID(), "owner-1", openProfile())

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "호건치킨", s.Name())
		assert.True(t, s.IsOwnedBy("owner-1"))
		assert.False(t, s.IsOwnedBy("owner-2"))
		assert.NotNil(t, s.Delivery().Rules)
	})

	t.Run("status_defaults_to_open", func(t *testing.T) {
		profile := openProfile()
		profile.Status = "  "

		s, err := store.NewStore(kernel.NewID(), "owner-1", profile)

		require.NoError(t, err)
		assert.Equal(t, store.StatusOpen, s.Status())
	})

	t.Run("name_and_region_required", func(t *testing.T) {
		_, err := store.NewStore(kernel.NewID(), "owner-1", store.Profile{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "region")
	})

	t.Run("zero_id_rejected", func(t *testing.T) {
		_, err := store.NewStore(kernel.ID{}, "owner-1", openProfile())

		require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	})
}

func TestStore_AcceptsOrders(t *testing.T) {
	testCases := []struct {
		name      string
		status    string
		available bool
		expected  error
	}{
		{"open_and_delivering", "open", true, nil},
		{"status_is_case_insensitive", "OPEN", true, nil},
		{"closed", "closed", true, store.ErrStoreIsClosed},
		{"paused_and_not_delivering_reports_closed_first", "paused", false, store.ErrStoreIsClosed},
		{"open_but_not_delivering", "open", false, store.ErrDeliveryUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profile := openProfile()
			profile.Status = tc.status
			profile.Delivery.Available = tc.available
			s, err := store.RestoreStore(kernel.NewID(), "owner-1", profile, time.Time{}, time.Time{})
			require.NoError(t, err)

			err = s.AcceptsOrders()

			if tc.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestStore_InRegion(t *testing.T) {
	s, err := store.NewStore(kernel.NewID(), "owner-1", openProfile())
	require.NoError(t, err)

	assert.True(t, s.InRegion("SEOUL_GANGNAM"))
	assert.False(t, s.InRegion("busan"))
}

func TestStore_UpdateProfile(t *testing.T) {
	s, err := store.NewStore(kernel.NewID(), "owner-1", openProfile())
	require.NoError(t, err)
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	profile := openProfile()
	profile.Name = "호건치킨 2호점"
	profile.Status = "closed"
	require.NoError(t, s.UpdateProfile(profile, at))

	assert.Equal(t, "호건치킨 2호점", s.Name())
	assert.False(t, s.IsOpen())
	assert.Equal(t, at, s.UpdatedAt())

	err = s.UpdateProfile(store.Profile{Name: "x"}, at)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "호건치킨 2호점", s.Name())
}

func TestStore_ZeroValueIsInvalid(t *testing.T) {
	var s *store.Store

	require.ErrorIs(t, s.Validate(), store.ErrStoreIsNotConstructed)
}
