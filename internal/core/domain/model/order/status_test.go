package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Rank(t *testing.T) {
	testCases := []struct {
		status order.Status
		rank   int
	}{
		{order.Pending, 0},
		{order.Confirmed, 1},
		{order.Preparing, 2},
		{order.Completed, 3},
		{order.Cancelled, 99},
		{order.Status("refunded"), -1},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			assert.Equal(t, tc.rank, tc.status.Rank())
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Preparing.IsTerminal())
}

func TestDueSteps(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		elapsed time.Duration
		targets []order.Status
	}{
		{"nothing_due", 9 * time.Second, nil},
		{"first_step", 10 * time.Second, []order.Status{order.Confirmed}},
		{"two_steps", 39 * time.Second, []order.Status{order.Confirmed, order.Preparing}},
		{"all_steps", time.Hour, []order.Status{order.Confirmed, order.Preparing, order.Completed}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var targets []order.Status
			for _, step := range order.DueSteps(created, created.Add(tc.elapsed)) {
				targets = append(targets, step.Target)
			}
			assert.Equal(t, tc.targets, targets)
		})
	}
}
