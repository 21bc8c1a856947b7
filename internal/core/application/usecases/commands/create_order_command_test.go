package commands_test

import (
	"encoding/json"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) any {
	t.Helper()
	var payload any
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload
}

func TestNewCreateOrderCommandFromPayload(t *testing.T) {
	t.Run("normalizes a valid payload", func(t *testing.T) {
		payload := decode(t, `{
			"user_id": "  user-1 ",
			"items": [
				{"menu_id": " m1 ", "qty": 2.7, "selected_options": [
					{"id": 7, "price": 500, "name": " 치즈 "},
					{"id": "", "price": 100},
					{"price": 100},
					"garbage",
					{"id": "sauce", "price": "abc", "label": "   "},
					{"id": "size", "price": "1000", "label": "라지", "name": "ignored"}
				]},
				{"menu_id": "m2", "qty": 1}
			]
		}`)

		cmd, err := commands.NewCreateOrderCommandFromPayload(payload)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "user-1", cmd.UserID())
		require.Len(t, cmd.Lines(), 2)

		first := cmd.Lines()[0]
		assert.Equal(t, kernel.MustIDFromString("m1"), first.MenuID)
		assert.Equal(t, 2, first.Quantity)
		assert.Equal(t, []order.SelectedOption{
			{ID: "7", Price: 500, Label: "치즈"},
			{ID: "sauce", Price: 0},
			{ID: "size", Price: 1000, Label: "라지"},
		}, first.SelectedOptions)

		assert.Empty(t, cmd.Lines()[1].SelectedOptions)
		assert.NotNil(t, cmd.Lines()[1].SelectedOptions)
	})

	t.Run("coerces loosely typed option ids and prices", func(t *testing.T) {
		payload := decode(t, `{"user_id": "u1", "items": [{"menu_id": "m1", "qty": 1, "selected_options": [
			{"id": {"k": 1}, "price": true},
			{"id": [1, "a"], "price": false},
			{"id": true, "price": [250]},
			{"id": [], "price": 100},
			{"id": "big", "price": [1, 2]}
		]}]}`)

		cmd, err := commands.NewCreateOrderCommandFromPayload(payload)

		require.NoError(t, err)
		assert.Equal(t, []order.SelectedOption{
			{ID: "[object Object]", Price: 1},
			{ID: "1,a", Price: 0},
			{ID: "true", Price: 250},
			{ID: "big", Price: 0},
		}, cmd.Lines()[0].SelectedOptions)
	})

	testCases := []struct {
		name string
		body string
		code string
	}{
		{"null body", `null`, errs.CodeOrderInvalidPayload},
		{"string body", `"order"`, errs.CodeOrderInvalidPayload},
		{"array body fails on user", `[]`, errs.CodeOrderInvalidUser},
		{"missing user", `{"items":[{"menu_id":"m1","qty":1}]}`, errs.CodeOrderInvalidUser},
		{"blank user wins over bad items", `{"user_id":"  ","items":"nope"}`, errs.CodeOrderInvalidUser},
		{"numeric user", `{"user_id":5,"items":[{"menu_id":"m1","qty":1}]}`, errs.CodeOrderInvalidUser},
		{"items not an array", `{"user_id":"u","items":{}}`, errs.CodeOrderEmptyItems},
		{"empty items", `{"user_id":"u","items":[]}`, errs.CodeOrderEmptyItems},
		{"item not an object", `{"user_id":"u","items":[1]}`, errs.CodeOrderInvalidItem},
		{"missing menu", `{"user_id":"u","items":[{"qty":1}]}`, errs.CodeOrderMissingMenu},
		{"blank menu", `{"user_id":"u","items":[{"menu_id":"  ","qty":1}]}`, errs.CodeOrderMissingMenu},
		{"missing menu wins over quantity", `{"user_id":"u","items":[{"qty":0}]}`, errs.CodeOrderMissingMenu},
		{"zero quantity", `{"user_id":"u","items":[{"menu_id":"m1","qty":0}]}`, errs.CodeOrderInvalidQuantity},
		{"fraction below one", `{"user_id":"u","items":[{"menu_id":"m1","qty":0.9}]}`, errs.CodeOrderInvalidQuantity},
		{"string quantity", `{"user_id":"u","items":[{"menu_id":"m1","qty":"2"}]}`, errs.CodeOrderInvalidQuantity},
		{"negative quantity", `{"user_id":"u","items":[{"menu_id":"m1","qty":-1}]}`, errs.CodeOrderInvalidQuantity},
		{"second item invalid", `{"user_id":"u","items":[{"menu_id":"m1","qty":1},null]}`, errs.CodeOrderInvalidItem},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommandFromPayload(decode(t, tc.body))

			appErr, ok := errs.AsAppError(err)
			require.True(t, ok, "expected an AppError, got %v", err)
			assert.Equal(t, tc.code, appErr.Code)
			assert.NotEmpty(t, appErr.Message)
		})
	}
}

func TestCreateOrderCommand(t *testing.T) {
	t.Run("typed constructor", func(t *testing.T) {
		m1 := kernel.MustIDFromString("m1")
		m2 := kernel.MustIDFromString("m2")

		cmd, err := commands.NewCreateOrderCommand("runtime-orchestrator", []services.DraftLine{
			{MenuID: m1, Quantity: 1},
			{MenuID: m2, Quantity: 1},
			{MenuID: m1, Quantity: 2},
		})

		require.NoError(t, err)
		assert.Equal(t, []kernel.ID{m1, m2}, cmd.MenuIDs())
	})

	t.Run("idempotency key is trimmed", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("u", []services.DraftLine{{MenuID: kernel.MustIDFromString("m1"), Quantity: 1}})
		require.NoError(t, err)

		assert.Equal(t, "abc", cmd.WithIdempotencyKey(" abc ").IdempotencyKey())
		assert.Empty(t, cmd.IdempotencyKey())
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		cmd := commands.CreateOrderCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})

	t.Run("typed constructor rejects bad lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("u", []services.DraftLine{{Quantity: 1}})
		assert.True(t, errs.HasCode(err, errs.CodeOrderMissingMenu))

		_, err = commands.NewCreateOrderCommand("u", []services.DraftLine{{MenuID: kernel.MustIDFromString("m1")}})
		assert.True(t, errs.HasCode(err, errs.CodeOrderInvalidQuantity))
	})
}
