package commands

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a normalized order request: who orders and which
// lines. Lines keep the request order and are never merged.
//
// Example:
//
//	var payload any
//	_ = json.Unmarshal(body, &payload)
//
//	cmd, err := NewCreateOrderCommandFromPayload(payload)
//	if err != nil {
//	    return err // *errs.AppError with an order/* code
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID         string
	lines          []services.DraftLine
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command from already typed values.
// userID is trimmed and required, and every line needs a menu id and a
// positive quantity.
func NewCreateOrderCommand(userID string, lines []services.DraftLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := cmd.setLines(lines); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// NewCreateOrderCommandFromPayload normalizes a decoded JSON request body.
//
// Checks run in a fixed order and the first failure wins:
// order/invalid-payload, order/invalid-user, order/empty-items,
// order/invalid-item, order/missing-menu, order/invalid-quantity.
//
// Quantities must be JSON numbers; fractions are floored. Selected options
// without an id are dropped, numeric ids are stringified, a missing or
// non-numeric price becomes 0 and a blank label is omitted.
func NewCreateOrderCommandFromPayload(payload any) (CreateOrderCommand, error) {
	body, ok := payload.(map[string]any)
	if _, isArray := payload.([]any); isArray {
		// arrays are objects without fields: they fail on the user id
		body, ok = map[string]any{}, true
	}
	if !ok || body == nil {
		return CreateOrderCommand{}, errs.NewAppError(errs.CodeOrderInvalidPayload,
			"주문 요청 본문이 올바르지 않습니다.", "JSON 객체 형태로 전달해주세요.")
	}

	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	userID, _ := body["user_id"].(string)
	if err := cmd.setUserID(userID); err != nil {
		return CreateOrderCommand{}, err
	}

	rawItems, _ := body["items"].([]any)
	lines := make([]services.DraftLine, 0, len(rawItems))
	for _, raw := range rawItems {
		entry, isObject := raw.(map[string]any)
		if !isObject {
			return CreateOrderCommand{}, errs.NewAppError(errs.CodeOrderInvalidItem,
				"주문 항목 형식이 잘못되었습니다.", "menu_id와 qty를 포함한 객체 형태여야 합니다.")
		}

		menuIDRaw, _ := entry["menu_id"].(string)
		menuID, err := kernel.IDFromString(menuIDRaw)
		if err != nil {
			return CreateOrderCommand{}, errMissingMenu()
		}

		quantity, ok := flooredQuantity(entry["qty"])
		if !ok {
			return CreateOrderCommand{}, errInvalidQuantity()
		}

		lines = append(lines, services.DraftLine{
			MenuID:          menuID,
			Quantity:        quantity,
			SelectedOptions: normalizeOptions(entry["selected_options"]),
		})
	}

	if err := cmd.setLines(lines); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// WithIdempotencyKey returns a copy of the command carrying the client's
// idempotency key. Blank keys are ignored.
func (c CreateOrderCommand) WithIdempotencyKey(key string) CreateOrderCommand {
	c.idempotencyKey = strings.TrimSpace(key)
	return c
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the trimmed id of the ordering user.
func (c CreateOrderCommand) UserID() string {
	return c.userID
}

// Lines returns the requested lines in request order.
func (c CreateOrderCommand) Lines() []services.DraftLine {
	return c.lines
}

// IdempotencyKey returns the client's idempotency key, empty when none was sent.
func (c CreateOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

// MenuIDs returns the distinct menu ids of the lines in first-seen order.
func (c CreateOrderCommand) MenuIDs() []kernel.ID {
	seen := make(map[kernel.ID]struct{}, len(c.lines))
	ids := make([]kernel.ID, 0, len(c.lines))
	for _, line := range c.lines {
		if _, ok := seen[line.MenuID]; ok {
			continue
		}
		seen[line.MenuID] = struct{}{}
		ids = append(ids, line.MenuID)
	}
	return ids
}

func (c *CreateOrderCommand) setUserID(userID string) error {
	trimmed := strings.TrimSpace(userID)
	if trimmed == "" {
		return errs.NewAppError(errs.CodeOrderInvalidUser,
			"user_id는 필수 값입니다.", "로그인한 사용자 ID를 전달해주세요.")
	}

	c.userID = trimmed
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.DraftLine) error {
	if len(lines) == 0 {
		return errs.NewAppError(errs.CodeOrderEmptyItems,
			"최소 한 개의 주문 항목을 포함해야 합니다.", "items 배열을 확인해주세요.")
	}

	for _, line := range lines {
		if line.MenuID.IsZero() {
			return errMissingMenu()
		}
		if line.Quantity <= 0 {
			return errInvalidQuantity()
		}
	}

	c.lines = lines
	return nil
}

func errMissingMenu() *errs.AppError {
	return errs.NewAppError(errs.CodeOrderMissingMenu,
		"menu_id가 누락되었습니다.", "각 항목에 menu_id를 포함해주세요.")
}

func errInvalidQuantity() *errs.AppError {
	return errs.NewAppError(errs.CodeOrderInvalidQuantity,
		"수량(qty)은 1 이상의 정수여야 합니다.", "요청 수량을 다시 확인해주세요.")
}

func flooredQuantity(v any) (int, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	floored := math.Floor(f)
	if floored <= 0 || floored > math.MaxInt32 {
		return 0, false
	}
	return int(floored), true
}

func normalizeOptions(v any) []order.SelectedOption {
	raw, ok := v.([]any)
	if !ok {
		return []order.SelectedOption{}
	}

	options := make([]order.SelectedOption, 0, len(raw))
	for _, entry := range raw {
		option, isObject := entry.(map[string]any)
		if !isObject {
			continue
		}

		id := optionID(option["id"])
		if id == "" {
			continue
		}

		label, _ := option["label"].(string)
		if _, present := option["label"]; !present || option["label"] == nil {
			label, _ = option["name"].(string)
		}

		options = append(options, order.SelectedOption{
			ID:    id,
			Price: optionPrice(option["price"]),
			Label: strings.TrimSpace(label),
		})
	}
	return options
}

// optionID stringifies a present id. Arrays join their elements with commas;
// objects read as "[object Object]".
func optionID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(id)
	case []any:
		parts := make([]string, len(id))
		for i, part := range id {
			parts[i] = optionID(part)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

// optionPrice coerces a price to a number: booleans count as 1 and 0,
// numeric strings and single-element arrays are parsed, anything else or
// any non-finite result is 0.
func optionPrice(v any) float64 {
	var f float64
	switch p := v.(type) {
	case float64:
		f = p
	case bool:
		if p {
			return 1
		}
		return 0
	case string:
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0
		}
		f = parsed
	case []any:
		if len(p) > 1 {
			return 0
		}
		return optionPrice(optionID(p))
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
