package commands

import (
	"math"
	"strings"

	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/pkg/errs"
)

// MenuPayload is a normalized menu body of the owner dashboard.
// HasDescription tells an omitted description apart from an empty one: an
// update keeps the stored description when it was omitted.
type MenuPayload struct {
	Details        menu.Details
	HasDescription bool
}

// ParseMenuPayload normalizes a decoded menu body. Name, price and stock are
// required; price and stock accept numbers, numeric strings, booleans and
// null. Currency defaults to KRW, non-string images are dropped and option
// groups default to none.
func ParseMenuPayload(payload any) (MenuPayload, error) {
	body, ok := payload.(map[string]any)
	if _, isArray := payload.([]any); isArray {
		body, ok = map[string]any{}, true
	}
	if !ok || body == nil {
		return MenuPayload{}, errs.NewAppError(errs.CodeMenuInvalidPayload,
			"메뉴 요청 본문이 올바르지 않습니다.", "JSON 객체 형태로 전달해주세요.")
	}

	name := looseString(body["name"], "")
	rawPrice, hasPrice := body["price"]
	rawStock, hasStock := body["stock"]
	price := looseNumber(rawPrice, hasPrice)
	stock := looseNumber(rawStock, hasStock)

	if strings.TrimSpace(name) == "" || !isFinite(price) || !isFinite(stock) {
		return MenuPayload{}, errInvalidMenu()
	}

	description, hasDescription := body["description"].(string)

	return MenuPayload{
		Details: menu.Details{
			Name:         name,
			Price:        price,
			Currency:     looseString(body["currency"], menu.DefaultCurrency),
			Stock:        menu.StockFromValue(stock),
			OptionGroups: optionGroups(body["option_groups"]),
			Description:  description,
			Images:       stringsOnly(body["images"]),
		},
		HasDescription: hasDescription,
	}, nil
}

func errInvalidMenu() *errs.AppError {
	return errs.NewAppError(errs.CodeMenuInvalidPayload,
		"메뉴 이름, 가격, 재고는 필수입니다.", "name, price, stock 값을 확인해주세요.")
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
