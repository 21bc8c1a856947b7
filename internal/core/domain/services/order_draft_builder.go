package services

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/money"
)

// Customer-facing messages of availability rejections.
const (
	MessageOutOfStock  = "품절"
	MessageStoreClosed = "마감"
	MessageNoDelivery  = "배달 불가"
)

// DraftLine is one requested line: a menu, how many and which options.
type DraftLine struct {
	MenuID          kernel.ID
	Quantity        int
	SelectedOptions []order.SelectedOption
}

// MenuContext is a menu together with the store it belongs to.
type MenuContext struct {
	Menu  *menu.Menu
	Store *store.Store
}

// Draft is a priced, validated order that has not been persisted yet.
type Draft struct {
	Store    *store.Store
	Items    []order.Item
	Totals   order.Totals
	Timeline []order.TimelineEntry
}

// DraftRejection is returned when the pinned store or one of the menus cannot
// serve the order right now (codes E01, E02 and E03). It names the store and,
// for stock failures, the menu, so that the caller can suggest alternatives.
type DraftRejection struct {
	Err    *errs.AppError
	Store  *store.Store
	MenuID kernel.ID
}

func (r *DraftRejection) Error() string {
	return r.Err.Error()
}

func (r *DraftRejection) Unwrap() error {
	return r.Err
}

// AsDraftRejection extracts a DraftRejection from err's chain.
func AsDraftRejection(err error) (*DraftRejection, bool) {
	var rejection *DraftRejection
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}

// OrderDraftBuilder turns normalized order lines into a Draft.
//
// Business rules:
//   - every line must reference a loaded menu
//   - all menus belong to one store, the store of the first line
//   - the store must be open and deliver; this is checked once, before stock
//   - stock is checked against the total quantity requested per menu, while
//     the lines themselves stay separate
//   - line total is (price + sum of option prices) times quantity
//
// Example usage:
//
//	builder := services.NewOrderDraftBuilder()
//	draft, err := builder.Build(lines, contexts, time.Now())
//	if rejection, ok := services.AsDraftRejection(err); ok {
//	    // suggest other menus from rejection.Store.Region()
//	}
type OrderDraftBuilder struct{}

// NewOrderDraftBuilder creates a new OrderDraftBuilder instance.
func NewOrderDraftBuilder() OrderDraftBuilder {
	return OrderDraftBuilder{}
}

// Build validates lines against contexts, keyed by menu id, and prices them.
//
// Returns:
//   - Draft: items in request order, totals and the initial timeline
//   - error: *DraftRejection for availability failures, *errs.AppError with
//     menu/not-found, order/multiple-stores or order/missing-store otherwise
func (b OrderDraftBuilder) Build(lines []DraftLine, contexts map[kernel.ID]MenuContext, now time.Time) (Draft, error) {
	required := make(map[kernel.ID]int, len(lines))
	for _, line := range lines {
		required[line.MenuID] += line.Quantity
	}

	var (
		pinned  *store.Store
		items   = make([]order.Item, 0, len(lines))
		base    = make([]float64, 0, len(lines))
		options = make([]float64, 0, len(lines))
	)

	for _, line := range lines {
		ctx, ok := contexts[line.MenuID]
		if !ok || ctx.Menu == nil || ctx.Store == nil {
			return Draft{}, errs.NewAppError(errs.CodeMenuNotFound,
				"메뉴를 찾을 수 없습니다.", fmt.Sprintf("menu %s is not loaded", line.MenuID))
		}

		if pinned == nil {
			pinned = ctx.Store
			if err := b.checkStore(pinned); err != nil {
				return Draft{}, err
			}
		} else if !pinned.ID().IsEqual(ctx.Store.ID()) {
			return Draft{}, errs.NewAppError(errs.CodeOrderMultipleStores,
				"한 번에 하나의 매장에서만 주문할 수 있습니다.",
				fmt.Sprintf("menu %s belongs to store %s, not %s", line.MenuID, ctx.Store.ID(), pinned.ID()))
		}

		if !ctx.Menu.Stock().Covers(required[line.MenuID]) {
			return Draft{}, &DraftRejection{
				Err: errs.NewAppError(errs.CodeOutOfStock, MessageOutOfStock,
					fmt.Sprintf("menu %s has %q left, %d requested", line.MenuID, ctx.Menu.Stock(), required[line.MenuID])),
				Store:  pinned,
				MenuID: line.MenuID,
			}
		}

		item, basePrice, err := b.price(line, ctx.Menu)
		if err != nil {
			return Draft{}, err
		}
		items = append(items, item)
		base = append(base, basePrice)
		options = append(options, item.OptionsPrice)
	}

	if pinned == nil {
		return Draft{}, errs.NewAppError(errs.CodeOrderMissingStore,
			"주문할 매장을 확인할 수 없습니다.", "no line resolved to a store")
	}

	baseTotal, err := money.Sum(base...)
	if err != nil {
		return Draft{}, amountOutOfRange("base total", err)
	}
	optionsTotal, err := money.Sum(options...)
	if err != nil {
		return Draft{}, amountOutOfRange("options total", err)
	}
	total, err := money.Sum(baseTotal, optionsTotal)
	if err != nil {
		return Draft{}, amountOutOfRange("order total", err)
	}

	return Draft{
		Store: pinned,
		Items: items,
		Totals: order.Totals{
			Base:    baseTotal,
			Options: optionsTotal,
			Total:   total,
		},
		Timeline: []order.TimelineEntry{{Status: order.Pending, At: now}},
	}, nil
}

func (b OrderDraftBuilder) checkStore(s *store.Store) error {
	err := s.AcceptsOrders()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrStoreIsClosed):
		return &DraftRejection{
			Err: errs.NewAppError(errs.CodeStoreClosed, MessageStoreClosed,
				fmt.Sprintf("store %s is %q", s.ID(), s.Status())),
			Store: s,
		}
	case errors.Is(err, store.ErrDeliveryUnavailable):
		return &DraftRejection{
			Err: errs.NewAppError(errs.CodeNoDelivery, MessageNoDelivery,
				fmt.Sprintf("store %s does not deliver", s.ID())),
			Store: s,
		}
	default:
		return err
	}
}

// price returns the priced item and its base price (menu price times
// quantity).
func (b OrderDraftBuilder) price(line DraftLine, m *menu.Menu) (order.Item, float64, error) {
	selected := line.SelectedOptions
	if selected == nil {
		selected = []order.SelectedOption{}
	}

	perUnit := make([]float64, 0, len(selected))
	for _, option := range selected {
		perUnit = append(perUnit, option.Price)
	}
	unitOptions, err := money.Sum(perUnit...)
	if err != nil {
		return order.Item{}, 0, amountOutOfRange(fmt.Sprintf("options of menu %s", line.MenuID), err)
	}
	optionsPrice, err := money.Mul(unitOptions, line.Quantity)
	if err != nil {
		return order.Item{}, 0, amountOutOfRange(fmt.Sprintf("options of menu %s", line.MenuID), err)
	}
	basePrice, err := money.Mul(m.Price(), line.Quantity)
	if err != nil {
		return order.Item{}, 0, amountOutOfRange(fmt.Sprintf("price of menu %s", line.MenuID), err)
	}
	lineTotal, err := money.Sum(basePrice, optionsPrice)
	if err != nil {
		return order.Item{}, 0, amountOutOfRange(fmt.Sprintf("line of menu %s", line.MenuID), err)
	}

	return order.Item{
		MenuID:          line.MenuID.String(),
		Name:            m.DisplayName(),
		Quantity:        line.Quantity,
		Price:           m.Price(),
		Currency:        m.Currency(),
		SelectedOptions: selected,
		OptionsPrice:    optionsPrice,
		LineTotal:       lineTotal,
	}, basePrice, nil
}

func amountOutOfRange(what string, cause error) error {
	return errs.NewAppError(errs.CodeOrderInvalidItem,
		"주문 금액이 허용 범위를 벗어났습니다.",
		fmt.Sprintf("%s: %v", what, cause))
}
