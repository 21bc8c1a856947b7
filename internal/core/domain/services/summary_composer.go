package services

import (
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/money"
)

// Names used when the store or the menu cannot be named.
const (
	FallbackStoreName = "선택 매장"
	FallbackMenuName  = "추천 메뉴"
)

// OrderSummary describes an automatically placed order to the customer.
type OrderSummary struct {
	Store      string
	Menu       string
	PriceTotal float64
	ETAMinutes int
	Sentences  []string
}

// SummaryComposer writes the summary of an automatically placed order.
type SummaryComposer struct{}

// NewSummaryComposer creates a new SummaryComposer instance.
func NewSummaryComposer() SummaryComposer {
	return SummaryComposer{}
}

// Compose builds the summary from the ordered menu and store, the persisted
// total and ETA, and the options that were recommended. The result has two
// sentences, three when options were selected.
func (c SummaryComposer) Compose(
	m *menu.Menu,
	s *store.Store,
	total float64,
	etaMinutes int,
	options []order.SelectedOption,
) OrderSummary {
	storeName := FallbackStoreName
	if s != nil {
		storeName = firstNonEmpty(s.Name(), s.ID().String(), FallbackStoreName)
	}

	menuName := FallbackMenuName
	currency := menu.DefaultCurrency
	if m != nil {
		menuName = firstNonEmpty(m.DisplayName(), FallbackMenuName)
		currency = m.Currency()
	}

	sentences := []string{
		fmt.Sprintf("%s에서 %s를 자동으로 선택해 주문했습니다.", storeName, menuName),
		fmt.Sprintf("총 결제 금액은 %s이며 예상 도착 시간은 약 %d분입니다.",
			money.FormatCurrency(total, currency), etaMinutes),
	}

	if len(options) > 0 {
		names := make([]string, 0, len(options))
		for _, option := range options {
			names = append(names, firstNonEmpty(option.Label, option.ID))
		}
		sentences = append(sentences, fmt.Sprintf("추천 옵션: %s.", strings.Join(names, ", ")))
	}

	return OrderSummary{
		Store:      storeName,
		Menu:       menuName,
		PriceTotal: total,
		ETAMinutes: etaMinutes,
		Sentences:  sentences,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
