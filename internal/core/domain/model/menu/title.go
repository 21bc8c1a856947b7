package menu

import (
	"regexp"
	"strings"

	"marketplace/internal/core/domain/model/store"
)

// TitleSuffix terminates every derived title.
const TitleSuffix = "__hogun"

// Fallback tokens used by BuildTitle for missing fields.
const (
	unknownRegion = "unknown-region"
	unknownStore  = "unknown-store"
	unknownMenu   = "unknown-menu"
	unknownStatus = "unknown-status"
	zeroToken     = "0"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	// derivedTitle matches titles produced by BuildTitle, including older ones
	// written with a single underscore before the suffix.
	derivedTitle = regexp.MustCompile(`(?i)_{1,2}hogun$`)
)

// BuildTitle derives the search title of a menu from, in order: store region,
// store name, menu name, price, store base fee, currency, menu rating score,
// store status and stock. Each token is trimmed and its whitespace runs are
// replaced by "-"; blank tokens fall back to fixed defaults. Numbers use the
// shortest round-trip formatting. The store may be nil.
//
// Example:
//
//	BuildTitle(friedChicken, hogun)
//	// "seoul_gangnam_호건치킨_후라이드-치킨_18000_3000_KRW_4.5_open_12__hogun"
func BuildTitle(m *Menu, s *store.Store) string {
	var (
		region, storeName, status string
		baseFee                   float64
	)
	if s != nil {
		region = s.Region()
		storeName = s.Name()
		status = s.Status()
		baseFee = s.Delivery().BaseFee
	}

	var (
		menuName, currency, stock string
		price, rating             float64
	)
	if m != nil {
		menuName = m.name
		currency = m.currency
		stock = m.stock.String()
		price = m.price
		rating = m.RatingScore()
	}

	parts := []string{
		tokenOr(region, unknownRegion),
		tokenOr(storeName, unknownStore),
		tokenOr(menuName, unknownMenu),
		tokenOr(formatNumber(price), zeroToken),
		tokenOr(formatNumber(baseFee), zeroToken),
		tokenOr(currency, DefaultCurrency),
		tokenOr(formatNumber(rating), zeroToken),
		tokenOr(status, unknownStatus),
		tokenOr(stock, zeroToken),
	}

	return strings.Join(parts, "_") + TitleSuffix
}

// IsDerivedTitle reports whether title ends with the derived-title marker.
func IsDerivedTitle(title string) bool {
	return derivedTitle.MatchString(title)
}

func tokenOr(raw, fallback string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	return whitespaceRun.ReplaceAllString(trimmed, "-")
}
