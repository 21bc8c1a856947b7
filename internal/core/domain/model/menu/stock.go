package menu

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Out-of-stock markers accepted in place of a quantity. Matching ignores case.
const (
	OutOfStockUnderscore = "out_of_stock"
	OutOfStockHyphen     = "out-of-stock"
)

type stockKind uint8

const (
	stockUnknown stockKind = iota
	stockQuantity
	stockLabel
)

// Stock is the inventory state of a menu. The zero value is "unknown" and
// never blocks an order.
type Stock struct {
	kind     stockKind
	quantity float64
	label    string
}

// StockOf creates a numeric stock. Negative or non-finite values are rejected.
func StockOf(quantity float64) (Stock, error) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity < 0 {
		return Stock{}, errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%v is not a non-negative number", quantity))
	}
	return Stock{kind: stockQuantity, quantity: quantity}, nil
}

// StockLabel creates a textual stock such as "out_of_stock".
func StockLabel(label string) Stock {
	label = strings.TrimSpace(label)
	if label == "" {
		return Stock{}
	}
	return Stock{kind: stockLabel, label: label}
}

// StockFromValue converts a decoded JSON or YAML value into a Stock.
// Numbers become quantities, strings become labels, anything else is unknown.
func StockFromValue(v any) Stock {
	switch value := v.(type) {
	case float64:
		return Stock{kind: stockQuantity, quantity: value}
	case float32:
		return Stock{kind: stockQuantity, quantity: float64(value)}
	case int:
		return Stock{kind: stockQuantity, quantity: float64(value)}
	case int64:
		return Stock{kind: stockQuantity, quantity: float64(value)}
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return StockLabel(value.String())
		}
		return Stock{kind: stockQuantity, quantity: f}
	case string:
		return StockLabel(value)
	default:
		return Stock{}
	}
}

// Quantity returns the numeric stock and whether one is set.
func (s Stock) Quantity() (float64, bool) {
	return s.quantity, s.kind == stockQuantity
}

// Label returns the textual stock and whether one is set.
func (s Stock) Label() (string, bool) {
	return s.label, s.kind == stockLabel
}

// IsKnown reports whether any stock value is set.
func (s Stock) IsKnown() bool {
	return s.kind != stockUnknown
}

// IsMarkedOutOfStock reports whether the stock is one of the out-of-stock markers.
func (s Stock) IsMarkedOutOfStock() bool {
	return s.kind == stockLabel &&
		(strings.EqualFold(s.label, OutOfStockUnderscore) || strings.EqualFold(s.label, OutOfStockHyphen))
}

// IsSoldOut reports whether the menu should be hidden from search: a
// quantity of zero or less, or an out-of-stock marker.
func (s Stock) IsSoldOut() bool {
	if s.kind == stockQuantity {
		return s.quantity <= 0
	}
	return s.IsMarkedOutOfStock()
}

// Covers reports whether required units can be ordered. Unknown stock and
// labels other than the out-of-stock markers do not block.
func (s Stock) Covers(required int) bool {
	switch s.kind {
	case stockQuantity:
		return s.quantity >= float64(required)
	case stockLabel:
		return !s.IsMarkedOutOfStock()
	default:
		return true
	}
}

// Value returns the stock as a plain value: float64, string or nil.
func (s Stock) Value() any {
	switch s.kind {
	case stockQuantity:
		return s.quantity
	case stockLabel:
		return s.label
	default:
		return nil
	}
}

// String formats numbers without locale or exponent and returns labels as is.
// Unknown stock formats as the empty string.
func (s Stock) String() string {
	switch s.kind {
	case stockQuantity:
		return formatNumber(s.quantity)
	case stockLabel:
		return s.label
	default:
		return ""
	}
}

func (s Stock) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Value())
}

func (s *Stock) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = StockFromValue(raw)
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
