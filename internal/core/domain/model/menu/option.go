package menu

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Option is one choice inside an OptionGroup.
type Option struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
	Label string  `json:"label,omitempty"`
}

// OptionGroup is a named set of options, e.g. "소스" with "양념" and "간장".
type OptionGroup struct {
	ID      string   `json:"id,omitempty"`
	Name    string   `json:"name,omitempty"`
	Options []Option `json:"options"`
}

// UnmarshalJSON accepts the field aliases found in imported menus:
// id/option_id/value for the identifier, price/cost/amount for the price and
// label/name/title for the label. Numeric identifiers are stringified and a
// missing or non-numeric price becomes 0.
func (o *Option) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Option{
		ID:    stringify(firstPresent(raw, "id", "option_id", "value")),
		Price: numberOrZero(firstPresent(raw, "price", "cost", "amount")),
	}
	if label, ok := firstPresent(raw, "label", "name", "title").(string); ok {
		o.Label = label
	}
	return nil
}

func firstPresent(raw map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := raw[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return formatNumber(value)
	case bool:
		return strconv.FormatBool(value)
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func numberOrZero(v any) float64 {
	var f float64
	switch value := v.(type) {
	case float64:
		f = value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
