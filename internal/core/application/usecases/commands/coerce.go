package commands

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"marketplace/internal/core/domain/model/menu"
)

// looseNumber converts a decoded JSON value the way the dashboard client
// expects numbers to be read: null and false are 0, true is 1, numeric
// strings are parsed (blank is 0). Absent keys, objects, arrays and
// unparsable strings are NaN.
func looseNumber(v any, present bool) float64 {
	if !present {
		return math.NaN()
	}

	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case int:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return 0
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// finiteNumber is looseNumber with every non-finite result replaced by 0.
func finiteNumber(v any) float64 {
	f := looseNumber(v, true)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// looseString returns strings as is, fallback for null or absent values and
// the printed form of anything else.
func looseString(v any, fallback string) string {
	switch s := v.(type) {
	case nil:
		return fallback
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		raw, err := json.Marshal(s)
		if err != nil {
			return fallback
		}
		return string(raw)
	}
}

func objectOrEmpty(v any) map[string]any {
	if m, ok := v.(map[string]any); ok && m != nil {
		return m
	}
	return map[string]any{}
}

func arrayOrEmpty(v any) []any {
	if a, ok := v.([]any); ok && a != nil {
		return a
	}
	return []any{}
}

func stringsOnly(v any) []string {
	raw := arrayOrEmpty(v)
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// optionGroups decodes option groups through their JSON form so the field
// aliases accepted by menu.Option apply. Groups that cannot be decoded are
// dropped.
func optionGroups(v any) []menu.OptionGroup {
	raw := arrayOrEmpty(v)
	groups := make([]menu.OptionGroup, 0, len(raw))
	for _, entry := range raw {
		encoded, err := json.Marshal(entry)
		if err != nil {
			continue
		}
		var group menu.OptionGroup
		if err = json.Unmarshal(encoded, &group); err != nil {
			continue
		}
		if group.Options == nil {
			group.Options = []menu.Option{}
		}
		groups = append(groups, group)
	}
	return groups
}
