package commands

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrOrchestrateCommandIsNotConstructed = errors.New(
	"OrchestrateCommand must be created via NewOrchestrateCommandFromPayload constructor",
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// OrchestrateCommand asks the service to choose, order and wait for a menu on
// the customer's behalf.
//
// Example:
//
//	cmd, err := NewOrchestrateCommandFromPayload(map[string]any{
//	    "region":      "seoul gangnam",
//	    "keyword":     "치킨",
//	    "preferences": map[string]any{"price_weight": 0.8},
//	})
//	// cmd.Region() == "seoul_gangnam"
type OrchestrateCommand struct { //nolint:recvcheck //using for validation
	region      string
	keyword     string
	preferences *kernel.WeightsOverride

	guard guard.ConstructorGuard
}

// NewOrchestrateCommandFromPayload normalizes a decoded JSON body. Anything but
// a JSON object or array fails with orchestrate/invalid-payload. Region and
// keyword are trimmed, and whitespace runs inside the region become "_".
// Preferences are kept only when they are an object.
func NewOrchestrateCommandFromPayload(payload any) (OrchestrateCommand, error) {
	body, isObject := payload.(map[string]any)
	if _, isArray := payload.([]any); isArray {
		body, isObject = map[string]any{}, true
	}
	if !isObject || body == nil {
		return OrchestrateCommand{}, errs.NewAppError(errs.CodeOrchestrateInvalidPayload,
			"요청 본문이 올바르지 않습니다.", "JSON 객체 형태로 region, keyword를 전달해주세요.").
			WithDetails(map[string]any{"step": "input", "cause": "non-object"})
	}

	cmd := OrchestrateCommand{guard: guard.NewConstructorGuard()}

	if region, ok := body["region"].(string); ok {
		cmd.region = whitespaceRun.ReplaceAllString(strings.TrimSpace(region), "_")
	}
	if keyword, ok := body["keyword"].(string); ok {
		cmd.keyword = strings.TrimSpace(keyword)
	}
	if preferences, ok := body["preferences"].(map[string]any); ok {
		cmd.preferences = &kernel.WeightsOverride{
			Price:  preferenceWeight(preferences, "price_weight"),
			Rating: preferenceWeight(preferences, "rating_weight"),
			Fee:    preferenceWeight(preferences, "fee_weight"),
		}
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OrchestrateCommand) Validate() error {
	return c.guard.Validate(ErrOrchestrateCommandIsNotConstructed)
}

// Region returns the normalized region, empty when none was given.
func (c OrchestrateCommand) Region() string {
	return c.region
}

// Keyword returns the trimmed keyword, empty when none was given.
func (c OrchestrateCommand) Keyword() string {
	return c.keyword
}

// Preferences returns the per-request weight overrides, nil when none were given.
func (c OrchestrateCommand) Preferences() *kernel.WeightsOverride {
	return c.preferences
}

// preferenceWeight coerces a preference to a number: absent keys and
// unparsable values yield nil, null and empty strings yield 0, booleans 1 or 0.
func preferenceWeight(preferences map[string]any, key string) *float64 {
	raw, present := preferences[key]
	if !present {
		return nil
	}

	var value float64
	switch v := raw.(type) {
	case nil:
		value = 0
	case float64:
		value = v
	case bool:
		if v {
			value = 1
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			parsed, err := strconv.ParseFloat(trimmed, 64)
			if err != nil {
				return nil
			}
			value = parsed
		}
	default:
		return nil
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}
