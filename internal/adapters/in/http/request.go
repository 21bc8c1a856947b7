package http

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// maxLimitDigits keeps parseLimit clear of integer overflow; anything longer
// is far beyond the search cap anyway.
const maxLimitDigits = 9

// decodeBody reads the request body as loosely typed JSON for the payload
// normalizers. An empty body decodes as an empty object.
func decodeBody(ctx echo.Context) (any, error) {
	raw, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, errs.NewAppError(errs.CodeRequestInvalid,
			"요청 본문을 읽을 수 없습니다.", "요청을 다시 보내주세요.").WithCause(err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errs.NewAppError(errs.CodeRequestInvalid,
			"요청 본문을 해석할 수 없습니다.", "JSON 형식을 확인해주세요.").WithCause(err)
	}
	return payload, nil
}

// parseLimit reads the leading integer of raw, ignoring any trailing text,
// so "20items" is 20. Input without a leading integer yields 0, which the
// search treats as "use the default".
func parseLimit(raw string) int {
	raw = strings.TrimSpace(raw)

	sign := 1
	switch {
	case strings.HasPrefix(raw, "-"):
		sign = -1
		raw = raw[1:]
	case strings.HasPrefix(raw, "+"):
		raw = raw[1:]
	}

	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	digits := strings.TrimLeft(raw[:end], "0")
	if len(digits) > maxLimitDigits {
		digits = digits[:maxLimitDigits]
	}
	if digits == "" {
		return 0
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return sign * n
}

// ownerID returns the authenticated owner set by the auth middleware.
func ownerID(ctx echo.Context) string {
	uid, _ := ctx.Get(ownerIDContextKey).(string)
	return uid
}
