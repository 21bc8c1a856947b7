package http

import (
	"errors"
	"maps"
	"net/http"

	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const internalErrorMessage = "요청 처리 중 오류가 발생했습니다."

// NewErrorHandler renders every error as the API error body. Errors other
// than AppError and echo's own HTTP errors become internal/error.
func NewErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	logger = logger.With().Str("component", "http-errors").Logger()

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		appErr := toAppError(err)
		requestID := ctx.Response().Header().Get(echo.HeaderXRequestID)

		event := logger.Warn()
		if appErr.Status >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.Err(err).
			Str("request_id", requestID).
			Str("code", appErr.Code).
			Int("status", appErr.Status).
			Str("method", ctx.Request().Method).
			Str("path", ctx.Request().URL.Path).
			Msg("request failed")

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(appErr.Status)
		} else {
			writeErr = ctx.JSON(appErr.Status, errorBody(appErr, requestID))
		}
		if writeErr != nil {
			logger.Error().Err(writeErr).Msg("write error response")
		}
	}
}

func errorBody(appErr *errs.AppError, requestID string) servers.Error {
	body := servers.Error{
		RequestId: requestID,
		Code:      appErr.Code,
		Message:   appErr.Message,
	}
	if appErr.Hint != "" {
		hint := appErr.Hint
		body.Hint = &hint
	}
	if len(appErr.Details) > 0 {
		details := maps.Clone(appErr.Details)
		body.Details = &details
		if alternatives, ok := details["alternatives"].([]string); ok {
			body.Alternatives = &alternatives
		}
	}
	return body
}

func toAppError(err error) *errs.AppError {
	if appErr, ok := errs.AsAppError(err); ok {
		return appErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fromHTTPError(httpErr)
	}

	return errs.NewAppError(errs.CodeInternal, internalErrorMessage, "").
		WithDetails(map[string]any{"cause": err.Error()}).
		WithCause(err)
}

// fromHTTPError maps errors raised by echo itself: routing, binding and the
// stock middleware.
func fromHTTPError(httpErr *echo.HTTPError) *errs.AppError {
	if appErr, ok := errs.AsAppError(httpErr.Internal); ok {
		return appErr
	}

	switch httpErr.Code {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return routeNotFound()
	case http.StatusUnauthorized:
		return errs.NewAppError(errs.CodeUnauthorized, "로그인이 필요합니다.", "인증 토큰을 포함해주세요.")
	case http.StatusTooManyRequests:
		return rateLimited()
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		appErr := errs.NewAppError(errs.CodeRequestInvalid, "요청 형식이 올바르지 않습니다.", "요청 파라미터를 확인해주세요.")
		appErr.Status = httpErr.Code
		if message, ok := httpErr.Message.(string); ok && message != "" {
			appErr = appErr.WithDetails(map[string]any{"cause": message})
		}
		return appErr
	default:
		return errs.NewAppError(errs.CodeInternal, internalErrorMessage, "").WithCause(httpErr)
	}
}

func routeNotFound() *errs.AppError {
	return errs.NewAppError(errs.CodeRouteNotFound,
		"요청한 API 경로를 찾을 수 없습니다.", "엔드포인트 경로를 다시 확인해주세요.")
}

func rateLimited() *errs.AppError {
	return errs.NewAppError(errs.CodeRateLimited, "요청 한도를 초과했습니다.", "잠시 후 다시 시도해주세요.")
}
