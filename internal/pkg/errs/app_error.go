package errs

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"strings"
)

// API error codes. The prefix names the resource, the suffix the failure.
const (
	CodeOutOfStock     = "E01"
	CodeStoreClosed    = "E02"
	CodeNoDelivery     = "E03"
	CodeUnauthorized   = "auth/unauthorized"
	CodeForbidden      = "auth/forbidden"
	CodeRateLimited    = "rate-limit/exceeded"
	CodeStorage        = "storage/error"
	CodeStorageClash   = "storage/conflict"
	CodeInternal       = "internal/error"
	CodeRouteNotFound  = "route/not-found"
	CodeRequestInvalid = "request/invalid"
	CodeCorsNotAllowed = "cors/not-allowed"

	CodeOrderInvalidPayload  = "order/invalid-payload"
	CodeOrderInvalidUser     = "order/invalid-user"
	CodeOrderEmptyItems      = "order/empty-items"
	CodeOrderInvalidItem     = "order/invalid-item"
	CodeOrderMissingMenu     = "order/missing-menu"
	CodeOrderInvalidQuantity = "order/invalid-quantity"
	CodeOrderMultipleStores  = "order/multiple-stores"
	CodeOrderInvalidID       = "order/invalid-id"
	CodeOrderNotFound        = "order/not-found"
	CodeOrderMissingStore    = "order/missing-store"
	CodeOrderDuplicate       = "order/duplicate-request"

	CodeMenuNotFound       = "menu/not-found"
	CodeMenuMissingStore   = "menu/missing-store"
	CodeMenuInvalidPayload = "menu/invalid-payload"

	CodeStoreNotFound       = "store/not-found"
	CodeStoreInvalidPayload = "store/invalid-payload"
	CodeStoreUnauthorized   = "store/unauthorized"

	CodeOrchestrateInvalidPayload = "orchestrate/invalid-payload"
	CodeOrchestrateNoCandidates   = "orchestrate/no-candidates"
	CodeOrchestrateOrderFailed    = "orchestrate/order-failed"
	CodeOrchestrateCancelled      = "orchestrate/order-cancelled"
	CodeOrchestrateTimeout        = "orchestrate/order-timeout"
	CodeOrchestrateSummaryFailed  = "orchestrate/order-summary-failed"
)

var statusByCode = map[string]int{
	CodeOutOfStock:     http.StatusConflict,
	CodeStoreClosed:    http.StatusConflict,
	CodeNoDelivery:     http.StatusConflict,
	CodeUnauthorized:   http.StatusUnauthorized,
	CodeForbidden:      http.StatusForbidden,
	CodeRateLimited:    http.StatusTooManyRequests,
	CodeStorage:        http.StatusInternalServerError,
	CodeStorageClash:   http.StatusConflict,
	CodeInternal:       http.StatusInternalServerError,
	CodeRouteNotFound:  http.StatusNotFound,
	CodeRequestInvalid: http.StatusBadRequest,
	CodeCorsNotAllowed: http.StatusForbidden,

	CodeOrderMultipleStores: http.StatusBadRequest,
	CodeOrderNotFound:       http.StatusNotFound,
	CodeOrderMissingStore:   http.StatusInternalServerError,
	CodeOrderDuplicate:      http.StatusConflict,

	CodeMenuNotFound:     http.StatusNotFound,
	CodeMenuMissingStore: http.StatusInternalServerError,

	CodeStoreNotFound:     http.StatusNotFound,
	CodeStoreUnauthorized: http.StatusForbidden,

	CodeOrchestrateNoCandidates:  http.StatusNotFound,
	CodeOrchestrateOrderFailed:   http.StatusInternalServerError,
	CodeOrchestrateCancelled:     http.StatusConflict,
	CodeOrchestrateTimeout:       http.StatusGatewayTimeout,
	CodeOrchestrateSummaryFailed: http.StatusInternalServerError,
}

// AppError is an error carrying everything the HTTP boundary needs to render it.
type AppError struct {
	Code    string
	Status  int
	Message string
	Hint    string
	Details map[string]any
	Cause   error
}

// NewAppError creates an AppError whose status is resolved from its code.
func NewAppError(code, message, hint string) *AppError {
	return &AppError{
		Code:    code,
		Status:  StatusForCode(code),
		Message: message,
		Hint:    hint,
	}
}

// NewStorageError wraps a failure of the document store. path names the
// collection and document being accessed, e.g. "orders/abc".
func NewStorageError(path string, cause error) *AppError {
	hint := "unknown storage failure"
	if cause != nil {
		hint = cause.Error()
	}
	return &AppError{
		Code:    CodeStorage,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("storage request failed (%s)", path),
		Hint:    hint,
		Cause:   cause,
	}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails returns a copy of the error with details merged in.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	cp := *e
	cp.Details = make(map[string]any, len(e.Details)+len(details))
	maps.Copy(cp.Details, e.Details)
	maps.Copy(cp.Details, details)
	return &cp
}

// WithCause returns a copy of the error with cause attached.
func (e *AppError) WithCause(cause error) *AppError {
	cp := *e
	cp.Cause = cause
	return &cp
}

// AsAppError extracts the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// StatusForCode resolves the HTTP status of a code. Codes missing from the
// table fall back to their suffix: "*/invalid-*" and "*/missing-*" are client
// errors, "*/not-found" is 404, anything else is 500.
func StatusForCode(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}

	_, suffix, found := strings.Cut(code, "/")
	switch {
	case !found:
		return http.StatusInternalServerError
	case suffix == "not-found":
		return http.StatusNotFound
	case strings.HasPrefix(suffix, "invalid-"), strings.HasPrefix(suffix, "missing-"), suffix == "empty-items":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
