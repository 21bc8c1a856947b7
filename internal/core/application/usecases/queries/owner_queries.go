package queries

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Dashboard list sizes.
const (
	OwnerMenusLimit  = 100
	OwnerOrdersLimit = 50
)

var ErrOwnerQueryIsNotConstructed = errors.New(
	"OwnerQuery must be created via NewOwnerQuery constructor",
)

// OwnerQuery is a dashboard read on behalf of a store owner. Target is the
// store, menu or order id named by the request; it may be blank where the
// handler falls back to the owner's primary store.
//
// Example:
//
//	query, err := NewOwnerQuery(claims.Subject, c.QueryParam("storeId"))
//	menus, err := handler.ListMenus(ctx, query)
type OwnerQuery struct {
	ownerID string
	target  string
	guard   guard.ConstructorGuard
}

// NewOwnerQuery rejects a blank owner with auth/unauthorized.
func NewOwnerQuery(ownerID, target string) (OwnerQuery, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return OwnerQuery{}, errs.NewAppError(errs.CodeUnauthorized, "로그인이 필요합니다.", "인증 토큰을 포함해주세요.")
	}
	return OwnerQuery{
		ownerID: ownerID,
		target:  strings.TrimSpace(target),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q OwnerQuery) Validate() error {
	return q.guard.Validate(ErrOwnerQueryIsNotConstructed)
}

func (q OwnerQuery) OwnerID() string {
	return q.ownerID
}

func (q OwnerQuery) Target() string {
	return q.target
}
