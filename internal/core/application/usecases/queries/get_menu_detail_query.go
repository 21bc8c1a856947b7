package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetMenuDetailQueryIsNotConstructed = errors.New(
	"GetMenuDetailQuery must be created via NewGetMenuDetailQuery constructor",
)

// GetMenuDetailQuery reads the customer-facing detail of one menu.
type GetMenuDetailQuery struct {
	menuID kernel.ID
	guard  guard.ConstructorGuard
}

// NewGetMenuDetailQuery rejects a blank id with menu/not-found, as no menu
// can have it.
func NewGetMenuDetailQuery(rawID string) (GetMenuDetailQuery, error) {
	id, err := kernel.IDFromString(rawID)
	if err != nil {
		return GetMenuDetailQuery{}, menuNotFound()
	}
	return GetMenuDetailQuery{menuID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuDetailQueryIsNotConstructed)
}

func (q GetMenuDetailQuery) MenuID() kernel.ID {
	return q.menuID
}

// GetMenuDetailQueryResponse is the detail page of a menu. Rating is the
// menu's own rating, else its store's.
type GetMenuDetailQueryResponse struct {
	Title         string
	OptionGroups  []menu.OptionGroup
	Description   string
	DeliveryRules []any
	Rating        *kernel.Rating
}

func menuNotFound() *errs.AppError {
	return errs.NewAppError(errs.CodeMenuNotFound, "요청한 메뉴를 찾을 수 없습니다.", "menuId 값을 확인해주세요.")
}
