// Package queries contains the read side of the marketplace: order status,
// menu search and detail, and the owner dashboard reads. Handlers never
// open transactions.
package queries

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery reads the current status of one order.
//
// Example:
//
//	query, err := NewGetOrderStatusQuery(c.Param("id"))
//	if err != nil {
//	    return err // order/invalid-id
//	}
//	status, err := handler.Handle(ctx, query)
type GetOrderStatusQuery struct {
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

// NewGetOrderStatusQuery trims rawID. A blank id is rejected with
// order/invalid-id.
func NewGetOrderStatusQuery(rawID string) (GetOrderStatusQuery, error) {
	id, err := kernel.IDFromString(strings.TrimSpace(rawID))
	if err != nil {
		return GetOrderStatusQuery{}, errs.NewAppError(errs.CodeOrderInvalidID,
			"주문 ID를 확인해주세요.", "올바른 주문 ID를 전달해주세요.")
	}
	return GetOrderStatusQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

func (q GetOrderStatusQuery) OrderID() kernel.ID {
	return q.orderID
}

// GetOrderStatusQueryResponse carries the stored status verbatim; a blank
// stored status reads as pending.
type GetOrderStatusQueryResponse struct {
	OrderID kernel.ID
	Status  order.Status
}
