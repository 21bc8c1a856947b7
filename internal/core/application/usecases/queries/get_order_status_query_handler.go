package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler reads order statuses straight from the orders
// table, without loading the aggregate.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle returns order/not-found when no order has the id.
func (h GetOrderStatusQueryHandler) Handle(ctx context.Context, query GetOrderStatusQuery) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	id := query.OrderID().String()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status
		FROM orders
		WHERE id = ?
	`, id).Rows()
	if err != nil {
		return GetOrderStatusQueryResponse{}, errs.NewStorageError("orders/"+id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderStatusQueryResponse{}, errs.NewStorageError("orders/"+id, err)
		}
		return GetOrderStatusQueryResponse{}, errs.NewAppError(errs.CodeOrderNotFound,
			"요청한 주문을 찾을 수 없습니다.", "order_id 값을 다시 확인해주세요.")
	}

	var status *string
	if err = rows.Scan(&status); err != nil {
		return GetOrderStatusQueryResponse{}, errs.NewStorageError("orders/"+id, err)
	}

	return GetOrderStatusQueryResponse{
		OrderID: query.OrderID(),
		Status:  order.StoredStatus(status),
	}, nil
}
