// Package orderrepo maps order aggregates to the "orders" table. Line items
// and the status timeline are stored as JSON documents next to the scalar
// columns the queries filter on.
package orderrepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"gorm.io/datatypes"
)

// OrderDTO is the row of an order.
type OrderDTO struct {
	ID            string `gorm:"primaryKey"`
	UserID        string `gorm:"index"`
	StoreID       string `gorm:"index"`
	Status        *string `gorm:"index"`
	PaymentStatus string
	ReceiptID     string
	ETAMinutes    int
	Items         datatypes.JSON `gorm:"type:jsonb"`
	TotalBase     float64
	TotalOptions  float64
	TotalPrice    float64
	Timeline      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"index"`
	UpdatedAt     time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	items, err := json.Marshal(o.Items())
	if err != nil {
		return OrderDTO{}, err
	}
	timeline, err := json.Marshal(o.Timeline())
	if err != nil {
		return OrderDTO{}, err
	}

	status := o.Status().String()

	return OrderDTO{
		ID:            o.ID().String(),
		UserID:        o.UserID(),
		StoreID:       o.StoreID().String(),
		Status:        &status,
		PaymentStatus: o.PaymentStatus(),
		ReceiptID:     o.ReceiptID(),
		ETAMinutes:    o.ETAMinutes(),
		Items:         datatypes.JSON(items),
		TotalBase:     o.Totals().Base,
		TotalOptions:  o.Totals().Options,
		TotalPrice:    o.Totals().Total,
		Timeline:      datatypes.JSON(timeline),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	storeID, _ := kernel.IDFromString(dto.StoreID)

	items := []order.Item{}
	if len(dto.Items) > 0 {
		if err = json.Unmarshal(dto.Items, &items); err != nil {
			return nil, err
		}
	}

	timeline := []order.TimelineEntry{}
	if len(dto.Timeline) > 0 {
		if err = json.Unmarshal(dto.Timeline, &timeline); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		dto.UserID,
		storeID,
		order.StoredStatus(dto.Status),
		dto.PaymentStatus,
		dto.ReceiptID,
		dto.ETAMinutes,
		items,
		order.Totals{Base: dto.TotalBase, Options: dto.TotalOptions, Total: dto.TotalPrice},
		timeline,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
