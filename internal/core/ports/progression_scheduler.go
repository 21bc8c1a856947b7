package ports

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// ProgressionScheduler arranges the automatic status steps of a new order.
type ProgressionScheduler interface {
	Schedule(orderID kernel.ID, createdAt time.Time)
}
