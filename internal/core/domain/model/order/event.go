package order

import "time"

// EventKind names an order lifecycle event.
type EventKind string

const (
	EventCreated       EventKind = "order.created"
	EventStatusChanged EventKind = "order.status_changed"
)

// Event is a snapshot of an order at the moment something happened to it.
type Event struct {
	Kind       EventKind `json:"kind"`
	OrderID    string    `json:"order_id"`
	StoreID    string    `json:"store_id"`
	UserID     string    `json:"user_id"`
	Status     Status    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	At         time.Time `json:"at"`
}

// NewEvent snapshots o as an event of the given kind, stamped with the
// order's last update time.
func NewEvent(kind EventKind, o *Order) Event {
	return Event{
		Kind:       kind,
		OrderID:    o.ID().String(),
		StoreID:    o.StoreID().String(),
		UserID:     o.UserID(),
		Status:     o.Status(),
		TotalPrice: o.Totals().Total,
		At:         o.UpdatedAt(),
	}
}
