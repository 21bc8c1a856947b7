package order

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Values recorded on every new order. Payment is not processed; the order is
// recorded as paid with a demo receipt.
const (
	PaymentStatusPaid = "paid"
	DemoReceiptID     = "demo123"
	DefaultETAMinutes = 1
)

// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// SelectedOption is an option chosen for a line item.
type SelectedOption struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
	Label string  `json:"label,omitempty"`
}

// Item is one line of an order. Lines for the same menu are kept separate.
type Item struct {
	MenuID          string           `json:"menu_id"`
	Name            string           `json:"name"`
	Quantity        int              `json:"quantity"`
	Price           float64          `json:"price"`
	Currency        string           `json:"currency"`
	SelectedOptions []SelectedOption `json:"selected_options"`
	OptionsPrice    float64          `json:"options_price"`
	LineTotal       float64          `json:"line_total"`
}

// Totals are the order amounts: base prices, option prices and their sum.
type Totals struct {
	Base    float64
	Options float64
	Total   float64
}

// TimelineEntry records when the order reached a status.
type TimelineEntry struct {
	Status Status    `json:"status"`
	At     time.Time `json:"at"`
}

// Order is the aggregate root of a customer purchase from one store.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewID(), "user-1", storeID, draft.Items, draft.Totals, time.Now())
//	if err != nil {
//	    return err
//	}
//	o.Advance(order.Confirmed, time.Now()) // true
//	o.Advance(order.Confirmed, time.Now()) // false, already there
type Order struct {
	id            kernel.ID
	userID        string
	storeID       kernel.ID
	status        Status
	paymentStatus string
	receiptID     string
	etaMinutes    int
	items         []Item
	totals        Totals
	timeline      []TimelineEntry
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewOrder creates a pending, paid order placed at placedAt. Its timeline
// starts with the pending entry.
func NewOrder(
	id kernel.ID,
	userID string,
	storeID kernel.ID,
	items []Item,
	totals Totals,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentStatusPaid,
		receiptID:     DemoReceiptID,
		etaMinutes:    DefaultETAMinutes,
		totals:        totals,
		timeline:      []TimelineEntry{{Status: Pending, At: placedAt}},
		createdAt:     placedAt,
		updatedAt:     placedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setStoreID(storeID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage without re-running creation rules.
func RestoreOrder(
	id kernel.ID,
	userID string,
	storeID kernel.ID,
	status Status,
	paymentStatus string,
	receiptID string,
	etaMinutes int,
	items []Item,
	totals Totals,
	timeline []TimelineEntry,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		userID:        userID,
		storeID:       storeID,
		status:        status,
		paymentStatus: paymentStatus,
		receiptID:     receiptID,
		etaMinutes:    etaMinutes,
		items:         items,
		totals:        totals,
		timeline:      timeline,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) UserID() string {
	return o.userID
}

func (o *Order) StoreID() kernel.ID {
	return o.storeID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentStatus() string {
	return o.paymentStatus
}

func (o *Order) ReceiptID() string {
	return o.receiptID
}

// ETAMinutes is the stored delivery estimate; it is never recomputed.
func (o *Order) ETAMinutes() int {
	return o.etaMinutes
}

func (o *Order) Items() []Item {
	return o.items
}

func (o *Order) Totals() Totals {
	return o.totals
}

// Timeline returns the status history, oldest first.
func (o *Order) Timeline() []TimelineEntry {
	return o.timeline
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Advance moves the order to target at the given time and records it in the
// timeline. Nothing happens, and false is returned, when the order is
// cancelled or target does not rank above the current status.
func (o *Order) Advance(target Status, at time.Time) bool {
	if o.status == Cancelled {
		return false
	}
	if target.Rank() <= o.status.Rank() {
		return false
	}

	o.status = target
	o.timeline = append(o.timeline, TimelineEntry{Status: target, At: at})
	o.updatedAt = at
	return true
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID string) error {
	trimmed := strings.TrimSpace(userID)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	o.userID = trimmed
	return nil
}

func (o *Order) setStoreID(storeID kernel.ID) error {
	if err := storeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("store id", err)
	}
	o.storeID = storeID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = items
	return nil
}
