package menu

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"
)

// DefaultCurrency is used when a menu does not name its currency.
const DefaultCurrency = "KRW"

// ErrMenuIsNotConstructed is returned when a Menu was not created through NewMenu or RestoreMenu.
var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")

// Details is the owner-editable part of a menu.
type Details struct {
	Name         string
	Price        float64
	Currency     string
	Stock        Stock
	OptionGroups []OptionGroup
	Rating       *kernel.Rating
	Description  string
	Images       []string
}

// Menu is the aggregate root for a purchasable item of a store.
//
// Invariants:
//   - the store identifier never changes after creation
//   - price is finite and non-negative
//   - the title version only grows
//
// Example:
//
//	stock, _ := menu.StockOf(12)
//	m, err := menu.NewMenu(kernel.NewID(), storeID, menu.Details{
//	    Name:  "후라이드 치킨",
//	    Price: 18000,
//	    Stock: stock,
//	}, time.Now())
//	if err != nil {
//	    return err
//	}
//	changed := m.SyncTitle(s, time.Now())
type Menu struct {
	id           kernel.ID
	storeID      kernel.ID
	name         string
	price        float64
	currency     string
	stock        Stock
	optionGroups []OptionGroup
	rating       *kernel.Rating
	description  string
	images       []string
	title        string
	titleVersion int
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewMenu creates a menu of the store identified by storeID.
// Name is required; price must be a finite non-negative number.
func NewMenu(id kernel.ID, storeID kernel.ID, details Details, at time.Time) (*Menu, error) {
	m := &Menu{
		createdAt:     at,
		updatedAt:     at,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setStoreID(storeID),
		m.applyDetails(details),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMenu rebuilds a menu from storage. A missing store identifier is
// tolerated here and surfaced by HasStore so callers can report it.
func RestoreMenu(
	id kernel.ID,
	storeID kernel.ID,
	details Details,
	title string,
	titleVersion int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Menu{
		id:            id,
		storeID:       storeID,
		name:          details.Name,
		price:         kernel.FiniteOrZero(details.Price),
		currency:      details.Currency,
		stock:         details.Stock,
		optionGroups:  details.OptionGroups,
		rating:        details.Rating,
		description:   details.Description,
		images:        details.Images,
		title:         title,
		titleVersion:  titleVersion,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the menu was built through a constructor.
func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

func (m *Menu) ID() kernel.ID {
	return m.id
}

// StoreID returns the owning store. It is the zero ID for legacy documents
// that lost their store link.
func (m *Menu) StoreID() kernel.ID {
	return m.storeID
}

// HasStore reports whether the menu is linked to a store.
func (m *Menu) HasStore() bool {
	return !m.storeID.IsZero()
}

func (m *Menu) Name() string {
	return m.name
}

func (m *Menu) Price() float64 {
	return m.price
}

// Currency returns the ISO currency code, KRW when unset.
func (m *Menu) Currency() string {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

func (m *Menu) Stock() Stock {
	return m.stock
}

func (m *Menu) OptionGroups() []OptionGroup {
	return m.optionGroups
}

// Rating returns the menu rating and whether the menu has one.
func (m *Menu) Rating() (kernel.Rating, bool) {
	if m.rating == nil {
		return kernel.Rating{}, false
	}
	return *m.rating, true
}

// RatingScore returns the rating score, 0 when the menu has no rating.
func (m *Menu) RatingScore() float64 {
	if m.rating == nil {
		return 0
	}
	return kernel.FiniteOrZero(m.rating.Score)
}

func (m *Menu) Description() string {
	return m.description
}

func (m *Menu) Images() []string {
	return m.images
}

// Title returns the derived search title.
func (m *Menu) Title() string {
	return m.title
}

// TitleVersion returns how many times the title has been rewritten.
func (m *Menu) TitleVersion() int {
	return m.titleVersion
}

func (m *Menu) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Menu) UpdatedAt() time.Time {
	return m.updatedAt
}

// DisplayName is the name shown to customers: the name, else the title.
func (m *Menu) DisplayName() string {
	if m.name != "" {
		return m.name
	}
	return m.title
}

// Revise replaces the owner-editable fields. The store link and title are kept.
func (m *Menu) Revise(details Details, at time.Time) error {
	if err := m.applyDetails(details); err != nil {
		return err
	}
	m.updatedAt = at
	return nil
}

// SyncTitle recomputes the title against the menu's store (nil when the
// store is unknown). The title is rewritten and its version bumped only when
// the derived value differs or the current one lacks the title suffix.
// It reports whether anything changed.
func (m *Menu) SyncTitle(s *store.Store, at time.Time) bool {
	next := BuildTitle(m, s)
	if m.title == next && strings.HasSuffix(m.title, TitleSuffix) {
		return false
	}

	m.title = next
	m.titleVersion++
	m.updatedAt = at
	return true
}

func (m *Menu) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setStoreID(storeID kernel.ID) error {
	if storeID.IsZero() {
		return errs.NewValueIsRequiredError("store id")
	}
	m.storeID = storeID
	return nil
}

func (m *Menu) applyDetails(details Details) error {
	name := strings.TrimSpace(details.Name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if math.IsNaN(details.Price) || math.IsInf(details.Price, 0) || details.Price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not a non-negative number", details.Price))
	}

	currency := strings.TrimSpace(details.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	m.name = name
	m.price = details.Price
	m.currency = currency
	m.stock = details.Stock
	m.optionGroups = details.OptionGroups
	if m.optionGroups == nil {
		m.optionGroups = []OptionGroup{}
	}
	m.rating = details.Rating
	m.description = details.Description
	m.images = details.Images
	if m.images == nil {
		m.images = []string{}
	}
	return nil
}
