package store

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// StatusOpen is the only status under which a store takes orders.
const StatusOpen = "open"

var (
	// ErrStoreIsNotConstructed is returned when a Store was not created through NewStore or RestoreStore.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

	// ErrStoreIsClosed is returned by AcceptsOrders when the status is not "open".
	ErrStoreIsClosed = errors.New("store is not open")

	// ErrDeliveryUnavailable is returned by AcceptsOrders when delivery is off.
	ErrDeliveryUnavailable = errors.New("store does not deliver")
)

// Delivery describes the delivery terms of a store. Rules are opaque
// documents shown to customers and never interpreted by the service.
type Delivery struct {
	Available bool
	BaseFee   float64
	Rules     []any
}

// Profile is the owner-editable part of a store.
type Profile struct {
	Name     string
	Region   string
	Status   string
	Delivery Delivery
	Rating   kernel.Rating
}

// Store is the aggregate root for a merchant.
//
// Example:
//
//	s, err := store.NewStore(kernel.NewID(), "owner-1", store.Profile{
//	    Name:     "호건치킨",
//	    Region:   "seoul_gangnam",
//	    Status:   store.StatusOpen,
//	    Delivery: store.Delivery{Available: true, BaseFee: 3000},
//	})
//	if err != nil {
//	    return err
//	}
//	if err := s.AcceptsOrders(); err != nil {
//	    // closed or not delivering
//	}
type Store struct {
	id        kernel.ID
	ownerID   string
	name      string
	region    string
	status    string
	delivery  Delivery
	rating    kernel.Rating
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewStore creates a store owned by ownerID. Name and region are required.
func NewStore(id kernel.ID, ownerID string, profile Profile) (*Store, error) {
	s := &Store{
		ownerID:       strings.TrimSpace(ownerID),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.applyProfile(profile),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStore rebuilds a store from storage. Stored documents may predate
// validation, so only the identifier is checked.
func RestoreStore(
	id kernel.ID,
	ownerID string,
	profile Profile,
	createdAt time.Time,
	updatedAt time.Time,
) (*Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Store{
		id:            id,
		ownerID:       ownerID,
		name:          profile.Name,
		region:        profile.Region,
		status:        profile.Status,
		delivery:      profile.Delivery,
		rating:        profile.Rating,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the store was built through a constructor.
func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}
	return nil
}

// ID returns the store identifier.
func (s *Store) ID() kernel.ID {
	return s.id
}

// OwnerID returns the identity subject that owns the store.
func (s *Store) OwnerID() string {
	return s.ownerID
}

// Name returns the display name of the store.
func (s *Store) Name() string {
	return s.name
}

// Region returns the region slug the store delivers in.
func (s *Store) Region() string {
	return s.region
}

// Status returns the raw status string.
func (s *Store) Status() string {
	return s.status
}

// Delivery returns the delivery terms.
func (s *Store) Delivery() Delivery {
	return s.delivery
}

func (s *Store) Rating() kernel.Rating {
	return s.rating
}

func (s *Store) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Store) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsOwnedBy reports whether uid owns the store.
func (s *Store) IsOwnedBy(uid string) bool {
	return uid != "" && s.ownerID == uid
}

// IsOpen reports whether the status equals "open", ignoring case.
func (s *Store) IsOpen() bool {
	return strings.EqualFold(s.status, StatusOpen)
}

// InRegion reports whether the store's region equals region, ignoring case.
func (s *Store) InRegion(region string) bool {
	return strings.EqualFold(strings.TrimSpace(s.region), strings.TrimSpace(region))
}

// AcceptsOrders checks, in order, that the store is open and that delivery is
// available.
func (s *Store) AcceptsOrders() error {
	if !s.IsOpen() {
		return ErrStoreIsClosed
	}
	if !s.delivery.Available {
		return ErrDeliveryUnavailable
	}
	return nil
}

// UpdateProfile replaces the owner-editable fields.
func (s *Store) UpdateProfile(profile Profile, at time.Time) error {
	if err := s.applyProfile(profile); err != nil {
		return err
	}
	s.updatedAt = at
	return nil
}

func (s *Store) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) applyProfile(profile Profile) error {
	name := strings.TrimSpace(profile.Name)
	region := strings.TrimSpace(profile.Region)

	var missing []error
	if name == "" {
		missing = append(missing, errs.NewValueIsRequiredError("name"))
	}
	if region == "" {
		missing = append(missing, errs.NewValueIsRequiredError("region"))
	}
	if len(missing) > 0 {
		return errors.Join(missing...)
	}

	status := strings.TrimSpace(profile.Status)
	if status == "" {
		status = StatusOpen
	}

	s.name = name
	s.region = region
	s.status = status
	s.delivery = profile.Delivery
	if s.delivery.Rules == nil {
		s.delivery.Rules = []any{}
	}
	s.rating = profile.Rating
	return nil
}
