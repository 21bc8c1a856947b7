package kernel

import (
	"strings"

	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID identifies a document (store, menu or order). Identifiers are opaque
// strings: seeded fixtures use readable ids such as "menu-fried-chicken",
// while documents created by the service get a random UUID.
//
// The zero value is invalid.
//
// Example:
//
//	id := kernel.NewID()
//
//	id, err := kernel.IDFromString("  menu-1 ")
//	// id.String() == "menu-1"
type ID struct {
	value string
}

// NewID generates a random identifier.
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// IDFromString trims s and wraps it as an ID. Blank input is rejected.
func IDFromString(s string) (ID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: trimmed}, nil
}

// MustIDFromString is IDFromString for identifiers known to be valid, such as
// constants and values read back from storage. It panics on blank input.
func MustIDFromString(s string) ID {
	id, err := IDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) String() string {
	return id.value
}

// IsEqual reports whether both identifiers hold the same value.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool {
	return id.value == ""
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
