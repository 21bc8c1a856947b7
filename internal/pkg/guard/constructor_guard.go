// Package guard holds ConstructorGuard, the marker embedded in commands, queries
// and domain values that must only be built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes values built by their constructor from zero values.
//
// Example:
//
//	type SearchMenusQuery struct {
//	    region string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewSearchMenusQuery(region string) SearchMenusQuery {
//	    return SearchMenusQuery{region: region, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q SearchMenusQuery) Validate() error {
//	    return q.guard.Validate(ErrSearchMenusQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
