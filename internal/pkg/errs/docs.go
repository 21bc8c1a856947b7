// Package errs provides standardized error types for the marketplace application.
//
// Two families live here:
//
// Value errors describe why a single value was rejected while constructing
// domain objects or commands:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or not allowed
//   - ObjectNotFoundError: a referenced object does not exist
//
// Each follows the same shape: a sentinel (ErrValueIsRequired, ...), a struct
// carrying details, constructors with and without cause, and Unwrap returning
// the sentinel so errors.Is keeps working across wrapping.
//
// AppError is the API-facing error. It carries a machine code such as
// "order/invalid-user" or "E01", the HTTP status resolved from that code, a
// human message, an optional hint and free-form details (for example the
// alternatives attached to a rejected order). Every error that reaches the
// HTTP boundary is either an AppError already or is converted into
// "internal/error".
package errs
