// Package errs provides standardized error types for the lorrylink application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two families of errors:
//
// Construction errors, raised while building value objects and commands:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or out of its domain
//
// Operation errors, raised by use cases against current system state:
//   - ObjectNotFoundError: a referenced Load/Bid/Account/Dispute is absent
//   - ForbiddenError: a role or ownership check failed
//   - InvalidStateError: an operation hit an incompatible lifecycle status
//   - ConflictError: a uniqueness rule was violated (duplicate bid, taken email)
//
// Each error type follows the same pattern: a sentinel error variable, a struct
// type with fields for error details, constructor functions with and without
// cause, an Error() method, and an Unwrap() method so callers can classify
// failures with errors.Is. All errors are surfaced synchronously to the
// caller; nothing in this package is retriable.
package errs
