// Package guard implements the constructor guard pattern used by commands and
// queries to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects are only created through their
// designated constructor functions. Embedding a guard in a struct makes a
// zero-value instance detectable: the internal flag is only set by
// NewConstructorGuard, so any struct literal that skipped the constructor
// fails Validate.
//
// Example:
//
//	type PlaceBidCommand struct {
//	    loadID kernel.UUID
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPlaceBidCommand(loadID kernel.UUID) (PlaceBidCommand, error) {
//	    return PlaceBidCommand{loadID: loadID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PlaceBidCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceBidCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object came from its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
