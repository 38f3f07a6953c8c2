// Package guard implements the constructor guard pattern used by domain
// objects, commands and queries. Embedding a ConstructorGuard in a struct
// makes zero-value instances detectable: only values produced by the
// designated constructor pass validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller
// provides no specific error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, which prevents direct struct literals
// from bypassing invariant checks.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    userID kernel.UUID
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(userID kernel.UUID) (PlaceOrderCommand, error) {
//	    return PlaceOrderCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed guards. For zero-value guards it
// returns validationError, or ErrDefaultConstructorGuard when
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
