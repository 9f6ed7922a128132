// Package guard provides ConstructorGuard, a marker embedded in entities,
// value objects, commands and queries to tell constructed instances apart from
// zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. A zero value fails Validate.
//
//	type AssignOrderCommand struct {
//	    driverID kernel.UUID
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c AssignOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not built through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
