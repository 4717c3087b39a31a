// Package guard provides the constructor guard pattern used by domain
// objects and commands to detect zero-value instances that bypassed their
// designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, entities, and commands are only
// created through their designated constructor functions. Embedding a guard
// in a struct makes the zero value detectable: only NewConstructorGuard sets
// the internal flag, so a struct created by direct initialization fails
// validation.
//
// Example usage:
//
//	type TransferCreditsCommand struct {
//	    amount kernel.Money
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewTransferCreditsCommand(amount kernel.Money) (TransferCreditsCommand, error) {
//	    // validate amount...
//	    return TransferCreditsCommand{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c TransferCreditsCommand) Validate() error {
//	    return c.guard.Validate(ErrTransferCreditsCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was built through its
// constructor. For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
