// Package guard implements the constructor guard pattern used by domain
// objects to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects created through their designated
// constructor from zero values. Embed it in a struct and set it with
// NewConstructorGuard inside the constructor; Validate then fails for any
// instance that was declared directly.
//
// Example:
//
//	type Credentials struct {
//	    username string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewCredentials(username string) (Credentials, error) {
//	    if username == "" {
//	        return Credentials{}, errors.New("username is required")
//	    }
//	    return Credentials{username: username, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Credentials) Validate() error {
//	    return c.guard.Validate(ErrCredentialsAreNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero values it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
