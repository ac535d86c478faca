package factory

import (
	"errors"
	"strconv"
)

var (
	// ErrUnknownKind matches every UnknownKindError via errors.Is.
	ErrUnknownKind = errors.New("factory: unknown shape kind")

	// ErrUnknownFactory matches every UnknownFactoryError via errors.Is.
	ErrUnknownFactory = errors.New("factory: unknown factory")

	// ErrRegistryPanic is returned if a registered constructor panics during Resolve.
	ErrRegistryPanic = errors.New("factory: panic during Resolve")
)

// UnknownKindError is the not-found signal for a tag a factory does not produce.
type UnknownKindError struct {
	// Factory is the name of the factory that was asked. Empty for ParseKind.
	Factory string
	// Tag is the tag exactly as supplied by the caller.
	Tag string
}

// Error implements the error interface.
func (e UnknownKindError) Error() string {
	// Example: factory: "round" cannot make shape "square"
	if e.Factory == "" {
		return "factory: unknown shape kind " + strconv.Quote(e.Tag)
	}
	return "factory: " + strconv.Quote(e.Factory) + " cannot make shape " + strconv.Quote(e.Tag)
}

// Is reports whether target is ErrUnknownKind.
func (e UnknownKindError) Is(target error) bool { return target == ErrUnknownKind }

// UnknownFactoryError is returned by Lookup for an unregistered factory name.
type UnknownFactoryError struct{ Name string }

// Error implements the error interface.
func (e UnknownFactoryError) Error() string {
	return "factory: unknown factory " + strconv.Quote(e.Name)
}

// Is reports whether target is ErrUnknownFactory.
func (e UnknownFactoryError) Is(target error) bool { return target == ErrUnknownFactory }
