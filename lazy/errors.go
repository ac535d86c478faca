package lazy

import (
	"errors"
	"strconv"
)

var (
	// ErrNilConstructor is returned by Get when the provider was built without a constructor.
	ErrNilConstructor = errors.New("lazy: nil constructor")

	// ErrNilInstance is returned when a constructor reports success but yields a nil value.
	// A nil value cannot be published because nil marks the slot as empty.
	ErrNilInstance = errors.New("lazy: constructor returned nil instance")

	// ErrConstructorPanic is returned when a constructor panics. The panic value is
	// appended to the message; the provider stays usable and the next call retries.
	ErrConstructorPanic = errors.New("lazy: panic during construction")

	// ErrConstructorExited is reported to the callers waiting on an attempt whose
	// constructor stopped its goroutine (runtime.Goexit) instead of returning.
	ErrConstructorExited = errors.New("lazy: constructor exited without returning")
)

// ConstructionError wraps every failed construction attempt with the provider name.
//
// It is returned to the caller that ran the attempt and to every caller that was
// waiting on it. Use errors.Is / errors.As on the cause via Unwrap.
type ConstructionError struct {
	// Name is the provider name (see WithName). It is empty for unnamed providers.
	Name string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e ConstructionError) Error() string {
	// Example: lazy: construct "greeter": lazy: constructor returned nil instance
	if e.Name == "" {
		return "lazy: construct: " + errString(e.Err)
	}
	return "lazy: construct " + strconv.Quote(e.Name) + ": " + errString(e.Err)
}

// Unwrap returns the cause.
func (e ConstructionError) Unwrap() error { return e.Err }

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
