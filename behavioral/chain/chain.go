// Package chain routes an integer request along a chain of range handlers until
// one accepts it.
package chain

import (
	"errors"
	"strconv"
)

// ErrUnhandled matches every UnhandledError via errors.Is.
var ErrUnhandled = errors.New("chain: request not handled")

// UnhandledError is returned when the request falls off the end of the chain.
type UnhandledError struct{ Request int }

// Error implements the error interface.
func (e UnhandledError) Error() string {
	return "chain: no handler for request " + strconv.Itoa(e.Request)
}

// Is reports whether target is ErrUnhandled.
func (e UnhandledError) Is(target error) bool { return target == ErrUnhandled }

// Handler accepts requests for which Accepts returns true and passes the rest
// to its successor.
type Handler struct {
	Name    string
	Accepts func(request int) bool
	next    *Handler
}

// NewA handles requests below 10.
func NewA() *Handler {
	return &Handler{Name: "HandlerA", Accepts: func(r int) bool { return r < 10 }}
}

// NewB handles requests in [10, 20).
func NewB() *Handler {
	return &Handler{Name: "HandlerB", Accepts: func(r int) bool { return r >= 10 && r < 20 }}
}

// NewC handles requests of 20 and above.
func NewC() *Handler {
	return &Handler{Name: "HandlerC", Accepts: func(r int) bool { return r >= 20 }}
}

// Link makes each handler the successor of the previous one and returns the head.
// It returns nil when handlers is empty.
func Link(handlers ...*Handler) *Handler {
	if len(handlers) == 0 {
		return nil
	}
	for i := 0; i < len(handlers)-1; i++ {
		handlers[i].next = handlers[i+1]
	}
	return handlers[0]
}

// Default returns the A -> B -> C chain, which accepts every int.
func Default() *Handler { return Link(NewA(), NewB(), NewC()) }

// Next returns the successor, or nil at the end of the chain.
func (h *Handler) Next() *Handler { return h.next }

// Handle returns the name of the handler that accepted request.
func (h *Handler) Handle(request int) (string, error) {
	for cur := h; cur != nil; cur = cur.next {
		if cur.Accepts != nil && cur.Accepts(request) {
			return cur.Name, nil
		}
	}
	return "", UnhandledError{Request: request}
}

// Describe is the line printed for a handled request, e.g.
// "HandlerA handled request: 5".
func Describe(handler string, request int) string {
	return handler + " handled request: " + strconv.Itoa(request)
}
