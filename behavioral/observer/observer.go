// Package observer broadcasts messages to the observers attached to a Subject.
package observer

import (
	"fmt"
	"io"
	"sync"
)

// Observer receives notifications.
type Observer interface {
	Update(message string)
}

// Named is an Observer that writes "<Name> received message: <message>".
type Named struct {
	Name string
	W    io.Writer
}

// Update implements Observer.
func (n *Named) Update(message string) {
	fmt.Fprintf(n.W, "%s received message: %s\n", n.Name, message)
}

// Subject keeps attached observers in attach order. It is safe for concurrent use.
type Subject struct {
	mu        sync.RWMutex
	observers []Observer
}

// Attach adds o. Attaching the same observer twice delivers every message twice.
func (s *Subject) Attach(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Detach removes the first attachment of o and reports whether it was attached.
func (s *Subject) Detach(o Observer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.observers {
		if cur == o {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			return true
		}
	}
	return false
}

// Len is the number of attachments.
func (s *Subject) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// Notify delivers message to a snapshot of the attached observers, so observers
// may attach or detach from inside Update.
func (s *Subject) Notify(message string) {
	s.mu.RLock()
	snapshot := append([]Observer(nil), s.observers...)
	s.mu.RUnlock()

	for _, o := range snapshot {
		o.Update(message)
	}
}
