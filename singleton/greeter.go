// Package singleton exposes one process-wide Greeter behind a lazy.Provider.
//
// Code that only needs "the" greeter calls Instance. Code that wants to be
// testable takes a *lazy.Provider[Greeter] and is handed Default() in main and
// NewProvider() in tests.
package singleton

import (
	"time"

	"github.com/google/uuid"
	"github.com/sghaida/patterns/lazy"
)

// ProviderName is the provider name used in errors and logs.
const ProviderName = "singleton.greeter"

// Greeter is a stateless service; its only attributes identify the instance.
type Greeter struct {
	id      uuid.UUID
	created time.Time
}

// ID is unique per constructed Greeter.
func (g *Greeter) ID() uuid.UUID { return g.id }

// Created is when the instance was constructed.
func (g *Greeter) Created() time.Time { return g.created }

// Message is the greeting.
func (g *Greeter) Message() string { return "Hello from Singleton!" }

func newGreeter() (*Greeter, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	return &Greeter{id: id, created: time.Now()}, nil
}

// NewProvider returns an empty provider that builds Greeters.
func NewProvider(opts ...lazy.Option) *lazy.Provider[Greeter] {
	opts = append([]lazy.Option{lazy.WithName(ProviderName)}, opts...)
	return lazy.New(newGreeter, opts...)
}

var shared = NewProvider()

// Default returns the process-wide provider.
func Default() *lazy.Provider[Greeter] { return shared }

// Instance returns the process-wide Greeter, constructing it on first use.
func Instance() (*Greeter, error) { return shared.Get() }
