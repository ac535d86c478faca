// Package lazy provides a generic, concurrency-safe lazy single-instance provider.
//
// A Provider owns one slot. The slot starts empty, is filled by the first
// successful construction and is never replaced afterwards:
//
//	Empty -> Constructing -> Ready
//	           |
//	           +-> Empty (construction failed; the next call retries)
//
// Reads after Ready are a single atomic load. The mutex is only taken while the
// slot is empty, to elect the goroutine that runs the constructor. Goroutines that
// arrive while an attempt is in flight wait for it and share its outcome, so a
// failed attempt is reported to every caller that participated in it.
//
// Construction failures are never retried automatically. Panics inside the
// constructor are recovered and reported as ErrConstructorPanic.
//
// There is no Reset: tests that need isolation construct a fresh Provider.
package lazy

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Option configures a Provider.
type Option func(*options)

type options struct {
	name   string
	logger *slog.Logger
}

// WithName sets the name used in errors and log records.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger used for construction events.
//
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// attempt is a single in-flight construction shared by its participants.
type attempt[T any] struct {
	done chan struct{}
	val  *T
	err  error
}

// Provider lazily constructs and then shares one *T.
//
// The zero value is not usable; create providers with New or Of.
// A Provider must not be copied after first use.
type Provider[T any] struct {
	ctor   func() (*T, error)
	name   string
	logger *slog.Logger

	slot atomic.Pointer[T]

	mu       sync.Mutex
	inflight *attempt[T]

	attempts atomic.Int64
}

// New creates a Provider around a constructor that may fail.
//
// A nil ctor is accepted here and reported as ErrNilConstructor on Get, so
// package-level providers can be declared without an init-time panic.
func New[T any](ctor func() (*T, error), opts ...Option) *Provider[T] {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Provider[T]{ctor: ctor, name: o.name, logger: o.logger}
}

// Of creates a Provider around a constructor that cannot fail.
//
// A nil result from ctor is still reported as ErrNilInstance.
func Of[T any](ctor func() *T, opts ...Option) *Provider[T] {
	if ctor == nil {
		return New[T](nil, opts...)
	}
	return New(func() (*T, error) { return ctor(), nil }, opts...)
}

// Name returns the provider name.
func (p *Provider[T]) Name() string { return p.name }

// Get returns the shared instance, constructing it on first use.
//
// Every successful call returns the same pointer. If the construction attempt
// this call ran or waited on fails, Get returns a ConstructionError and the slot
// stays empty.
func (p *Provider[T]) Get() (*T, error) {
	if v := p.slot.Load(); v != nil {
		return v, nil
	}
	return p.slow(context.Background())
}

// GetContext is Get, except that a caller waiting on another goroutine's
// construction attempt returns ctx.Err() once ctx is done.
//
// Cancellation never interrupts a running constructor; the attempt completes
// and publishes its value for later callers.
func (p *Provider[T]) GetContext(ctx context.Context) (*T, error) {
	if v := p.slot.Load(); v != nil {
		return v, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.slow(ctx)
}

// MustGet returns the shared instance or panics with the construction error.
func (p *Provider[T]) MustGet() *T {
	v, err := p.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Ready reports whether the instance has been constructed.
func (p *Provider[T]) Ready() bool { return p.slot.Load() != nil }

// Attempts returns how many construction attempts have been started.
//
// After a successful Get with no prior failures it is exactly 1.
func (p *Provider[T]) Attempts() int64 { return p.attempts.Load() }

func (p *Provider[T]) slow(ctx context.Context) (*T, error) {
	p.mu.Lock()
	if v := p.slot.Load(); v != nil {
		p.mu.Unlock()
		return v, nil
	}
	if a := p.inflight; a != nil {
		p.mu.Unlock()
		return p.wait(ctx, a)
	}
	a := &attempt[T]{done: make(chan struct{})}
	p.inflight = a
	p.mu.Unlock()

	n := p.attempts.Add(1)
	p.logger.Debug("constructing instance",
		slog.String("provider", p.name),
		slog.Int64("attempt", n))

	p.lead(a)

	if a.err != nil {
		p.logger.Warn("construction failed",
			slog.String("provider", p.name),
			slog.Int64("attempt", n),
			slog.String("error", a.err.Error()))
		return nil, a.err
	}
	p.logger.Debug("instance ready",
		slog.String("provider", p.name),
		slog.Int64("attempt", n))
	return a.val, nil
}

// lead runs the attempt a and always settles it, even when the constructor leaves
// through runtime.Goexit; waiters are released and the slot stays retryable.
func (p *Provider[T]) lead(a *attempt[T]) {
	returned := false
	defer func() {
		if !returned {
			a.val = nil
			a.err = ConstructionError{Name: p.name, Err: ErrConstructorExited}
		}
		p.mu.Lock()
		if a.err == nil {
			p.slot.Store(a.val)
		}
		p.inflight = nil
		p.mu.Unlock()
		close(a.done)
	}()

	a.val, a.err = p.build()
	returned = true
}

func (p *Provider[T]) wait(ctx context.Context, a *attempt[T]) (*T, error) {
	select {
	case <-a.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if a.err != nil {
		return nil, a.err
	}
	return a.val, nil
}

// build runs the constructor and normalizes every failure into a ConstructionError.
func (p *Provider[T]) build() (val *T, err error) {
	if p.ctor == nil {
		return nil, ConstructionError{Name: p.name, Err: ErrNilConstructor}
	}
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			err = ConstructionError{Name: p.name, Err: fmt.Errorf("%w: %v", ErrConstructorPanic, rec)}
		}
	}()

	v, cerr := p.ctor()
	if cerr != nil {
		return nil, ConstructionError{Name: p.name, Err: cerr}
	}
	if v == nil {
		return nil, ConstructionError{Name: p.name, Err: ErrNilInstance}
	}
	return v, nil
}
