package factory

import (
	"fmt"
	"sort"
)

// Constructor builds one Shape variant.
type Constructor func() Shape

// Registry maps a Kind to the Constructor that builds it.
//
// It is meant to be filled once while a factory is assembled and read afterwards;
// Provide is not safe to call concurrently with other methods.
//
// Expected usage:
//
//	reg := NewRegistry().Provide(Circle, NewCircle)
//	shape, ok, err := reg.Resolve(Circle)
type Registry struct {
	items map[Kind]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[Kind]Constructor{}}
}

// Provide stores ctor under kind and returns the registry for chaining.
// A nil ctor removes the kind.
func (r *Registry) Provide(kind Kind, ctor Constructor) *Registry {
	if ctor == nil {
		delete(r.items, kind)
		return r
	}
	r.items[kind] = ctor
	return r
}

// Resolve builds the Shape registered for kind.
//
// ok is false when kind is not registered. A panicking constructor is converted
// into an error wrapping ErrRegistryPanic.
func (r *Registry) Resolve(kind Kind) (shape Shape, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			shape = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	ctor, ok := r.items[kind]
	if !ok {
		return nil, false, nil
	}
	return ctor(), true, nil
}

// Kinds returns the registered kinds in lexical order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.items))
	for k := range r.items {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
