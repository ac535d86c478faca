// Package factory selects Shape variants by tag.
//
// Two flavours are provided over the same Registry:
//
//   - simple factory: NewShapeFactory knows every Kind.
//   - factory method: NewEdgeFactory and NewRoundFactory each own a subset, and
//     callers depend only on the Factory interface.
//
// A tag that a factory cannot serve is always reported as UnknownKindError;
// a Factory never returns a nil Shape with a nil error.
package factory

import (
	"sort"
	"strings"
)

// Factory names accepted by Lookup.
const (
	ShapeFactoryName = "shape"
	EdgeFactoryName  = "edge"
	RoundFactoryName = "round"
)

// Factory creates shapes from a runtime tag.
type Factory interface {
	// Name identifies the factory in errors and listings.
	Name() string
	// Shape returns the variant for tag or an UnknownKindError.
	Shape(tag string) (Shape, error)
	// Kinds lists the kinds this factory produces.
	Kinds() []Kind
}

// RegistryFactory is a Factory backed by a Registry.
type RegistryFactory struct {
	name string
	reg  *Registry
}

// NewFactory builds a named factory over reg.
func NewFactory(name string, reg *Registry) *RegistryFactory {
	if reg == nil {
		reg = NewRegistry()
	}
	return &RegistryFactory{name: name, reg: reg}
}

// NewShapeFactory returns the simple factory that produces every Kind.
func NewShapeFactory() *RegistryFactory {
	return NewFactory(ShapeFactoryName, NewRegistry().
		Provide(Circle, NewCircle).
		Provide(Square, NewSquare).
		Provide(Rectangle, NewRectangle))
}

// NewEdgeFactory returns the factory for shapes with straight edges.
func NewEdgeFactory() *RegistryFactory {
	return NewFactory(EdgeFactoryName, NewRegistry().
		Provide(Square, NewSquare).
		Provide(Rectangle, NewRectangle))
}

// NewRoundFactory returns the factory for round shapes.
func NewRoundFactory() *RegistryFactory {
	return NewFactory(RoundFactoryName, NewRegistry().
		Provide(Circle, NewCircle))
}

// Name implements Factory.
func (f *RegistryFactory) Name() string { return f.name }

// Kinds implements Factory.
func (f *RegistryFactory) Kinds() []Kind { return f.reg.Kinds() }

// Shape implements Factory.
func (f *RegistryFactory) Shape(tag string) (Shape, error) {
	kind, err := ParseKind(tag)
	if err != nil {
		return nil, UnknownKindError{Factory: f.name, Tag: tag}
	}
	shape, ok, err := f.reg.Resolve(kind)
	if err != nil {
		return nil, err
	}
	if !ok || shape == nil {
		return nil, UnknownKindError{Factory: f.name, Tag: tag}
	}
	return shape, nil
}

var builders = map[string]func() *RegistryFactory{
	ShapeFactoryName: NewShapeFactory,
	EdgeFactoryName:  NewEdgeFactory,
	RoundFactoryName: NewRoundFactory,
}

// Lookup returns a fresh factory by name (case-insensitive).
func Lookup(name string) (Factory, error) {
	build, ok := builders[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, UnknownFactoryError{Name: name}
	}
	return build(), nil
}

// Names returns the factory names accepted by Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
