// Package decorator adds priced extras to a coffee by wrapping it.
package decorator

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Coffee is the decorated component.
type Coffee interface {
	Cost() int
	Description() string
}

// Simple is the undecorated coffee.
type Simple struct{}

// Cost implements Coffee.
func (Simple) Cost() int { return 5 }

// Description implements Coffee.
func (Simple) Description() string { return "Simple Coffee" }

type addon struct {
	base  Coffee
	name  string
	price int
}

func (a addon) Cost() int           { return a.base.Cost() + a.price }
func (a addon) Description() string { return a.base.Description() + ", " + a.name }

// WithMilk adds milk (+2).
func WithMilk(c Coffee) Coffee { return addon{base: c, name: "Milk", price: 2} }

// WithSugar adds sugar (+1).
func WithSugar(c Coffee) Coffee { return addon{base: c, name: "Sugar", price: 1} }

var addons = map[string]func(Coffee) Coffee{
	"milk":  WithMilk,
	"sugar": WithSugar,
}

// ErrUnknownAddon matches every UnknownAddonError via errors.Is.
var ErrUnknownAddon = errors.New("decorator: unknown addon")

// UnknownAddonError is returned by Decorate for a tag with no decorator.
type UnknownAddonError struct{ Tag string }

// Error implements the error interface.
func (e UnknownAddonError) Error() string {
	return "decorator: unknown addon " + strconv.Quote(e.Tag)
}

// Is reports whether target is ErrUnknownAddon.
func (e UnknownAddonError) Is(target error) bool { return target == ErrUnknownAddon }

// Decorate wraps c with the named addons, in order. Tags ignore case; the same
// addon may be applied more than once.
func Decorate(c Coffee, tags ...string) (Coffee, error) {
	for _, tag := range tags {
		wrap, ok := addons[strings.ToLower(strings.TrimSpace(tag))]
		if !ok {
			return nil, UnknownAddonError{Tag: tag}
		}
		c = wrap(c)
	}
	return c, nil
}

// Addons returns the addon tags accepted by Decorate, sorted.
func Addons() []string {
	out := make([]string, 0, len(addons))
	for k := range addons {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
