// Package furniture is an abstract factory: each Factory produces a matching
// family of Chair, Sofa and Table.
package furniture

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Style names a product family.
type Style string

const (
	Victorian Style = "victorian"
	Modern    Style = "modern"
)

// ErrUnknownStyle matches every UnknownStyleError via errors.Is.
var ErrUnknownStyle = errors.New("furniture: unknown style")

// UnknownStyleError is returned by ForStyle for a tag with no factory.
type UnknownStyleError struct{ Tag string }

// Error implements the error interface.
func (e UnknownStyleError) Error() string {
	return "furniture: unknown style " + strconv.Quote(e.Tag)
}

// Is reports whether target is ErrUnknownStyle.
func (e UnknownStyleError) Is(target error) bool { return target == ErrUnknownStyle }

// Chair is the seat product of a family.
type Chair interface{ SitOn() string }

// Sofa is the couch product of a family.
type Sofa interface{ LieOn() string }

// Table is the work surface product of a family.
type Table interface{ Use() string }

// Factory creates one family of furniture.
type Factory interface {
	Style() Style
	CreateChair() Chair
	CreateSofa() Sofa
	CreateTable() Table
}

// Set is one piece of each product, all from the same family.
type Set struct {
	Style Style
	Chair Chair
	Sofa  Sofa
	Table Table
}

// Furnish asks f for one of each product.
func Furnish(f Factory) Set {
	return Set{
		Style: f.Style(),
		Chair: f.CreateChair(),
		Sofa:  f.CreateSofa(),
		Table: f.CreateTable(),
	}
}

// Lines returns what using each piece of the set looks like.
func (s Set) Lines() []string {
	return []string{s.Chair.SitOn(), s.Sofa.LieOn(), s.Table.Use()}
}

var factories = map[Style]func() Factory{
	Victorian: NewVictorian,
	Modern:    NewModern,
}

// ForStyle returns the factory for tag, ignoring case and surrounding space.
func ForStyle(tag string) (Factory, error) {
	build, ok := factories[Style(strings.ToLower(strings.TrimSpace(tag)))]
	if !ok {
		return nil, UnknownStyleError{Tag: tag}
	}
	return build(), nil
}

// Styles returns every known style, sorted.
func Styles() []Style {
	styles := make([]Style, 0, len(factories))
	for s := range factories {
		styles = append(styles, s)
	}
	sort.Slice(styles, func(i, j int) bool { return styles[i] < styles[j] })
	return styles
}
