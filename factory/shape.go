package factory

import "strings"

// Kind is the tag that selects a concrete Shape.
type Kind string

const (
	// Circle selects a round shape.
	Circle Kind = "circle"
	// Square selects a shape with four equal edges.
	Square Kind = "square"
	// Rectangle selects a shape with two pairs of equal edges.
	Rectangle Kind = "rectangle"
)

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// ParseKind normalizes a user supplied tag. Matching ignores case and surrounding
// whitespace; unknown tags are rejected with UnknownKindError.
func ParseKind(tag string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(tag)))
	switch k {
	case Circle, Square, Rectangle:
		return k, nil
	}
	return "", UnknownKindError{Tag: tag}
}

// Shape is the product every factory in this package returns.
type Shape interface {
	Kind() Kind
	Draw() string
}

type circle struct{}

func (circle) Kind() Kind   { return Circle }
func (circle) Draw() string { return "Drawing a Circle" }

type square struct{}

func (square) Kind() Kind   { return Square }
func (square) Draw() string { return "Drawing a Square" }

type rectangle struct{}

func (rectangle) Kind() Kind   { return Rectangle }
func (rectangle) Draw() string { return "Drawing a Rectangle" }

// NewCircle returns a circle.
func NewCircle() Shape { return circle{} }

// NewSquare returns a square.
func NewSquare() Shape { return square{} }

// NewRectangle returns a rectangle.
func NewRectangle() Shape { return rectangle{} }
