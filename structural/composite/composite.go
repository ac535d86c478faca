// Package composite treats single graphics and groups of graphics uniformly.
package composite

import (
	"fmt"
	"io"
)

// Graphic is anything that can be drawn. Implementations must be comparable
// (usually pointers) so a Group can remove them.
type Graphic interface {
	Draw(w io.Writer)
}

// Circle is a leaf.
type Circle struct{ Name string }

// NewCircle returns a named circle.
func NewCircle(name string) *Circle { return &Circle{Name: name} }

// Draw implements Graphic.
func (*Circle) Draw(w io.Writer) { fmt.Fprintln(w, "Drawing a Circle") }

// Square is a leaf.
type Square struct{ Name string }

// NewSquare returns a named square.
func NewSquare(name string) *Square { return &Square{Name: name} }

// Draw implements Graphic.
func (*Square) Draw(w io.Writer) { fmt.Fprintln(w, "Drawing a Square") }

// Group is a Graphic made of other graphics, groups included. Drawing a group
// draws its children depth first, in insertion order.
type Group struct {
	children []Graphic
}

// NewGroup returns a group holding children.
func NewGroup(children ...Graphic) *Group {
	g := &Group{}
	return g.Add(children...)
}

// Add appends children and returns g for chaining. Nil children are skipped.
func (g *Group) Add(children ...Graphic) *Group {
	for _, c := range children {
		if c != nil {
			g.children = append(g.children, c)
		}
	}
	return g
}

// Remove drops the first occurrence of child and reports whether it was present.
// Nested groups are not searched.
func (g *Group) Remove(child Graphic) bool {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return true
		}
	}
	return false
}

// Len is the number of direct children.
func (g *Group) Len() int { return len(g.children) }

// Leaves counts the non-group graphics in the whole tree.
func (g *Group) Leaves() int {
	n := 0
	for _, c := range g.children {
		if sub, ok := c.(*Group); ok {
			n += sub.Leaves()
			continue
		}
		n++
	}
	return n
}

// Draw implements Graphic.
func (g *Group) Draw(w io.Writer) {
	for _, c := range g.children {
		c.Draw(w)
	}
}
