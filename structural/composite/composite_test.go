package composite_test

import (
	"bytes"
	"testing"

	"github.com/sghaida/patterns/structural/composite"
	"github.com/stretchr/testify/assert"
)

// TestGroup_DrawNested verifies nested groups draw depth first in insertion order.
func TestGroup_DrawNested(t *testing.T) {
	t.Parallel()

	inner := composite.NewGroup(composite.NewCircle("circle1"), composite.NewSquare("square1"))
	outer := composite.NewGroup(composite.NewCircle("circle2"), inner)

	var buf bytes.Buffer
	outer.Draw(&buf)

	assert.Equal(t, "Drawing a Circle\nDrawing a Circle\nDrawing a Square\n", buf.String())
	assert.Equal(t, 2, outer.Len())
	assert.Equal(t, 3, outer.Leaves())
}

// TestGroup_Remove verifies removal is by identity and limited to direct children.
func TestGroup_Remove(t *testing.T) {
	t.Parallel()

	c1 := composite.NewCircle("a")
	c2 := composite.NewCircle("a")
	sq := composite.NewSquare("s")
	inner := composite.NewGroup(sq)
	g := composite.NewGroup(c1, c2, inner, nil)

	assert.Equal(t, 3, g.Len())
	assert.True(t, g.Remove(c2))
	assert.False(t, g.Remove(c2))
	assert.False(t, g.Remove(sq))
	assert.Equal(t, 2, g.Len())

	var buf bytes.Buffer
	g.Draw(&buf)
	assert.Equal(t, "Drawing a Circle\nDrawing a Square\n", buf.String())
}

// TestGroup_Empty verifies an empty group draws nothing.
func TestGroup_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	composite.NewGroup().Draw(&buf)
	assert.Empty(t, buf.String())
	assert.Zero(t, composite.NewGroup().Leaves())
}
