package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// NewRegistry / Provide
// -----------------------------------------------------------------------------

// TestNewRegistry_Empty verifies NewRegistry initializes a non-nil registry with an empty map.
func TestNewRegistry_Empty(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NotNil(t, r)
	require.NotNil(t, r.items)
	assert.Empty(t, r.items)
	assert.Empty(t, r.Kinds())
}

// TestProvide_ChainsAndStores verifies Provide stores constructors and returns the same registry.
func TestProvide_ChainsAndStores(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	ret := r.Provide(Circle, NewCircle).Provide(Square, NewSquare)
	require.Same(t, r, ret)

	assert.Equal(t, []Kind{Circle, Square}, r.Kinds())
	_, ok, err := r.Resolve(Rectangle)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestProvide_NilRemoves verifies a nil constructor unregisters the kind.
func TestProvide_NilRemoves(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide(Circle, NewCircle).Provide(Circle, nil)
	_, ok, err := r.Resolve(Circle)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, r.Kinds())
}

// TestKinds_Sorted verifies Kinds is returned in lexical order.
func TestKinds_Sorted(t *testing.T) {
	t.Parallel()

	r := NewRegistry().
		Provide(Square, NewSquare).
		Provide(Circle, NewCircle).
		Provide(Rectangle, NewRectangle)

	assert.Equal(t, []Kind{Circle, Rectangle, Square}, r.Kinds())
}

//
// -----------------------------------------------------------------------------
// Resolve
// -----------------------------------------------------------------------------

// TestResolve_Present verifies Resolve builds the registered variant.
func TestResolve_Present(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide(Rectangle, NewRectangle)

	shape, ok, err := r.Resolve(Rectangle)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Rectangle, shape.Kind())
}

// TestResolve_Missing verifies Resolve returns (nil,false,nil) for missing kinds.
func TestResolve_Missing(t *testing.T) {
	t.Parallel()

	shape, ok, err := NewRegistry().Resolve(Circle)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, shape)
}

// TestResolve_RecoversFromPanic verifies panics are converted into ErrRegistryPanic.
func TestResolve_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		reg  *Registry
	}{
		{name: "nil receiver", reg: nil},
		{name: "panicking constructor", reg: NewRegistry().Provide(Circle, func() Shape { panic("bad circle") })},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			shape, ok, err := tc.reg.Resolve(Circle)
			require.Error(t, err)
			assert.False(t, ok)
			assert.Nil(t, shape)
			assert.True(t, errors.Is(err, ErrRegistryPanic), "expected ErrRegistryPanic wrapping, got: %v", err)
		})
	}
}
