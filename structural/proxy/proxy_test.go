package proxy_test

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/sghaida/patterns/lazy"
	"github.com/sghaida/patterns/structural/proxy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestLazy_LoadsOnFirstDisplay verifies the file is loaded once, on the first display only.
func TestLazy_LoadsOnFirstDisplay(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	img := proxy.New(&buf, "photo1.jpg")
	assert.False(t, img.Loaded())
	assert.Empty(t, buf.String())

	require.NoError(t, img.Display())
	require.NoError(t, img.Display())

	want := strings.Join([]string{
		"Loading image from disk: photo1.jpg",
		"Proxy: Delegating display to RealImage.",
		"Displaying image: photo1.jpg",
		"Proxy: Delegating display to RealImage.",
		"Displaying image: photo1.jpg",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
	assert.True(t, img.Loaded())
	assert.Equal(t, int64(1), img.Loads())
}

// TestLazy_ConcurrentDisplay verifies racing first displays share a single load.
func TestLazy_ConcurrentDisplay(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	img := proxy.New(&out, "photo2.png")

	const n = 32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, img.Display())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, strings.Count(out.String(), "Loading image from disk"))
	assert.Equal(t, n, strings.Count(out.String(), "Displaying image: photo2.png"))
	assert.Equal(t, int64(1), img.Loads())
}

// TestLazy_EmptyFilename verifies a failed load is reported on every display and never cached.
func TestLazy_EmptyFilename(t *testing.T) {
	t.Parallel()

	img := proxy.New(io.Discard, "")
	for i := 0; i < 2; i++ {
		err := img.Display()
		require.ErrorIs(t, err, proxy.ErrEmptyFilename)

		var ce lazy.ConstructionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "proxy.image:", ce.Name)
	}
	assert.False(t, img.Loaded())
	assert.Equal(t, int64(2), img.Loads())
}

// TestLoadImage verifies the real subject loads eagerly.
func TestLoadImage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	img, err := proxy.LoadImage(&buf, "a.gif")
	require.NoError(t, err)
	assert.Equal(t, "a.gif", img.Filename())
	assert.Equal(t, "Loading image from disk: a.gif\n", buf.String())

	var _ proxy.Image = img
	var _ proxy.Image = proxy.New(io.Discard, "b.gif")
}
