// Package proxy defers loading an image until it is first displayed.
//
// The proxy keeps its real image in a lazy.Provider, so concurrent first
// displays load the file once and a failed load is retried on the next call.
package proxy

import (
	"errors"
	"fmt"
	"io"

	"github.com/sghaida/patterns/lazy"
)

// ErrEmptyFilename is returned when an image has no file to load.
var ErrEmptyFilename = errors.New("proxy: empty filename")

// Image is the shared interface of the real image and its proxy.
type Image interface {
	Display() error
}

// RealImage is loaded eagerly on construction.
type RealImage struct {
	w        io.Writer
	filename string
}

// LoadImage loads filename and reports the load to w.
func LoadImage(w io.Writer, filename string) (*RealImage, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}
	fmt.Fprintf(w, "Loading image from disk: %s\n", filename)
	return &RealImage{w: w, filename: filename}, nil
}

// Filename returns the loaded file name.
func (r *RealImage) Filename() string { return r.filename }

// Display implements Image.
func (r *RealImage) Display() error {
	fmt.Fprintf(r.w, "Displaying image: %s\n", r.filename)
	return nil
}

// Lazy is the proxy.
type Lazy struct {
	w        io.Writer
	filename string
	real     *lazy.Provider[RealImage]
}

// New returns a proxy for filename. Nothing is loaded until Display.
// opts are passed to the underlying provider; its name defaults to
// "proxy.image:" + filename.
func New(w io.Writer, filename string, opts ...lazy.Option) *Lazy {
	opts = append([]lazy.Option{lazy.WithName("proxy.image:" + filename)}, opts...)
	return &Lazy{
		w:        w,
		filename: filename,
		real: lazy.New(func() (*RealImage, error) {
			return LoadImage(w, filename)
		}, opts...),
	}
}

// Loaded reports whether the real image has been loaded.
func (p *Lazy) Loaded() bool { return p.real.Ready() }

// Loads returns how many load attempts were made.
func (p *Lazy) Loads() int64 { return p.real.Attempts() }

// Display implements Image, loading the real image on first use.
func (p *Lazy) Display() error {
	img, err := p.real.Get()
	if err != nil {
		return err
	}
	fmt.Fprintln(p.w, "Proxy: Delegating display to RealImage.")
	return img.Display()
}
