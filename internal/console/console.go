// Package console prints the demo output.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes highlighted lines to an io.Writer.
//
// Colors follow fatih/color's terminal detection unless disabled explicitly.
type Printer struct {
	out    io.Writer
	title  *color.Color
	label  *color.Color
	value  *color.Color
	failed *color.Color
}

// New returns a Printer writing to out. enabled=false forces plain text.
func New(out io.Writer, enabled bool) *Printer {
	p := &Printer{
		out:    out,
		title:  color.New(color.FgCyan, color.Bold),
		label:  color.New(color.FgBlue),
		value:  color.New(color.FgGreen),
		failed: color.New(color.FgHiRed),
	}
	if !enabled {
		for _, c := range []*color.Color{p.title, p.label, p.value, p.failed} {
			c.DisableColor()
		}
	}
	return p
}

// Title prints a section heading.
func (p *Printer) Title(format string, args ...any) {
	fmt.Fprintln(p.out, p.title.Sprintf(format, args...))
}

// Line prints a plain line.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.out, s)
}

// Field prints "label: value".
func (p *Printer) Field(label string, value any) {
	fmt.Fprintln(p.out, p.label.Sprint(label+":"), p.value.Sprint(value))
}

// Failure prints a highlighted failure line.
func (p *Printer) Failure(s string) {
	fmt.Fprintln(p.out, p.failed.Sprint(s))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

// Writer returns the underlying writer, for demos that trace their own lines.
func (p *Printer) Writer() io.Writer { return p.out }
