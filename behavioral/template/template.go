// Package template runs a fixed read, transform, save pipeline whose first two
// steps are supplied per data format.
package template

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Steps are the format specific parts of the pipeline.
type Steps interface {
	Read(w io.Writer)
	Transform(w io.Writer)
}

// Saver overrides the default save step.
type Saver interface {
	Save(w io.Writer)
}

// Process runs Read, Transform and then Save. Steps that do not implement Saver
// are saved to the database.
func Process(w io.Writer, s Steps) {
	s.Read(w)
	s.Transform(w)
	if saver, ok := s.(Saver); ok {
		saver.Save(w)
		return
	}
	fmt.Fprintln(w, "Saving data to database.")
}

// CSV processes CSV files.
type CSV struct{}

// Read implements Steps.
func (CSV) Read(w io.Writer) { fmt.Fprintln(w, "Reading data from CSV file.") }

// Transform implements Steps.
func (CSV) Transform(w io.Writer) { fmt.Fprintln(w, "Processing CSV data.") }

// JSON processes JSON files.
type JSON struct{}

// Read implements Steps.
func (JSON) Read(w io.Writer) { fmt.Fprintln(w, "Reading data from JSON file.") }

// Transform implements Steps.
func (JSON) Transform(w io.Writer) { fmt.Fprintln(w, "Processing JSON data.") }

var formats = map[string]Steps{
	"csv":  CSV{},
	"json": JSON{},
}

// ErrUnknownFormat matches every UnknownFormatError via errors.Is.
var ErrUnknownFormat = errors.New("template: unknown format")

// UnknownFormatError is returned by ForFormat for an unsupported tag.
type UnknownFormatError struct{ Tag string }

// Error implements the error interface.
func (e UnknownFormatError) Error() string {
	return "template: unknown format " + strconv.Quote(e.Tag)
}

// Is reports whether target is ErrUnknownFormat.
func (e UnknownFormatError) Is(target error) bool { return target == ErrUnknownFormat }

// ForFormat returns the steps for tag, ignoring case.
func ForFormat(tag string) (Steps, error) {
	s, ok := formats[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return nil, UnknownFormatError{Tag: tag}
	}
	return s, nil
}

// Formats returns the supported tags, sorted.
func Formats() []string {
	out := make([]string, 0, len(formats))
	for k := range formats {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
