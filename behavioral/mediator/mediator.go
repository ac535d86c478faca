// Package mediator coordinates dialog widgets that never reference each other.
package mediator

import (
	"fmt"
	"io"
)

// Event is what a component reports to its mediator.
type Event string

// Events raised by the dialog widgets.
const (
	ButtonClicked Event = "button_clicked"
	TextEntered   Event = "text_entered"
)

// Mediator receives component events.
type Mediator interface {
	Notify(sender any, event Event)
}

// Button is a component.
type Button struct {
	w        io.Writer
	mediator Mediator
	enabled  bool
}

// Click reports ButtonClicked.
func (b *Button) Click() {
	fmt.Fprintln(b.w, "Button clicked.")
	b.mediator.Notify(b, ButtonClicked)
}

// Enable turns the button on.
func (b *Button) Enable() {
	b.enabled = true
	fmt.Fprintln(b.w, "Button enabled.")
}

// Enabled reports whether Enable was called.
func (b *Button) Enabled() bool { return b.enabled }

// TextBox is a component.
type TextBox struct {
	w        io.Writer
	mediator Mediator
	text     string
}

// EnterText stores text and reports TextEntered.
func (t *TextBox) EnterText(text string) {
	t.text = text
	fmt.Fprintf(t.w, "Text entered: %s\n", text)
	t.mediator.Notify(t, TextEntered)
}

// Clear empties the box.
func (t *TextBox) Clear() {
	t.text = ""
	fmt.Fprintln(t.w, "TextBox cleared.")
}

// Text returns the current content.
func (t *TextBox) Text() string { return t.text }

// Dialog is the concrete mediator owning a Button and a TextBox.
type Dialog struct {
	w       io.Writer
	Button  *Button
	TextBox *TextBox
}

// NewDialog builds a dialog whose widgets trace into w.
func NewDialog(w io.Writer) *Dialog {
	d := &Dialog{w: w}
	d.Button = &Button{w: w, mediator: d}
	d.TextBox = &TextBox{w: w, mediator: d}
	return d
}

// Notify implements Mediator. Unknown events are ignored.
func (d *Dialog) Notify(_ any, event Event) {
	switch event {
	case ButtonClicked:
		fmt.Fprintln(d.w, "Mediator reacts on button click and clears the textbox.")
		d.TextBox.Clear()
	case TextEntered:
		fmt.Fprintln(d.w, "Mediator reacts on text entry and enables the button.")
		d.Button.Enable()
	}
}
