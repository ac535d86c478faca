package mediator_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sghaida/patterns/behavioral/mediator"
	"github.com/stretchr/testify/assert"
)

// TestDialog_Flow verifies entering text enables the button and clicking clears the box.
func TestDialog_Flow(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := mediator.NewDialog(&buf)
	assert.False(t, d.Button.Enabled())

	d.TextBox.EnterText("Hello World")
	assert.True(t, d.Button.Enabled())
	assert.Equal(t, "Hello World", d.TextBox.Text())

	d.Button.Click()
	assert.Empty(t, d.TextBox.Text())

	want := strings.Join([]string{
		"Text entered: Hello World",
		"Mediator reacts on text entry and enables the button.",
		"Button enabled.",
		"Button clicked.",
		"Mediator reacts on button click and clears the textbox.",
		"TextBox cleared.",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

// TestDialog_UnknownEvent verifies events the dialog does not know are ignored.
func TestDialog_UnknownEvent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := mediator.NewDialog(&buf)
	d.Notify(nil, mediator.Event("resized"))
	assert.Empty(t, buf.String())
	assert.False(t, d.Button.Enabled())
}
