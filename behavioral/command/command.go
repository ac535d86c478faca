// Package command records editor operations as commands so they can be undone.
package command

// Editor is the receiver. Each mutation snapshots the previous text.
type Editor struct {
	text    []rune
	history [][]rune
}

// Text returns the current content.
func (e *Editor) Text() string { return string(e.text) }

// Write appends s.
func (e *Editor) Write(s string) {
	e.snapshot()
	e.text = append(e.text, []rune(s)...)
}

// Erase removes the last n characters. n is clamped to [0, len(text)].
func (e *Editor) Erase(n int) {
	e.snapshot()
	n = max(0, min(n, len(e.text)))
	e.text = e.text[:len(e.text)-n]
}

// Undo restores the text before the last mutation and reports whether there was one.
func (e *Editor) Undo() bool {
	if len(e.history) == 0 {
		return false
	}
	last := len(e.history) - 1
	e.text = e.history[last]
	e.history = e.history[:last]
	return true
}

func (e *Editor) snapshot() {
	e.history = append(e.history, append([]rune(nil), e.text...))
}

// Command is an undoable operation.
type Command interface {
	Execute()
	Undo()
}

// Write appends Text to Editor.
type Write struct {
	Editor *Editor
	Text   string
}

// Execute implements Command.
func (c Write) Execute() { c.Editor.Write(c.Text) }

// Undo implements Command.
func (c Write) Undo() { c.Editor.Undo() }

// Erase removes Length characters from the end of Editor.
type Erase struct {
	Editor *Editor
	Length int
}

// Execute implements Command.
func (c Erase) Execute() { c.Editor.Erase(c.Length) }

// Undo implements Command.
func (c Erase) Undo() { c.Editor.Undo() }

// Invoker executes commands and keeps them for UndoLast.
type Invoker struct {
	done []Command
}

// Execute runs c and records it.
func (i *Invoker) Execute(c Command) {
	c.Execute()
	i.done = append(i.done, c)
}

// UndoLast undoes the most recent command and reports whether there was one.
func (i *Invoker) UndoLast() bool {
	if len(i.done) == 0 {
		return false
	}
	last := len(i.done) - 1
	i.done[last].Undo()
	i.done = i.done[:last]
	return true
}

// Len is the number of commands that can still be undone.
func (i *Invoker) Len() int { return len(i.done) }
