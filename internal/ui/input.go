package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DurationLabel is shown above the duration field.
const DurationLabel = "Enter the duration in seconds"

// DurationChangedMsg announces an edit of the duration field. Owners read
// the field itself for the current text; Text is the value at the time of
// the edit and may be stale by the time the message arrives.
type DurationChangedMsg struct {
	Text string
}

// DurationInput is a single-line text field for the timer duration. It does
// not validate; every edit is reported to the owner as a DurationChangedMsg.
type DurationInput struct {
	field textinput.Model
}

// NewDurationInput returns a focused field holding initial.
func NewDurationInput(initial string) DurationInput {
	f := textinput.New()
	f.Prompt = ""
	f.Placeholder = "0"
	f.Width = 8
	f.Cursor.SetMode(cursor.CursorStatic)
	f.SetValue(initial)
	f.Focus()
	return DurationInput{field: f}
}

// Value returns the current raw text.
func (d DurationInput) Value() string {
	return d.field.Value()
}

// Focused reports whether the field receives key input.
func (d DurationInput) Focused() bool {
	return d.field.Focused()
}

// Focus gives the field key input.
func (d *DurationInput) Focus() {
	d.field.Focus()
}

// Blur takes key input away from the field.
func (d *DurationInput) Blur() {
	d.field.Blur()
}

// Update forwards msg to the text field and reports any change of text.
func (d DurationInput) Update(msg tea.Msg) (DurationInput, tea.Cmd) {
	before := d.field.Value()

	var cmd tea.Cmd
	d.field, cmd = d.field.Update(msg)

	after := d.field.Value()
	if after == before {
		return d, cmd
	}

	changed := func() tea.Msg { return DurationChangedMsg{Text: after} }
	if cmd == nil {
		return d, changed
	}
	return d, tea.Batch(cmd, changed)
}

// View renders the label and the field.
func (d DurationInput) View() string {
	box := Current.InputBox
	if d.field.Focused() {
		box = Current.InputFocus
	}
	return Current.Label.Render(DurationLabel) + "\n" + box.Render(d.field.View())
}
