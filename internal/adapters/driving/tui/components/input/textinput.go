// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/styles"
)

// maxFieldChars is enough for any accepted measurement, e.g. "1000.25".
const maxFieldChars = 8

// Field wraps a bubbles textinput with a label for one numeric form value.
type Field struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
}

// NewField creates a labelled input with the given placeholder.
func NewField(s *styles.Styles, label, placeholder string) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = maxFieldChars
	ti.Width = 24
	ti.Prompt = ""

	return &Field{
		textinput: ti,
		styles:    s,
		label:     label,
	}
}

// Init initialises the field.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label and the input.
func (f *Field) View() string {
	label := f.styles.Label.Render(f.label)
	if f.Focused() {
		label = f.styles.Label.Bold(true).Render("> " + f.label)
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, f.styles.InputField.Render(f.textinput.View()))
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// Reset clears the input.
func (f *Field) Reset() {
	f.textinput.Reset()
}
