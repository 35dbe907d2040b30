package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/styles"
)

func TestNewField(t *testing.T) {
	f := NewField(styles.DefaultStyles(), "Age", "years")

	require.NotNil(t, f)
	assert.Equal(t, "Age", f.Label())
	assert.Equal(t, "", f.Value())
	assert.False(t, f.Focused())
}

func TestNewField_NilStyles(t *testing.T) {
	f := NewField(nil, "Age", "years")

	require.NotNil(t, f)
	assert.NotNil(t, f.styles)
}

func TestField_Init(t *testing.T) {
	f := NewField(nil, "Age", "years")

	// Blink command should be returned
	assert.NotNil(t, f.Init())
}

func TestField_UpdateWhenFocused(t *testing.T) {
	f := NewField(nil, "Age", "years")
	f.Focus()

	for _, r := range "42" {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "42", f.Value())
}

func TestField_UpdateIgnoredWhenBlurred(t *testing.T) {
	f := NewField(nil, "Age", "years")

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})

	assert.Equal(t, "", f.Value())
}

func TestField_CharLimit(t *testing.T) {
	f := NewField(nil, "Weight (kg)", "e.g. 70")
	f.Focus()

	for _, r := range "1234567890" {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Len(t, f.Value(), maxFieldChars)
}

func TestField_Backspace(t *testing.T) {
	f := NewField(nil, "Age", "years")
	f.Focus()
	f.SetValue("305")

	f.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, "30", f.Value())
}

func TestField_FocusBlur(t *testing.T) {
	f := NewField(nil, "Age", "years")

	cmd := f.Focus()
	assert.NotNil(t, cmd)
	assert.True(t, f.Focused())

	f.Blur()
	assert.False(t, f.Focused())
}

func TestField_View(t *testing.T) {
	f := NewField(nil, "Age", "years")

	assert.Contains(t, f.View(), "Age")
	assert.NotContains(t, f.View(), "> Age")

	f.Focus()
	assert.Contains(t, f.View(), "> Age")
}

func TestField_Reset(t *testing.T) {
	f := NewField(nil, "Age", "years")
	f.SetValue("30")

	f.Reset()

	assert.Equal(t, "", f.Value())
}
