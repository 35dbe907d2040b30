package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/styles"
)

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	assert.Len(t, view.Items(), 4)
	assert.Equal(t, 0, view.Selected())
	assert.Equal(t, 80, view.width)
	assert.Equal(t, 24, view.height)
	assert.Nil(t, view.Init())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_Update_Navigate(t *testing.T) {
	view := NewView(nil)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(j)
	view.Update(j)
	view.Update(j)
	assert.Equal(t, 3, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, view.Selected())

	k := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	view.Update(k)
	view.Update(k)
	view.Update(k)
	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_EnterChangesView(t *testing.T) {
	tests := []struct {
		index int
		want  messages.ViewType
	}{
		{0, messages.ViewCalculator},
		{1, messages.ViewScale},
		{2, messages.ViewHelp},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			view := NewView(nil)
			view.selected = tt.index

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

			require.NotNil(t, cmd)
			msg, ok := cmd().(messages.ViewChanged)
			require.True(t, ok)
			assert.Equal(t, tt.want, msg.View)
		})
	}
}

func TestView_Update_Quit(t *testing.T) {
	view := NewView(nil)
	view.selected = 3

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_View(t *testing.T) {
	view := NewView(nil)
	assert.Equal(t, "Initialising...", view.View())

	view.SetDimensions(80, 24)
	out := view.View()

	assert.Contains(t, out, Title)
	assert.Contains(t, out, Tagline)
	assert.Contains(t, out, "> Calculate BMI")
	assert.Contains(t, out, "BMI Scale")
	assert.Contains(t, out, "Quit")
}
