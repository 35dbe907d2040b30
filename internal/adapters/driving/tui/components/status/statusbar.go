// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/styles"
)

// State represents the current form state for display.
type State string

const (
	StateIncomplete  State = "incomplete"
	StateReady       State = "ready"
	StateCalculating State = "calculating"
	StateResult      State = "result"
	StateError       State = "error"
)

// Bar displays form status and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateIncomplete,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateCalculating:
		return s.styles.Muted.Render("Calculating...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(s.message)
		}
		return s.styles.Error.Render("Error")
	case StateResult:
		return s.styles.Success.Render(s.message)
	case StateReady:
		return s.styles.Normal.Render("Ready to calculate")
	case StateIncomplete:
		return s.styles.Muted.Render("Fill in all fields")
	}
	return ""
}

// renderRight renders keybinding hints. Calculate is offered only when
// the form is ready.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.state {
	case StateCalculating:
		bindings = s.keymap.ShortHelp()
	default:
		bindings = s.keymap.FormHelp(s.state == StateReady || s.state == StateResult)
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to its initial state.
func (s *Bar) Clear() {
	s.state = StateIncomplete
	s.message = ""
}
