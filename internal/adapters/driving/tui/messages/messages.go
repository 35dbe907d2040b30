// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota

	// ViewCalculator is the input form with its result panel.
	ViewCalculator

	// ViewScale shows the category table.
	ViewScale

	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewCalculator:
		return "calculator"
	case ViewScale:
		return "scale"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// CalculationCompleted carries the outcome of a submitted form.
type CalculationCompleted struct {
	Calculation *domain.Calculation
	Err         error
}

// SettingsLoaded carries settings read at startup or after a config change.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsChanged signals that the config file was edited externally.
type SettingsChanged struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
