package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/views/calculator"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/views/scale"
	"github.com/custodia-labs/bmi-cli/internal/core/domain"
	"github.com/custodia-labs/bmi-cli/internal/logger"
)

// DefaultCalculatingDelay is how long the form shows its calculating
// state before the result appears.
const DefaultCalculatingDelay = 1500 * time.Millisecond

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports


	// styles holds the TUI styles.
	styles *styles.Styles

	menuView       *menu.View
	calculatorView *calculator.View
	scaleView      *scale.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// settings holds the last settings loaded, if any.
	settings *domain.AppSettings

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingCalculatorService)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	calcView := calculator.NewView(s, ports.Calculator)
	calcView.SetDelay(DefaultCalculatingDelay)

	return &App{
		ports:          ports,
		styles:         s,
		menuView:       menu.NewView(s),
		calculatorView: calcView,
		scaleView:      scale.NewView(s, ports.Calculator.Categories()),
		currentView:    messages.ViewMenu,
	}, nil
}

// WithContext sets the context passed to calculations.
func (a *App) WithContext(ctx context.Context) *App {
	a.calculatorView.SetContext(ctx)
	return a
}

// WithCalculatingDelay overrides DefaultCalculatingDelay. Zero shows
// results immediately.
func (a *App) WithCalculatingDelay(d time.Duration) *App {
	a.calculatorView.SetDelay(d)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(menu.Title),
		a.loadSettings(),
	)
}

// loadSettings reads settings through the optional settings port.
func (a *App) loadSettings() tea.Cmd {
	if a.ports.Settings == nil {
		return nil
	}
	svc := a.ports.Settings
	return func() tea.Msg {
		s, err := svc.Get()
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewCalculator {
			return a, a.calculatorView.Init()
		}
		return a, nil

	case messages.CalculationCompleted:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
		if msg.Err == nil && msg.Calculation != nil {
			a.scaleView.SetHighlight(msg.Calculation.Category.Name)
			logger.Debug("calculated %s (%s)", msg.Calculation.BMI, msg.Calculation.Category.Name)
		}
		return a, cmd

	case messages.SettingsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			logger.Warn("loading settings: %v", msg.Err)
			return a, nil
		}
		a.settings = msg.Settings
		if msg.Settings != nil {
			a.calculatorView.SetDefaultUnits(msg.Settings.Units.Height, msg.Settings.Units.Weight)
		}
		return a, nil

	case messages.SettingsChanged:
		return a, a.loadSettings()

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink, ticks) to the active view.
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewCalculator:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
	case messages.ViewScale:
		a.scaleView, cmd = a.scaleView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	// Global quit with ctrl+c
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch a.currentView {
	case messages.ViewMenu:
		if msg.String() == "?" {
			a.currentView = messages.ViewHelp
			return nil
		}
		a.menuView, cmd = a.menuView.Update(msg)

	case messages.ViewCalculator:
		// Every key belongs to the form here, including q and ?.
		a.calculatorView, cmd = a.calculatorView.Update(msg)

	case messages.ViewScale:
		if msg.String() == "q" {
			return tea.Quit
		}
		a.scaleView, cmd = a.scaleView.Update(msg)

	case messages.ViewHelp:
		switch msg.String() {
		case "esc", "?":
			a.currentView = messages.ViewMenu
		case "q":
			return tea.Quit
		}
	}

	return cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewCalculator:
		return a.calculatorView.View()
	case messages.ViewScale:
		return a.scaleView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  ?           Help
  q           Quit

Calculator:
  tab, ↓      Next field
  shift+tab   Previous field
  ←/→, space  Change gender or unit
  enter       Calculate (when all fields are valid)
  ctrl+r      Clear the form

BMI Scale:
  j/k, ↑/↓    Browse categories

[esc] back to menu`
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Calculator returns the calculator view.
func (a *App) Calculator() *calculator.View {
	return a.calculatorView
}

// Settings returns the last loaded settings, or nil.
func (a *App) Settings() *domain.AppSettings {
	return a.settings
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.calculatorView.SetDimensions(width, height)
	a.scaleView.SetDimensions(width, height)
}
