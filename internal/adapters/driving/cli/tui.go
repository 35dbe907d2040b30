package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bmi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bmi-cli/internal/logger"
)

var tuiNoDelay bool

// runProgram starts the bubbletea program. Tests replace it to avoid
// needing a terminal.
var runProgram = func(p *tea.Program) error {
	_, err := p.Run()
	return err
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

The TUI shows the input form next to the result panel, so you can adjust a
value and recalculate without leaving the screen.

Controls:
  ↑/↓, tab     - Move between fields
  ←/→, space   - Change gender or unit
  Enter        - Calculate (once every field is valid)
  ctrl+r       - Clear the form
  Esc          - Back to menu
  ?            - Help (from the menu)
  ctrl+c       - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&tuiNoDelay, "no-delay", false, "show results immediately instead of after the calculating pause")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	app, err := tui.NewApp(tui.NewPorts(calculatorService, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app.WithContext(ctx)
	if tuiNoDelay {
		app.WithCalculatingDelay(0)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if watcher, ok := configStore.(driven.ConfigWatcher); ok {
		go func() {
			onChange := func() { p.Send(messages.SettingsChanged{}) }
			if err := watcher.Watch(ctx, onChange); err != nil {
				logger.Debug("config watch stopped: %v", err)
			}
		}()
	}

	// Log lines would tear the alternate screen.
	if !logger.IsVerbose() {
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)
	}

	if err := runProgram(p); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
