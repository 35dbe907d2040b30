package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

var (
	settingsHeightUnit string
	settingsWeightUnit string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure default units, output format, the HTTP server and logging.

Use subcommands to configure specific settings or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsUnitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Set default units",
	Long: `Set the units used when input does not name them.

Examples:
  bmi settings units --height ft --weight lbs
  bmi settings units --weight kg`,
	RunE: runSettingsUnits,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE:  runSettingsReset,
}

func init() {
	settingsUnitsCmd.Flags().StringVar(&settingsHeightUnit, "height", "", "default height unit: cm or ft")
	settingsUnitsCmd.Flags().StringVar(&settingsWeightUnit, "weight", "", "default weight unit: kg or lbs")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsUnitsCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	defaults := settingsService.GetDefaults()
	mark := func(changed bool) string {
		if changed {
			return " *"
		}
		return ""
	}

	cmd.Println("[Units]")
	cmd.Printf("  Height: %s%s\n", settings.Units.Height.Description(), mark(settings.Units.Height != defaults.Units.Height))
	cmd.Printf("  Weight: %s%s\n", settings.Units.Weight.Description(), mark(settings.Units.Weight != defaults.Units.Weight))
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s%s\n", settings.Output.Format.Description(), mark(settings.Output.Format != defaults.Output.Format))
	cmd.Printf("  Show scale: %s%s\n", yesNo(settings.Output.ShowScale), mark(settings.Output.ShowScale != defaults.Output.ShowScale))
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s%s\n", settings.Server.Addr, mark(settings.Server.Addr != defaults.Server.Addr))
	cmd.Printf("  Rate limit: %g req/s (burst %d)%s\n", settings.Server.RateLimit, settings.Server.Burst,
		mark(settings.Server.RateLimit != defaults.Server.RateLimit || settings.Server.Burst != defaults.Server.Burst))
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Level: %s%s\n", settings.Log.Level, mark(settings.Log.Level != defaults.Log.Level))
	cmd.Println()

	if *settings != defaults {
		cmd.Println("* differs from the default")
		cmd.Println()
	}

	if configStore != nil {
		cmd.Printf("Config file: %s\n", configStore.Path())
	}

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'bmi settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("BMI Settings Wizard")
	cmd.Println("===================")
	cmd.Println()

	reader := bufio.NewReader(stdin)

	settings.Units.Height = chooseOption(cmd, reader, "Step 1: Default Height Unit",
		domain.AllHeightUnits(), domain.HeightUnit.Description, settings.Units.Height)
	settings.Units.Weight = chooseOption(cmd, reader, "Step 2: Default Weight Unit",
		domain.AllWeightUnits(), domain.WeightUnit.Description, settings.Units.Weight)
	settings.Output.Format = chooseOption(cmd, reader, "Step 3: Output Format",
		domain.AllOutputFormats(), domain.OutputFormat.Description, settings.Output.Format)

	cmd.Printf("Step 4: Show the category scale after each result? [%s]: ", yesNo(settings.Output.ShowScale))
	settings.Output.ShowScale = parseYesNo(readLine(reader), settings.Output.ShowScale)
	cmd.Println()

	settings.Log.Level = chooseOption(cmd, reader, "Step 5: Log Level",
		domain.AllLogLevels(), domain.LogLevel.String, settings.Log.Level)

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

func runSettingsUnits(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if settingsHeightUnit == "" && settingsWeightUnit == "" {
		return errors.New("at least one of --height or --weight is required")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	height, weight := settings.Units.Height, settings.Units.Weight
	if settingsHeightUnit != "" {
		u, ok := domain.ParseHeightUnit(settingsHeightUnit)
		if !ok {
			return fmt.Errorf("unknown height unit %q: use cm or ft", settingsHeightUnit)
		}
		height = u
	}
	if settingsWeightUnit != "" {
		u, ok := domain.ParseWeightUnit(settingsWeightUnit)
		if !ok {
			return fmt.Errorf("unknown weight unit %q: use kg or lbs", settingsWeightUnit)
		}
		weight = u
	}

	if err := settingsService.SetDefaultUnits(height, weight); err != nil {
		return fmt.Errorf("failed to set units: %w", err)
	}

	cmd.Printf("Default units set to: %s, %s\n", height.Description(), weight.Description())
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.ResetToDefaults(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}

// chooseOption prints a numbered menu and returns the selection, keeping
// current when the answer is empty or out of range.
func chooseOption[T comparable](
	cmd *cobra.Command, reader *bufio.Reader, title string,
	options []T, describe func(T) string, current T,
) T {
	cmd.Println(title)
	cmd.Println(strings.Repeat("-", len(title)))

	defaultIdx := 1
	for i, opt := range options {
		if opt == current {
			defaultIdx = i + 1
		}
		cmd.Printf("  %d. %s\n", i+1, describe(opt))
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultIdx)
	idx := parseChoice(readLine(reader), len(options), defaultIdx)
	cmd.Printf("Selected: %s\n\n", describe(options[idx-1]))
	return options[idx-1]
}

// Helper functions.

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func parseYesNo(input string, defaultVal bool) bool {
	switch strings.ToLower(input) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return defaultVal
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
