package cli

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

var (
	calcInput       inputFlags
	calcJSON        bool
	calcNoScale     bool
	calcInteractive bool
)

var calculateCmd = &cobra.Command{
	Use:     "calculate",
	Aliases: []string{"calc"},
	Short:   "Calculate BMI from height and weight",
	Long: `Calculate Body Mass Index and show its category on the scale.

Height is given in centimetres (--height-cm) or feet and inches
(--height-feet, --height-inches). Weight is given in kilograms
(--weight-kg) or pounds (--weight-lbs). Units not given on the command
line come from settings.

Examples:
  bmi calculate --age 30 --gender male --height-cm 175 --weight-kg 70
  bmi calculate --age 25 --gender female --height-unit ft \
    --height-feet 5 --height-inches 0 --weight-unit lbs --weight-lbs 220
  bmi calculate -i`,
	Args: cobra.NoArgs,
	RunE: runCalculate,
}

func init() {
	calcInput.register(calculateCmd)
	calculateCmd.Flags().BoolVar(&calcJSON, "json", false, "output the result as JSON")
	calculateCmd.Flags().BoolVar(&calcNoScale, "no-scale", false, "do not print the category scale")
	calculateCmd.Flags().BoolVarP(&calcInteractive, "interactive", "i", false, "prompt for missing values")
	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}
	if calcInteractive && !isTerminal() {
		return errors.New("--interactive requires a terminal")
	}

	settings := currentSettings()
	raw := calcInput.rawInput().WithDefaultUnits(settings.Units.Height, settings.Units.Weight)

	calc, err := calculateWithPrompts(cmd, raw)
	if err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			return fmt.Errorf("%s: %w", verr.Kind.Title(), err)
		}
		return fmt.Errorf("calculation failed: %w", err)
	}

	if calcJSON || settings.Output.Format == domain.OutputFormatJSON {
		return outputJSON(cmd, calc)
	}
	outputCalculation(cmd, calc, settings.Output.ShowScale && !calcNoScale)
	return nil
}

// calculateWithPrompts runs the calculation. In interactive mode missing
// fields are prompted for, and a rejected field is cleared and asked again.
func calculateWithPrompts(cmd *cobra.Command, raw domain.RawInput) (*domain.Calculation, error) {
	var reader *bufio.Reader
	if calcInteractive {
		reader = bufio.NewReader(stdin)
	}

	for attempt := 1; ; attempt++ {
		if reader != nil {
			var err error
			if raw, err = promptMissing(cmd, reader, raw); err != nil {
				return nil, err
			}
		}

		calc, err := calculatorService.Calculate(cmd.Context(), raw)
		if err == nil {
			return calc, nil
		}

		verr, ok := domain.AsValidationError(err)
		if !ok || reader == nil || attempt >= maxPromptAttempts {
			return nil, err
		}
		cmd.Printf("%s: %s\n", verr.Kind.Title(), verr.Message)
		if field := rawField(&raw, verr.Field); field != nil {
			*field = ""
		}
	}
}
