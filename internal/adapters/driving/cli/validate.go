package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

var (
	validateInput inputFlags
	validateJSON  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check whether input is ready for calculation",
	Long: `Check input without calculating. Prints "ready" when every field is
acceptable, or the first rejected field and why. Exits non-zero when the
input is not ready.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateInput.register(validateCmd)
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output the verdict as JSON")
	rootCmd.AddCommand(validateCmd)
}

// validationReport is the JSON form of a readiness check.
type validationReport struct {
	Ready bool                    `json:"ready"`
	Error *domain.ValidationError `json:"error,omitempty"`
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	_, err := calculatorService.Validate(validateInput.rawInputWithDefaults())
	verr, isValidation := domain.AsValidationError(err)
	if err != nil && !isValidation {
		return fmt.Errorf("validation failed: %w", err)
	}

	if validateJSON {
		if jsonErr := outputJSON(cmd, validationReport{Ready: err == nil, Error: verr}); jsonErr != nil {
			return jsonErr
		}
	} else if err == nil {
		cmd.Println("ready")
	}

	if err != nil {
		return fmt.Errorf("%s (%s): %w", verr.Kind.Title(), verr.Field, err)
	}
	return nil
}
