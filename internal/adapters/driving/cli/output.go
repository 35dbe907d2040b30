package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputCalculation prints the headline, the category and optionally the scale.
func outputCalculation(cmd *cobra.Command, calc *domain.Calculation, showScale bool) {
	cmd.Println(calc.Summary())
	cmd.Printf("Category: %s %s (%s)\n",
		calc.Category.Severity.Icon(), calc.Category.Name, calc.Category.RangeLabel())
	cmd.Println(calc.Category.Description)

	if showScale {
		cmd.Println()
		outputScale(cmd, domain.Categories(), calc.Category.Name)
	}
}

// outputScale prints the category table, marking the highlighted band.
func outputScale(cmd *cobra.Command, categories []domain.Category, highlight string) {
	cmd.Println("BMI Scale")
	cmd.Println("---------")
	for _, c := range categories {
		marker := " "
		if c.Name == highlight {
			marker = ">"
		}
		cmd.Printf("%s %s %s %-20s %s\n", marker, c.Glyph, c.Severity.Icon(), c.Name, c.RangeLabel())
	}
}
