package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var categoriesJSON bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the BMI categories",
	Long:  `List the six BMI bands with their ranges and descriptions.`,
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "output categories as JSON")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	categories := calculatorService.Categories()
	if categoriesJSON {
		return outputJSON(cmd, categories)
	}

	outputScale(cmd, categories, "")
	cmd.Println()
	for _, c := range categories {
		cmd.Printf("%s: %s\n", c.Name, c.Description)
	}
	return nil
}
