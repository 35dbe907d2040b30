// Package result renders a finished calculation for the TUI.
package result

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/views/scale"
	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

// Placeholder is shown in the panel before the first calculation.
const Placeholder = "Enter your details and press enter to see your BMI."

// Render draws the result card for calc. A nil calc renders the
// placeholder. Width is the panel's outer width; zero leaves it unset.
func Render(s *styles.Styles, calc *domain.Calculation, categories []domain.Category, width int) string {
	if s == nil {
		s = styles.DefaultStyles()
	}

	panel := s.Panel
	if width > 0 {
		panel = panel.Width(width)
	}

	if calc == nil {
		return panel.Render(s.Muted.Render(Placeholder))
	}

	c := calc.Category
	var b strings.Builder

	b.WriteString(s.Title.Render(calc.Summary()))
	b.WriteString("\n\n")
	b.WriteString(s.Category(c).Render(fmt.Sprintf("%s %s %s", c.Glyph, c.Severity.Icon(), c.Name)))
	b.WriteString("  ")
	b.WriteString(s.Muted.Render(c.RangeLabel()))
	b.WriteString("\n")
	b.WriteString(s.Normal.Render(c.Description))
	b.WriteString("\n\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf("%.2f m, %.1f kg", calc.Measurement.HeightM, calc.Measurement.WeightKg)))
	b.WriteString("\n\n")
	b.WriteString(scale.Render(s, categories, c.Name))

	return panel.Render(b.String())
}
