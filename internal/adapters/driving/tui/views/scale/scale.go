// Package scale provides the BMI category scale view for the TUI.
package scale

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

// Render draws a compact, non-interactive scale. The row whose name
// equals highlight is marked and drawn in its category colour.
func Render(s *styles.Styles, categories []domain.Category, highlight string) string {
	if s == nil {
		s = styles.DefaultStyles()
	}

	lines := make([]string, 0, len(categories)+1)
	lines = append(lines, s.Subtitle.Render("BMI Scale"))
	for _, c := range categories {
		marker := " "
		name := s.Muted.Render(fmt.Sprintf("%-20s", c.Name))
		if c.Name == highlight {
			marker = ">"
			name = s.Category(c).Render(fmt.Sprintf("%-20s", c.Name))
		}
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			marker, s.Category(c).Render(c.Glyph), name, s.Muted.Render(c.RangeLabel())))
	}
	return strings.Join(lines, "\n")
}

// View lists every category with its description.
type View struct {
	styles *styles.Styles
	list   *list.CategoryList
	width  int
	height int
}

// NewView creates a scale view over the given categories.
func NewView(s *styles.Styles, categories []domain.Category) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		list:   list.NewCategoryList(s, categories),
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles navigation; esc returns to the menu.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd
	}

	return v, nil
}

// View renders the scale.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("BMI Scale"))
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Esc] Back  [q] Quit"))

	return b.String()
}

// SetHighlight marks the category of the latest result.
func (v *View) SetHighlight(name string) {
	v.list.SetHighlight(name)
}

// Selected returns the category under the cursor.
func (v *View) Selected() *domain.Category {
	return v.list.SelectedCategory()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, height-4)
}
