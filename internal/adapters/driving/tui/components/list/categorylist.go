// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

// CategoryList displays the BMI scale as a navigable list. One category
// may be highlighted independently of the cursor, e.g. the category of
// the latest result.
type CategoryList struct {
	categories []domain.Category
	selected   int
	highlight  string
	styles     *styles.Styles
	width      int
	height     int
}

// NewCategoryList creates a list over the given categories.
func NewCategoryList(s *styles.Styles, categories []domain.Category) *CategoryList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &CategoryList{
		categories: categories,
		styles:     s,
		width:      80,
		height:     16,
	}
}

// Init initialises the list.
func (l *CategoryList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *CategoryList) Update(msg tea.Msg) (*CategoryList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders one row per category followed by the selected
// category's description.
func (l *CategoryList) View() string {
	if len(l.categories) == 0 {
		return l.styles.Muted.Render("No categories")
	}

	lines := make([]string, 0, len(l.categories)+2)
	for i := range l.categories {
		lines = append(lines, l.renderRow(i))
	}

	if c := l.SelectedCategory(); c != nil {
		desc := c.Description
		maxLen := l.width - 4
		if maxLen < 20 {
			maxLen = 20
		}
		if len(desc) > maxLen {
			desc = desc[:maxLen-3] + "..."
		}
		lines = append(lines, "", l.styles.Muted.Render(desc))
	}

	return strings.Join(lines, "\n")
}

func (l *CategoryList) renderRow(index int) string {
	c := l.categories[index]

	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}
	marker := " "
	if c.Name == l.highlight {
		marker = "●"
	}

	glyph := l.styles.Category(c).Render(c.Glyph)
	name := fmt.Sprintf("%-20s", c.Name)
	if index == l.selected {
		name = l.styles.Selected.Render(name)
	} else {
		name = l.styles.Normal.Render(name)
	}

	return fmt.Sprintf("%s%s %s %s %s %s", indicator, marker, glyph,
		c.Severity.Icon(), name, l.styles.Muted.Render(c.RangeLabel()))
}

// SetCategories replaces the listed categories and resets the cursor.
func (l *CategoryList) SetCategories(categories []domain.Category) {
	l.categories = categories
	l.selected = 0
}

// Categories returns the listed categories.
func (l *CategoryList) Categories() []domain.Category {
	return l.categories
}

// SetHighlight marks the named category. An empty name clears the mark.
// The cursor moves to the highlighted category when it is listed.
func (l *CategoryList) SetHighlight(name string) {
	l.highlight = name
	for i, c := range l.categories {
		if c.Name == name {
			l.selected = i
			return
		}
	}
}

// Highlight returns the highlighted category name.
func (l *CategoryList) Highlight() string {
	return l.highlight
}

// Selected returns the cursor index.
func (l *CategoryList) Selected() int {
	return l.selected
}

// SelectedCategory returns the category under the cursor, or nil if none.
func (l *CategoryList) SelectedCategory() *domain.Category {
	if len(l.categories) == 0 || l.selected < 0 || l.selected >= len(l.categories) {
		return nil
	}
	return &l.categories[l.selected]
}

// MoveUp moves the cursor up.
func (l *CategoryList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the cursor down.
func (l *CategoryList) MoveDown() {
	if l.selected < len(l.categories)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *CategoryList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *CategoryList) Width() int {
	return l.width
}

// Count returns the number of categories.
func (l *CategoryList) Count() int {
	return len(l.categories)
}
