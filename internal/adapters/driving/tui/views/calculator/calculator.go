// Package calculator provides the BMI input form and result panel for the TUI.
package calculator

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/tui/views/result"
	"github.com/custodia-labs/bmi-cli/internal/core/domain"
	"github.com/custodia-labs/bmi-cli/internal/core/ports/driving"
)

// Row names match the RawInput JSON field names so a ValidationError's
// Field can be focused directly.
const (
	rowAge          = "age"
	rowGender       = "gender"
	rowHeightUnit   = "heightUnit"
	rowHeightCm     = "heightCm"
	rowHeightFeet   = "heightFeet"
	rowHeightInches = "heightInches"
	rowWeightUnit   = "weightUnit"
	rowWeightKg     = "weightKg"
	rowWeightLbs    = "weightLbs"
)

// sideBySideWidth is the narrowest terminal that fits form and result
// panel next to each other.
const sideBySideWidth = 100

const resultPanelWidth = 56

// View is the calculator form. The result panel stays next to the form
// so a new calculation can be started without leaving the view.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	calculator driving.CalculatorService
	ctx        context.Context

	fields     map[string]*input.Field
	gender     domain.Gender
	heightUnit domain.HeightUnit
	weightUnit domain.WeightUnit

	// unitsTouched is set once the user picks a unit, after which
	// configured defaults no longer override the form.
	unitsTouched bool

	focus       int
	calculating bool
	delay       time.Duration
	result      *domain.Calculation
	status      *status.Bar

	width  int
	height int
}

// NewView creates a calculator view.
func NewView(s *styles.Styles, calc driving.CalculatorService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	return &View{
		styles:     s,
		keymap:     km,
		calculator: calc,
		ctx:        context.Background(),
		fields: map[string]*input.Field{
			rowAge:          input.NewField(s, "Age", "years"),
			rowHeightCm:     input.NewField(s, "Height (cm)", "e.g. 175"),
			rowHeightFeet:   input.NewField(s, "Height (ft)", "e.g. 5"),
			rowHeightInches: input.NewField(s, "Height (in)", "0-11"),
			rowWeightKg:     input.NewField(s, "Weight (kg)", "e.g. 70"),
			rowWeightLbs:    input.NewField(s, "Weight (lbs)", "e.g. 154"),
		},
		heightUnit: domain.HeightUnitCm,
		weightUnit: domain.WeightUnitKg,
		status:     status.NewBar(s, km),
		width:      80,
		height:     24,
	}
}

// SetContext sets the context passed to the calculator service.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// SetDelay sets how long the calculating state is shown before the
// result appears. Zero calculates immediately.
func (v *View) SetDelay(d time.Duration) {
	v.delay = d
}

// SetDefaultUnits pre-selects units unless the user has already chosen.
func (v *View) SetDefaultUnits(h domain.HeightUnit, w domain.WeightUnit) {
	if v.unitsTouched {
		return
	}
	if h.IsValid() {
		v.heightUnit = h
	}
	if w.IsValid() {
		v.weightUnit = w
	}
	v.refreshStatus()
}

// Init focuses the first field.
func (v *View) Init() tea.Cmd {
	return v.applyFocus()
}

// Update handles form input, submission and completed calculations.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.CalculationCompleted:
		return v, v.complete(msg)

	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}

	if f := v.focusedField(); f != nil {
		_, cmd := f.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) tea.Cmd {
	if v.calculating {
		return nil
	}

	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(keyStr, v.keymap.Clear):
		return v.Clear()
	case keymap.Matches(keyStr, v.keymap.Up):
		return v.moveFocus(-1)
	case keymap.Matches(keyStr, v.keymap.Down):
		return v.moveFocus(1)
	case keymap.Matches(keyStr, v.keymap.Submit):
		return v.submit()
	}

	name := v.focusedRow()
	if isChoiceRow(name) {
		if keymap.Matches(keyStr, v.keymap.Toggle) {
			v.toggle(name, keyStr != "left")
			v.refreshStatus()
		}
		return nil
	}

	if msg.Type == tea.KeyRunes && !numericRunes(msg.Runes) {
		return nil
	}
	f := v.fields[name]
	if f == nil {
		return nil
	}
	_, cmd := f.Update(msg)
	v.refreshStatus()
	return cmd
}

func numericRunes(runes []rune) bool {
	for _, r := range runes {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

func isChoiceRow(name string) bool {
	return name == rowGender || name == rowHeightUnit || name == rowWeightUnit
}

func (v *View) toggle(name string, forward bool) {
	switch name {
	case rowGender:
		v.gender = cycleGender(v.gender, forward)
	case rowHeightUnit:
		v.heightUnit = v.heightUnit.Toggle()
		v.unitsTouched = true
	case rowWeightUnit:
		v.weightUnit = v.weightUnit.Toggle()
		v.unitsTouched = true
	}
}

// cycleGender steps through the genders. No selection steps to the
// first (or last) option.
func cycleGender(g domain.Gender, forward bool) domain.Gender {
	all := domain.AllGenders()
	idx := -1
	for i, candidate := range all {
		if candidate == g {
			idx = i
		}
	}
	switch {
	case idx < 0 && forward:
		return all[0]
	case idx < 0:
		return all[len(all)-1]
	case forward:
		return all[(idx+1)%len(all)]
	default:
		return all[(idx+len(all)-1)%len(all)]
	}
}

// rows lists the visible rows; the height and weight rows depend on the
// selected units.
func (v *View) rows() []string {
	rows := []string{rowAge, rowGender, rowHeightUnit}
	if v.heightUnit == domain.HeightUnitFtIn {
		rows = append(rows, rowHeightFeet, rowHeightInches)
	} else {
		rows = append(rows, rowHeightCm)
	}
	rows = append(rows, rowWeightUnit)
	if v.weightUnit == domain.WeightUnitLbs {
		return append(rows, rowWeightLbs)
	}
	return append(rows, rowWeightKg)
}

func (v *View) focusedRow() string {
	rows := v.rows()
	if v.focus >= len(rows) {
		v.focus = len(rows) - 1
	}
	return rows[v.focus]
}

func (v *View) focusedField() *input.Field {
	return v.fields[v.focusedRow()]
}

func (v *View) moveFocus(delta int) tea.Cmd {
	n := len(v.rows())
	v.focus = (v.focus + delta + n) % n
	return v.applyFocus()
}

// focusRow moves focus to the named row if it is visible.
func (v *View) focusRow(name string) tea.Cmd {
	for i, r := range v.rows() {
		if r == name {
			v.focus = i
			return v.applyFocus()
		}
	}
	return nil
}

func (v *View) applyFocus() tea.Cmd {
	name := v.focusedRow()
	var cmd tea.Cmd
	for rowName, f := range v.fields {
		if rowName == name {
			cmd = f.Focus()
		} else {
			f.Blur()
		}
	}
	return cmd
}

// RawInput returns the form state as entered.
func (v *View) RawInput() domain.RawInput {
	return domain.RawInput{
		Age:          v.fields[rowAge].Value(),
		Gender:       v.gender.String(),
		HeightUnit:   v.heightUnit.String(),
		HeightCm:     v.fields[rowHeightCm].Value(),
		HeightFeet:   v.fields[rowHeightFeet].Value(),
		HeightInches: v.fields[rowHeightInches].Value(),
		WeightUnit:   v.weightUnit.String(),
		WeightKg:     v.fields[rowWeightKg].Value(),
		WeightLbs:    v.fields[rowWeightLbs].Value(),
	}
}

// SetValue fills a text row by name. Unknown names are ignored.
func (v *View) SetValue(name, value string) {
	if f, ok := v.fields[name]; ok {
		f.SetValue(value)
		v.refreshStatus()
	}
}

// SetGender selects a gender.
func (v *View) SetGender(g domain.Gender) {
	v.gender = g
	v.refreshStatus()
}

// SetUnits selects units as if the user had chosen them.
func (v *View) SetUnits(h domain.HeightUnit, w domain.WeightUnit) {
	v.heightUnit = h
	v.weightUnit = w
	v.unitsTouched = true
	v.refreshStatus()
}

func (v *View) ready() bool {
	return v.calculator != nil && v.calculator.Ready(v.RawInput())
}

func (v *View) refreshStatus() {
	switch {
	case v.calculating:
		v.status.SetState(status.StateCalculating)
	case v.ready():
		v.status.SetState(status.StateReady)
	default:
		v.status.SetState(status.StateIncomplete)
	}
	v.status.SetMessage("")
}

// submit validates the form and, when it passes, schedules the
// calculation after the configured delay.
func (v *View) submit() tea.Cmd {
	if v.calculator == nil {
		v.status.SetState(status.StateError)
		v.status.SetMessage("calculator service not configured")
		return nil
	}

	raw := v.RawInput()
	if _, err := v.calculator.Validate(raw); err != nil {
		return v.showError(err)
	}

	v.calculating = true
	v.refreshStatus()

	calc, ctx := v.calculator, v.ctx
	run := func() tea.Msg {
		c, err := calc.Calculate(ctx, raw)
		return messages.CalculationCompleted{Calculation: c, Err: err}
	}
	if v.delay <= 0 {
		return run
	}
	return tea.Tick(v.delay, func(time.Time) tea.Msg { return run() })
}

func (v *View) complete(msg messages.CalculationCompleted) tea.Cmd {
	v.calculating = false
	if msg.Err != nil {
		return v.showError(msg.Err)
	}

	v.result = msg.Calculation
	v.status.SetState(status.StateResult)
	v.status.SetMessage("BMI Calculated: " + msg.Calculation.Summary())
	return nil
}

func (v *View) showError(err error) tea.Cmd {
	v.status.SetState(status.StateError)
	if ve, ok := domain.AsValidationError(err); ok {
		v.status.SetMessage(fmt.Sprintf("%s: %s", ve.Kind.Title(), ve.Message))
		return v.focusRow(ve.Field)
	}
	v.status.SetMessage(err.Error())
	return nil
}

// Clear empties the form and the result, keeping the selected units.
func (v *View) Clear() tea.Cmd {
	for _, f := range v.fields {
		f.Reset()
	}
	v.gender = ""
	v.result = nil
	v.calculating = false
	v.focus = 0
	v.status.Clear()
	v.refreshStatus()
	return v.applyFocus()
}

// View renders the form, the result panel and the status bar.
func (v *View) View() string {
	form := v.renderForm()

	categories := domain.Categories()
	if v.calculator != nil {
		categories = v.calculator.Categories()
	}

	var body string
	if v.width >= sideBySideWidth {
		panel := result.Render(v.styles, v.result, categories, resultPanelWidth)
		body = lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", panel)
	} else {
		panel := result.Render(v.styles, v.result, categories, 0)
		body = lipgloss.JoinVertical(lipgloss.Left, form, "", panel)
	}

	v.status.SetWidth(v.width)
	return v.styles.Title.Render("Calculate BMI") + "\n\n" + body + "\n\n" + v.status.View()
}

func (v *View) renderForm() string {
	focused := v.focusedRow()
	lines := make([]string, 0, 8)
	for _, name := range v.rows() {
		switch name {
		case rowGender:
			lines = append(lines, v.renderChoice("Gender", name == focused,
				genderOptions(), v.gender.String()))
		case rowHeightUnit:
			lines = append(lines, v.renderChoice("Height unit", name == focused,
				heightUnitOptions(), v.heightUnit.String()))
		case rowWeightUnit:
			lines = append(lines, v.renderChoice("Weight unit", name == focused,
				weightUnitOptions(), v.weightUnit.String()))
		default:
			lines = append(lines, v.fields[name].View())
		}
	}
	return strings.Join(lines, "\n")
}

type option struct {
	value string
	label string
}

func genderOptions() []option {
	opts := make([]option, 0, 3)
	for _, g := range domain.AllGenders() {
		opts = append(opts, option{value: g.String(), label: g.Description()})
	}
	return opts
}

func heightUnitOptions() []option {
	opts := make([]option, 0, 2)
	for _, u := range domain.AllHeightUnits() {
		opts = append(opts, option{value: u.String(), label: u.Description()})
	}
	return opts
}

func weightUnitOptions() []option {
	opts := make([]option, 0, 2)
	for _, u := range domain.AllWeightUnits() {
		opts = append(opts, option{value: u.String(), label: u.Description()})
	}
	return opts
}

func (v *View) renderChoice(label string, focused bool, opts []option, current string) string {
	l := v.styles.Label.Render(label)
	if focused {
		l = v.styles.Label.Bold(true).Render("> " + label)
	}

	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.value == current {
			parts = append(parts, v.styles.Selected.Render("["+o.label+"]"))
		} else {
			parts = append(parts, v.styles.Muted.Render(" "+o.label+" "))
		}
	}
	return l + " " + strings.Join(parts, " ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.status.SetWidth(width)
}

// Result returns the latest calculation, or nil.
func (v *View) Result() *domain.Calculation {
	return v.result
}

// Calculating reports whether a calculation is pending.
func (v *View) Calculating() bool {
	return v.calculating
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.status
}

// Focused returns the name of the focused row.
func (v *View) Focused() string {
	return v.focusedRow()
}

// Units returns the selected units.
func (v *View) Units() (domain.HeightUnit, domain.WeightUnit) {
	return v.heightUnit, v.weightUnit
}
