package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Severity groups categories by how far they sit from the healthy band.
type Severity string

// Severities.
const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Icon returns a single-rune marker for terminal output.
func (s Severity) Icon() string {
	switch s {
	case SeverityOK:
		return "✓"
	case SeverityWarning:
		return "!"
	case SeverityDanger:
		return "✗"
	default:
		return "?"
	}
}

// Category is one band of the BMI scale. Lower is inclusive and Upper
// exclusive; the last band has Upper = +Inf.
type Category struct {
	Name        string   `json:"name"`
	Lower       float64  `json:"lower"`
	Upper       float64  `json:"-"`
	Description string   `json:"description"`
	Glyph       string   `json:"glyph"`
	Severity    Severity `json:"severity"`
	Color       string   `json:"color"`
}

// Bounded reports whether the category has a finite upper bound.
func (c Category) Bounded() bool {
	return !math.IsInf(c.Upper, 1)
}

// Contains reports whether bmi falls in [Lower, Upper).
func (c Category) Contains(bmi BMI) bool {
	v := float64(bmi)
	return v >= c.Lower && v < c.Upper
}

// RangeLabel renders the band, e.g. "18.5 ≤ BMI < 25".
func (c Category) RangeLabel() string {
	switch {
	case c.Lower <= 0:
		return fmt.Sprintf("BMI < %s", formatBound(c.Upper))
	case !c.Bounded():
		return fmt.Sprintf("BMI ≥ %s", formatBound(c.Lower))
	default:
		return fmt.Sprintf("%s ≤ BMI < %s", formatBound(c.Lower), formatBound(c.Upper))
	}
}

// MarshalJSON encodes an unbounded Upper as null and adds the range label.
func (c Category) MarshalJSON() ([]byte, error) {
	type plain Category
	var upper *float64
	if c.Bounded() {
		u := c.Upper
		upper = &u
	}
	return json.Marshal(struct {
		plain
		Upper *float64 `json:"upper"`
		Range string   `json:"range"`
	}{plain: plain(c), Upper: upper, Range: c.RangeLabel()})
}

func formatBound(v float64) string {
	return fmt.Sprintf("%g", v)
}

// Category names.
const (
	CategorySevereUnderweight = "Severe Underweight"
	CategoryUnderweight       = "Underweight"
	CategoryHealthyWeight     = "Healthy Weight"
	CategoryOverweight        = "Overweight"
	CategoryObese             = "Obese"
	CategorySevereObese       = "Severe Obese"
)

// categoryTable is the single ordered scale. Bands are contiguous and
// together cover [0, +Inf).
var categoryTable = []Category{
	{
		Name:        CategorySevereUnderweight,
		Lower:       0,
		Upper:       16,
		Description: "Significantly below healthy weight range. Consider consulting a healthcare professional.",
		Glyph:       "▁",
		Severity:    SeverityDanger,
		Color:       "blue",
	},
	{
		Name:        CategoryUnderweight,
		Lower:       16,
		Upper:       18.5,
		Description: "Below healthy weight range. Consider a balanced nutrition plan.",
		Glyph:       "▂",
		Severity:    SeverityWarning,
		Color:       "cyan",
	},
	{
		Name:        CategoryHealthyWeight,
		Lower:       18.5,
		Upper:       25,
		Description: "Within healthy weight range. Maintain your current lifestyle.",
		Glyph:       "▃",
		Severity:    SeverityOK,
		Color:       "emerald",
	},
	{
		Name:        CategoryOverweight,
		Lower:       25,
		Upper:       30,
		Description: "Above healthy weight range. Consider lifestyle modifications.",
		Glyph:       "▄",
		Severity:    SeverityWarning,
		Color:       "amber",
	},
	{
		Name:        CategoryObese,
		Lower:       30,
		Upper:       40,
		Description: "Significantly above healthy weight range. Consult with a healthcare professional.",
		Glyph:       "▅",
		Severity:    SeverityDanger,
		Color:       "orange",
	},
	{
		Name:        CategorySevereObese,
		Lower:       40,
		Upper:       math.Inf(1),
		Description: "Well above healthy weight range. Medical consultation strongly recommended.",
		Glyph:       "▆",
		Severity:    SeverityDanger,
		Color:       "red",
	},
}

// Categories returns a copy of the scale in ascending order.
func Categories() []Category {
	out := make([]Category, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// Categorize returns the first band whose range contains bmi. Values
// below zero fall into the lowest band so the function is total.
func Categorize(bmi BMI) Category {
	for _, c := range categoryTable {
		if c.Contains(bmi) {
			return c
		}
	}
	if float64(bmi) < categoryTable[0].Lower {
		return categoryTable[0]
	}
	// NaN compares false against every band.
	return categoryTable[len(categoryTable)-1]
}
