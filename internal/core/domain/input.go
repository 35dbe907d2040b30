package domain

import "strings"

const unknownDescription = "Unknown"

// Gender is the self-reported gender selected on the form.
type Gender string

// Accepted genders.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid returns true if the gender is recognised.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (g Gender) String() string {
	return string(g)
}

// Description returns a human-readable label.
func (g Gender) Description() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return unknownDescription
	}
}

// AllGenders returns the accepted genders in form order.
func AllGenders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// ParseGender normalises case and whitespace. ok is false for unknown values.
func ParseGender(s string) (Gender, bool) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	return g, g.IsValid()
}

// HeightUnit selects how height is entered.
type HeightUnit string

// Height units.
const (
	// HeightUnitCm is a single centimetre value.
	HeightUnitCm HeightUnit = "cm"

	// HeightUnitFtIn is a feet value plus an inches value.
	HeightUnitFtIn HeightUnit = "ft"
)

// IsValid returns true if the height unit is recognised.
func (u HeightUnit) IsValid() bool {
	return u == HeightUnitCm || u == HeightUnitFtIn
}

// String returns the string representation.
func (u HeightUnit) String() string {
	return string(u)
}

// Description returns a human-readable label.
func (u HeightUnit) Description() string {
	switch u {
	case HeightUnitCm:
		return "Centimeters"
	case HeightUnitFtIn:
		return "Feet & Inches"
	default:
		return unknownDescription
	}
}

// Toggle returns the other height unit.
func (u HeightUnit) Toggle() HeightUnit {
	if u == HeightUnitFtIn {
		return HeightUnitCm
	}
	return HeightUnitFtIn
}

// AllHeightUnits returns all height units.
func AllHeightUnits() []HeightUnit {
	return []HeightUnit{HeightUnitCm, HeightUnitFtIn}
}

var heightUnitAliases = map[string]HeightUnit{
	"cm":          HeightUnitCm,
	"centimeter":  HeightUnitCm,
	"centimeters": HeightUnitCm,
	"centimetre":  HeightUnitCm,
	"centimetres": HeightUnitCm,
	"ft":          HeightUnitFtIn,
	"ft-in":       HeightUnitFtIn,
	"ftin":        HeightUnitFtIn,
	"foot":        HeightUnitFtIn,
	"feet":        HeightUnitFtIn,
}

// ParseHeightUnit resolves a unit name or alias, case-insensitively.
func ParseHeightUnit(s string) (HeightUnit, bool) {
	u, ok := heightUnitAliases[strings.ToLower(strings.TrimSpace(s))]
	return u, ok
}

// WeightUnit selects how weight is entered.
type WeightUnit string

// Weight units.
const (
	WeightUnitKg  WeightUnit = "kg"
	WeightUnitLbs WeightUnit = "lbs"
)

// IsValid returns true if the weight unit is recognised.
func (u WeightUnit) IsValid() bool {
	return u == WeightUnitKg || u == WeightUnitLbs
}

// String returns the string representation.
func (u WeightUnit) String() string {
	return string(u)
}

// Description returns a human-readable label.
func (u WeightUnit) Description() string {
	switch u {
	case WeightUnitKg:
		return "Kilograms"
	case WeightUnitLbs:
		return "Pounds"
	default:
		return unknownDescription
	}
}

// Toggle returns the other weight unit.
func (u WeightUnit) Toggle() WeightUnit {
	if u == WeightUnitLbs {
		return WeightUnitKg
	}
	return WeightUnitLbs
}

// AllWeightUnits returns all weight units.
func AllWeightUnits() []WeightUnit {
	return []WeightUnit{WeightUnitKg, WeightUnitLbs}
}

var weightUnitAliases = map[string]WeightUnit{
	"kg":        WeightUnitKg,
	"kgs":       WeightUnitKg,
	"kilogram":  WeightUnitKg,
	"kilograms": WeightUnitKg,
	"lb":        WeightUnitLbs,
	"lbs":       WeightUnitLbs,
	"pound":     WeightUnitLbs,
	"pounds":    WeightUnitLbs,
}

// ParseWeightUnit resolves a unit name or alias, case-insensitively.
func ParseWeightUnit(s string) (WeightUnit, bool) {
	u, ok := weightUnitAliases[strings.ToLower(strings.TrimSpace(s))]
	return u, ok
}

// RawInput is the form state exactly as entered. Every field is untrusted
// until it has passed validation.
type RawInput struct {
	Age          string `json:"age"`
	Gender       string `json:"gender"`
	HeightUnit   string `json:"heightUnit"`
	HeightCm     string `json:"heightCm"`
	HeightFeet   string `json:"heightFeet"`
	HeightInches string `json:"heightInches"`
	WeightUnit   string `json:"weightUnit"`
	WeightKg     string `json:"weightKg"`
	WeightLbs    string `json:"weightLbs"`
}

// WithDefaultUnits fills empty unit fields from the given defaults.
func (r RawInput) WithDefaultUnits(h HeightUnit, w WeightUnit) RawInput {
	if strings.TrimSpace(r.HeightUnit) == "" {
		r.HeightUnit = string(h)
	}
	if strings.TrimSpace(r.WeightUnit) == "" {
		r.WeightUnit = string(w)
	}
	return r
}

// ValidInput is RawInput after successful validation. Only the fields
// relevant to the selected units are populated.
type ValidInput struct {
	Age          int        `json:"age"`
	Gender       Gender     `json:"gender"`
	HeightUnit   HeightUnit `json:"heightUnit"`
	HeightCm     float64    `json:"heightCm,omitempty"`
	HeightFeet   int        `json:"heightFeet,omitempty"`
	HeightInches int        `json:"heightInches,omitempty"`
	WeightUnit   WeightUnit `json:"weightUnit"`
	WeightKg     float64    `json:"weightKg,omitempty"`
	WeightLbs    float64    `json:"weightLbs,omitempty"`
}

// Bounds is an inclusive numeric range.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the bounds, inclusive.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Accepted input ranges. The validator and the readiness check both
// read these, so they cannot drift apart.
var (
	AgeBounds          = Bounds{Min: 1, Max: 125}
	HeightCmBounds     = Bounds{Min: 30, Max: 300}
	HeightFeetBounds   = Bounds{Min: 1, Max: 8}
	HeightInchesBounds = Bounds{Min: 0, Max: 11}
	WeightKgBounds     = Bounds{Min: 10, Max: 1000}
	WeightLbsBounds    = Bounds{Min: 22, Max: 2200}
)
