package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

// numberFormat selects how a raw field is parsed.
type numberFormat int

const (
	formatInteger numberFormat = iota
	formatReal
)

// rangeRule checks one raw form field: it must parse in the given format
// and fall within Bounds. A parse failure and an out-of-range value yield
// the same error.
type rangeRule struct {
	Field   string
	Kind    domain.ValidationKind
	Format  numberFormat
	Bounds  domain.Bounds
	Message string
}

// Check returns the parsed value or a *domain.ValidationError.
func (r rangeRule) Check(raw string) (float64, error) {
	v, ok := parseNumber(raw, r.Format)
	if !ok || !r.Bounds.Contains(v) {
		return 0, r.reject(raw)
	}
	return v, nil
}

func (r rangeRule) reject(raw string) *domain.ValidationError {
	lo, hi := r.Bounds.Min, r.Bounds.Max
	return &domain.ValidationError{
		Field:   r.Field,
		Kind:    r.Kind,
		Value:   raw,
		Min:     &lo,
		Max:     &hi,
		Message: r.Message,
	}
}

func parseNumber(raw string, format numberFormat) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	if format == formatInteger {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}

	// ParseFloat also reads hex floats such as "0x1p6"; only decimal is valid.
	if hasHexPrefix(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func hasHexPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

const feetInchesMessage = "Please enter a valid height in feet and inches."

// The rule table. Validate and Ready both evaluate these.
var (
	ageRule = rangeRule{
		Field:   "age",
		Kind:    domain.KindInvalidAge,
		Format:  formatInteger,
		Bounds:  domain.AgeBounds,
		Message: fmt.Sprintf("Please enter an age between %g and %g years.", domain.AgeBounds.Min, domain.AgeBounds.Max),
	}
	heightCmRule = rangeRule{
		Field:   "heightCm",
		Kind:    domain.KindInvalidHeight,
		Format:  formatReal,
		Bounds:  domain.HeightCmBounds,
		Message: fmt.Sprintf("Please enter a height between %g and %g cm.", domain.HeightCmBounds.Min, domain.HeightCmBounds.Max),
	}
	heightFeetRule = rangeRule{
		Field:   "heightFeet",
		Kind:    domain.KindInvalidHeight,
		Format:  formatInteger,
		Bounds:  domain.HeightFeetBounds,
		Message: feetInchesMessage,
	}
	heightInchesRule = rangeRule{
		Field:   "heightInches",
		Kind:    domain.KindInvalidHeight,
		Format:  formatInteger,
		Bounds:  domain.HeightInchesBounds,
		Message: feetInchesMessage,
	}
	weightKgRule = rangeRule{
		Field:   "weightKg",
		Kind:    domain.KindInvalidWeight,
		Format:  formatReal,
		Bounds:  domain.WeightKgBounds,
		Message: fmt.Sprintf("Please enter a weight between %g and %g kg.", domain.WeightKgBounds.Min, domain.WeightKgBounds.Max),
	}
	weightLbsRule = rangeRule{
		Field:   "weightLbs",
		Kind:    domain.KindInvalidWeight,
		Format:  formatReal,
		Bounds:  domain.WeightLbsBounds,
		Message: fmt.Sprintf("Please enter a weight between %g and %g lbs.", domain.WeightLbsBounds.Min, domain.WeightLbsBounds.Max),
	}
)
