package services

import (
	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

// validate checks raw in the fixed order age, gender, height, weight and
// stops at the first failure.
func validate(raw domain.RawInput) (domain.ValidInput, error) {
	var out domain.ValidInput

	age, err := ageRule.Check(raw.Age)
	if err != nil {
		return domain.ValidInput{}, err
	}
	out.Age = int(age)

	gender, ok := domain.ParseGender(raw.Gender)
	if !ok {
		return domain.ValidInput{}, missingGender(raw.Gender)
	}
	out.Gender = gender

	if err := validateHeight(raw, &out); err != nil {
		return domain.ValidInput{}, err
	}

	if err := validateWeight(raw, &out); err != nil {
		return domain.ValidInput{}, err
	}

	return out, nil
}

func validateHeight(raw domain.RawInput, out *domain.ValidInput) error {
	unit, ok := domain.ParseHeightUnit(raw.HeightUnit)
	if !ok {
		return &domain.ValidationError{
			Field:   "heightUnit",
			Kind:    domain.KindInvalidHeight,
			Value:   raw.HeightUnit,
			Allowed: []string{domain.HeightUnitCm.String(), domain.HeightUnitFtIn.String()},
			Message: "Please select a height unit (cm or ft).",
		}
	}
	out.HeightUnit = unit

	if unit == domain.HeightUnitCm {
		cm, err := heightCmRule.Check(raw.HeightCm)
		if err != nil {
			return err
		}
		out.HeightCm = cm
		return nil
	}

	feet, err := heightFeetRule.Check(raw.HeightFeet)
	if err != nil {
		return err
	}
	inches, err := heightInchesRule.Check(raw.HeightInches)
	if err != nil {
		return err
	}
	out.HeightFeet = int(feet)
	out.HeightInches = int(inches)
	return nil
}

func validateWeight(raw domain.RawInput, out *domain.ValidInput) error {
	unit, ok := domain.ParseWeightUnit(raw.WeightUnit)
	if !ok {
		return &domain.ValidationError{
			Field:   "weightUnit",
			Kind:    domain.KindInvalidWeight,
			Value:   raw.WeightUnit,
			Allowed: []string{domain.WeightUnitKg.String(), domain.WeightUnitLbs.String()},
			Message: "Please select a weight unit (kg or lbs).",
		}
	}
	out.WeightUnit = unit

	rule := weightKgRule
	if unit == domain.WeightUnitLbs {
		rule = weightLbsRule
	}

	w, err := rule.Check(rawWeight(raw, unit))
	if err != nil {
		return err
	}

	if unit == domain.WeightUnitLbs {
		out.WeightLbs = w
	} else {
		out.WeightKg = w
	}
	return nil
}

func rawWeight(raw domain.RawInput, unit domain.WeightUnit) string {
	if unit == domain.WeightUnitLbs {
		return raw.WeightLbs
	}
	return raw.WeightKg
}

func missingGender(value string) *domain.ValidationError {
	allowed := make([]string, 0, 3)
	for _, g := range domain.AllGenders() {
		allowed = append(allowed, g.String())
	}
	return &domain.ValidationError{
		Field:   "gender",
		Kind:    domain.KindMissingGender,
		Value:   value,
		Allowed: allowed,
		Message: "Please select your gender.",
	}
}
