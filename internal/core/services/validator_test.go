package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

func metricInput() domain.RawInput {
	return domain.RawInput{
		Age:        "30",
		Gender:     "male",
		HeightUnit: "cm",
		HeightCm:   "175",
		WeightUnit: "kg",
		WeightKg:   "70",
	}
}

func imperialInput() domain.RawInput {
	return domain.RawInput{
		Age:          "25",
		Gender:       "female",
		HeightUnit:   "ft",
		HeightFeet:   "5",
		HeightInches: "0",
		WeightUnit:   "lbs",
		WeightLbs:    "220",
	}
}

func TestValidate_AcceptsMetricAndImperial(t *testing.T) {
	valid, err := validate(metricInput())
	require.NoError(t, err)
	assert.Equal(t, domain.ValidInput{
		Age:        30,
		Gender:     domain.GenderMale,
		HeightUnit: domain.HeightUnitCm,
		HeightCm:   175,
		WeightUnit: domain.WeightUnitKg,
		WeightKg:   70,
	}, valid)

	valid, err = validate(imperialInput())
	require.NoError(t, err)
	assert.Equal(t, domain.ValidInput{
		Age:          25,
		Gender:       domain.GenderFemale,
		HeightUnit:   domain.HeightUnitFtIn,
		HeightFeet:   5,
		HeightInches: 0,
		WeightUnit:   domain.WeightUnitLbs,
		WeightLbs:    220,
	}, valid)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RawInput)
		kind   domain.ValidationKind
		field  string
	}{
		{"age zero", func(r *domain.RawInput) { r.Age = "0" }, domain.KindInvalidAge, "age"},
		{"age too old", func(r *domain.RawInput) { r.Age = "126" }, domain.KindInvalidAge, "age"},
		{"age fractional", func(r *domain.RawInput) { r.Age = "30.5" }, domain.KindInvalidAge, "age"},
		{"age text", func(r *domain.RawInput) { r.Age = "thirty" }, domain.KindInvalidAge, "age"},
		{"age empty", func(r *domain.RawInput) { r.Age = "" }, domain.KindInvalidAge, "age"},
		{"gender empty", func(r *domain.RawInput) { r.Gender = "" }, domain.KindMissingGender, "gender"},
		{"gender unknown", func(r *domain.RawInput) { r.Gender = "robot" }, domain.KindMissingGender, "gender"},
		{"height blank", func(r *domain.RawInput) { r.HeightCm = " " }, domain.KindInvalidHeight, "heightCm"},
		{"height low", func(r *domain.RawInput) { r.HeightCm = "29.9" }, domain.KindInvalidHeight, "heightCm"},
		{"height high", func(r *domain.RawInput) { r.HeightCm = "300.1" }, domain.KindInvalidHeight, "heightCm"},
		{"height nan", func(r *domain.RawInput) { r.HeightCm = "NaN" }, domain.KindInvalidHeight, "heightCm"},
		{"height inf", func(r *domain.RawInput) { r.HeightCm = "Inf" }, domain.KindInvalidHeight, "heightCm"},
		{"height hex float", func(r *domain.RawInput) { r.HeightCm = "0x1p6" }, domain.KindInvalidHeight, "heightCm"},
		{"height signed hex", func(r *domain.RawInput) { r.HeightCm = "+0X1P7" }, domain.KindInvalidHeight, "heightCm"},
		{"weight hex float", func(r *domain.RawInput) { r.WeightKg = "0x46" }, domain.KindInvalidWeight, "weightKg"},
		{"age hex", func(r *domain.RawInput) { r.Age = "0x1e" }, domain.KindInvalidAge, "age"},
		{"height unit", func(r *domain.RawInput) { r.HeightUnit = "m" }, domain.KindInvalidHeight, "heightUnit"},
		{"weight low", func(r *domain.RawInput) { r.WeightKg = "9.99" }, domain.KindInvalidWeight, "weightKg"},
		{"weight high", func(r *domain.RawInput) { r.WeightKg = "1000.5" }, domain.KindInvalidWeight, "weightKg"},
		{"weight text", func(r *domain.RawInput) { r.WeightKg = "heavy" }, domain.KindInvalidWeight, "weightKg"},
		{"weight unit", func(r *domain.RawInput) { r.WeightUnit = "" }, domain.KindInvalidWeight, "weightUnit"},
		{"weight lbs ignores kg field", func(r *domain.RawInput) { r.WeightUnit = "lbs" }, domain.KindInvalidWeight, "weightLbs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := metricInput()
			tt.mutate(&raw)

			_, err := validate(raw)

			require.Error(t, err)
			ve, ok := domain.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, ve.Kind)
			assert.Equal(t, tt.field, ve.Field)
			assert.NotEmpty(t, ve.Message)
		})
	}
}

func TestValidate_ImperialRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RawInput)
		field  string
		kind   domain.ValidationKind
	}{
		{"feet zero", func(r *domain.RawInput) { r.HeightFeet = "0" }, "heightFeet", domain.KindInvalidHeight},
		{"feet nine", func(r *domain.RawInput) { r.HeightFeet = "9" }, "heightFeet", domain.KindInvalidHeight},
		{"feet fractional", func(r *domain.RawInput) { r.HeightFeet = "5.5" }, "heightFeet", domain.KindInvalidHeight},
		{"inches twelve", func(r *domain.RawInput) { r.HeightInches = "12" }, "heightInches", domain.KindInvalidHeight},
		{"inches negative", func(r *domain.RawInput) { r.HeightInches = "-1" }, "heightInches", domain.KindInvalidHeight},
		{"inches empty", func(r *domain.RawInput) { r.HeightInches = "" }, "heightInches", domain.KindInvalidHeight},
		{"lbs low", func(r *domain.RawInput) { r.WeightLbs = "21.9" }, "weightLbs", domain.KindInvalidWeight},
		{"lbs high", func(r *domain.RawInput) { r.WeightLbs = "2200.1" }, "weightLbs", domain.KindInvalidWeight},
		{"lbs hex float", func(r *domain.RawInput) { r.WeightLbs = "0x1p7" }, "weightLbs", domain.KindInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := imperialInput()
			tt.mutate(&raw)

			_, err := validate(raw)

			ve, ok := domain.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.kind, ve.Kind)
		})
	}
}

func TestValidate_OrderIsAgeGenderHeightWeight(t *testing.T) {
	raw := domain.RawInput{
		Age:        "0",
		Gender:     "",
		HeightUnit: "cm",
		HeightCm:   "1",
		WeightUnit: "kg",
		WeightKg:   "1",
	}

	_, err := validate(raw)
	assert.ErrorIs(t, err, domain.ErrInvalidAge)

	raw.Age = "40"
	_, err = validate(raw)
	assert.ErrorIs(t, err, domain.ErrMissingGender)

	raw.Gender = "other"
	_, err = validate(raw)
	assert.ErrorIs(t, err, domain.ErrInvalidHeight)

	raw.HeightCm = "180"
	_, err = validate(raw)
	assert.ErrorIs(t, err, domain.ErrInvalidWeight)

	raw.WeightKg = "80"
	_, err = validate(raw)
	assert.NoError(t, err)
}

func TestValidate_Boundaries(t *testing.T) {
	accepted := []func(*domain.RawInput){
		func(r *domain.RawInput) { r.Age = "1" },
		func(r *domain.RawInput) { r.Age = "125" },
		func(r *domain.RawInput) { r.Age = " 42 " },
		func(r *domain.RawInput) { r.HeightCm = "30" },
		func(r *domain.RawInput) { r.HeightCm = "300" },
		func(r *domain.RawInput) { r.HeightCm = "172.5" },
		func(r *domain.RawInput) { r.WeightKg = "10" },
		func(r *domain.RawInput) { r.WeightKg = "1000" },
		func(r *domain.RawInput) { r.Gender = "FEMALE" },
		func(r *domain.RawInput) { r.HeightUnit = "centimetres"; r.WeightUnit = "kilograms" },
		func(r *domain.RawInput) { r.WeightUnit = "pounds"; r.WeightLbs = "22" },
		func(r *domain.RawInput) { r.WeightUnit = "lb"; r.WeightLbs = "2200" },
		func(r *domain.RawInput) { r.HeightUnit = "feet"; r.HeightFeet = "1"; r.HeightInches = "0" },
		func(r *domain.RawInput) { r.HeightUnit = "ft"; r.HeightFeet = "8"; r.HeightInches = "11" },
	}

	for i, mutate := range accepted {
		raw := metricInput()
		mutate(&raw)
		_, err := validate(raw)
		assert.NoError(t, err, "case %d: %+v", i, raw)
	}
}

func TestValidate_ErrorCarriesValueAndBounds(t *testing.T) {
	raw := metricInput()
	raw.Age = "0"

	_, err := validate(raw)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "0", ve.Value)
	require.NotNil(t, ve.Min)
	require.NotNil(t, ve.Max)
	assert.Equal(t, 1.0, *ve.Min)
	assert.Equal(t, 125.0, *ve.Max)
	assert.Equal(t, "Please enter an age between 1 and 125 years.", ve.Message)
}

func TestRuleMessages(t *testing.T) {
	assert.Equal(t, "Please enter a height between 30 and 300 cm.", heightCmRule.Message)
	assert.Equal(t, "Please enter a valid height in feet and inches.", heightFeetRule.Message)
	assert.Equal(t, "Please enter a weight between 10 and 1000 kg.", weightKgRule.Message)
	assert.Equal(t, "Please enter a weight between 22 and 2200 lbs.", weightLbsRule.Message)

	raw := metricInput()
	raw.Gender = ""
	_, err := validate(raw)
	assert.EqualError(t, err, "Please select your gender.")
}
