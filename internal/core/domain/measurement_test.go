package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversions(t *testing.T) {
	assert.Equal(t, 1.75, CentimetresToMetres(175))
	assert.InDelta(t, 1.7526, FeetInchesToMetres(5, 9), 1e-12)
	assert.InDelta(t, 1.524, FeetInchesToMetres(5, 0), 1e-12)
	assert.InDelta(t, 69.853168, PoundsToKilograms(154), 1e-9)
	assert.InDelta(t, 69.853, PoundsToKilograms(154), 0.0005)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input ValidInput
		want  Measurement
	}{
		{
			name:  "metric",
			input: ValidInput{HeightUnit: HeightUnitCm, HeightCm: 175, WeightUnit: WeightUnitKg, WeightKg: 70},
			want:  Measurement{HeightM: 1.75, WeightKg: 70},
		},
		{
			name:  "imperial",
			input: ValidInput{HeightUnit: HeightUnitFtIn, HeightFeet: 5, HeightInches: 9, WeightUnit: WeightUnitLbs, WeightLbs: 154},
			want:  Measurement{HeightM: 1.7526, WeightKg: 69.853168},
		},
		{
			name:  "mixed",
			input: ValidInput{HeightUnit: HeightUnitFtIn, HeightFeet: 6, HeightInches: 0, WeightUnit: WeightUnitKg, WeightKg: 80},
			want:  Measurement{HeightM: 1.8288, WeightKg: 80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.InDelta(t, tt.want.HeightM, got.HeightM, 1e-9)
			assert.InDelta(t, tt.want.WeightKg, got.WeightKg, 1e-9)
		})
	}
}

func TestRoundBMI(t *testing.T) {
	tests := []struct {
		in   float64
		want BMI
	}{
		{22.857142857142858, 22.9},
		{42.96532815287852, 43.0},
		{22.25, 22.3},
		{22.75, 22.8},
		{18.45, 18.4},
		{18.499999999999996, 18.5},
		{24.94, 24.9},
		{-1.25, -1.3},
		{0, 0},
	}

	for _, tt := range tests {
		got := RoundBMI(tt.in)
		assert.Equal(t, tt.want, got, "RoundBMI(%v)", tt.in)
	}

	assert.True(t, math.IsNaN(float64(RoundBMI(math.NaN()))))
	assert.True(t, math.IsInf(float64(RoundBMI(math.Inf(1))), 1))
}

func TestConvertAndCompute(t *testing.T) {
	t.Run("metric healthy weight", func(t *testing.T) {
		v := ValidInput{Age: 30, Gender: GenderMale, HeightUnit: HeightUnitCm, HeightCm: 175, WeightUnit: WeightUnitKg, WeightKg: 70}
		bmi := ConvertAndCompute(v)
		assert.Equal(t, BMI(22.9), bmi)
		assert.Equal(t, "22.9", bmi.String())
		assert.Equal(t, CategoryHealthyWeight, Categorize(bmi).Name)
	})

	t.Run("imperial severe obese", func(t *testing.T) {
		v := ValidInput{Age: 25, Gender: GenderFemale, HeightUnit: HeightUnitFtIn, HeightFeet: 5, HeightInches: 0, WeightUnit: WeightUnitLbs, WeightLbs: 220}
		m := Normalize(v)
		assert.InDelta(t, 1.524, m.HeightM, 1e-12)
		assert.InDelta(t, 99.79, m.WeightKg, 0.001)

		bmi := ConvertAndCompute(v)
		assert.InDelta(t, 42.96, bmi.Float64(), 0.05)
		assert.Equal(t, "43.0", bmi.String())
		assert.Equal(t, CategorySevereObese, Categorize(bmi).Name)
	})
}
