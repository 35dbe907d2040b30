package domain

import (
	"math"
	"math/big"
	"strconv"
)

// Conversion constants.
const (
	CentimetresPerMetre = 100.0
	InchesPerFoot       = 12
	MetresPerInch       = 0.0254
	KilogramsPerPound   = 0.453592
)

// Measurement is height and weight in canonical metric units.
type Measurement struct {
	HeightM  float64 `json:"heightM"`
	WeightKg float64 `json:"weightKg"`
}

// BMI is a body mass index rounded to one decimal place.
type BMI float64

// Float64 returns the value as a float64.
func (b BMI) Float64() float64 {
	return float64(b)
}

// String formats the BMI with exactly one decimal.
func (b BMI) String() string {
	return strconv.FormatFloat(float64(b), 'f', 1, 64)
}

// CentimetresToMetres converts centimetres to metres.
func CentimetresToMetres(cm float64) float64 {
	return cm / CentimetresPerMetre
}

// FeetInchesToMetres converts a feet and inches pair to metres.
func FeetInchesToMetres(feet, inches int) float64 {
	return float64(feet*InchesPerFoot+inches) * MetresPerInch
}

// PoundsToKilograms converts pounds to kilograms.
func PoundsToKilograms(lbs float64) float64 {
	return lbs * KilogramsPerPound
}

// Normalize converts validated input to metres and kilograms.
func Normalize(v ValidInput) Measurement {
	var m Measurement

	switch v.HeightUnit {
	case HeightUnitFtIn:
		m.HeightM = FeetInchesToMetres(v.HeightFeet, v.HeightInches)
	default:
		m.HeightM = CentimetresToMetres(v.HeightCm)
	}

	switch v.WeightUnit {
	case WeightUnitLbs:
		m.WeightKg = PoundsToKilograms(v.WeightLbs)
	default:
		m.WeightKg = v.WeightKg
	}

	return m
}

// RoundBMI rounds to one decimal place, half away from zero, using the
// exact binary value of x. 22.25 becomes 22.3, while 18.45 (stored as
// 18.4499...) becomes 18.4, the same digits fixed-point formatting prints.
func RoundBMI(x float64) BMI {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return BMI(x)
	}

	scaled := new(big.Float).SetPrec(256).SetFloat64(math.Abs(x))
	scaled.Mul(scaled, big.NewFloat(10))
	scaled.Add(scaled, big.NewFloat(0.5))
	tenths, _ := scaled.Int(nil)

	v, _ := new(big.Float).SetInt(tenths).Float64()
	return BMI(math.Copysign(v/10, x))
}

// ComputeBMI returns weight / height², rounded to one decimal.
// The caller guarantees HeightM > 0.
func ComputeBMI(m Measurement) BMI {
	return RoundBMI(m.WeightKg / (m.HeightM * m.HeightM))
}

// ConvertAndCompute normalises validated input and computes its BMI.
func ConvertAndCompute(v ValidInput) BMI {
	return ComputeBMI(Normalize(v))
}
