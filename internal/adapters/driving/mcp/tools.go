package mcp

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

// MeasurementInput is the input schema shared by the calculate and validate tools.
// Values are strings, exactly as a user would type them into a form.
type MeasurementInput struct {
	Age          string `json:"age,omitempty" jsonschema:"age in whole years, 1 to 125"`
	Gender       string `json:"gender,omitempty" jsonschema:"male, female or other"`
	HeightUnit   string `json:"heightUnit,omitempty" jsonschema:"cm or ft"`
	HeightCm     string `json:"heightCm,omitempty" jsonschema:"height in centimetres when heightUnit is cm, 30 to 300"`
	HeightFeet   string `json:"heightFeet,omitempty" jsonschema:"feet part of the height when heightUnit is ft, 1 to 8"`
	HeightInches string `json:"heightInches,omitempty" jsonschema:"inches part of the height when heightUnit is ft, 0 to 11"`
	WeightUnit   string `json:"weightUnit,omitempty" jsonschema:"kg or lbs"`
	WeightKg     string `json:"weightKg,omitempty" jsonschema:"weight in kilograms when weightUnit is kg, 10 to 1000"`
	WeightLbs    string `json:"weightLbs,omitempty" jsonschema:"weight in pounds when weightUnit is lbs, 22 to 2200"`
}

func (in MeasurementInput) raw() domain.RawInput {
	return domain.RawInput{
		Age:          in.Age,
		Gender:       in.Gender,
		HeightUnit:   in.HeightUnit,
		HeightCm:     in.HeightCm,
		HeightFeet:   in.HeightFeet,
		HeightInches: in.HeightInches,
		WeightUnit:   in.WeightUnit,
		WeightKg:     in.WeightKg,
		WeightLbs:    in.WeightLbs,
	}
}

// CategoryOutput describes one band of the BMI scale.
type CategoryOutput struct {
	Name        string   `json:"name"`
	Lower       float64  `json:"lower"`
	Upper       *float64 `json:"upper,omitempty" jsonschema:"exclusive upper bound, absent for the last band"`
	Range       string   `json:"range"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
}

// CalculationOutput is the output schema for the calculate tool.
type CalculationOutput struct {
	ID           string         `json:"id"`
	BMI          float64        `json:"bmi" jsonschema:"BMI rounded to one decimal place"`
	Display      string         `json:"display" jsonschema:"BMI formatted with one decimal, e.g. 43.0"`
	Summary      string         `json:"summary"`
	HeightM      float64        `json:"heightM"`
	WeightKg     float64        `json:"weightKg"`
	Category     CategoryOutput `json:"category"`
	CalculatedAt string         `json:"calculatedAt"`
}

// ValidationOutput is the output schema for the validate tool.
type ValidationOutput struct {
	Ready   bool   `json:"ready"`
	Field   string `json:"field,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

// CategorizeInput is the input schema for the categorize tool.
type CategorizeInput struct {
	BMI float64 `json:"bmi" jsonschema:"a BMI value; it is rounded to one decimal before categorising"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calculate_bmi",
		Description: "Calculate BMI from age, gender, height and weight in metric or imperial units",
	}, s.handleCalculate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_bmi_input",
		Description: "Check whether BMI input is complete and within range without calculating",
	}, s.handleValidate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "categorize_bmi",
		Description: "Map a BMI value to its category on the six-band scale",
	}, s.handleCategorize)
}

// handleCalculate handles the calculate_bmi tool invocation.
func (s *Server) handleCalculate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MeasurementInput,
) (*mcp.CallToolResult, CalculationOutput, error) {
	calc, err := s.ports.Calculator.Calculate(ctx, input.raw())
	if err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			return nil, CalculationOutput{}, fmt.Errorf("%s: %w", verr.Kind.Title(), err)
		}
		return nil, CalculationOutput{}, err
	}

	return nil, CalculationOutput{
		ID:           calc.ID,
		BMI:          calc.BMI.Float64(),
		Display:      calc.BMI.String(),
		Summary:      calc.Summary(),
		HeightM:      calc.Measurement.HeightM,
		WeightKg:     calc.Measurement.WeightKg,
		Category:     toCategoryOutput(calc.Category),
		CalculatedAt: calc.CalculatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// handleValidate handles the validate_bmi_input tool invocation.
func (s *Server) handleValidate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input MeasurementInput,
) (*mcp.CallToolResult, ValidationOutput, error) {
	_, err := s.ports.Calculator.Validate(input.raw())
	if err == nil {
		return nil, ValidationOutput{Ready: true}, nil
	}

	verr, ok := domain.AsValidationError(err)
	if !ok {
		return nil, ValidationOutput{}, err
	}
	return nil, ValidationOutput{
		Field:   verr.Field,
		Kind:    verr.Kind.String(),
		Message: verr.Message,
	}, nil
}

// handleCategorize handles the categorize_bmi tool invocation.
func (s *Server) handleCategorize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CategorizeInput,
) (*mcp.CallToolResult, CategoryOutput, error) {
	if math.IsNaN(input.BMI) || math.IsInf(input.BMI, 0) || input.BMI < 0 {
		return nil, CategoryOutput{}, fmt.Errorf("bmi must be a finite, non-negative number: %w", domain.ErrInvalidInput)
	}
	category := s.ports.Calculator.Categorize(domain.RoundBMI(input.BMI))
	return nil, toCategoryOutput(category), nil
}

func toCategoryOutput(c domain.Category) CategoryOutput {
	out := CategoryOutput{
		Name:        c.Name,
		Lower:       c.Lower,
		Range:       c.RangeLabel(),
		Description: c.Description,
		Severity:    string(c.Severity),
	}
	if c.Bounded() {
		upper := c.Upper
		out.Upper = &upper
	}
	return out
}
