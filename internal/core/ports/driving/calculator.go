package driving

import (
	"context"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

// CalculatorService runs the validate, convert, compute and categorise
// pipeline. Implementations hold no per-call state and are safe for
// concurrent use.
type CalculatorService interface {
	// Validate checks raw input in the order age, gender, height, weight.
	// The returned error is a *domain.ValidationError for the first failing field.
	Validate(raw domain.RawInput) (domain.ValidInput, error)

	// Ready reports whether Validate would accept raw, without building an error.
	Ready(raw domain.RawInput) bool

	// ConvertAndCompute normalises validated input and returns its rounded BMI.
	ConvertAndCompute(valid domain.ValidInput) domain.BMI

	// Categorize maps a BMI to its band on the scale.
	Categorize(bmi domain.BMI) domain.Category

	// Categories returns the full scale in ascending order.
	Categories() []domain.Category

	// Calculate runs the whole pipeline and stamps the result with an ID.
	Calculate(ctx context.Context, raw domain.RawInput) (*domain.Calculation, error)
}
