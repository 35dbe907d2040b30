package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
	"github.com/custodia-labs/bmi-cli/internal/core/services"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// newCalculator returns the real calculator with a fixed clock and ID.
func newCalculator() *services.CalculatorService {
	return services.NewCalculatorService(
		services.WithClock(func() time.Time { return fixedTime }),
		services.WithIDGenerator(func() string { return "calc-1" }),
	)
}

// mockCalculatorService fails every call that can fail with err.
type mockCalculatorService struct {
	*services.CalculatorService
	err error
}

func (m *mockCalculatorService) Validate(_ domain.RawInput) (domain.ValidInput, error) {
	return domain.ValidInput{}, m.err
}

func (m *mockCalculatorService) Calculate(_ context.Context, _ domain.RawInput) (*domain.Calculation, error) {
	return nil, m.err
}
