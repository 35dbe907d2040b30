package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
	"github.com/custodia-labs/bmi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bmi-cli/internal/logger"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// CalculatorOption configures a CalculatorService.
type CalculatorOption func(*CalculatorService)

// WithClock overrides the time source used to stamp calculations.
func WithClock(now func() time.Time) CalculatorOption {
	return func(s *CalculatorService) {
		s.now = now
	}
}

// WithIDGenerator overrides how calculation IDs are minted.
func WithIDGenerator(newID func() string) CalculatorOption {
	return func(s *CalculatorService) {
		s.newID = newID
	}
}

// CalculatorService implements the BMI pipeline.
type CalculatorService struct {
	now   func() time.Time
	newID func() string
}

// NewCalculatorService creates a new calculator service.
func NewCalculatorService(opts ...CalculatorOption) *CalculatorService {
	s := &CalculatorService{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate checks raw input in the order age, gender, height, weight.
func (s *CalculatorService) Validate(raw domain.RawInput) (domain.ValidInput, error) {
	return validate(raw)
}

// Ready reports whether Validate would accept raw.
func (s *CalculatorService) Ready(raw domain.RawInput) bool {
	_, err := validate(raw)
	return err == nil
}

// ConvertAndCompute normalises validated input and returns its rounded BMI.
func (s *CalculatorService) ConvertAndCompute(valid domain.ValidInput) domain.BMI {
	return domain.ConvertAndCompute(valid)
}

// Categorize maps a BMI to its band on the scale.
func (s *CalculatorService) Categorize(bmi domain.BMI) domain.Category {
	return domain.Categorize(bmi)
}

// Categories returns the full scale.
func (s *CalculatorService) Categories() []domain.Category {
	return domain.Categories()
}

// Calculate runs validation, conversion, computation and categorisation.
func (s *CalculatorService) Calculate(ctx context.Context, raw domain.RawInput) (*domain.Calculation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("BMI Calculation")

	valid, err := validate(raw)
	if err != nil {
		logger.Debug("Rejected input: %v", err)
		return nil, err
	}
	logger.Debug("Validated input: age=%d gender=%s height=%s weight=%s",
		valid.Age, valid.Gender, valid.HeightUnit, valid.WeightUnit)

	m := domain.Normalize(valid)
	logger.Debug("Normalised: %.4f m, %.4f kg", m.HeightM, m.WeightKg)

	bmi := domain.ComputeBMI(m)
	category := domain.Categorize(bmi)
	logger.Debug("Categorised: BMI %s -> %s", bmi, category.Name)

	return &domain.Calculation{
		ID:           s.newID(),
		Input:        valid,
		Measurement:  m,
		BMI:          bmi,
		Category:     category,
		CalculatedAt: s.now(),
	}, nil
}
