package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
	"github.com/custodia-labs/bmi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bmi-cli/internal/core/services"
)

func newTestCalculator() *services.CalculatorService {
	return services.NewCalculatorService(
		services.WithClock(func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }),
		services.WithIDGenerator(func() string { return "calc-1" }),
	)
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	GetFunc func() (*domain.AppSettings, error)
}

var _ driving.SettingsService = (*MockSettingsService)(nil)

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	s := domain.DefaultAppSettings()
	return &s, nil
}

func (m *MockSettingsService) Save(*domain.AppSettings) error { return nil }

func (m *MockSettingsService) SetDefaultUnits(domain.HeightUnit, domain.WeightUnit) error {
	return nil
}

func (m *MockSettingsService) SetOutputFormat(domain.OutputFormat) error { return nil }

func (m *MockSettingsService) SetShowScale(bool) error { return nil }

func (m *MockSettingsService) SetServer(string, float64, int) error { return nil }

func (m *MockSettingsService) SetLogLevel(domain.LogLevel) error { return nil }

func (m *MockSettingsService) Validate() error { return nil }

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *MockSettingsService) ResetToDefaults() error { return nil }

func TestNewPorts(t *testing.T) {
	calc := newTestCalculator()
	settings := &MockSettingsService{}

	ports := NewPorts(calc, settings)

	assert.Equal(t, calc, ports.Calculator)
	assert.Equal(t, settings, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{"calculator only", &Ports{Calculator: newTestCalculator()}, nil},
		{"with settings", NewPorts(newTestCalculator(), &MockSettingsService{}), nil},
		{"missing calculator", &Ports{Settings: &MockSettingsService{}}, ErrMissingCalculatorService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
