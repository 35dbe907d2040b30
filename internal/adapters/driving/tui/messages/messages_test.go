package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewMenu, "menu"},
		{ViewCalculator, "calculator"},
		{ViewScale, "scale"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestCalculationCompleted(t *testing.T) {
	t.Run("with result", func(t *testing.T) {
		calc := &domain.Calculation{ID: "calc-1", BMI: 22.9}
		msg := CalculationCompleted{Calculation: calc}

		assert.Equal(t, "calc-1", msg.Calculation.ID)
		assert.NoError(t, msg.Err)
	})

	t.Run("with validation error", func(t *testing.T) {
		ve := &domain.ValidationError{Field: "age", Kind: domain.KindInvalidAge, Message: "bad age"}
		msg := CalculationCompleted{Err: ve}

		assert.Nil(t, msg.Calculation)
		assert.ErrorIs(t, msg.Err, domain.ErrInvalidAge)
	})
}

func TestSettingsLoaded(t *testing.T) {
	s := domain.DefaultAppSettings()
	msg := SettingsLoaded{Settings: &s}

	assert.Equal(t, domain.HeightUnitCm, msg.Settings.Units.Height)

	failed := SettingsLoaded{Err: errors.New("unreadable")}
	assert.EqualError(t, failed.Err, "unreadable")
}

func TestErrorOccurred(t *testing.T) {
	err := errors.New("boom")
	msg := ErrorOccurred{Err: err}

	assert.Equal(t, err, msg.Err)
}
