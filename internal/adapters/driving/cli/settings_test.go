package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{"Empty input uses default", "", 3, 2, 2},
		{"Valid choice", "3", 3, 1, 3},
		{"Zero uses default", "0", 3, 1, 1},
		{"Too large uses default", "4", 3, 1, 1},
		{"Not a number uses default", "two", 3, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseChoice(tt.input, tt.maxVal, tt.defaultVal))
		})
	}
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		input      string
		defaultVal bool
		expected   bool
	}{
		{"y", false, true},
		{"YES", false, true},
		{"n", true, false},
		{"No", true, false},
		{"", true, true},
		{"maybe", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseYesNo(tt.input, tt.defaultVal))
		})
	}
}

func TestSettingsShow(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Units]")
	assert.Contains(t, out, "Height: Centimeters")
	assert.Contains(t, out, "Weight: Kilograms")
	assert.Contains(t, out, "Format: Text (with category scale)")
	assert.Contains(t, out, "Address: 127.0.0.1:8080")
	assert.Contains(t, out, "Level: warn")
	assert.Contains(t, out, "Configuration is valid.")
	assert.NotContains(t, out, "differs from the default")
}

func TestSettingsShow_MarksChangedValues(t *testing.T) {
	settings := setupServices(t)
	require.NoError(t, settings.SetDefaultUnits(domain.HeightUnitFtIn, domain.WeightUnitKg))
	require.NoError(t, settings.SetLogLevel(domain.LogLevelDebug))

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Height: Feet & Inches *\n")
	assert.Contains(t, out, "Weight: Kilograms\n")
	assert.Contains(t, out, "Level: debug *\n")
	assert.Contains(t, out, "* differs from the default")
}

func TestSettingsShow_RequiresService(t *testing.T) {
	setupServices(t)
	settingsService = nil

	_, err := execute(t, "settings")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}

func TestSettingsUnits(t *testing.T) {
	settings := setupServices(t)

	out, err := execute(t, "settings", "units", "--height", "feet", "--weight", "LBS")

	require.NoError(t, err)
	assert.Contains(t, out, "Default units set to: Feet & Inches, Pounds")

	got, err := settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.HeightUnitFtIn, got.Units.Height)
	assert.Equal(t, domain.WeightUnitLbs, got.Units.Weight)
}

func TestSettingsUnits_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no flags", []string{"settings", "units"}, "at least one of --height or --weight"},
		{"bad height", []string{"settings", "units", "--height", "cubits"}, `unknown height unit "cubits"`},
		{"bad weight", []string{"settings", "units", "--weight", "stone"}, `unknown weight unit "stone"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupServices(t)

			_, err := execute(t, tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSettingsReset(t *testing.T) {
	settings := setupServices(t)
	require.NoError(t, settings.SetDefaultUnits(domain.HeightUnitFtIn, domain.WeightUnitLbs))

	out, err := execute(t, "settings", "reset")

	require.NoError(t, err)
	assert.Contains(t, out, "Settings restored to defaults.")
	got, err := settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.HeightUnitCm, got.Units.Height)
}

func TestSettingsWizard(t *testing.T) {
	settings := setupServices(t)
	// ft, lbs, json, no scale, keep log level.
	withStdin("2\n2\n2\nn\n\n")

	out, err := execute(t, "settings", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "Step 1: Default Height Unit")
	assert.Contains(t, out, "Selected: Feet & Inches")
	assert.Contains(t, out, "Configuration Complete!")

	got, err := settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.HeightUnitFtIn, got.Units.Height)
	assert.Equal(t, domain.WeightUnitLbs, got.Units.Weight)
	assert.Equal(t, domain.OutputFormatJSON, got.Output.Format)
	assert.False(t, got.Output.ShowScale)
	assert.Equal(t, domain.LogLevelWarn, got.Log.Level)
}
