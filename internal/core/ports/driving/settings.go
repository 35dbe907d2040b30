package driving

import "github.com/custodia-labs/bmi-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDefaultUnits updates the units used when input omits them.
	SetDefaultUnits(height domain.HeightUnit, weight domain.WeightUnit) error

	// SetOutputFormat updates the CLI output format.
	SetOutputFormat(format domain.OutputFormat) error

	// SetShowScale toggles printing the full scale after a result.
	SetShowScale(show bool) error

	// SetServer updates the HTTP listen address and rate limit.
	SetServer(addr string, rateLimit float64, burst int) error

	// SetLogLevel updates the persisted log level.
	SetLogLevel(level domain.LogLevel) error

	// Validate checks that stored settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ResetToDefaults overwrites stored settings with defaults.
	ResetToDefaults() error
}
