package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
	"github.com/custodia-labs/bmi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bmi-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyUnitsHeight     = "units.height"
	keyUnitsWeight     = "units.weight"
	keyOutputFormat    = "output.format"
	keyOutputScale     = "output.scale"
	keyServerAddr      = "server.addr"
	keyServerRateLimit = "server.rate_limit"
	keyServerBurst     = "server.burst"
	keyLogLevel        = "log.level"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings. Missing or unrecognised
// stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Units: domain.UnitSettings{
			Height: s.getHeightUnit(defaults.Units.Height),
			Weight: s.getWeightUnit(defaults.Units.Weight),
		},
		Output: domain.OutputSettings{
			Format:    s.getOutputFormat(defaults.Output.Format),
			ShowScale: s.getBool(keyOutputScale, defaults.Output.ShowScale),
		},
		Server: domain.ServerSettings{
			Addr:      s.getString(keyServerAddr, defaults.Server.Addr),
			RateLimit: s.getPositiveFloat(keyServerRateLimit, defaults.Server.RateLimit),
			Burst:     s.getPositiveInt(keyServerBurst, defaults.Server.Burst),
		},
		Log: domain.LogSettings{
			Level: s.getLogLevel(defaults.Log.Level),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("save settings: %w", domain.ErrInvalidInput)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyUnitsHeight, settings.Units.Height.String()},
		{keyUnitsWeight, settings.Units.Weight.String()},
		{keyOutputFormat, settings.Output.Format.String()},
		{keyOutputScale, settings.Output.ShowScale},
		{keyServerAddr, settings.Server.Addr},
		{keyServerRateLimit, settings.Server.RateLimit},
		{keyServerBurst, settings.Server.Burst},
		{keyLogLevel, settings.Log.Level.String()},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// SetDefaultUnits updates the units used when input omits them.
func (s *SettingsService) SetDefaultUnits(height domain.HeightUnit, weight domain.WeightUnit) error {
	if !height.IsValid() {
		return fmt.Errorf("invalid height unit: %s", height)
	}
	if !weight.IsValid() {
		return fmt.Errorf("invalid weight unit: %s", weight)
	}

	return s.update(func(settings *domain.AppSettings) {
		settings.Units.Height = height
		settings.Units.Weight = weight
	})
}

// SetOutputFormat updates the CLI output format.
func (s *SettingsService) SetOutputFormat(format domain.OutputFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("invalid output format: %s", format)
	}

	return s.update(func(settings *domain.AppSettings) {
		settings.Output.Format = format
	})
}

// SetShowScale toggles printing the full scale after a result.
func (s *SettingsService) SetShowScale(show bool) error {
	return s.update(func(settings *domain.AppSettings) {
		settings.Output.ShowScale = show
	})
}

// SetServer updates the HTTP listen address and rate limit.
func (s *SettingsService) SetServer(addr string, rateLimit float64, burst int) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return errors.New("server address is required")
	}
	if rateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive: %v", rateLimit)
	}
	if burst <= 0 {
		return fmt.Errorf("burst must be positive: %d", burst)
	}

	return s.update(func(settings *domain.AppSettings) {
		settings.Server.Addr = addr
		settings.Server.RateLimit = rateLimit
		settings.Server.Burst = burst
	})
}

// SetLogLevel updates the persisted log level.
func (s *SettingsService) SetLogLevel(level domain.LogLevel) error {
	if !level.IsValid() {
		return fmt.Errorf("invalid log level: %s", level)
	}

	return s.update(func(settings *domain.AppSettings) {
		settings.Log.Level = level
	})
}

// Validate checks that the raw stored values are recognised. Get silently
// substitutes defaults, so this is how a user learns a value was ignored.
func (s *SettingsService) Validate() error {
	var errs []error

	if v := s.configStore.GetString(keyUnitsHeight); v != "" && !domain.HeightUnit(v).IsValid() {
		errs = append(errs, fmt.Errorf("%s: unknown height unit %q", keyUnitsHeight, v))
	}
	if v := s.configStore.GetString(keyUnitsWeight); v != "" && !domain.WeightUnit(v).IsValid() {
		errs = append(errs, fmt.Errorf("%s: unknown weight unit %q", keyUnitsWeight, v))
	}
	if v := s.configStore.GetString(keyOutputFormat); v != "" && !domain.OutputFormat(v).IsValid() {
		errs = append(errs, fmt.Errorf("%s: unknown output format %q", keyOutputFormat, v))
	}
	if v := s.configStore.GetString(keyLogLevel); v != "" && !domain.LogLevel(v).IsValid() {
		errs = append(errs, fmt.Errorf("%s: unknown log level %q", keyLogLevel, v))
	}
	if _, ok := s.configStore.Get(keyServerRateLimit); ok && s.configStore.GetFloat(keyServerRateLimit) <= 0 {
		errs = append(errs, fmt.Errorf("%s: must be positive", keyServerRateLimit))
	}
	if _, ok := s.configStore.Get(keyServerBurst); ok && s.configStore.GetInt(keyServerBurst) <= 0 {
		errs = append(errs, fmt.Errorf("%s: must be positive", keyServerBurst))
	}

	return errors.Join(errs...)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ResetToDefaults overwrites stored settings with defaults.
func (s *SettingsService) ResetToDefaults() error {
	defaults := domain.DefaultAppSettings()
	return s.Save(&defaults)
}

func (s *SettingsService) update(apply func(*domain.AppSettings)) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	apply(settings)
	return s.Save(settings)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getHeightUnit(defaultVal domain.HeightUnit) domain.HeightUnit {
	unit := domain.HeightUnit(s.configStore.GetString(keyUnitsHeight))
	if !unit.IsValid() {
		return defaultVal
	}
	return unit
}

func (s *SettingsService) getWeightUnit(defaultVal domain.WeightUnit) domain.WeightUnit {
	unit := domain.WeightUnit(s.configStore.GetString(keyUnitsWeight))
	if !unit.IsValid() {
		return defaultVal
	}
	return unit
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.configStore.GetString(keyOutputFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getLogLevel(defaultVal domain.LogLevel) domain.LogLevel {
	level := domain.LogLevel(s.configStore.GetString(keyLogLevel))
	if !level.IsValid() {
		return defaultVal
	}
	return level
}
