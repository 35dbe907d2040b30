package domain

// OutputFormat selects how the CLI prints results.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatText is human-readable text with the category scale.
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON is indented JSON.
	OutputFormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	return f == OutputFormatText || f == OutputFormatJSON
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatText:
		return "Text (with category scale)"
	case OutputFormatJSON:
		return "JSON"
	default:
		return unknownDescription
	}
}

// AllOutputFormats returns all output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{OutputFormatText, OutputFormatJSON}
}

// LogLevel is a logger verbosity name.
type LogLevel string

// Available log levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// IsValid returns true if the level is recognised.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l LogLevel) String() string {
	return string(l)
}

// AllLogLevels returns all log levels from most to least verbose.
func AllLogLevels() []LogLevel {
	return []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
}

// UnitSettings holds the units pre-selected when input omits them.
type UnitSettings struct {
	Height HeightUnit
	Weight WeightUnit
}

// OutputSettings controls CLI result rendering.
type OutputSettings struct {
	Format    OutputFormat
	ShowScale bool
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	// Addr is the listen address, e.g. "127.0.0.1:8080".
	Addr string

	// RateLimit is the sustained requests per second allowed.
	RateLimit float64

	// Burst is the token bucket size.
	Burst int
}

// LogSettings configures logging.
type LogSettings struct {
	Level LogLevel
}

// AppSettings holds all application settings.
type AppSettings struct {
	Units  UnitSettings
	Output OutputSettings
	Server ServerSettings
	Log    LogSettings
}

// Default setting values.
const (
	DefaultServerAddr = "127.0.0.1:8080"
	DefaultRateLimit  = 10.0
	DefaultBurst      = 20
)

// DefaultAppSettings returns settings with sensible defaults.
// Units default to centimetres and kilograms, as the form does.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Units: UnitSettings{
			Height: HeightUnitCm,
			Weight: WeightUnitKg,
		},
		Output: OutputSettings{
			Format:    OutputFormatText,
			ShowScale: true,
		},
		Server: ServerSettings{
			Addr:      DefaultServerAddr,
			RateLimit: DefaultRateLimit,
			Burst:     DefaultBurst,
		},
		Log: LogSettings{
			Level: LogLevelWarn,
		},
	}
}
