package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
	"github.com/custodia-labs/bmi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bmi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bmi-cli/internal/logger"
)

// version is overridden at build time via ldflags.
var version = "dev"

// Services used by the commands. main installs them through the wiring hook;
// tests assign them directly.
var (
	calculatorService driving.CalculatorService
	settingsService   driving.SettingsService
	configStore       driven.ConfigStore
)

var (
	configDir string
	noConfig  bool
	verbose   bool

	// initErr carries a failure from initConfig to PersistentPreRunE,
	// since cobra initializers cannot return errors.
	initErr error
)

// runtimeConfig layers flags, BMI_* environment variables and the config
// file for the keys read at startup (log level, server options).
var runtimeConfig = viper.New()

// Services groups what a Wiring function produces.
type Services struct {
	Calculator  driving.CalculatorService
	Settings    driving.SettingsService
	ConfigStore driven.ConfigStore
}

// WiringOptions are the resolved global flags passed to a Wiring function.
type WiringOptions struct {
	// ConfigDir is the expanded configuration directory.
	ConfigDir string

	// NoConfig requests an in-memory store instead of the config file.
	NoConfig bool
}

// Wiring builds the services once flags and environment are resolved.
type Wiring func(opts WiringOptions) (*Services, error)

var wiring Wiring

var rootCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Mao BMI Calculator",
	Long: `Mao BMI Calculator - Know Your Numbers, Understand Your Health

Calculate Body Mass Index from metric or imperial measurements and see
where the result sits on the six-band scale, from the command line, an
interactive terminal UI, an HTTP API or an MCP server.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initErr
	},
}

// SetVersion sets the version reported by "bmi version".
func SetVersion(v string) {
	version = v
}

// SetWiring installs the function that builds services before a command runs.
func SetWiring(w Wiring) {
	wiring = w
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config", "", "config directory (default is $HOME/.bmi)")
	flags.BoolVar(&noConfig, "no-config", false, "keep settings in memory and never touch disk")
	flags.StringP("loglevel", "l", domain.LogLevelWarn.String(), "log level: debug, info, warn, error")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	_ = runtimeConfig.BindPFlag("config", flags.Lookup("config"))
	_ = runtimeConfig.BindPFlag("log.level", flags.Lookup("loglevel"))
}

// initConfig resolves runtime configuration, sets the log level and wires
// services.
func initConfig() {
	initErr = nil

	bindEnv()

	defaults := domain.DefaultAppSettings()
	runtimeConfig.SetDefault("log.level", defaults.Log.Level.String())
	runtimeConfig.SetDefault("server.addr", defaults.Server.Addr)
	runtimeConfig.SetDefault("server.rate_limit", defaults.Server.RateLimit)
	runtimeConfig.SetDefault("server.burst", defaults.Server.Burst)

	dir, err := resolveConfigDir()
	if err != nil {
		initErr = err
		return
	}

	if !noConfig {
		runtimeConfig.SetConfigFile(filepath.Join(dir, "config.toml"))
		runtimeConfig.SetConfigType("toml")
		if err := runtimeConfig.ReadInConfig(); err != nil && !isConfigMissing(err) {
			logger.Warn("Ignoring unreadable config: %v", err)
		}
	}

	if verbose {
		logger.SetVerbose(true)
	} else if err := logger.SetLevel(runtimeConfig.GetString("log.level")); err != nil {
		initErr = err
		return
	}

	if wiring == nil {
		return
	}
	svc, err := wiring(WiringOptions{ConfigDir: dir, NoConfig: noConfig})
	if err != nil {
		initErr = fmt.Errorf("failed to initialise: %w", err)
		return
	}
	calculatorService = svc.Calculator
	settingsService = svc.Settings
	configStore = svc.ConfigStore
}

const envPrefix = "BMI"

var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// bindEnv lets BMI_* variables override runtime keys, e.g. BMI_SERVER_BURST
// for server.burst.
func bindEnv() {
	runtimeConfig.SetEnvPrefix(envPrefix)
	runtimeConfig.SetEnvKeyReplacer(envKeyReplacer)
	runtimeConfig.AutomaticEnv()
}

// envName returns the environment variable that overrides key.
func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(envKeyReplacer.Replace(key))
}

func resolveConfigDir() (string, error) {
	dir := runtimeConfig.GetString("config")
	if dir == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".bmi"), nil
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("failed to expand config path: %w", err)
	}
	return expanded, nil
}

func isConfigMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// currentSettings returns stored settings, or defaults when no settings
// service is available or it fails.
func currentSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	s, err := settingsService.Get()
	if err != nil || s == nil {
		logger.Warn("Using default settings: %v", err)
		return domain.DefaultAppSettings()
	}
	return *s
}
