package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bmi-cli/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/bmi-cli/internal/core/domain"
	"github.com/custodia-labs/bmi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bmi-cli/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve the calculator as a JSON API.

Endpoints:
  GET  /api/health       Liveness check
  GET  /api/categories   The full BMI scale
  GET  /api/bmi          Calculate from query parameters
  POST /api/bmi          Calculate from a JSON body
  POST /api/validate     Report the first invalid field, if any

The address and rate limit come from --addr/--rate-limit/--burst, the
BMI_SERVER_ADDR/BMI_SERVER_RATE_LIMIT/BMI_SERVER_BURST environment
variables, or the [server] section of the config file, in that order.
Edits to the config file's rate limit apply without a restart, except
for values given as flags or environment variables.

Examples:
  bmi serve
  bmi serve --addr :9000 --rate-limit 5 --burst 10
  curl 'http://127.0.0.1:8080/api/bmi?age=30&gender=male&heightCm=175&weightKg=70'`,
	RunE: runServe,
}

func init() {
	defaults := domain.DefaultAppSettings().Server

	flags := serveCmd.Flags()
	flags.String("addr", defaults.Addr, "listen address")
	flags.Float64("rate-limit", defaults.RateLimit, "sustained requests per second (0 disables limiting)")
	flags.Int("burst", defaults.Burst, "requests allowed in a burst")

	_ = runtimeConfig.BindPFlag("server.addr", flags.Lookup("addr"))
	_ = runtimeConfig.BindPFlag("server.rate_limit", flags.Lookup("rate-limit"))
	_ = runtimeConfig.BindPFlag("server.burst", flags.Lookup("burst"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	addr := runtimeConfig.GetString("server.addr")
	server, err := httpapi.NewServer(
		&httpapi.Ports{Calculator: calculatorService, Settings: settingsService},
		httpapi.Options{
			RateLimit: runtimeConfig.GetFloat64("server.rate_limit"),
			Burst:     runtimeConfig.GetInt("server.burst"),
		},
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pinned := pinnedRateLimits(cmd)
	if watcher, ok := configStore.(driven.ConfigWatcher); ok && !pinned.all() {
		go watchRateLimit(ctx, watcher, server, pinned)
	}

	cmd.Printf("HTTP API listening on http://%s\n", addr)
	return server.Run(ctx, addr)
}

// rateLimits holds rate limit values fixed by a flag or an environment
// variable. Config file edits never override a pinned value.
type rateLimits struct {
	rate  *float64
	burst *int
}

func (p rateLimits) all() bool {
	return p.rate != nil && p.burst != nil
}

func pinnedRateLimits(cmd *cobra.Command) rateLimits {
	var p rateLimits
	if isPinned(cmd, "rate-limit", "server.rate_limit") {
		v := runtimeConfig.GetFloat64("server.rate_limit")
		p.rate = &v
	}
	if isPinned(cmd, "burst", "server.burst") {
		v := runtimeConfig.GetInt("server.burst")
		p.burst = &v
	}
	return p
}

func isPinned(cmd *cobra.Command, flag, key string) bool {
	if cmd.Flags().Changed(flag) {
		return true
	}
	_, ok := os.LookupEnv(envName(key))
	return ok
}

// watchRateLimit applies rate limit edits from the config file until ctx
// ends. Pinned values are kept.
func watchRateLimit(ctx context.Context, watcher driven.ConfigWatcher, server *httpapi.Server, pinned rateLimits) {
	onChange := func() {
		if settingsService == nil {
			return
		}
		s, err := settingsService.Get()
		if err != nil {
			logger.Warn("Reloading settings: %v", err)
			return
		}
		rate, burst := s.Server.RateLimit, s.Server.Burst
		if pinned.rate != nil {
			rate = *pinned.rate
		}
		if pinned.burst != nil {
			burst = *pinned.burst
		}
		server.SetRateLimit(rate, burst)
	}
	if err := watcher.Watch(ctx, onChange); err != nil {
		logger.Warn("Config watch stopped: %v", err)
	}
}
