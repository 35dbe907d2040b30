// Package httpapi serves the BMI calculator as a small JSON API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/bmi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bmi-cli/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second

	// maxBodyBytes caps request bodies. A full input is well under 1 KiB.
	maxBodyBytes = 64 << 10
)

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("httpapi: calculator service is required")

// Ports aggregates the driving ports used by the API.
type Ports struct {
	// Calculator runs the BMI pipeline. Required.
	Calculator driving.CalculatorService

	// Settings supplies default units for requests that omit them. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	return nil
}

// Options configures rate limiting.
type Options struct {
	// RateLimit is the sustained requests per second. Zero or less disables limiting.
	RateLimit float64

	// Burst is the token bucket size.
	Burst int
}

// Server is the HTTP API server.
type Server struct {
	ports   *Ports
	limiter *rate.Limiter
	handler http.Handler
}

// NewServer creates a server with routes and middleware installed.
func NewServer(ports *Ports, opts Options) (*Server, error) {
	if ports == nil {
		return nil, ErrMissingCalculatorService
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports:   ports,
		limiter: rate.NewLimiter(limitFor(opts.RateLimit), burstFor(opts.Burst)),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/bmi", s.handleCalculateQuery)
	mux.HandleFunc("POST /api/bmi", s.handleCalculate)
	mux.HandleFunc("POST /api/validate", s.handleValidate)

	s.handler = s.logRequests(s.rateLimit(mux))
	return s, nil
}

// Handler returns the root handler, including middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// SetRateLimit replaces the limiter settings while the server runs.
func (s *Server) SetRateLimit(rps float64, burst int) {
	s.limiter.SetLimit(limitFor(rps))
	s.limiter.SetBurst(burstFor(burst))
	logger.Info("Rate limit set to %g req/s (burst %d)", rps, burst)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP server shutdown: %v", err)
		}
	}()

	logger.Info("HTTP API listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func limitFor(rps float64) rate.Limit {
	if rps <= 0 {
		return rate.Inf
	}
	return rate.Limit(rps)
}

// burstFor keeps at least one token so a finite limit never rejects everything.
func burstFor(burst int) int {
	if burst < 1 {
		return 1
	}
	return burst
}
