package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
	"github.com/custodia-labs/bmi-cli/internal/logger"
)

// calculationResponse adds display strings to a calculation.
type calculationResponse struct {
	*domain.Calculation
	Display string `json:"display"`
	Summary string `json:"summary"`
}

// validationResponse reports whether input is ready for calculation.
type validationResponse struct {
	Ready bool                    `json:"ready"`
	Error *domain.ValidationError `json:"error,omitempty"`
}

type errorMessage struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error any `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.ports.Calculator.Categories())
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeRawInput(w, r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}
	s.calculate(w, r, raw)
}

func (s *Server) handleCalculateQuery(w http.ResponseWriter, r *http.Request) {
	s.calculate(w, r, rawInputFromQuery(r.URL.Query()))
}

func (s *Server) calculate(w http.ResponseWriter, r *http.Request, raw domain.RawInput) {
	calc, err := s.ports.Calculator.Calculate(r.Context(), s.withDefaultUnits(raw))
	if err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr})
			return
		}
		logger.Warn("Calculation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "calculation failed")
		return
	}

	writeJSON(w, http.StatusOK, calculationResponse{
		Calculation: calc,
		Display:     calc.BMI.String(),
		Summary:     calc.Summary(),
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeRawInput(w, r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	_, err = s.ports.Calculator.Validate(s.withDefaultUnits(raw))
	if err == nil {
		writeJSON(w, http.StatusOK, validationResponse{Ready: true})
		return
	}

	verr, ok := domain.AsValidationError(err)
	if !ok {
		logger.Warn("Validation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "validation failed")
		return
	}
	writeJSON(w, http.StatusOK, validationResponse{Error: verr})
}

// withDefaultUnits fills omitted units from settings, falling back to cm and kg.
func (s *Server) withDefaultUnits(raw domain.RawInput) domain.RawInput {
	units := domain.DefaultAppSettings().Units
	if s.ports.Settings != nil {
		if settings, err := s.ports.Settings.Get(); err == nil && settings != nil {
			units = settings.Units
		}
	}
	return raw.WithDefaultUnits(units.Height, units.Weight)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Writing response: %v", err)
	}
}

// writeDecodeError answers 413 for an oversized body and 400 otherwise.
func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: errorMessage{Message: message}})
}
