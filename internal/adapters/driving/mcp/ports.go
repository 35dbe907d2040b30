package mcp

import (
	"github.com/custodia-labs/bmi-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Calculator runs the BMI pipeline.
	Calculator driving.CalculatorService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	return nil
}
