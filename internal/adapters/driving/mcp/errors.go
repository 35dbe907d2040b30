// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// BMI calculator. It lets AI assistants calculate, validate and categorise BMI.
package mcp

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")
