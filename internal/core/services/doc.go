// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The calculator is stateless; settings read and write through
// a driven.ConfigStore.
package services
