// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - ConfigStore: Application preferences (TOML file or in-memory)
//   - ConfigWatcher: Optional live reload for long-running commands
//
// The BMI pipeline itself calls out to nothing.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
